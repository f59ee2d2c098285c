package parser

// Prefix marks the start of a field's value in command arguments.
type Prefix string

func (p Prefix) String() string { return string(p) }

// Command line syntax.
const (
	PrefixName       Prefix = "n/"
	PrefixPhone      Prefix = "p/"
	PrefixEmail      Prefix = "e/"
	PrefixAddress    Prefix = "a/"
	PrefixTag        Prefix = "t/"
	PrefixSkill      Prefix = "sk/"
	PrefixCommission Prefix = "c/"
	PrefixEmployment Prefix = "em/"
	PrefixSalary     Prefix = "s/"
	PrefixProduct    Prefix = "pd/"
	PrefixPrice      Prefix = "pr/"
	PrefixNote       Prefix = "note/"
	PrefixRating     Prefix = "rating/"
	PrefixDeadline   Prefix = "deadline/"
	PrefixField      Prefix = "field/"
)

var syntaxPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag,
	PrefixSkill, PrefixCommission, PrefixEmployment, PrefixSalary,
	PrefixProduct, PrefixPrice, PrefixNote, PrefixRating, PrefixDeadline,
	PrefixField,
}

func isSyntaxPrefix(tok string) bool {
	for _, p := range syntaxPrefixes {
		if string(p) == tok {
			return true
		}
	}
	return false
}

// editablePrefixes may appear inside an edit command's field/{ ... } block.
var editablePrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag,
	PrefixEmployment, PrefixSalary, PrefixProduct, PrefixPrice,
	PrefixSkill, PrefixCommission,
}
