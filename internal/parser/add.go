package parser

import (
	"github.com/aalvaropc/rolodex/internal/domain"
	"github.com/aalvaropc/rolodex/internal/infra/logger"
	"github.com/aalvaropc/rolodex/internal/usecase"
)

// tokenizeAdd runs the checks shared by every add command: no preamble,
// every required prefix present and none repeated. Undeclared prefixes stay
// inside the value they follow.
func (b base) tokenizeAdd(args string, required []Prefix, optional ...Prefix) (*ArgumentMultimap, error) {
	logger.L().Debug("parser.parse", "command", b.word)

	all := make([]Prefix, 0, len(required)+len(optional))
	all = append(all, required...)
	all = append(all, optional...)

	mm := Tokenize(args, all...)
	if !ArePrefixesPresent(mm, required...) || mm.Preamble() != "" {
		return nil, invalidCommandFormat(b.usage)
	}
	if err := mm.VerifyNoDuplicatePrefixesFor(required...); err != nil {
		return nil, err
	}
	return mm, nil
}

// parsePerson reads the fields every contact has. The caller has already
// checked that they are present.
func parsePerson(mm *ArgumentMultimap) (domain.Person, error) {
	name, err := ParseName(mustValue(mm, PrefixName))
	if err != nil {
		return domain.Person{}, err
	}
	phone, err := ParsePhone(mustValue(mm, PrefixPhone))
	if err != nil {
		return domain.Person{}, err
	}
	email, err := ParseEmail(mustValue(mm, PrefixEmail))
	if err != nil {
		return domain.Person{}, err
	}
	address, err := ParseAddress(mustValue(mm, PrefixAddress))
	if err != nil {
		return domain.Person{}, err
	}

	return domain.Person{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    domain.NewTagSet(),
	}, nil
}

// AddPersonParser parses: n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...
type AddPersonParser struct{ base }

func NewAddPersonParser(opts ...Option) *AddPersonParser {
	return &AddPersonParser{newBase(CommandAdd, AddPersonUsage, opts)}
}

func (p *AddPersonParser) Parse(args string) (usecase.Command, error) {
	mm, err := p.tokenizeAdd(args,
		[]Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress},
		PrefixTag)
	if err != nil {
		return nil, err
	}

	person, err := parsePerson(mm)
	if err != nil {
		return nil, err
	}
	tags, err := ParseTags(mm.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}
	person.Tags = tags

	return usecase.AddContact{Contact: person}, nil
}

// AddStaffParser parses: n/NAME p/PHONE e/EMAIL a/ADDRESS em/EMPLOYMENT s/SALARY
type AddStaffParser struct{ base }

func NewAddStaffParser(opts ...Option) *AddStaffParser {
	return &AddStaffParser{newBase(CommandAddStaff, AddStaffUsage, opts)}
}

func (p *AddStaffParser) Parse(args string) (usecase.Command, error) {
	mm, err := p.tokenizeAdd(args, []Prefix{
		PrefixName, PrefixPhone, PrefixEmail, PrefixAddress,
		PrefixEmployment, PrefixSalary,
	})
	if err != nil {
		return nil, err
	}

	person, err := parsePerson(mm)
	if err != nil {
		return nil, err
	}
	employment, err := ParseEmployment(mustValue(mm, PrefixEmployment))
	if err != nil {
		return nil, err
	}
	salary, err := ParseSalary(mustValue(mm, PrefixSalary))
	if err != nil {
		return nil, err
	}

	return usecase.AddContact{Contact: domain.NewStaff(person, employment, salary)}, nil
}

// AddSupplierParser parses: n/NAME p/PHONE e/EMAIL a/ADDRESS pd/PRODUCT pr/PRICE
type AddSupplierParser struct{ base }

func NewAddSupplierParser(opts ...Option) *AddSupplierParser {
	return &AddSupplierParser{newBase(CommandAddSupplier, AddSupplierUsage, opts)}
}

func (p *AddSupplierParser) Parse(args string) (usecase.Command, error) {
	mm, err := p.tokenizeAdd(args, []Prefix{
		PrefixName, PrefixPhone, PrefixEmail, PrefixAddress,
		PrefixProduct, PrefixPrice,
	})
	if err != nil {
		return nil, err
	}

	person, err := parsePerson(mm)
	if err != nil {
		return nil, err
	}
	product, err := ParseProduct(mustValue(mm, PrefixProduct))
	if err != nil {
		return nil, err
	}
	price, err := ParsePrice(mustValue(mm, PrefixPrice))
	if err != nil {
		return nil, err
	}

	return usecase.AddContact{Contact: domain.NewSupplier(person, product, price)}, nil
}

// AddMaintainerParser parses: n/NAME p/PHONE e/EMAIL a/ADDRESS sk/SKILL c/COMMISSION
// The maintainer always carries the "maintainer" tag and no other.
type AddMaintainerParser struct{ base }

func NewAddMaintainerParser(opts ...Option) *AddMaintainerParser {
	return &AddMaintainerParser{newBase(CommandAddMaintainer, AddMaintainerUsage, opts)}
}

func (p *AddMaintainerParser) Parse(args string) (usecase.Command, error) {
	mm, err := p.tokenizeAdd(args, []Prefix{
		PrefixName, PrefixPhone, PrefixEmail, PrefixAddress,
		PrefixSkill, PrefixCommission,
	})
	if err != nil {
		return nil, err
	}

	person, err := parsePerson(mm)
	if err != nil {
		return nil, err
	}
	skill, err := ParseSkill(mustValue(mm, PrefixSkill))
	if err != nil {
		return nil, err
	}
	commission, err := ParseCommission(mustValue(mm, PrefixCommission))
	if err != nil {
		return nil, err
	}

	return usecase.AddContact{Contact: domain.NewMaintainer(person, skill, commission)}, nil
}

// mustValue is for prefixes already checked with ArePrefixesPresent.
func mustValue(mm *ArgumentMultimap, p Prefix) string {
	v, _ := mm.Value(p)
	return v
}
