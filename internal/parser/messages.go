package parser

import "strings"

const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageDuplicateFields      = "Multiple values specified for the following single-valued field(s): "
	MessageInvalidFieldFormat   = "Invalid field(s) found: %s"
	MessageMissingFieldFormat   = "Missing field(s): %s"
	MessageCommandFormat        = "Expected format: %s"
	MessageCommandHeader        = "Could not parse %s command. "

	MessageDeadlineNotSpecified = "Notes with a deadline must be added with the deadline command.\n" + DeadlineUsage
	MessageEmptyFields          = "At least one field to edit must be provided inside field/{ }."
	MessageNoFieldsEdited       = "At least one field to edit must be provided."
)

// Command words.
const (
	CommandAdd           = "add"
	CommandAddStaff      = "add-staff"
	CommandAddSupplier   = "add-supplier"
	CommandAddMaintainer = "add-maintainer"
	CommandDelete        = "delete"
	CommandEdit          = "edit"
	CommandNote          = "note"
	CommandDeadline      = "deadline"
	CommandRate          = "rate"
	CommandHelp          = "help"
	CommandSort          = "sort"
)

const (
	AddPersonUsage = CommandAdd + ": Adds a person to the contact book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Example: " + CommandAdd + " n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 t/friends"

	AddStaffUsage = CommandAddStaff + ": Adds a staff member to the contact book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS em/EMPLOYMENT s/SALARY\n" +
		"Example: " + CommandAddStaff + " n/Moana p/98765432 e/moana@example.com a/Blk 30 Geylang St 29 em/part-time s/$50/hr"

	AddSupplierUsage = CommandAddSupplier + ": Adds a supplier to the contact book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS pd/PRODUCT pr/PRICE\n" +
		"Example: " + CommandAddSupplier + " n/Pooch Foods p/67891234 e/sales@pooch.com a/8 Jurong Ave pd/kibble pr/$25/bag"

	AddMaintainerUsage = CommandAddMaintainer + ": Adds a maintainer to the contact book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS sk/SKILL c/COMMISSION\n" +
		"Example: " + CommandAddMaintainer + " n/Bob p/91234567 e/bob@example.com a/Blk 5 Bishan St 11 sk/trainer c/$60/hr"

	DeleteUsage = CommandDelete + ": Deletes a contact by its index in the listing or by name. " +
		"Parameters: INDEX (must be a positive integer) or n/NAME\n" +
		"Example: " + CommandDelete + " 1 or " + CommandDelete + " n/John Doe"

	EditUsage = CommandEdit + ": Edits the named contact. Fields not listed are kept. " +
		"Parameters: n/NAME field/{ [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]... [ROLE FIELDS] }\n" +
		"Example: " + CommandEdit + " n/John Doe field/{ p/91234567 e/johndoe@example.com }"

	NoteUsage = CommandNote + ": Attaches a note to the named contact, replacing any existing note. " +
		"Parameters: n/NAME note/NOTE\n" +
		"Example: " + CommandNote + " n/John Doe note/Prefers weekend shifts"

	DeadlineUsage = CommandDeadline + ": Attaches a note with a deadline to the named contact. " +
		"Parameters: n/NAME note/NOTE deadline/YYYY-MM-DD\n" +
		"Example: " + CommandDeadline + " n/John Doe note/Renew contract deadline/2024-12-31"

	RateUsage = CommandRate + ": Rates the named contact from 0 to 5. " +
		"Parameters: n/NAME rating/RATING\n" +
		"Example: " + CommandRate + " n/John Doe rating/4"

	HelpUsage = CommandHelp + ": Shows usage for all commands or for one command. " +
		"Parameters: [COMMAND]\n" +
		"Example: " + CommandHelp + " " + CommandAddStaff

	SortUsage = CommandSort + ": Sorts contacts by a field. " +
		"Parameters: FIELD (one of " + sortableFieldList + ")\n" +
		"Example: " + CommandSort + " name"
)

// usages lists every command word with its usage text, in display order.
var usages = []struct {
	word  string
	usage string
}{
	{CommandAdd, AddPersonUsage},
	{CommandAddStaff, AddStaffUsage},
	{CommandAddSupplier, AddSupplierUsage},
	{CommandAddMaintainer, AddMaintainerUsage},
	{CommandDelete, DeleteUsage},
	{CommandEdit, EditUsage},
	{CommandNote, NoteUsage},
	{CommandDeadline, DeadlineUsage},
	{CommandRate, RateUsage},
	{CommandSort, SortUsage},
	{CommandHelp, HelpUsage},
}

// CommandWords returns every known command word.
func CommandWords() []string {
	out := make([]string, len(usages))
	for i, u := range usages {
		out[i] = u.word
	}
	return out
}

// Usage returns the usage text of a command word.
func Usage(word string) (string, bool) {
	for _, u := range usages {
		if u.word == word {
			return u.usage, true
		}
	}
	return "", false
}

// HelpConstraints is reported when help is asked about an unknown command.
var HelpConstraints = "Help is available for: " + strings.Join(CommandWords(), ", ")
