package domain

import "testing"

func TestFieldPredicates(t *testing.T) {
	cases := []struct {
		field string
		valid func(string) bool
		input string
		want  bool
	}{
		{"name", IsValidName, "Alice Tan", true},
		{"name", IsValidName, "peter the 2nd", true},
		{"name", IsValidName, "", false},
		{"name", IsValidName, " Alice", false},
		{"name", IsValidName, "R@chel", false},

		{"phone", IsValidPhone, "911", true},
		{"phone", IsValidPhone, "93121534", true},
		{"phone", IsValidPhone, "91", false},
		{"phone", IsValidPhone, "9011p041", false},
		{"phone", IsValidPhone, "9312 1534", false},

		{"email", IsValidEmail, "a@bc", true},
		{"email", IsValidEmail, "PeterJack_1190@example.com", true},
		{"email", IsValidEmail, "a1+be.d@example1.co-uk.org", true},
		{"email", IsValidEmail, "test@localhost", true},
		{"email", IsValidEmail, "peterjack@example.c", false},
		{"email", IsValidEmail, "peterjackexample.com", false},
		{"email", IsValidEmail, "@example.com", false},
		{"email", IsValidEmail, "peter..jack@example.com", false},
		{"email", IsValidEmail, "-peterjack@example.com", false},
		{"email", IsValidEmail, "peterjack@-example.com", false},
		{"email", IsValidEmail, "peterjack@example.com-", false},
		{"email", IsValidEmail, "peter jack@example.com", false},

		{"address", IsValidAddress, "Blk 456, Den Road, #01-355", true},
		{"address", IsValidAddress, "-", true},
		{"address", IsValidAddress, "", false},
		{"address", IsValidAddress, " ", false},

		{"tag", IsValidTagName, "friends", true},
		{"tag", IsValidTagName, "vip2", true},
		{"tag", IsValidTagName, "best friend", false},
		{"tag", IsValidTagName, "#friend", false},

		{"skill", IsValidSkill, "dog trainer", true},
		{"skill", IsValidSkill, "", false},

		{"commission", IsValidCommission, "$60/hr", true},
		{"commission", IsValidCommission, "60/hr", false},
		{"commission", IsValidCommission, "$60", false},
		{"commission", IsValidCommission, "$6.5/hr", false},

		{"employment", IsValidEmployment, "part-time", true},
		{"employment", IsValidEmployment, "full-time", true},
		{"employment", IsValidEmployment, "Full-Time", false},
		{"employment", IsValidEmployment, "contract", false},

		{"salary", IsValidSalary, "$50/hr", true},
		{"salary", IsValidSalary, "$50/day", false},

		{"product", IsValidProduct, "kibble", true},
		{"product", IsValidProduct, " ", false},

		{"price", IsValidPrice, "$25/bag", true},
		{"price", IsValidPrice, "$4.50/kg", true},
		{"price", IsValidPrice, "$4.505/kg", false},
		{"price", IsValidPrice, "25/bag", false},
		{"price", IsValidPrice, "$25", false},

		{"note", IsValidNote, "Allergic to cats", true},
		{"note", IsValidNote, "", false},

		{"rating", IsValidRating, "0", true},
		{"rating", IsValidRating, "5", true},
		{"rating", IsValidRating, "6", false},
		{"rating", IsValidRating, "-1", false},
		{"rating", IsValidRating, "05", false},

		{"deadline", IsValidDeadline, "2024-02-29", true},
		{"deadline", IsValidDeadline, "2023-02-29", false},
		{"deadline", IsValidDeadline, "2024-13-01", false},
		{"deadline", IsValidDeadline, "01-01-2024", false},
	}

	for _, c := range cases {
		if got := c.valid(c.input); got != c.want {
			t.Errorf("%s(%q) = %v, want %v", c.field, c.input, got, c.want)
		}
	}
}

func TestConstructorsRejectInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{"name", second(NewName("R@chel")), NameConstraints},
		{"phone", second(NewPhone("12")), PhoneConstraints},
		{"email", second(NewEmail("nope")), EmailConstraints},
		{"address", second(NewAddress("")), AddressConstraints},
		{"tag", second(NewTag("a b")), TagConstraints},
		{"skill", second(NewSkill(" ")), SkillConstraints},
		{"commission", second(NewCommission("free")), CommissionConstraints},
		{"employment", second(NewEmployment("intern")), EmploymentConstraints},
		{"salary", second(NewSalary("lots")), SalaryConstraints},
		{"product", second(NewProduct("")), ProductConstraints},
		{"price", second(NewPrice("cheap")), PriceConstraints},
		{"note", second(NewNote("")), NoteConstraints},
		{"rating", second(NewRating("9")), RatingConstraints},
	}

	for _, c := range cases {
		if c.err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !IsKind(c.err, KindFieldFormat) {
			t.Errorf("%s: expected field format kind, got %v", c.name, c.err)
		}
		if c.err.Error() != c.msg {
			t.Errorf("%s: got message %q, want %q", c.name, c.err.Error(), c.msg)
		}
	}
}

func second[T any](_ T, err error) error { return err }

func TestConstructorsKeepRawValue(t *testing.T) {
	n, err := NewName("Alice Tan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.String() != "Alice Tan" {
		t.Fatalf("expected raw value, got %q", n.String())
	}

	r, err := NewRating("4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value() != 4 || r.String() != "4" {
		t.Fatalf("unexpected rating %d/%q", r.Value(), r.String())
	}
}

func TestNameSameAsIgnoresCase(t *testing.T) {
	a, _ := NewName("Alice Tan")
	b, _ := NewName("alice tan")
	c, _ := NewName("Alice")

	if !a.SameAs(b) {
		t.Fatalf("expected names to match ignoring case")
	}
	if a.SameAs(c) {
		t.Fatalf("expected different names not to match")
	}
	if !c.Less(a) {
		t.Fatalf("expected %q to sort before %q", c, a)
	}
}

func TestNewDeadlineNote(t *testing.T) {
	d, err := NewDeadlineNote("Renew licence", "2024-06-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Date() != "2024-06-30" {
		t.Fatalf("expected date to round-trip, got %s", d.Date())
	}
	if d.String() != "Renew licence (by 2024-06-30)" {
		t.Fatalf("unexpected string %q", d.String())
	}

	_, err = NewDeadlineNote("", "2024-06-30")
	if err == nil || err.Error() != NoteConstraints {
		t.Fatalf("expected note constraint error, got %v", err)
	}

	_, err = NewDeadlineNote("Renew licence", "2024-06-31")
	if err == nil || err.Error() != DeadlineConstraints {
		t.Fatalf("expected deadline constraint error, got %v", err)
	}
}

func TestIndex(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"1", true},
		{"01", true},
		{"2147483647", true},
		{"0", false},
		{"-1", false},
		{"+1", false},
		{"1 0", false},
		{"2147483648", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsNonZeroUnsignedInteger(c.input); got != c.want {
			t.Errorf("IsNonZeroUnsignedInteger(%q) = %v, want %v", c.input, got, c.want)
		}
	}

	i := IndexFromOneBased(3)
	if i.ZeroBased() != 2 || i.OneBased() != 3 {
		t.Fatalf("unexpected index %d/%d", i.ZeroBased(), i.OneBased())
	}
}
