package domain

import "regexp"

const (
	SkillConstraints      = "Skill can take any values, and it should not be blank"
	CommissionConstraints = "Commission should be written as $<amount>/hr, e.g. $60/hr"
	EmploymentConstraints = "Employment type should be either part-time or full-time"
	SalaryConstraints     = "Salary should be written as $<amount>/hr, e.g. $50/hr"
	ProductConstraints    = "Product can take any values, and it should not be blank"
	PriceConstraints      = "Price should be written as $<amount>/<unit>, e.g. $25/bag or $4.50/kg"
)

const (
	EmploymentPartTime = "part-time"
	EmploymentFullTime = "full-time"
)

var (
	hourlyRateRe = regexp.MustCompile(`^\$[0-9]+/hr$`)
	priceRe      = regexp.MustCompile(`^\$[0-9]+(\.[0-9]{1,2})?/[A-Za-z]+$`)
)

// Skill describes what a maintainer does (e.g. "dog trainer").
type Skill struct{ value string }

func IsValidSkill(s string) bool { return notBlank.MatchString(s) }

func NewSkill(s string) (Skill, error) {
	v, err := validated(s, IsValidSkill, SkillConstraints)
	return Skill{value: v}, err
}

func (s Skill) String() string { return s.value }
func (s Skill) MarshalText() ([]byte, error) { return []byte(s.value), nil }

// Commission is a maintainer's hourly rate.
type Commission struct{ value string }

func IsValidCommission(s string) bool { return hourlyRateRe.MatchString(s) }

func NewCommission(s string) (Commission, error) {
	v, err := validated(s, IsValidCommission, CommissionConstraints)
	return Commission{value: v}, err
}

func (c Commission) String() string { return c.value }
func (c Commission) MarshalText() ([]byte, error) { return []byte(c.value), nil }

// Employment is the contract type of a staff member.
type Employment struct{ value string }

func IsValidEmployment(s string) bool {
	return s == EmploymentPartTime || s == EmploymentFullTime
}

func NewEmployment(s string) (Employment, error) {
	v, err := validated(s, IsValidEmployment, EmploymentConstraints)
	return Employment{value: v}, err
}

func (e Employment) String() string { return e.value }
func (e Employment) MarshalText() ([]byte, error) { return []byte(e.value), nil }

// Salary is a staff member's hourly pay.
type Salary struct{ value string }

func IsValidSalary(s string) bool { return hourlyRateRe.MatchString(s) }

func NewSalary(s string) (Salary, error) {
	v, err := validated(s, IsValidSalary, SalaryConstraints)
	return Salary{value: v}, err
}

func (s Salary) String() string { return s.value }
func (s Salary) MarshalText() ([]byte, error) { return []byte(s.value), nil }

// Product is what a supplier sells.
type Product struct{ value string }

func IsValidProduct(s string) bool { return notBlank.MatchString(s) }

func NewProduct(s string) (Product, error) {
	v, err := validated(s, IsValidProduct, ProductConstraints)
	return Product{value: v}, err
}

func (p Product) String() string { return p.value }
func (p Product) MarshalText() ([]byte, error) { return []byte(p.value), nil }

// Price is a supplier's price per unit.
type Price struct{ value string }

func IsValidPrice(s string) bool { return priceRe.MatchString(s) }

func NewPrice(s string) (Price, error) {
	v, err := validated(s, IsValidPrice, PriceConstraints)
	return Price{value: v}, err
}

func (p Price) String() string { return p.value }
func (p Price) MarshalText() ([]byte, error) { return []byte(p.value), nil }
