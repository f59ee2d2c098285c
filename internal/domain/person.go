package domain

// Role distinguishes the kinds of contacts kept in the book.
type Role string

const (
	RolePerson     Role = "person"
	RoleStaff      Role = "staff"
	RoleSupplier   Role = "supplier"
	RoleMaintainer Role = "maintainer"
)

// Contact is implemented by every record the contact book stores.
// Implementations are values; mutators return a modified copy.
type Contact interface {
	Base() Person
	Role() Role
	WithBase(p Person) Contact
}

// Person is the data shared by every contact. Identity is the Name.
type Person struct {
	Name      Name           `yaml:"name" json:"name"`
	Phone     Phone          `yaml:"phone" json:"phone"`
	Email     Email          `yaml:"email" json:"email"`
	Address   Address        `yaml:"address" json:"address"`
	Tags      TagSet         `yaml:"tags,omitempty" json:"tags"`
	Note      *Note          `yaml:"note,omitempty" json:"note,omitempty"`
	Rating    *Rating        `yaml:"rating,omitempty" json:"rating,omitempty"`
	Deadlines []DeadlineNote `yaml:"deadlines,omitempty" json:"deadlines,omitempty"`
}

func (p Person) Base() Person { return p }
func (p Person) Role() Role { return RolePerson }
func (p Person) WithBase(b Person) Contact { return b }

// SameContact reports whether a and b refer to the same contact.
func SameContact(a, b Contact) bool {
	return a.Base().Name.SameAs(b.Base().Name)
}

// Staff is an employee.
type Staff struct {
	Person     `yaml:",inline"`
	Employment Employment `yaml:"employment" json:"employment"`
	Salary     Salary     `yaml:"salary" json:"salary"`
}

func NewStaff(p Person, employment Employment, salary Salary) Staff {
	p.Tags = p.Tags.With(MustTag(StaffTag))
	return Staff{Person: p, Employment: employment, Salary: salary}
}

func (s Staff) Role() Role { return RoleStaff }

func (s Staff) WithBase(b Person) Contact {
	s.Person = b
	return s
}

// Supplier sells products.
type Supplier struct {
	Person  `yaml:",inline"`
	Product Product `yaml:"product" json:"product"`
	Price   Price   `yaml:"price" json:"price"`
}

func NewSupplier(p Person, product Product, price Price) Supplier {
	p.Tags = p.Tags.With(MustTag(SupplierTag))
	return Supplier{Person: p, Product: product, Price: price}
}

func (s Supplier) Role() Role { return RoleSupplier }

func (s Supplier) WithBase(b Person) Contact {
	s.Person = b
	return s
}

// Maintainer is hired for a skill and paid on commission.
type Maintainer struct {
	Person     `yaml:",inline"`
	Skill      Skill      `yaml:"skill" json:"skill"`
	Commission Commission `yaml:"commission" json:"commission"`
}

func NewMaintainer(p Person, skill Skill, commission Commission) Maintainer {
	p.Tags = p.Tags.With(MustTag(MaintainerTag))
	return Maintainer{Person: p, Skill: skill, Commission: commission}
}

func (m Maintainer) Role() Role { return RoleMaintainer }

func (m Maintainer) WithBase(b Person) Contact {
	m.Person = b
	return m
}
