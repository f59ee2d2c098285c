package ports

import "github.com/aalvaropc/rolodex/internal/domain"

// ContactBook is the store commands execute against. Contacts are identified
// by name (see domain.Name.SameAs).
type ContactBook interface {
	Has(name domain.Name) bool
	Get(name domain.Name) (domain.Contact, bool)
	// List returns contacts in display order; indexes refer to this order.
	List() []domain.Contact
	Add(c domain.Contact) error
	Replace(target domain.Name, c domain.Contact) error
	Remove(name domain.Name) error
	Sort(key domain.SortKey)
}
