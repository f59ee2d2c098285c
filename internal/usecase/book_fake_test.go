package usecase

import (
	"errors"
	"sort"

	"github.com/aalvaropc/rolodex/internal/domain"
)

type fakeBook struct {
	contacts []domain.Contact
	failAdd  error
}

func (b *fakeBook) index(name domain.Name) int {
	for i, c := range b.contacts {
		if c.Base().Name.SameAs(name) {
			return i
		}
	}
	return -1
}

func (b *fakeBook) Has(name domain.Name) bool { return b.index(name) >= 0 }

func (b *fakeBook) Get(name domain.Name) (domain.Contact, bool) {
	i := b.index(name)
	if i < 0 {
		return nil, false
	}
	return b.contacts[i], true
}

func (b *fakeBook) List() []domain.Contact {
	out := make([]domain.Contact, len(b.contacts))
	copy(out, b.contacts)
	return out
}

func (b *fakeBook) Add(c domain.Contact) error {
	if b.failAdd != nil {
		return b.failAdd
	}
	b.contacts = append(b.contacts, c)
	return nil
}

func (b *fakeBook) Replace(target domain.Name, c domain.Contact) error {
	i := b.index(target)
	if i < 0 {
		return errors.New("missing")
	}
	b.contacts[i] = c
	return nil
}

func (b *fakeBook) Remove(name domain.Name) error {
	i := b.index(name)
	if i < 0 {
		return errors.New("missing")
	}
	b.contacts = append(b.contacts[:i], b.contacts[i+1:]...)
	return nil
}

func (b *fakeBook) Sort(key domain.SortKey) {
	sort.SliceStable(b.contacts, func(i, j int) bool {
		return key.Less(b.contacts[i], b.contacts[j])
	})
}
