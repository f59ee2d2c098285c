package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/rolodex/internal/domain"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func person(name, phone string) domain.Person {
	return domain.Person{
		Name:    must(domain.NewName(name)),
		Phone:   must(domain.NewPhone(phone)),
		Email:   must(domain.NewEmail("someone@example.com")),
		Address: must(domain.NewAddress("Blk 1")),
		Tags:    domain.NewTagSet(),
	}
}

func maintainer(name, commission string) domain.Maintainer {
	return domain.NewMaintainer(person(name, "91234567"),
		must(domain.NewSkill("trainer")), must(domain.NewCommission(commission)))
}

func TestAddContact(t *testing.T) {
	book := &fakeBook{}
	ctx := context.Background()

	res, err := AddContact{Contact: maintainer("Bob", "$60/hr")}.Execute(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, "New maintainer added: Bob", res.Feedback)
	require.Len(t, book.contacts, 1)

	_, err = AddContact{Contact: person("bob", "999")}.Execute(ctx, book)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindConflict))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAddContact_StoreFailure(t *testing.T) {
	book := &fakeBook{failAdd: errors.New("disk full")}

	_, err := AddContact{Contact: person("Alice", "123")}.Execute(context.Background(), book)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExecution))
}

func TestAddContact_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AddContact{Contact: person("Alice", "123")}.Execute(ctx, &fakeBook{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDeleteContact(t *testing.T) {
	ctx := context.Background()
	book := &fakeBook{contacts: []domain.Contact{person("Alice", "123"), person("Bob", "456")}}

	idx := domain.IndexFromOneBased(2)
	res, err := DeleteContact{Index: &idx}.Execute(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, "Deleted contact: Bob", res.Feedback)

	out := domain.IndexFromOneBased(5)
	_, err = DeleteContact{Index: &out}.Execute(ctx, book)
	assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))

	name := must(domain.NewName("ALICE"))
	_, err = DeleteContact{Name: &name}.Execute(ctx, book)
	require.NoError(t, err)
	assert.Empty(t, book.contacts)

	_, err = DeleteContact{Name: &name}.Execute(ctx, book)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = DeleteContact{}.Execute(ctx, book)
	assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))
}

func TestEditContact(t *testing.T) {
	ctx := context.Background()
	book := &fakeBook{contacts: []domain.Contact{maintainer("Bob", "$60/hr"), person("Carol", "789")}}

	newName := must(domain.NewName("Bobby"))
	commission := must(domain.NewCommission("$75/hr"))
	res, err := EditContact{
		Target: must(domain.NewName("bob")),
		Edit:   domain.EditDescriptor{Name: &newName, Commission: &commission},
	}.Execute(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, "Edited contact: Bobby", res.Feedback)

	got, ok := book.Get(newName)
	require.True(t, ok)
	m := got.(domain.Maintainer)
	assert.Equal(t, "$75/hr", m.Commission.String())
	assert.True(t, m.Tags.Has(domain.MustTag(domain.MaintainerTag)))

	clash := must(domain.NewName("carol"))
	_, err = EditContact{Target: newName, Edit: domain.EditDescriptor{Name: &clash}}.Execute(ctx, book)
	assert.True(t, domain.IsKind(err, domain.KindConflict))

	_, err = EditContact{Target: must(domain.NewName("Carol")), Edit: domain.EditDescriptor{Commission: &commission}}.Execute(ctx, book)
	assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))

	_, err = EditContact{Target: must(domain.NewName("Nobody")), Edit: domain.EditDescriptor{Name: &clash}}.Execute(ctx, book)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}
