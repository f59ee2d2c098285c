package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/aalvaropc/rolodex/internal/domain"
	"github.com/aalvaropc/rolodex/internal/ports"
)

// AddContact adds a new contact of any role.
type AddContact struct {
	Contact domain.Contact `yaml:"contact" json:"contact"`
}

func (c AddContact) Execute(ctx context.Context, book ports.ContactBook) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	name := c.Contact.Base().Name
	if book.Has(name) {
		return Result{}, conflict("usecase.add_contact", name)
	}
	if err := book.Add(c.Contact); err != nil {
		return Result{}, &domain.OpError{Op: "usecase.add_contact", Kind: domain.KindExecution, Err: err}
	}
	return Result{Feedback: fmt.Sprintf("New %s added: %s", c.Contact.Role(), name)}, nil
}

// DeleteContact removes a contact picked either by listing index or by name.
// Exactly one of Index and Name is set.
type DeleteContact struct {
	Index *domain.Index `yaml:"index,omitempty" json:"index,omitempty"`
	Name  *domain.Name  `yaml:"name,omitempty" json:"name,omitempty"`
}

func (c DeleteContact) Execute(ctx context.Context, book ports.ContactBook) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var target domain.Name
	switch {
	case c.Index != nil:
		list := book.List()
		i := c.Index.ZeroBased()
		if i < 0 || i >= len(list) {
			return Result{}, &domain.OpError{
				Op:   "usecase.delete_contact",
				Kind: domain.KindInvalidArgument,
				Err:  fmt.Errorf("index %d is out of range (1-%d)", c.Index.OneBased(), len(list)),
			}
		}
		target = list[i].Base().Name
	case c.Name != nil:
		if !book.Has(*c.Name) {
			return Result{}, notFound("usecase.delete_contact", *c.Name)
		}
		target = *c.Name
	default:
		return Result{}, &domain.OpError{
			Op:   "usecase.delete_contact",
			Kind: domain.KindInvalidArgument,
			Err:  errors.New("no contact selected"),
		}
	}

	if err := book.Remove(target); err != nil {
		return Result{}, &domain.OpError{Op: "usecase.delete_contact", Kind: domain.KindExecution, Err: err}
	}
	return Result{Feedback: "Deleted contact: " + target.String()}, nil
}

// EditContact replaces fields of the named contact.
type EditContact struct {
	Target domain.Name           `yaml:"target" json:"target"`
	Edit   domain.EditDescriptor `yaml:"edit" json:"edit"`
}

func (c EditContact) Execute(ctx context.Context, book ports.ContactBook) (Result, error) {
	const op = "usecase.edit_contact"
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	current, ok := book.Get(c.Target)
	if !ok {
		return Result{}, notFound(op, c.Target)
	}

	edited, err := c.Edit.Apply(current)
	if err != nil {
		return Result{}, err
	}

	newName := edited.Base().Name
	if !newName.SameAs(c.Target) && book.Has(newName) {
		return Result{}, conflict(op, newName)
	}

	if err := book.Replace(c.Target, edited); err != nil {
		return Result{}, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}
	return Result{Feedback: "Edited contact: " + newName.String()}, nil
}
