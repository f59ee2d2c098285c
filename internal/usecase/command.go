package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/rolodex/internal/domain"
	"github.com/aalvaropc/rolodex/internal/ports"
)

// Result is what a command reports back to the user.
type Result struct {
	Feedback string
}

// Command is a fully parsed, validated request. Parsers in internal/parser
// build commands; the caller executes them against its own ContactBook.
type Command interface {
	Execute(ctx context.Context, book ports.ContactBook) (Result, error)
}

func notFound(op string, name domain.Name) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("no contact named %q: %w", name.String(), domain.ErrNotFound),
	}
}

func conflict(op string, name domain.Name) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindConflict,
		Err:  fmt.Errorf("a contact named %q already exists: %w", name.String(), domain.ErrConflict),
	}
}

// updateBase replaces the shared fields of the target contact with fn's result.
func updateBase(ctx context.Context, book ports.ContactBook, op string, target domain.Name, fn func(domain.Person) domain.Person) (domain.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, ok := book.Get(target)
	if !ok {
		return nil, notFound(op, target)
	}

	updated := c.WithBase(fn(c.Base()))
	if err := book.Replace(target, updated); err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}
	return updated, nil
}
