package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/rolodex/internal/domain"
	"github.com/aalvaropc/rolodex/internal/ports"
)

// AddNote sets the note of a contact, replacing the previous one.
type AddNote struct {
	Target domain.Name `yaml:"target" json:"target"`
	Note   domain.Note `yaml:"note" json:"note"`
}

func (c AddNote) Execute(ctx context.Context, book ports.ContactBook) (Result, error) {
	_, err := updateBase(ctx, book, "usecase.add_note", c.Target, func(p domain.Person) domain.Person {
		note := c.Note
		p.Note = &note
		return p
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Added note to %s: %s", c.Target, c.Note)}, nil
}

// AddDeadlineNote appends a note with a deadline to a contact.
type AddDeadlineNote struct {
	Target   domain.Name         `yaml:"target" json:"target"`
	Deadline domain.DeadlineNote `yaml:"deadline" json:"deadline"`
}

func (c AddDeadlineNote) Execute(ctx context.Context, book ports.ContactBook) (Result, error) {
	_, err := updateBase(ctx, book, "usecase.add_deadline_note", c.Target, func(p domain.Person) domain.Person {
		deadlines := make([]domain.DeadlineNote, 0, len(p.Deadlines)+1)
		deadlines = append(deadlines, p.Deadlines...)
		p.Deadlines = append(deadlines, c.Deadline)
		return p
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Added deadline to %s: %s", c.Target, c.Deadline)}, nil
}

// RateContact sets the rating of a contact.
type RateContact struct {
	Target domain.Name   `yaml:"target" json:"target"`
	Rating domain.Rating `yaml:"rating" json:"rating"`
}

func (c RateContact) Execute(ctx context.Context, book ports.ContactBook) (Result, error) {
	_, err := updateBase(ctx, book, "usecase.rate_contact", c.Target, func(p domain.Person) domain.Person {
		r := c.Rating
		p.Rating = &r
		return p
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Rated %s: %s/5", c.Target, c.Rating)}, nil
}

// SortContacts reorders the book.
type SortContacts struct {
	Key domain.SortKey `yaml:"key" json:"key"`
}

func (c SortContacts) Execute(ctx context.Context, book ports.ContactBook) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	book.Sort(c.Key)
	return Result{Feedback: fmt.Sprintf("Sorted contacts by %s", c.Key)}, nil
}

// Help shows usage text. Topic is empty when help covers every command.
type Help struct {
	Topic string `yaml:"topic,omitempty" json:"topic,omitempty"`
	Text  string `yaml:"text" json:"text"`
}

func (c Help) Execute(ctx context.Context, _ ports.ContactBook) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{Feedback: c.Text}, nil
}
