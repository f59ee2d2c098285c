package domain

import (
	"errors"
	"fmt"
)

// EditDescriptor lists the fields to replace on a contact. Nil fields are
// left untouched. Role fields only apply to contacts of that role.
type EditDescriptor struct {
	Name    *Name    `yaml:"name,omitempty" json:"name,omitempty"`
	Phone   *Phone   `yaml:"phone,omitempty" json:"phone,omitempty"`
	Email   *Email   `yaml:"email,omitempty" json:"email,omitempty"`
	Address *Address `yaml:"address,omitempty" json:"address,omitempty"`
	Tags    *TagSet  `yaml:"tags,omitempty" json:"tags,omitempty"`

	Employment *Employment `yaml:"employment,omitempty" json:"employment,omitempty"`
	Salary     *Salary     `yaml:"salary,omitempty" json:"salary,omitempty"`
	Product    *Product    `yaml:"product,omitempty" json:"product,omitempty"`
	Price      *Price      `yaml:"price,omitempty" json:"price,omitempty"`
	Skill      *Skill      `yaml:"skill,omitempty" json:"skill,omitempty"`
	Commission *Commission `yaml:"commission,omitempty" json:"commission,omitempty"`
}

// IsAnyFieldEdited reports whether applying d would change anything.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Tags != nil ||
		d.roleField() != ""
}

// roleField names the role this descriptor targets, or "" when it only
// touches shared fields.
func (d EditDescriptor) roleField() Role {
	switch {
	case d.Employment != nil || d.Salary != nil:
		return RoleStaff
	case d.Product != nil || d.Price != nil:
		return RoleSupplier
	case d.Skill != nil || d.Commission != nil:
		return RoleMaintainer
	}
	return ""
}

// Apply returns c with the described fields replaced.
func (d EditDescriptor) Apply(c Contact) (Contact, error) {
	if d.hasMixedRoles() {
		return nil, &OpError{
			Op:   "domain.edit",
			Kind: KindInvalidArgument,
			Err:  errors.New("fields of different roles cannot be edited together"),
		}
	}
	if r := d.roleField(); r != "" && r != c.Role() {
		return nil, &OpError{
			Op:   "domain.edit",
			Kind: KindInvalidArgument,
			Err:  fmt.Errorf("%s is a %s, cannot set %s fields", c.Base().Name, c.Role(), r),
		}
	}

	p := c.Base()
	if d.Name != nil {
		p.Name = *d.Name
	}
	if d.Phone != nil {
		p.Phone = *d.Phone
	}
	if d.Email != nil {
		p.Email = *d.Email
	}
	if d.Address != nil {
		p.Address = *d.Address
	}
	if d.Tags != nil {
		p.Tags = *d.Tags
		if c.Role() != RolePerson {
			p.Tags = p.Tags.With(MustTag(string(c.Role())))
		}
	}

	switch v := c.WithBase(p).(type) {
	case Staff:
		if d.Employment != nil {
			v.Employment = *d.Employment
		}
		if d.Salary != nil {
			v.Salary = *d.Salary
		}
		return v, nil
	case Supplier:
		if d.Product != nil {
			v.Product = *d.Product
		}
		if d.Price != nil {
			v.Price = *d.Price
		}
		return v, nil
	case Maintainer:
		if d.Skill != nil {
			v.Skill = *d.Skill
		}
		if d.Commission != nil {
			v.Commission = *d.Commission
		}
		return v, nil
	default:
		return v, nil
	}
}

func (d EditDescriptor) hasMixedRoles() bool {
	n := 0
	if d.Employment != nil || d.Salary != nil {
		n++
	}
	if d.Product != nil || d.Price != nil {
		n++
	}
	if d.Skill != nil || d.Commission != nil {
		n++
	}
	return n > 1
}
