package booking

import (
	"strings"

	"club-booking/internal/pkg/errs"
)

type Contact struct {
	FirstName string
	LastName  string
	Street    string
	City      string
	Email     string
	Phone     *string
}

var (
	ErrContactNameRequired    = errs.Mark(errs.New("first and last name are required"), errs.ErrDomainValidation)
	ErrContactAddressRequired = errs.Mark(errs.New("street and city are required"), errs.ErrDomainValidation)
	ErrContactEmailInvalid    = errs.Mark(errs.New("email address is invalid"), errs.ErrDomainValidation)
)

func NewContact(firstName, lastName, street, city, email string, phone *string) (Contact, error) {
	c := Contact{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Street:    strings.TrimSpace(street),
		City:      strings.TrimSpace(city),
		Email:     strings.TrimSpace(email),
	}
	if phone != nil {
		if p := strings.TrimSpace(*phone); p != "" {
			c.Phone = &p
		}
	}

	if c.FirstName == "" || c.LastName == "" {
		return Contact{}, ErrContactNameRequired
	}
	if c.Street == "" || c.City == "" {
		return Contact{}, ErrContactAddressRequired
	}
	if at := strings.IndexByte(c.Email, '@'); at <= 0 || at == len(c.Email)-1 {
		return Contact{}, ErrContactEmailInvalid
	}
	return c, nil
}

func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Equivalent compares every contact field; a missing phone only matches a
// missing phone.
func (c Contact) Equivalent(o Contact) bool {
	if c.FirstName != o.FirstName || c.LastName != o.LastName ||
		c.Street != o.Street || c.City != o.City || c.Email != o.Email {
		return false
	}
	if c.Phone == nil || o.Phone == nil {
		return c.Phone == nil && o.Phone == nil
	}
	return *c.Phone == *o.Phone
}

type Subscriber struct {
	ID      int32
	Contact Contact
	Member  bool
}
