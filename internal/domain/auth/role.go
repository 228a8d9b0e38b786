package auth

import (
	"club-booking/internal/pkg/errs"
)

var ErrInvalidRole = errs.Mark(errs.New("invalid role"), errs.ErrDomainValidation)

// Role is the permission level carried by an admin token.
type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleTreasurer Role = "treasurer"
	RoleAdmin     Role = "admin"
)

var roleLevels = map[Role]int{
	RoleOrganizer: 1,
	RoleTreasurer: 2,
	RoleAdmin:     3,
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r grants everything min grants. Unknown roles
// grant nothing.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevels[r]
	if !ok {
		return false
	}
	want, ok := roleLevels[min]
	return ok && have >= want
}
