package character

import (
	"fmt"
	"strings"

	"adventurer-guild/assets"
)

// Role is an adventurer category. Valid roles are the names in assets.Roles.
type Role string

const (
	Fighter Role = "Fighter"
	Healer  Role = "Healer"
	Wizard  Role = "Wizard"
)

// Roles returns the valid roles in declaration order.
func Roles() []Role {
	roles := make([]Role, len(assets.Roles))
	for i, r := range assets.Roles {
		roles[i] = Role(r.Name)
	}
	return roles
}

// ListRoles returns the valid roles joined with ", ".
func ListRoles() string {
	roles := Roles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

// Def returns the role's definition. ok is false for an invalid role.
func (r Role) Def() (def assets.RoleDef, ok bool) {
	return assets.RoleByName(string(r))
}

// Valid reports whether r is one of the fixed roles.
func (r Role) Valid() bool {
	_, ok := r.Def()
	return ok
}

// ParseRole validates name against the role set. Matching is exact.
func ParseRole(name string) (Role, error) {
	r := Role(name)
	if !r.Valid() {
		return "", &InvalidRoleError{Role: name, Valid: ListRoles()}
	}
	return r, nil
}

// InvalidRoleError is returned when an adventurer is built with a role
// outside the fixed set.
type InvalidRoleError struct {
	Role  string // the rejected role
	Valid string // the valid roles, comma-joined
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid role %q: valid roles are %s", e.Role, e.Valid)
}
