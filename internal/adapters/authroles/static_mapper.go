package authroles

import (
	"strings"

	domainauth "github.com/wanderlanka/planner-cli/internal/domain/auth"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

// StaticRoleMapper grants the admin role to a configured set of email
// addresses; everyone else is a regular user. Comparison is
// case-insensitive, matching how the server treats identifiers.
type StaticRoleMapper struct {
	AdminEmails []string
}

var _ ports.RoleMapper = StaticRoleMapper{}

func (m StaticRoleMapper) Map(email string) domainauth.Role {
	for _, admin := range m.AdminEmails {
		if admin != "" && strings.EqualFold(admin, email) {
			return domainauth.RoleAdmin
		}
	}
	return domainauth.RoleUser
}
