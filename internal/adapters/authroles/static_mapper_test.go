package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/wanderlanka/planner-cli/internal/domain/auth"
)

func TestStaticRoleMapper(t *testing.T) {
	mapper := StaticRoleMapper{AdminEmails: []string{"root@example.com", "Ops@Example.com"}}

	assert.Equal(t, domainauth.RoleAdmin, mapper.Map("root@example.com"))
	// Case-insensitive in both directions.
	assert.Equal(t, domainauth.RoleAdmin, mapper.Map("OPS@example.com"))
	assert.Equal(t, domainauth.RoleUser, mapper.Map("traveler@example.com"))
}

func TestStaticRoleMapper_Empty(t *testing.T) {
	mapper := StaticRoleMapper{}
	assert.Equal(t, domainauth.RoleUser, mapper.Map("anyone@example.com"))

	// An empty configured entry never matches an empty email.
	mapper = StaticRoleMapper{AdminEmails: []string{""}}
	assert.Equal(t, domainauth.RoleUser, mapper.Map(""))
}
