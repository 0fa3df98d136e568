package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())
	assert.False(t, Role("").IsAdmin())
	assert.False(t, Role("superuser").IsAdmin())
}

func TestRecord_RoundTrip(t *testing.T) {
	sess := Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         User{ID: "u-1", Email: "traveler@example.com", Role: RoleUser},
	}

	rec := NewRecord(sess)
	assert.Equal(t, sess, rec.Session())
}

func TestRecord_Valid(t *testing.T) {
	valid := Record{
		AccessToken: "access-1",
		User:        User{Email: "traveler@example.com"},
	}
	assert.True(t, valid.Valid())

	assert.False(t, Record{}.Valid())
	assert.False(t, Record{AccessToken: "access-1"}.Valid())
	assert.False(t, Record{User: User{Email: "traveler@example.com"}}.Valid())
}
