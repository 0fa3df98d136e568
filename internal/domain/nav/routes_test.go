package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequirementFor(t *testing.T) {
	assert.Equal(t, Requirement{}, RequirementFor(RouteHome))
	assert.Equal(t, Requirement{RequiresAuth: true}, RequirementFor(RoutePlanner))
	assert.Equal(t, Requirement{RequiresAuth: true, RequiresAdmin: true}, RequirementFor(RouteAdmin))
}

func TestRequirementFor_UnknownFailsClosed(t *testing.T) {
	req := RequirementFor(Route("settings"))
	assert.True(t, req.RequiresAuth)
	assert.False(t, req.RequiresAdmin)
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(RouteHome))
	assert.True(t, Known(RoutePlanner))
	assert.True(t, Known(RouteAdmin))
	assert.False(t, Known(Route("settings")))
}
