package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("")
	assert.True(t, ok)
	assert.Equal(t, RoleBuilder, r)

	r, ok = ParseRole(" Mentor")
	assert.True(t, ok)
	assert.Equal(t, RoleMentor, r)

	_, ok = ParseRole("coach")
	assert.False(t, ok)
}

func TestNormalizeNumber(t *testing.T) {
	assert.Equal(t, "1234A", NormalizeNumber(" 1234a "))
}
