package server_test

import (
	"testing"

	"team-inventory/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_CookieName(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		want   string
	}{
		{"Configured", "robotics_team", "robotics_team"},
		{"Empty", "", server.DefaultTeamCookie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{TeamCookie: tt.cookie}
			assert.Equal(t, tt.want, c.CookieName())
		})
	}
}
