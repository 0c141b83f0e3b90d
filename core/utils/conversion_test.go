package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"3", 3, true},
		{" 12 ", 12, true},
		{"3abc", 3, true},
		{"2.5", 2, true},
		{"-4", -4, true},
		{"+7", 7, true},
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{".5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLeadingInt(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "part number", NormalizeHeader("  Part Number "))
	assert.Equal(t, "part_number", NormalizeHeader("\uFEFFPART_NUMBER"))
	assert.Equal(t, "qty", NormalizeHeader("Qty"))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool(int64(1)))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool("on"))
	assert.True(t, ToBool([]byte("1")))

	assert.False(t, ToBool(false))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool("false"))
	assert.False(t, ToBool(""))
	assert.False(t, ToBool(nil))
	assert.False(t, ToBool(2.0))
}
