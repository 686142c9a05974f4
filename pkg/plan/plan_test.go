package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid(Basic))
	assert.True(t, Valid(Pro))
	assert.True(t, Valid(Elite))
	assert.False(t, Valid(""))
	assert.False(t, Valid("premium"))
}

func TestRankOrdering(t *testing.T) {
	assert.True(t, Rank(Basic) < Rank(Pro))
	assert.True(t, Rank(Pro) < Rank(Elite))
	assert.Equal(t, 0, Rank("unknown"))
}

func TestIsUpgrade(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    bool
	}{
		{"basic to pro", Basic, Pro, true},
		{"basic to elite", Basic, Elite, true},
		{"pro to elite", Pro, Elite, true},
		{"pro to pro lateral", Pro, Pro, false},
		{"elite to pro downgrade", Elite, Pro, false},
		{"elite to basic downgrade", Elite, Basic, false},
		{"unknown target", Pro, "premium", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUpgrade(tt.current, tt.target))
		})
	}
}

func TestAllowsResponses(t *testing.T) {
	assert.False(t, AllowsResponses(Basic))
	assert.True(t, AllowsResponses(Pro))
	assert.True(t, AllowsResponses(Elite))
	assert.False(t, AllowsResponses(""))
}
