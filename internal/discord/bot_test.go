package discord

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCommand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		name string
		raw  string
	}{
		{"say -c hello", "say", "-c hello"},
		{"say", "say", ""},
		{"  say   -c hi ", "say", "-c hi"},
		{"say\n-c multi", "say", "-c multi"},
		{"", "", ""},
	}
	for _, tc := range cases {
		name, raw := splitCommand(tc.in)
		require.Equal(t, tc.name, name, tc.in)
		require.Equal(t, tc.raw, raw, tc.in)
	}
}
