package argline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextArg(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		in    string
		arg   string
		rest  string
	}{
		{"bare", "hello world", "hello", "world"},
		{"bare single", "hello", "hello", ""},
		{"leading spaces", "   hello  world", "hello", "world"},
		{"quoted", `"hello world" tail`, "hello world", "tail"},
		{"quoted empty", `"" tail`, "", "tail"},
		{"quoted newline escape", `"a\nb" x`, "a\nb", "x"},
		{"quoted tab escape", `"a\tb"`, "a\tb", ""},
		{"quoted cr escape", `"a\rb"`, "a\rb", ""},
		{"quoted backslash escape", `"a\\b"`, `a\b`, ""},
		{"escaped quote", `"a\"b" x`, `a"b`, "x"},
		{"escape passthrough", `"a\qb"`, "aqb", ""},
		{"unterminated quote", `"abc def`, "abc def", ""},
		{"remainder after quote", `"a"b c`, "a", "b c"},
		{"newline separates bare", "a\nb", "a", "b"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := NewCursor(tc.in)
			arg, err := c.NextArg()
			require.NoError(t, err)
			require.Equal(t, tc.arg, arg)
			c.Trim()
			require.Equal(t, tc.rest, c.Rest())
		})
	}
}

func TestNextArgEmpty(t *testing.T) {
	t.Parallel()
	c := NewCursor("   ")
	_, err := c.NextArg()
	require.Error(t, err)
	require.True(t, IsUsage(err))
	require.Contains(t, err.Error(), "not enough arguments")
}

func TestNextLine(t *testing.T) {
	t.Parallel()

	c := NewCursor("first line\nsecond line")
	line, err := c.NextLine()
	require.NoError(t, err)
	require.Equal(t, "first line", line)

	line, err = c.NextLine()
	require.NoError(t, err)
	require.Equal(t, "second line", line)

	_, err = c.NextLine()
	require.True(t, IsUsage(err))
	require.Contains(t, err.Error(), "not enough lines")
}

func TestTakeRest(t *testing.T) {
	t.Parallel()
	c := NewCursor("everything that is left")
	require.Equal(t, "everything that is left", c.TakeRest())
	require.True(t, c.Empty())
}
