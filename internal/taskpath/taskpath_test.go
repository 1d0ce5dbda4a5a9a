package taskpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"build",
		"web:build",
		":ls",
		"build.help",
		"web:build.description",
		"my-namespace:my-task",
	}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			p, err := Parse(s)
			require.NoError(t, err)
			assert.Equal(t, s, Display(p))
		})
	}
}

func TestParseFields(t *testing.T) {
	p, err := Parse("web:build.help")
	require.NoError(t, err)
	assert.Equal(t, "web", p.Namespace)
	assert.False(t, p.BuiltIn)
	assert.Equal(t, "build", p.Name)
	assert.Equal(t, "help", p.Property)

	p, err = Parse(":ls")
	require.NoError(t, err)
	assert.Equal(t, "", p.Namespace)
	assert.True(t, p.BuiltIn)
	assert.Equal(t, "ls", p.Name)
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", ":", "`oops`", "web:", "web:.help", "na`me:task"} {
		t.Run(s, func(t *testing.T) {
			_, err := Parse(s)
			require.Error(t, err)
			var invalid *InvalidTaskPathError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, s, invalid.Text)
		})
	}
}

func TestBuiltInImpliesNoNamespace(t *testing.T) {
	p, err := Parse(":help")
	require.NoError(t, err)
	if p.BuiltIn {
		assert.Equal(t, "", p.Namespace)
	}
}
