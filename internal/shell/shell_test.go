package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/sophiekatz/workbench/internal/config"
)

func parseShell(t *testing.T, text string) config.Shell {
	t.Helper()
	var s config.Shell
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(text), &node); err != nil {
		t.Fatal(err)
	}
	if err := node.Content[0].Decode(&s); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestResolveUnset(t *testing.T) {
	_, ok := Resolve(config.Shell{})
	assert.False(t, ok)
}

func TestResolveTrue(t *testing.T) {
	interp, ok := Resolve(parseShell(t, "true"))
	assert.True(t, ok)
	assert.Equal(t, DefaultInterpreter, interp)
}

func TestResolveFalse(t *testing.T) {
	_, ok := Resolve(parseShell(t, "false"))
	assert.False(t, ok)
}

func TestResolveExplicit(t *testing.T) {
	interp, ok := Resolve(parseShell(t, "/bin/zsh"))
	assert.True(t, ok)
	assert.Equal(t, "/bin/zsh", interp)
}

func TestResolveForTaskDefaults(t *testing.T) {
	stringForm := &config.Task{Run: config.Run{Command: "echo hi"}}
	interp, ok := ResolveForTask(stringForm)
	assert.True(t, ok)
	assert.Equal(t, DefaultInterpreter, interp)

	argvForm := &config.Task{Run: config.Run{Argv: []string{"echo", "hi"}}}
	_, ok = ResolveForTask(argvForm)
	assert.False(t, ok)
}
