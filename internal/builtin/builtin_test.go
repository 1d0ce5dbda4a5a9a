package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophiekatz/workbench/internal/config"
	"github.com/sophiekatz/workbench/internal/taskpath"
)

func TestListTasksIncludesNamespaced(t *testing.T) {
	cfg, err := config.Load([]byte(`
tasks:
  build: {run: "true"}
namespaces:
  web:
    tasks:
      build: {run: "true"}
`))
	require.NoError(t, err)

	names := ListTasks(cfg)
	assert.Contains(t, names, ":ls")
	assert.Contains(t, names, "build")
	assert.Contains(t, names, "web:build")
}

func TestResolvePropertyDescription(t *testing.T) {
	cfg, err := config.Load([]byte(`
tasks:
  build:
    run: "true"
    description: "builds the project"
`))
	require.NoError(t, err)

	p, err := taskpath.Parse("build.description")
	require.NoError(t, err)
	out, err := ResolveProperty(cfg, t.TempDir(), p)
	require.NoError(t, err)
	assert.Equal(t, "builds the project", out)
}

func TestResolvePropertyUnknown(t *testing.T) {
	cfg, err := config.Load([]byte(`
tasks:
  build: {run: "true"}
`))
	require.NoError(t, err)

	p, err := taskpath.Parse("build.bogus")
	require.NoError(t, err)
	_, err = ResolveProperty(cfg, t.TempDir(), p)
	require.Error(t, err)
	var unknown *UnknownPropertyError
	require.ErrorAs(t, err, &unknown)
}
