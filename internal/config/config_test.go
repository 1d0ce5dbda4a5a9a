package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophiekatz/workbench/internal/taskpath"
)

func TestLoadBasic(t *testing.T) {
	cfg, err := Load([]byte(`
tasks:
  build:
    run: [go, build, ./...]
    dependencies: [generate]
  generate:
    run: "go generate ./..."
    shell: true
namespaces:
  web:
    tasks:
      build:
        run: "npm run build"
        inputs: ["src/**/*.ts", "!src/**/*.test.ts"]
        outputs:
          include: ["dist/**"]
`))
	require.NoError(t, err)

	build, ok := cfg.Tasks["build"]
	require.True(t, ok)
	assert.Equal(t, []string{"go", "build", "./..."}, build.Run.Argv)
	assert.Equal(t, []string{"generate"}, build.Dependencies)

	gen := cfg.Tasks["generate"]
	assert.True(t, gen.Run.IsShellForm())
	assert.Equal(t, "go generate ./...", gen.Run.Command)
	assert.True(t, gen.Shell.IsSet())
	assert.True(t, gen.Shell.Bool())

	web := cfg.Namespaces["web"]
	webBuild := web.Tasks["build"]
	assert.Equal(t, []string{"src/**/*.ts"}, webBuild.Inputs.Include)
	assert.Equal(t, []string{"src/**/*.test.ts"}, webBuild.Inputs.Exclude)
	assert.Equal(t, []string{"dist/**"}, webBuild.Outputs.Include)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load([]byte(`
tasks:
  build:
    run: "echo hi"
    bogus: true
`))
	require.Error(t, err)
}

func TestGetTaskNamespaced(t *testing.T) {
	cfg, err := Load([]byte(`
namespaces:
  web:
    tasks:
      build:
        run: "true"
`))
	require.NoError(t, err)

	p, err := taskpath.Parse("web:build")
	require.NoError(t, err)
	task, ok := GetTask(cfg, p)
	require.True(t, ok)
	assert.Equal(t, "true", task.Run.Command)

	missing, err := taskpath.Parse("build")
	require.NoError(t, err)
	_, ok = GetTask(cfg, missing)
	assert.False(t, ok)
}

func TestCountDependencies(t *testing.T) {
	cfg, err := Load([]byte(`
tasks:
  a: {run: "true"}
  b: {run: "true", dependencies: [a]}
  c: {run: "true", dependencies: [a, b]}
`))
	require.NoError(t, err)

	p, err := taskpath.Parse("c")
	require.NoError(t, err)
	count, ok := CountDependencies(cfg, p)
	require.True(t, ok)
	// c -> a (1) + b -> a (1+1) = 3
	assert.Equal(t, uint64(3), count)
}

func TestCountDependenciesMissing(t *testing.T) {
	cfg, err := Load([]byte(`
tasks:
  c: {run: "true", dependencies: [ghost]}
`))
	require.NoError(t, err)

	p, err := taskpath.Parse("c")
	require.NoError(t, err)
	_, ok := CountDependencies(cfg, p)
	assert.False(t, ok)
}
