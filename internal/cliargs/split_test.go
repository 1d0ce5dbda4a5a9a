package cliargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitNoArgs(t *testing.T) {
	s := SplitArgs(nil)
	assert.Empty(t, s.WorkbenchArgs)
	assert.False(t, s.HasTarget)
	assert.Empty(t, s.TaskArgs)
}

func TestSplitOneFlag(t *testing.T) {
	s := SplitArgs([]string{"--help"})
	assert.Equal(t, []string{"--help"}, s.WorkbenchArgs)
	assert.False(t, s.HasTarget)
}

func TestSplitOneOption(t *testing.T) {
	s := SplitArgs([]string{"-j", "5"})
	assert.Equal(t, []string{"-j", "5"}, s.WorkbenchArgs)
	assert.False(t, s.HasTarget)
}

func TestSplitTaskWithArgs(t *testing.T) {
	s := SplitArgs([]string{"-v", "build", "--watch", "src/"})
	assert.Equal(t, []string{"-v"}, s.WorkbenchArgs)
	require := assert.New(t)
	require.True(s.HasTarget)
	require.Equal("build", s.TargetTaskPath)
	require.Equal([]string{"--watch", "src/"}, s.TaskArgs)
}

func TestSplitDanglingFlagValue(t *testing.T) {
	s := SplitArgs([]string{"-j"})
	assert.Equal(t, []string{"-j"}, s.WorkbenchArgs)
	assert.False(t, s.HasTarget)
}
