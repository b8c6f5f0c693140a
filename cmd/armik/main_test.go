// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/parmopt/lagrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// execute runs the command with args, capturing stdout and log entries.
func execute(t *testing.T, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	cmd := newRootCmd(func(verbose bool) (*zap.Logger, error) {
		if !verbose {
			return zap.NewNop(), nil
		}
		return zap.New(core), nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), logs, err
}

func TestArmik_DemoDefaults(t *testing.T) {
	out, logs, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "status: Converged")
	assert.Contains(t, out, "evaluations: 12")
	assert.Contains(t, out, "angles: [-1.570796 1.570796 3.141593]")
	assert.Contains(t, out, "end_effector: (0.600000, -1.000000)")
	assert.Zero(t, logs.Len())
}

func TestArmik_VerboseLogsPasses(t *testing.T) {
	_, logs, err := execute(t, "--verbose")
	require.NoError(t, err)
	passes := logs.FilterMessage("pass")
	assert.Equal(t, 12, passes.Len())
	assert.Equal(t, "lagrange", passes.All()[0].LoggerName)
	assert.Equal(t, 1, logs.FilterMessage("optimize finished").Len())
}

func TestArmik_ExplicitTarget(t *testing.T) {
	out, _, err := execute(t, "--target", "0.6,-1.0", "--tol", "1e-8")
	require.NoError(t, err)
	assert.Contains(t, out, "target: (0.600000, -1.000000)")
	assert.Contains(t, out, "status: Converged")
}

func TestArmik_Failures(t *testing.T) {
	t.Run("singular", func(t *testing.T) {
		out, _, err := execute(t, "--lengths", "1,1", "--initial", "0,0", "--preferred", "0,0", "--target", "2,0")
		require.ErrorIs(t, err, lagrange.ErrSingularMatrix)
		assert.Contains(t, out, "status: SingularMatrix")
	})
	t.Run("max-iter", func(t *testing.T) {
		out, _, err := execute(t, "--max-iter", "1")
		require.ErrorIs(t, err, lagrange.ErrMaxIterations)
		assert.Contains(t, out, "iterations: 1")
	})
	t.Run("bad step", func(t *testing.T) {
		_, _, err := execute(t, "--step", "0")
		require.ErrorIs(t, err, lagrange.ErrBadStepSize)
	})
	t.Run("flag validation", func(t *testing.T) {
		for _, args := range [][]string{
			{"--max-iter", "-1"},
			{"--initial", "0,0"},
			{"--target", "1"},
		} {
			_, _, err := execute(t, args...)
			assert.True(t, errors.Is(err, errFlags), "%v: %v", args, err)
		}
	})
	t.Run("exclusive target flags", func(t *testing.T) {
		_, _, err := execute(t, "--target", "1,1", "--target-angles", "0,0,0")
		require.Error(t, err)
	})
	t.Run("positional args", func(t *testing.T) {
		_, _, err := execute(t, "extra")
		require.Error(t, err)
	})
}
