// Copyright 2025 go-lazyseq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestRunCommand(t *testing.T) {
	stdout, stderr, err := execute(t, "run", "--size", "300", "--iterations", "3", "--workers", "2")
	require.NoError(t, err)
	for _, name := range workloadNames() {
		assert.Contains(t, stdout, name)
	}
	assert.Contains(t, stdout, "WORKLOAD")
	assert.Contains(t, stdout, "size: 300")
	assert.Contains(t, stderr, "dataset generated")
}

func TestRunCommandSelectedWorkloads(t *testing.T) {
	stdout, _, err := execute(t, "run", "--size", "50", "--iterations", "1", "--workloads", "window,select")
	require.NoError(t, err)
	assert.Contains(t, stdout, "window")
	assert.Contains(t, stdout, "select")
	assert.NotContains(t, stdout, "nearest")
}

func TestRunCommandRejectsBadConfig(t *testing.T) {
	_, _, err := execute(t, "run", "--workloads", "bogus")
	assert.True(t, errors.Is(err, errConfig))

	_, _, err = execute(t, "run", "--iterations", "0")
	assert.True(t, errors.Is(err, errConfig))

	_, _, err = execute(t, "run", "--log-level", "loud")
	assert.True(t, errors.Is(err, errConfig))
}

func TestVerifyCommand(t *testing.T) {
	_, stderr, err := execute(t, "verify", "--trials", "40", "--size", "200", "--pretty")
	require.NoError(t, err)
	assert.Contains(t, stderr, "all trials consistent")

	_, _, err = execute(t, "verify", "--trials", "0")
	assert.True(t, errors.Is(err, errConfig))
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("SEQBENCH_TRIALS", "0")
	_, _, err := execute(t, "verify")
	assert.True(t, errors.Is(err, errConfig), "trials from the environment")

	_, _, err = execute(t, "verify", "--trials", "2", "--size", "20")
	assert.NoError(t, err, "flags win over the environment")
}
