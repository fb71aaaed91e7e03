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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestVerifyTrial(t *testing.T) {
	for seed := range int64(200) {
		assert.NoError(t, verifyTrial(seed, 1+int(seed)*5), "seed %d", seed)
	}
}

func TestRunVerify(t *testing.T) {
	cfg := Config{Size: 300, Seed: 7, Trials: 25, Workers: 4, LogLevel: "info"}
	assert.NoError(t, runVerify(cfg, zerolog.Nop()))
}
