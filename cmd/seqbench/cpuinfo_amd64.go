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

//go:build amd64

package main

import "golang.org/x/sys/cpu"

// cpuFeatures lists the instruction set extensions relevant to sorting
// and scanning that this CPU reports.
func cpuFeatures() []string {
	var f []string
	if cpu.X86.HasPOPCNT {
		f = append(f, "popcnt")
	}
	if cpu.X86.HasSSE42 {
		f = append(f, "sse4.2")
	}
	if cpu.X86.HasAVX2 {
		f = append(f, "avx2")
	}
	if cpu.X86.HasBMI2 {
		f = append(f, "bmi2")
	}
	if cpu.X86.HasAVX512F {
		f = append(f, "avx512f")
	}
	return f
}
