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

package seq

import "errors"

var (
	// ErrOutOfRange reports a negative count, an index outside the valid
	// range, or a capacity smaller than the current length.
	ErrOutOfRange = errors.New("out of range")

	// ErrOutOfMemory reports a Buffer growing past MaxCapacity.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrModified reports a Buffer mutated while one of its traversals was
	// still in progress.
	ErrModified = errors.New("buffer modified during traversal")
)
