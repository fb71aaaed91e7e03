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

// drain collects every element of s. Unlike ToSlice it returns an empty,
// non-nil slice for an empty sequence so results compare equal to literals.
func drain[T, C any](s Sequence[T, C]) []T {
	out := []T{}
	ForEach(s, func(v T) { out = append(out, v) })
	return out
}

// exhausted reports whether n further TryNext calls on cursor all fail.
func exhausted[T, C any](s Sequence[T, C], cursor *C, n int) bool {
	for range n {
		if _, ok := s.TryNext(cursor); ok {
			return false
		}
	}
	return true
}

// stepAll advances a fresh cursor until exhaustion and returns it, so tests
// can keep calling TryNext past the end.
func stepAll[T, C any](s Sequence[T, C]) C {
	cursor := s.Start()
	for {
		if _, ok := s.TryNext(&cursor); !ok {
			return cursor
		}
	}
}
