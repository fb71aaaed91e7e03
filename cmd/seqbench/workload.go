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
	"cmp"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-lazyseq/seq"
	"github.com/ajroetker/go-lazyseq/seq/contrib/workerpool"
)

const (
	groups       = 16
	raysPerRun   = 32
	windowLength = 100

	// epsilon keeps a ray from hitting the surface it starts on.
	epsilon = 1e-9
)

type item struct {
	id    int
	group int
	value int
}

type vec3 [3]float64

func (a vec3) sub(b vec3) vec3 { return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func (a vec3) dot(b vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func (a vec3) normalize() vec3 {
	l := math.Sqrt(a.dot(a))
	return vec3{a[0] / l, a[1] / l, a[2] / l}
}

type sphere struct {
	id     int
	center vec3
	radius float64
}

// ray directions are unit length.
type ray struct {
	origin vec3
	dir    vec3
}

type hit struct {
	id int
	t  float64
}

// intersect returns the distance along r to the first point of s in front
// of the ray origin, or +Inf if r misses s.
func intersect(r ray, s sphere) float64 {
	oc := r.origin.sub(s.center)
	b := oc.dot(r.dir)
	c := oc.dot(oc) - s.radius*s.radius
	disc := b*b - c
	if disc < 0 {
		return math.Inf(1)
	}
	sq := math.Sqrt(disc)
	if t := -b - sq; t > epsilon {
		return t
	}
	if t := -b + sq; t > epsilon {
		return t
	}
	return math.Inf(1)
}

// dataset holds the generated inputs both as plain slices for the eager
// baseline and as buffers for the lazy engine.
type dataset struct {
	items     []item
	itemBuf   *seq.Buffer[item]
	spheres   []sphere
	sphereBuf *seq.Buffer[sphere]
	rays      []ray
}

// mix is the splitmix64 finalizer applied to seed and index, so generated
// values depend only on their position and not on how work is split.
func mix(seed uint64, i int) uint64 {
	z := seed + uint64(i+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// unit maps mix(seed, i) to [0, 1).
func unit(seed uint64, i int) float64 {
	return float64(mix(seed, i)>>11) / (1 << 53)
}

// generate builds a dataset of n items. Values repeat so that orderings have
// ties to keep stable.
func generate(pool *workerpool.Pool, seed int64, n int) *dataset {
	s := uint64(seed)
	items := make([]item, n)
	pool.Chunks(n, func(start, end int) {
		for i := start; i < end; i++ {
			h := mix(s, i)
			items[i] = item{
				id:    i,
				group: int(h % groups),
				value: int((h >> 8) % uint64(n/4+1)),
			}
		}
	})

	spheres := make([]sphere, max(n/8, 1))
	ss := s ^ 0x5bd1e995
	pool.Chunks(len(spheres), func(start, end int) {
		for i := start; i < end; i++ {
			k := 4 * i
			spheres[i] = sphere{
				id: i,
				center: vec3{
					20*unit(ss, k) - 10,
					20*unit(ss, k+1) - 10,
					10 + 50*unit(ss, k+2),
				},
				radius: 0.5 + 2.5*unit(ss, k+3),
			}
		}
	})

	rays := make([]ray, raysPerRun)
	rs := s ^ 0x27d4eb2f
	for i := range rays {
		dir := vec3{unit(rs, 2*i) - 0.5, unit(rs, 2*i+1) - 0.5, 1}
		rays[i] = ray{dir: dir.normalize()}
	}

	return &dataset{
		items:     items,
		itemBuf:   seq.Of(items...),
		spheres:   spheres,
		sphereBuf: seq.Of(spheres...),
		rays:      rays,
	}
}

// workload is one query written twice: through the lazy engine and eagerly
// with lo and slices. Both must return the same ids or values.
type workload struct {
	name  string
	lazy  func(d *dataset) []int
	eager func(d *dataset) []int
}

var workloads = []workload{
	{"pipeline", pipelineLazy, pipelineEager},
	{"orderby", orderByLazy, orderByEager},
	{"select", selectLazy, selectEager},
	{"window", windowLazy, windowEager},
	{"nearest", nearestLazy, nearestEager},
}

func workloadNames() []string {
	return lo.Map(workloads, func(w workload, _ int) string { return w.name })
}

func lookupWorkload(name string) (workload, bool) {
	return lo.Find(workloads, func(w workload) bool { return w.name == name })
}

func itemID(it item) int    { return it.id }
func itemGroup(it item) int { return it.group }
func itemValue(it item) int { return it.value }

// byGroupThenValueDesc is the eager form of the orderby workload's ordering.
func byGroupThenValueDesc(a, b item) int {
	if c := cmp.Compare(a.group, b.group); c != 0 {
		return c
	}
	return cmp.Compare(b.value, a.value)
}

func byValue(a, b item) int     { return cmp.Compare(a.value, b.value) }
func byValueDesc(a, b item) int { return cmp.Compare(b.value, a.value) }

// sortedItems is a stable sort of a copy of items.
func sortedItems(items []item, compare func(a, b item) int) []item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, compare)
	return out
}

func multipleOf3(it item) bool { return it.value%3 == 0 }

func pipelineLazy(d *dataset) []int {
	picked := seq.Where(d.itemBuf, multipleOf3)
	scaled := seq.Map(picked, func(it item) int { return it.value*2 + it.group })
	return seq.ToSlice(seq.DefaultIfEmpty(scaled, -1))
}

func pipelineEager(d *dataset) []int {
	picked := lo.Filter(d.items, func(it item, _ int) bool { return multipleOf3(it) })
	if len(picked) == 0 {
		return []int{-1}
	}
	return lo.Map(picked, func(it item, _ int) int { return it.value*2 + it.group })
}

func orderByLazy(d *dataset) []int {
	o := seq.ThenByDescending(seq.OrderBy(d.itemBuf, itemGroup), itemValue)
	return seq.ToSlice(seq.Map(o, itemID))
}

func orderByEager(d *dataset) []int {
	return lo.Map(sortedItems(d.items, byGroupThenValueDesc), func(it item, _ int) int { return it.id })
}

// selectRanks are the ranks looked up by the select workload.
func selectRanks(n int) []int {
	return []int{0, n / 2, n - 1}
}

func selectLazy(d *dataset) []int {
	o := seq.OrderBy(d.itemBuf, itemValue)
	ranks := selectRanks(o.Len())
	out := make([]int, len(ranks))
	for i, k := range ranks {
		it, err := o.ElementAt(k)
		if err != nil {
			panic(err)
		}
		out[i] = it.id
	}
	return out
}

func selectEager(d *dataset) []int {
	sorted := sortedItems(d.items, byValue)
	return lo.Map(selectRanks(len(sorted)), func(k int, _ int) int { return sorted[k].id })
}

// window returns the ranks covered by the window workload.
func window(n int) (from, to int) {
	from = n / 4
	to = min(from+windowLength, n) - 1
	return from, to
}

func windowLazy(d *dataset) []int {
	o := seq.OrderByDescending(d.itemBuf, itemValue)
	from, to := window(o.Len())
	items, err := o.Window(from, to)
	if err != nil {
		panic(err)
	}
	return lo.Map(items, func(it item, _ int) int { return it.id })
}

func windowEager(d *dataset) []int {
	sorted := sortedItems(d.items, byValueDesc)
	from, to := window(len(sorted))
	return lo.Map(sorted[from:to+1], func(it item, _ int) int { return it.id })
}

func hitTime(h hit) float64 { return h.t }

func nearestLazy(d *dataset) []int {
	out := make([]int, len(d.rays))
	for i, r := range d.rays {
		hits := seq.Where(
			seq.Map(d.sphereBuf, func(s sphere) hit { return hit{id: s.id, t: intersect(r, s)} }),
			func(h hit) bool { return !math.IsInf(h.t, 1) },
		)
		out[i] = seq.FirstOrDefault(seq.OrderBy(hits, hitTime), hit{id: -1}).id
	}
	return out
}

func nearestEager(d *dataset) []int {
	return lo.Map(d.rays, func(r ray, _ int) int {
		hits := lo.FilterMap(d.spheres, func(s sphere, _ int) (hit, bool) {
			t := intersect(r, s)
			return hit{id: s.id, t: t}, !math.IsInf(t, 1)
		})
		if len(hits) == 0 {
			return -1
		}
		return lo.MinBy(hits, func(a, b hit) bool { return a.t < b.t }).id
	})
}
