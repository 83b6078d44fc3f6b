// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval provides a map keyed by disjoint closed intervals.
package interval

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/tidwall/btree"
)

// Map maps disjoint closed intervals with endpoints in K to values of type V.
//
// A zero value is ready to use.
type Map[K cmp.Ordered, V any] struct {
	// Keyed by the end of each interval.
	tree btree.Map[K, entry[K, V]]
}

// Interval is an entry of a [Map].
type Interval[K cmp.Ordered, V any] struct {
	Start, End K
	Value      V
}

type entry[K cmp.Ordered, V any] struct {
	start K
	value V
}

// Len returns the number of intervals in m.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get returns the interval containing key.
func (m *Map[K, V]) Get(key K) (Interval[K, V], bool) {
	// The only candidate is the interval with the least end >= key.
	iter := m.tree.Iter()
	if !iter.Seek(key) || key < iter.Value().start {
		return Interval[K, V]{}, false
	}
	return Interval[K, V]{Start: iter.Value().start, End: iter.Key(), Value: iter.Value().value}, true
}

// Insert adds [start, end] to m.
//
// If the new interval overlaps an existing one, m is not modified and the
// overlapping interval with the least start is returned with ok set to false.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Interval[K, V], ok bool) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	// Intervals are disjoint, so the one with the least end >= start also
	// has the least start among all intervals that could overlap.
	iter := m.tree.Iter()
	if iter.Seek(start) && iter.Value().start <= end {
		return Interval[K, V]{Start: iter.Value().start, End: iter.Key(), Value: iter.Value().value}, false
	}

	m.tree.Set(end, entry[K, V]{start: start, value: value})
	return Interval[K, V]{}, true
}

// All yields every interval in m in ascending order.
func (m *Map[K, V]) All() iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		iter := m.tree.Iter()
		for more := iter.First(); more; more = iter.Next() {
			if !yield(Interval[K, V]{Start: iter.Value().start, End: iter.Key(), Value: iter.Value().value}) {
				return
			}
		}
	}
}

// Format implements [fmt.Formatter].
func (m *Map[K, V]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	first := true
	for in := range m.All() {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false

		if in.Start == in.End {
			fmt.Fprintf(s, "%#v: ", in.Start)
		} else {
			fmt.Fprintf(s, "[%#v, %#v]: ", in.Start, in.End)
		}
		fmt.Fprintf(s, fmt.FormatString(s, v), in.Value)
	}
	fmt.Fprint(s, "}")
}
