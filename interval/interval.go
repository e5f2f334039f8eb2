// Copyright 2022 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package interval provides an interval tree: an ordered map keyed by
// half-open intervals [Start, End) that answers overlap queries in
// O(log n + k). Each node is augmented with the maximum endpoint of its
// subtree, maintained through the engine's update hook so rotations keep
// it exact.
package interval

import "github.com/ajwerner/avl/internal/abstract"

// Interval is a half-open interval: Start is contained, End is not.
type Interval[T any] struct {
	Start, End T
}

// Overlaps reports whether the two intervals share any point under cmp.
func (iv Interval[T]) Overlaps(other Interval[T], cmp func(T, T) int) bool {
	return cmp(iv.Start, other.End) < 0 && cmp(other.Start, iv.End) < 0
}

// maxEnd augments each node with the largest End in its subtree.
type maxEnd[T any] struct {
	end T
}

// Tree is an interval tree. Intervals are ordered by (Start, End); equal
// intervals are duplicates and rejected by Insert.
type Tree[T, V any] struct {
	t   abstract.Map[Interval[T], V, maxEnd[T]]
	cmp func(T, T) int
}

// NewTree returns an empty interval tree over endpoints ordered by cmp.
func NewTree[T, V any](cmp func(a, b T) int) *Tree[T, V] {
	t := &Tree[T, V]{cmp: cmp}
	t.t = abstract.MakeMap[Interval[T], V, maxEnd[T]](
		abstract.Config[Interval[T], V, maxEnd[T]]{
			Cmp: func(a, b Interval[T]) int {
				if c := cmp(a.Start, b.Start); c != 0 {
					return c
				}
				return cmp(a.End, b.End)
			},
			Updater: abstract.UpdaterFunc[Interval[T], V, maxEnd[T]](
				func(n *abstract.Node[Interval[T], V, maxEnd[T]]) {
					m := n.Key().End
					if l := n.Left(); l != nil && cmp(l.Aug().end, m) > 0 {
						m = l.Aug().end
					}
					if r := n.Right(); r != nil && cmp(r.Aug().end, m) > 0 {
						m = r.Aug().end
					}
					n.Aug().end = m
				}),
		})
	return t
}

// Insert adds iv/value; an identical interval is rejected.
func (t *Tree[T, V]) Insert(iv Interval[T], value V) error { return t.t.Insert(iv, value) }

// Delete removes iv; an absent interval is a no-op.
func (t *Tree[T, V]) Delete(iv Interval[T]) error { return t.t.Delete(iv) }

// Get returns the value stored under exactly iv.
func (t *Tree[T, V]) Get(iv Interval[T]) (V, bool) { return t.t.Get(iv) }

// Len returns the number of intervals.
func (t *Tree[T, V]) Len() int { return t.t.Len() }

// Clear removes every interval, leaving the tree usable.
func (t *Tree[T, V]) Clear() { t.t.Clear() }

// Overlaps visits, in (Start, End) order, every interval overlapping q.
// The visitor returns false to stop early. Subtrees whose maximum endpoint
// is at or below q.Start are pruned, so a query touching k intervals costs
// O(log n + k). Descent recursion is bounded by the tree height.
func (t *Tree[T, V]) Overlaps(q Interval[T], visit func(iv Interval[T], value V) bool) {
	t.overlaps(t.t.Root(), q, visit)
}

func (t *Tree[T, V]) overlaps(
	n *abstract.Node[Interval[T], V, maxEnd[T]],
	q Interval[T],
	visit func(Interval[T], V) bool,
) (more bool) {
	if n == nil || t.cmp(n.Aug().end, q.Start) <= 0 {
		return true
	}
	if !t.overlaps(n.Left(), q, visit) {
		return false
	}
	if n.Key().Overlaps(q, t.cmp) {
		if !visit(n.Key(), n.Value()) {
			return false
		}
	}
	// Everything right of n starts at or after n; once n starts past the
	// query's end, so does its whole right subtree.
	if t.cmp(n.Key().Start, q.End) >= 0 {
		return true
	}
	return t.overlaps(n.Right(), q, visit)
}

// CheckInvariants validates the tree structure and the augmentation.
func (t *Tree[T, V]) CheckInvariants() error {
	return t.t.CheckInvariants()
}
