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

// Package orderstat exposes rank queries over the tree's per-node subtree
// sizes: the i-th smallest element and the rank of a key, both O(log n).
package orderstat

import "github.com/ajwerner/avl/internal/abstract"

// Tree is an ordered map supporting order-statistic queries.
type Tree[K, V any] struct {
	t abstract.Map[K, V, struct{}]
}

// NewTree returns an empty tree ordered by cmp.
func NewTree[K, V any](cmp func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{t: abstract.MakeMap[K, V, struct{}](
		abstract.Config[K, V, struct{}]{Cmp: cmp})}
}

// Insert adds key/value; a present key is rejected.
func (t *Tree[K, V]) Insert(key K, value V) error { return t.t.Insert(key, value) }

// Delete removes key; absent keys are a no-op.
func (t *Tree[K, V]) Delete(key K) error { return t.t.Delete(key) }

// Get returns the value under key.
func (t *Tree[K, V]) Get(key K) (V, bool) { return t.t.Get(key) }

// Len returns the number of elements.
func (t *Tree[K, V]) Len() int { return t.t.Len() }

// Clear removes every element, leaving the tree usable.
func (t *Tree[K, V]) Clear() { t.t.Clear() }

// Nth returns the i-th smallest element, counting from zero. The walk
// steps past left subtrees by their stored size.
func (t *Tree[K, V]) Nth(i int) (key K, value V, ok bool) {
	n := t.t.Root()
	if i < 0 || i >= n.Size() {
		return key, value, false
	}
	for {
		switch l := n.Left().Size(); {
		case i < l:
			n = n.Left()
		case i > l:
			i -= l + 1
			n = n.Right()
		default:
			return n.Key(), n.Value(), true
		}
	}
}

// Rank returns the number of elements smaller than key. found reports
// whether key itself is present; when it is not, the returned rank is the
// position an insert would give it.
func (t *Tree[K, V]) Rank(key K) (rank int, found bool) {
	n := t.t.Root()
	for n != nil {
		switch c := t.t.Compare(key, n.Key()); {
		case c < 0:
			n = n.Left()
		case c > 0:
			rank += n.Left().Size() + 1
			n = n.Right()
		default:
			return rank + n.Left().Size(), true
		}
	}
	return rank, false
}

// Iterator returns an in-order iterator.
func (t *Tree[K, V]) Iterator() Iterator[K, V] {
	return Iterator[K, V]{it: t.t.Iterator()}
}

// Iterator walks a Tree in key order.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V, struct{}]
}

// First moves to the smallest key.
func (i *Iterator[K, V]) First() { i.it.First() }

// Next moves to the successor. Requires Valid.
func (i *Iterator[K, V]) Next() { i.it.Next() }

// Valid reports whether the iterator is on an element.
func (i *Iterator[K, V]) Valid() bool { return i.it.Valid() }

// Key returns the current key. Requires Valid.
func (i *Iterator[K, V]) Key() K { return i.it.Key() }

// Value returns the current value. Requires Valid.
func (i *Iterator[K, V]) Value() V { return i.it.Value() }

// CheckInvariants validates the internal structure.
func (t *Tree[K, V]) CheckInvariants() error { return t.t.CheckInvariants() }
