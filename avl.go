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

// Package avl provides ordered maps and sets backed by an AVL tree with
// parent pointers. Lookups, insertion, and deletion are O(log n); teardown
// and iteration are driven by the parent links and allocate nothing.
//
// Trees are not safe for concurrent mutation. Confine a tree to one
// goroutine or synchronize externally.
package avl

import (
	"github.com/ajwerner/avl/alloc"
	"github.com/ajwerner/avl/internal/abstract"
)

var (
	// ErrInvalid is returned for operations on a nil, uninitialized, or
	// deinitialized tree.
	ErrInvalid = abstract.ErrInvalid

	// ErrDuplicate is returned when an Insert or Emplace finds its key
	// already present.
	ErrDuplicate = abstract.ErrDuplicate
)

// Config configures a Map beyond its comparator. The zero value of every
// field is valid.
type Config[K, V any] struct {

	// Cmp orders keys; required. Negative, zero, positive for a<b, a==b,
	// a>b.
	Cmp func(a, b K) int

	// OnRelease runs once per element as it leaves the tree: on Delete,
	// Clear, Deinit, and on the constructed-then-rejected Emplace path.
	OnRelease func(key K, value V)

	// Quota bounds live nodes; insertions beyond it fail with an error
	// satisfying errors.Is(err, alloc.ErrExhausted). Nil is unlimited.
	Quota *alloc.Quota

	// Strict panics with the error instead of returning it.
	Strict bool
}

// Map is an ordered map. Construct with NewMap, NewMapConfig, or
// NewOrderedMap; the zero value rejects all operations with ErrInvalid.
type Map[K, V any] struct {
	t abstract.Map[K, V, struct{}]
}

// NewMap returns an empty map ordered by cmp.
func NewMap[K, V any](cmp func(a, b K) int) *Map[K, V] {
	return NewMapConfig(Config[K, V]{Cmp: cmp})
}

// NewMapConfig returns an empty map built from cfg.
func NewMapConfig[K, V any](cfg Config[K, V]) *Map[K, V] {
	return &Map[K, V]{t: abstract.MakeMap[K, V, struct{}](abstract.Config[K, V, struct{}]{
		Cmp:       cfg.Cmp,
		OnRelease: cfg.OnRelease,
		Quota:     cfg.Quota,
		Strict:    cfg.Strict,
	})}
}

// Insert adds key/value. A present key is rejected with ErrDuplicate and
// nothing changes.
func (m *Map[K, V]) Insert(key K, value V) error {
	if m == nil {
		return ErrInvalid
	}
	return m.t.Insert(key, value)
}

// Emplace constructs an element in place; see abstract.Map.Emplace. The
// constructor runs before the duplicate check, because the key is not
// known until it has run.
func (m *Map[K, V]) Emplace(construct func(key *K, value *V) error) (*V, error) {
	if m == nil {
		return nil, ErrInvalid
	}
	return m.t.Emplace(construct)
}

// Delete removes key. Deleting an absent key is a no-op.
func (m *Map[K, V]) Delete(key K) error {
	if m == nil {
		return ErrInvalid
	}
	return m.t.Delete(key)
}

// Get returns the value under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var v V
		return v, false
	}
	return m.t.Get(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool { return m != nil && m.t.Contains(key) }

// Len returns the number of elements.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.t.Len()
}

// Empty reports whether the map has no elements.
func (m *Map[K, V]) Empty() bool { return m.Len() == 0 }

// Clear removes every element, releasing each, and leaves the map usable.
func (m *Map[K, V]) Clear() {
	if m != nil {
		m.t.Clear()
	}
}

// Deinit removes every element and invalidates the map; construct a new
// one before reuse. Calling it again is a no-op.
func (m *Map[K, V]) Deinit() {
	if m != nil {
		m.t.Deinit()
	}
}

// Clone deep-copies the map. copyValue may be nil for a shallow value
// copy; maps with an OnRelease hook should copy deeply or the two maps
// will release the same resources.
func (m *Map[K, V]) Clone(copyValue func(K, V) V) (*Map[K, V], error) {
	if m == nil {
		return nil, ErrInvalid
	}
	t, err := m.t.Clone(copyValue)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{t: t}, nil
}

// Iterator returns an iterator positioned before the first element. It is
// invalidated by any mutation.
func (m *Map[K, V]) Iterator() Iterator[K, V] {
	return Iterator[K, V]{it: m.t.Iterator()}
}

// CheckInvariants validates the internal structure; it is meant for tests
// and costs a full traversal.
func (m *Map[K, V]) CheckInvariants() error {
	if m == nil {
		return nil
	}
	return m.t.CheckInvariants()
}

// String renders the keys in a Newick-like nested form.
func (m *Map[K, V]) String() string {
	if m == nil {
		return ";"
	}
	return m.t.String()
}

// Iterator walks a Map in key order.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V, struct{}]
}

// First moves to the smallest key.
func (i *Iterator[K, V]) First() { i.it.First() }

// Last moves to the largest key.
func (i *Iterator[K, V]) Last() { i.it.Last() }

// SeekGE moves to the first key >= key.
func (i *Iterator[K, V]) SeekGE(key K) { i.it.SeekGE(key) }

// Next moves to the successor. Requires Valid.
func (i *Iterator[K, V]) Next() { i.it.Next() }

// Prev moves to the predecessor. Requires Valid.
func (i *Iterator[K, V]) Prev() { i.it.Prev() }

// Valid reports whether the iterator is on an element.
func (i *Iterator[K, V]) Valid() bool { return i.it.Valid() }

// Key returns the current key. Requires Valid.
func (i *Iterator[K, V]) Key() K { return i.it.Key() }

// Value returns the current value. Requires Valid.
func (i *Iterator[K, V]) Value() V { return i.it.Value() }
