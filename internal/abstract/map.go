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

// Package abstract implements a parametric AVL tree with parent pointers.
// The public packages of this module are thin views over it: avl for plain
// maps and sets, orderstat for rank queries over the per-node subtree
// sizes, interval for overlap queries over the augmentation hook.
//
// A tree is not safe for concurrent mutation; confine it to one goroutine
// or wrap it in a mutex.
package abstract

import "strings"

// Map is an ordered map implemented as a height-balanced binary search
// tree. The zero value is not usable; construct with MakeMap and, if
// Deinit is ever called, construct again before reuse.
type Map[K, V, A any] struct {
	root   *Node[K, V, A]
	length int
	free   *Node[K, V, A] // reclaimed nodes, linked through up
	cfg    Config[K, V, A]
}

// MakeMap constructs an empty Map from cfg. No allocation happens until
// the first insertion.
func MakeMap[K, V, A any](cfg Config[K, V, A]) Map[K, V, A] {
	return Map[K, V, A]{cfg: cfg}
}

// initialized reports whether the tree may be operated on.
func (t *Map[K, V, A]) initialized() bool {
	return t != nil && t.cfg.Cmp != nil
}

// Len returns the number of elements.
func (t *Map[K, V, A]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Empty reports whether the tree holds no elements.
func (t *Map[K, V, A]) Empty() bool { return t.Len() == 0 }

// Root returns the root node, or nil. The returned node and everything
// reachable from it is invalidated by the next mutation.
func (t *Map[K, V, A]) Root() *Node[K, V, A] {
	if t == nil {
		return nil
	}
	return t.root
}

// Compare compares two keys with the tree's comparator.
func (t *Map[K, V, A]) Compare(a, b K) int { return t.cfg.Cmp(a, b) }

// getNode locates the node holding key, or nil.
func (t *Map[K, V, A]) getNode(key K) *Node[K, V, A] {
	n := t.root
	for n != nil {
		c := t.cfg.Cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Get returns the value stored under key.
func (t *Map[K, V, A]) Get(key K) (v V, ok bool) {
	if !t.initialized() {
		return v, false
	}
	if n := t.getNode(key); n != nil {
		return n.value, true
	}
	return v, false
}

// Contains reports whether key is present.
func (t *Map[K, V, A]) Contains(key K) bool {
	if !t.initialized() {
		return false
	}
	return t.getNode(key) != nil
}

// String renders the tree in a Newick-like nested form, "(left)key(right)"
// per node, ";" when empty.
func (t *Map[K, V, A]) String() string {
	if t.Len() == 0 {
		return ";"
	}
	var b strings.Builder
	t.root.writeString(&b)
	return b.String()
}
