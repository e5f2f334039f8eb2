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

package abstract

// Iterator walks the tree in key order. It carries no stack: movement
// follows child and parent links, so it is O(1) space at any depth. An
// Iterator is invalidated by any mutation of its tree; obtain a fresh one
// after modifying.
type Iterator[K, V, A any] struct {
	t *Map[K, V, A]
	n *Node[K, V, A]
}

// Iterator returns an iterator positioned before the first element.
func (t *Map[K, V, A]) Iterator() Iterator[K, V, A] {
	return Iterator[K, V, A]{t: t}
}

// First positions the iterator at the smallest key.
func (i *Iterator[K, V, A]) First() {
	i.n = i.t.Root().leftmost()
}

// Last positions the iterator at the largest key.
func (i *Iterator[K, V, A]) Last() {
	i.n = i.t.Root().rightmost()
}

// SeekGE positions the iterator at the first key greater than or equal to
// key, or at the end if no such key exists.
func (i *Iterator[K, V, A]) SeekGE(key K) {
	i.n = nil
	n := i.t.Root()
	for n != nil {
		c := i.t.cfg.Cmp(key, n.key)
		switch {
		case c < 0:
			i.n = n // candidate; a smaller qualifying key may sit left
			n = n.left
		case c > 0:
			n = n.right
		default:
			i.n = n
			return
		}
	}
}

// Next advances to the in-order successor. Requires Valid.
func (i *Iterator[K, V, A]) Next() {
	n := i.n
	if n.right != nil {
		i.n = n.right.leftmost()
		return
	}
	for n.up != nil && n == n.up.right {
		n = n.up
	}
	i.n = n.up
}

// Prev moves to the in-order predecessor. Requires Valid.
func (i *Iterator[K, V, A]) Prev() {
	n := i.n
	if n.left != nil {
		i.n = n.left.rightmost()
		return
	}
	for n.up != nil && n == n.up.left {
		n = n.up
	}
	i.n = n.up
}

// Valid reports whether the iterator is positioned at an element.
func (i *Iterator[K, V, A]) Valid() bool { return i.n != nil }

// Cur returns the current node. Requires Valid.
func (i *Iterator[K, V, A]) Cur() *Node[K, V, A] { return i.n }

// Key returns the current key. Requires Valid.
func (i *Iterator[K, V, A]) Key() K { return i.n.key }

// Value returns the current value. Requires Valid.
func (i *Iterator[K, V, A]) Value() V { return i.n.value }

// leftmost returns the smallest node of the subtree, or nil.
func (n *Node[K, V, A]) leftmost() *Node[K, V, A] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the largest node of the subtree, or nil.
func (n *Node[K, V, A]) rightmost() *Node[K, V, A] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
