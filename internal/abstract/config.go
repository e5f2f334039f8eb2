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

import "github.com/ajwerner/avl/alloc"

// Config carries everything a Map needs that is fixed for its lifetime: the
// comparison function for keys, an optional release hook invoked once per
// element as it leaves the tree, an optional allocation quota, and an
// optional augmentation updater.
type Config[K, V, A any] struct {

	// Cmp defines the total order over keys. It must return a negative
	// value if a sorts before b, zero if they are equal, and a positive
	// value otherwise. A Map with a nil Cmp is not initialized and all
	// operations on it fail with ErrInvalid. Cmp must be consistent and
	// transitive; the tree does not defend against comparators that are
	// not.
	Cmp func(a, b K) int

	// OnRelease, if non-nil, is called exactly once for each element as it
	// leaves the tree, whether by Delete, Clear, Deinit, or a rejected
	// Emplace whose element had already been constructed. It must
	// tolerate an element that owns nothing.
	OnRelease func(key K, value V)

	// Quota bounds the number of live nodes. Nil means unlimited.
	Quota *alloc.Quota

	// Updater maintains the augmentation of type A stored in each node.
	// It is invoked on a node whenever that node's height is recomputed,
	// which happens bottom-up, so a node's children are always current
	// when its own augmentation is rebuilt. Nil when A is unused.
	Updater Updater[K, V, A]

	// Strict makes every operation panic with the error it would
	// otherwise have returned. The error-returning path is the default.
	Strict bool
}

// Updater rebuilds the augmentation of a node from the node's own element
// and the augmentations of its children.
type Updater[K, V, A any] interface {
	Update(n *Node[K, V, A])
}

// UpdaterFunc adapts a plain function to the Updater interface.
type UpdaterFunc[K, V, A any] func(n *Node[K, V, A])

// Update implements Updater.
func (f UpdaterFunc[K, V, A]) Update(n *Node[K, V, A]) { f(n) }
