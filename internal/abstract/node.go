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

// Node is a node of the tree. The left and right links own their subtrees;
// up is a non-owning back-reference used for iteration, teardown, and the
// rebalancing walk, and is nil at the root.
type Node[K, V, A any] struct {
	left, right *Node[K, V, A]
	up          *Node[K, V, A] // parent, or free-list link while pooled

	// height is 1 for a leaf; an absent child contributes 0. size counts
	// the nodes of the subtree rooted here, including this one.
	height int
	size   int

	key   K
	value V
	aug   A
}

// Left returns the left child, or nil.
func (n *Node[K, V, A]) Left() *Node[K, V, A] { return n.left }

// Right returns the right child, or nil.
func (n *Node[K, V, A]) Right() *Node[K, V, A] { return n.right }

// Parent returns the parent, or nil at the root.
func (n *Node[K, V, A]) Parent() *Node[K, V, A] { return n.up }

// Key returns the node's key.
func (n *Node[K, V, A]) Key() K { return n.key }

// Value returns the node's value.
func (n *Node[K, V, A]) Value() V { return n.value }

// Aug returns a pointer to the node's augmentation for the Updater to fill
// in. Nodes are not shared, so the Updater may write through it freely.
func (n *Node[K, V, A]) Aug() *A { return &n.aug }

// Height returns the stored height of the subtree rooted at n; 0 if n is
// nil. It never dereferences a nil node.
func (n *Node[K, V, A]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Size returns the number of nodes in the subtree rooted at n; 0 if n is
// nil.
func (n *Node[K, V, A]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// balance is height(left) - height(right); 0 for a nil node.
func (n *Node[K, V, A]) balance() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// update recomputes the node's height, subtree size, and augmentation from
// its children. Children must already be current. No-op on nil.
func (t *Map[K, V, A]) update(n *Node[K, V, A]) {
	if n == nil {
		return
	}
	lh, rh := n.left.Height(), n.right.Height()
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
	n.size = n.left.Size() + n.right.Size() + 1
	if t.cfg.Updater != nil {
		t.cfg.Updater.Update(n)
	}
}

// newNode produces a node ready to hold an element, reusing the free list
// before touching the heap. The quota, when present, is charged one unit;
// its error is returned unwrapped so callers can test for
// alloc.ErrExhausted.
func (t *Map[K, V, A]) newNode() (*Node[K, V, A], error) {
	if err := t.cfg.Quota.Reserve(1); err != nil {
		return nil, err
	}
	if n := t.free; n != nil {
		t.free = n.up
		n.up = nil
		return n, nil
	}
	return &Node[K, V, A]{height: 1, size: 1}, nil
}

// freeNode returns a node to the free list and refunds its quota unit. When
// release is true the element destructor runs first; construction-failure
// paths pass false because the element never existed.
func (t *Map[K, V, A]) freeNode(n *Node[K, V, A], release bool) {
	if release && t.cfg.OnRelease != nil {
		t.cfg.OnRelease(n.key, n.value)
	}
	var key K
	var value V
	var aug A
	n.key, n.value, n.aug = key, value, aug
	n.left, n.right = nil, nil
	n.height, n.size = 1, 1
	n.up = t.free
	t.free = n
	t.cfg.Quota.Refund(1)
}
