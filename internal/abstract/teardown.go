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

// Clear removes every element, running the destructor once per element,
// and leaves the tree empty but usable: comparator, quota, and the node
// free list survive. No-op on a nil or empty tree.
func (t *Map[K, V, A]) Clear() {
	if t == nil {
		return
	}
	t.drain()
	t.root, t.length = nil, 0
}

// Deinit tears the tree down like Clear and then clears its configuration
// and free list, marking it unusable until constructed again with MakeMap.
// A second Deinit is a safe no-op.
func (t *Map[K, V, A]) Deinit() {
	if t == nil {
		return
	}
	t.drain()
	*t = Map[K, V, A]{}
}

// drain releases every node in post-order. The traversal is iterative and
// uses only parent links: no recursion and no auxiliary stack, so it is
// stack-safe for arbitrarily large trees. Each step branches on where the
// walk arrived from, tracked in last.
func (t *Map[K, V, A]) drain() {
	n := t.root
	var last *Node[K, V, A]
	for n != nil {
		switch {
		case last == n.up:
			// First visit, arriving from the parent.
			switch {
			case n.left != nil:
				last, n = n, n.left
			case n.right != nil:
				last, n = n, n.right
			default:
				last, n = n, t.releaseToParent(n)
			}
		case last == n.left && n.right != nil:
			// Back up from the left with a right subtree pending.
			last, n = n, n.right
		default:
			// Back up from the left with no right subtree, or back up
			// from the right. Both subtrees are gone.
			last, n = n, t.releaseToParent(n)
		}
	}
}

// releaseToParent frees n, destructor included, and returns its former
// parent. The parent's child pointer is left dangling on purpose: drain
// only ever compares it against last for identity and never follows it.
func (t *Map[K, V, A]) releaseToParent(n *Node[K, V, A]) *Node[K, V, A] {
	up := n.up
	t.freeNode(n, true)
	return up
}
