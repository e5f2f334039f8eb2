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

// Delete removes the element stored under key, if any. Removing an absent
// key is a no-op, not an error. The element destructor runs before the
// rebalancing walk, and the freed node goes back to the free list.
func (t *Map[K, V, A]) Delete(key K) error {
	if !t.initialized() {
		return t.fail(ErrInvalid)
	}
	n := t.getNode(key)
	if n == nil {
		return nil
	}
	if n.left != nil && n.right != nil {
		// Two children: swap elements with the in-order successor, the
		// leftmost node of the right subtree, and detach that node
		// instead. The successor has no left child, so the detach below
		// degenerates to the one-child case and never reshuffles more
		// than two links.
		s := n.right
		for s.left != nil {
			s = s.left
		}
		n.key, s.key = s.key, n.key
		n.value, s.value = s.value, n.value
		n = s
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	start := n.up
	t.replaceChild(n, child)
	t.freeNode(n, true)
	t.rebalanceWalk(start)
	t.length--
	return nil
}

// replaceChild links child (possibly nil) into the slot n occupies under
// its parent, or makes it the root.
func (t *Map[K, V, A]) replaceChild(n, child *Node[K, V, A]) {
	if child != nil {
		child.up = n.up
	}
	switch {
	case n.up == nil:
		t.root = child
	case n.up.left == n:
		n.up.left = child
	default:
		n.up.right = child
	}
}
