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

// rotateRight promotes n's left child into n's position:
//
//	    n            l
//	   / \          / \
//	  l   c   =>   a   n
//	 / \              / \
//	a   b            b   c
//
// No elements move and nothing is allocated; only links change. The new
// subtree root inherits n's old parent link, but the former parent's child
// pointer is the caller's to fix. Stats are recomputed child-first.
func (t *Map[K, V, A]) rotateRight(n *Node[K, V, A]) *Node[K, V, A] {
	l := n.left
	n.left = l.right
	if n.left != nil {
		n.left.up = n
	}
	l.right = n
	l.up = n.up
	n.up = l
	t.update(n)
	t.update(l)
	return l
}

// rotateLeft is the mirror of rotateRight.
func (t *Map[K, V, A]) rotateLeft(n *Node[K, V, A]) *Node[K, V, A] {
	r := n.right
	n.right = r.left
	if n.right != nil {
		n.right.up = n
	}
	r.left = n
	r.up = n.up
	n.up = r
	t.update(n)
	t.update(r)
	return r
}

// rebalance restores the AVL invariant at n, which may be off by at most
// one rotation pair, and returns the possibly new subtree root. The caller
// relinks the result into n's former parent.
func (t *Map[K, V, A]) rebalance(n *Node[K, V, A]) *Node[K, V, A] {
	switch b := n.balance(); {
	case b > 1:
		if n.left.balance() < 0 { // left-right shape
			n.left = t.rotateLeft(n.left)
		}
		return t.rotateRight(n)
	case b < -1:
		if n.right.balance() > 0 { // right-left shape
			n.right = t.rotateRight(n.right)
		}
		return t.rotateLeft(n)
	}
	return n
}

// rebalanceWalk restores heights, sizes, augmentations, and balance on the
// path from n to the root. The walk is anchored one level above each
// rotation: when rebalance replaces a subtree root, the replacement is
// linked into the former parent and the walk continues from that parent.
// It never stops early; a height change can propagate to the root.
func (t *Map[K, V, A]) rebalanceWalk(n *Node[K, V, A]) {
	for n != nil {
		up := n.up
		t.update(n)
		if r := t.rebalance(n); r != n {
			switch {
			case up == nil:
				t.root = r
			case up.left == n:
				up.left = r
			default:
				up.right = r
			}
		}
		n = up
	}
}
