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

import "github.com/cockroachdb/errors"

// CheckInvariants verifies the structural invariants the tree maintains
// between operations: parent links are the exact inverse of child links,
// stored heights match recomputation, every balance factor is within
// [-1, 1], subtree sizes are exact and sum to Len, and an in-order walk
// yields strictly increasing keys. Intended for tests; it visits every
// node.
func (t *Map[K, V, A]) CheckInvariants() error {
	if t == nil {
		return nil
	}
	if t.root != nil && t.root.up != nil {
		return errors.AssertionFailedf("root has a parent")
	}
	n, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if n != t.length {
		return errors.AssertionFailedf(
			"length %d but %d reachable nodes", t.length, n)
	}
	if !t.initialized() {
		return nil
	}
	it := t.Iterator()
	it.First()
	if !it.Valid() {
		return nil
	}
	prev := it.Key()
	for it.Next(); it.Valid(); it.Next() {
		if t.cfg.Cmp(prev, it.Key()) >= 0 {
			return errors.AssertionFailedf(
				"keys out of order: %v then %v", prev, it.Key())
		}
		prev = it.Key()
	}
	return nil
}

func (t *Map[K, V, A]) checkNode(n *Node[K, V, A]) (count int, _ error) {
	if n == nil {
		return 0, nil
	}
	for _, child := range []*Node[K, V, A]{n.left, n.right} {
		if child != nil && child.up != n {
			return 0, errors.AssertionFailedf(
				"node %v: child %v has stale parent link", n.key, child.key)
		}
	}
	lc, err := t.checkNode(n.left)
	if err != nil {
		return 0, err
	}
	rc, err := t.checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if h := 1 + max(n.left.Height(), n.right.Height()); n.height != h {
		return 0, errors.AssertionFailedf(
			"node %v: height %d, expected %d", n.key, n.height, h)
	}
	if b := n.balance(); b < -1 || b > 1 {
		return 0, errors.AssertionFailedf(
			"node %v: balance factor %d", n.key, b)
	}
	if n.size != lc+rc+1 {
		return 0, errors.AssertionFailedf(
			"node %v: size %d, expected %d", n.key, n.size, lc+rc+1)
	}
	return lc + rc + 1, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
