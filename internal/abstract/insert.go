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

// Insert adds key/value to the tree. An existing equal key is not
// overwritten: the insert is rejected with ErrDuplicate and the tree is
// untouched. Allocation failure from the quota is surfaced before anything
// is linked, so a failed Insert leaves no trace.
func (t *Map[K, V, A]) Insert(key K, value V) error {
	if !t.initialized() {
		return t.fail(ErrInvalid)
	}
	parent, dir := t.locate(key)
	if dir == 0 && parent != nil {
		return t.fail(ErrDuplicate)
	}
	n, err := t.newNode()
	if err != nil {
		return t.fail(err)
	}
	n.key, n.value = key, value
	t.attach(n, parent, dir)
	t.rebalanceWalk(n)
	t.length++
	return nil
}

// locate finds the attachment point for key: the prospective parent and
// the side (-1 left, +1 right) the new node would hang on. dir == 0 with a
// non-nil parent means the key is already present at parent; a nil parent
// means the tree is empty.
func (t *Map[K, V, A]) locate(key K) (parent *Node[K, V, A], dir int) {
	n := t.root
	for n != nil {
		c := t.cfg.Cmp(key, n.key)
		if c == 0 {
			return n, 0
		}
		parent = n
		if c < 0 {
			dir, n = -1, n.left
		} else {
			dir, n = +1, n.right
		}
	}
	return parent, dir
}

// attach links n under parent on the given side, or as the root when
// parent is nil.
func (t *Map[K, V, A]) attach(n, parent *Node[K, V, A], dir int) {
	n.up = parent
	switch {
	case parent == nil:
		t.root = n
	case dir < 0:
		parent.left = n
	default:
		parent.right = n
	}
}
