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

// Clone returns an independent copy of the tree sharing the receiver's
// configuration, quota included. The copy is built by an iterative
// pre-order walk driven by parent links, mirroring the teardown traversal,
// with a cursor in the copy tracking the cursor in the source; heights,
// sizes, and augmentations carry over because the structure is identical.
//
// copyValue, when non-nil, produces the value stored in the copy; pass nil
// for a shallow copy. Trees with an OnRelease hook should pass a copyValue
// that produces an independently owned value, or both trees will release
// the same resource.
//
// If the quota runs out mid-copy the partial copy is torn down, destructor
// included, and the error is returned with the receiver untouched.
func (t *Map[K, V, A]) Clone(copyValue func(K, V) V) (Map[K, V, A], error) {
	if !t.initialized() {
		return Map[K, V, A]{}, t.fail(ErrInvalid)
	}
	c := MakeMap[K, V, A](t.cfg)
	if t.root == nil {
		return c, nil
	}
	copyNode := func(s *Node[K, V, A]) (*Node[K, V, A], error) {
		d, err := c.newNode()
		if err != nil {
			return nil, err
		}
		d.key = s.key
		if copyValue != nil {
			d.value = copyValue(s.key, s.value)
		} else {
			d.value = s.value
		}
		d.aug = s.aug
		d.height, d.size = s.height, s.size
		return d, nil
	}
	root, err := copyNode(t.root)
	if err != nil {
		return Map[K, V, A]{}, t.fail(err)
	}
	c.root = root
	src, dst := t.root, root
	var last *Node[K, V, A]
	descend := func(s *Node[K, V, A]) error {
		d, err := copyNode(s)
		if err != nil {
			return err
		}
		d.up = dst
		if s == src.left {
			dst.left = d
		} else {
			dst.right = d
		}
		last, src, dst = src, s, d
		return nil
	}
	for src != nil {
		var next *Node[K, V, A]
		switch {
		case last == src.up:
			switch {
			case src.left != nil:
				next = src.left
			case src.right != nil:
				next = src.right
			}
		case last == src.left && src.right != nil:
			next = src.right
		}
		if next == nil {
			last, src, dst = src, src.up, dst.up
			continue
		}
		if err := descend(next); err != nil {
			c.root = root
			c.Clear()
			return Map[K, V, A]{}, t.fail(err)
		}
	}
	c.length = t.length
	return c, nil
}
