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

// Emplace constructs an element in place. The node is allocated first and
// construct writes the key and value directly into it; only then is the
// key known, so the duplicate check necessarily runs after construction
// and callers must tolerate construct running even when the emplace is
// ultimately rejected.
//
// On construct failure the node is reclaimed and the error is returned;
// the destructor does not run because no element came to exist. On a
// duplicate key the fully constructed element is destroyed, the node
// reclaimed, and ErrDuplicate returned. On success the returned pointer
// addresses the element's value inside the tree; it stays valid until the
// next Delete, Clear, or Deinit.
func (t *Map[K, V, A]) Emplace(construct func(key *K, value *V) error) (*V, error) {
	if !t.initialized() || construct == nil {
		return nil, t.fail(ErrInvalid)
	}
	n, err := t.newNode()
	if err != nil {
		return nil, t.fail(err)
	}
	if err := construct(&n.key, &n.value); err != nil {
		t.freeNode(n, false)
		return nil, err
	}
	parent, dir := t.locate(n.key)
	if dir == 0 && parent != nil {
		t.freeNode(n, true)
		return nil, t.fail(ErrDuplicate)
	}
	t.attach(n, parent, dir)
	t.rebalanceWalk(n)
	t.length++
	return &n.value, nil
}
