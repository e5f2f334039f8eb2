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

var (
	// ErrInvalid is returned when an operation is applied to a nil Map or
	// to one that was never initialized or has been deinitialized.
	ErrInvalid = errors.New("avl: tree is not initialized")

	// ErrDuplicate is returned by Insert and Emplace when the key is
	// already present. The tree is left unchanged.
	ErrDuplicate = errors.New("avl: key already present")
)

// fail applies the configured failure policy: strict trees panic, the rest
// return the error for the caller to check. Safe on a nil receiver, which
// cannot be strict.
func (t *Map[K, V, A]) fail(err error) error {
	if t != nil && t.cfg.Strict {
		panic(err)
	}
	return err
}
