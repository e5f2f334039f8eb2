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

package avl

import "golang.org/x/exp/constraints"

// Compare orders any naturally ordered type for use as a comparator.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// NewOrderedMap returns a map over a naturally ordered key type.
func NewOrderedMap[K constraints.Ordered, V any]() *Map[K, V] {
	return NewMap[K, V](Compare[K])
}

// NewOrderedSet returns a set over a naturally ordered element type.
func NewOrderedSet[T constraints.Ordered]() *Set[T] {
	return NewSet(Compare[T])
}
