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

import "github.com/ajwerner/avl/internal/abstract"

// Set is an ordered set: a Map with no values.
type Set[T any] struct {
	t abstract.Map[T, struct{}, struct{}]
}

// NewSet returns an empty set ordered by cmp.
func NewSet[T any](cmp func(a, b T) int) *Set[T] {
	return &Set[T]{t: abstract.MakeMap[T, struct{}, struct{}](
		abstract.Config[T, struct{}, struct{}]{Cmp: cmp})}
}

// Insert adds v, rejecting a present element with ErrDuplicate.
func (s *Set[T]) Insert(v T) error {
	if s == nil {
		return ErrInvalid
	}
	return s.t.Insert(v, struct{}{})
}

// Delete removes v; absent elements are a no-op.
func (s *Set[T]) Delete(v T) error {
	if s == nil {
		return ErrInvalid
	}
	return s.t.Delete(v)
}

// Contains reports membership.
func (s *Set[T]) Contains(v T) bool { return s != nil && s.t.Contains(v) }

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.t.Len()
}

// Empty reports whether the set has no elements.
func (s *Set[T]) Empty() bool { return s.Len() == 0 }

// Clear removes every element, leaving the set usable.
func (s *Set[T]) Clear() {
	if s != nil {
		s.t.Clear()
	}
}

// Deinit empties and invalidates the set.
func (s *Set[T]) Deinit() {
	if s != nil {
		s.t.Deinit()
	}
}

// Iterator returns an in-order iterator over the elements.
func (s *Set[T]) Iterator() Iterator[T, struct{}] {
	return Iterator[T, struct{}]{it: s.t.Iterator()}
}

// CheckInvariants validates the internal structure.
func (s *Set[T]) CheckInvariants() error {
	if s == nil {
		return nil
	}
	return s.t.CheckInvariants()
}

// String renders the elements in a Newick-like nested form.
func (s *Set[T]) String() string {
	if s == nil {
		return ";"
	}
	return s.t.String()
}
