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

// Package alloc bounds the number of live nodes a tree may hold. The Go
// runtime owns the bytes; a Quota owns the failure semantics, so callers
// that need allocation failure to be a real, observable event (embedded
// caches, fuzzing harnesses, tests of rollback paths) can have one.
package alloc

import "github.com/cockroachdb/errors"

// ErrExhausted is returned by Reserve when the quota has no remaining
// capacity.
var ErrExhausted = errors.New("alloc: quota exhausted")

// Quota tracks a budget of node allocations. A nil Quota is unlimited;
// every method is a no-op on it. A Quota may be shared between trees, in
// which case the caller provides any synchronization the trees themselves
// require.
type Quota struct {
	remaining int64
	limit     int64
}

// NewQuota returns a quota permitting n allocations.
func NewQuota(n int64) *Quota {
	return &Quota{remaining: n, limit: n}
}

// Reserve takes n units from the quota, failing with ErrExhausted if fewer
// than n remain. On failure nothing is taken.
func (q *Quota) Reserve(n int64) error {
	if q == nil {
		return nil
	}
	if q.remaining < n {
		return errors.Wrapf(ErrExhausted, "%d requested, %d remaining", n, q.remaining)
	}
	q.remaining -= n
	return nil
}

// Refund returns n units to the quota. Refunding more than was reserved
// indicates double-free style misuse and panics.
func (q *Quota) Refund(n int64) {
	if q == nil {
		return
	}
	q.remaining += n
	if q.remaining > q.limit {
		panic(errors.AssertionFailedf(
			"alloc: refund of %d exceeds limit %d", n, q.limit))
	}
}

// Remaining reports the unreserved capacity. Unlimited quotas report a
// negative value.
func (q *Quota) Remaining() int64 {
	if q == nil {
		return -1
	}
	return q.remaining
}

// Limit reports the configured capacity.
func (q *Quota) Limit() int64 {
	if q == nil {
		return -1
	}
	return q.limit
}
