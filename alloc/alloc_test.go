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

package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuota(t *testing.T) {
	q := NewQuota(2)
	require.EqualValues(t, 2, q.Remaining())
	require.EqualValues(t, 2, q.Limit())

	require.NoError(t, q.Reserve(1))
	require.NoError(t, q.Reserve(1))
	err := q.Reserve(1)
	require.ErrorIs(t, err, ErrExhausted)
	// A failed reservation takes nothing.
	require.EqualValues(t, 0, q.Remaining())

	q.Refund(1)
	require.EqualValues(t, 1, q.Remaining())
	require.NoError(t, q.Reserve(1))

	require.Error(t, q.Reserve(3))
}

func TestQuotaNilIsUnlimited(t *testing.T) {
	var q *Quota
	require.NoError(t, q.Reserve(1<<40))
	q.Refund(1)
	require.Negative(t, q.Remaining())
	require.Negative(t, q.Limit())
}

func TestQuotaOverRefundPanics(t *testing.T) {
	q := NewQuota(1)
	require.Panics(t, func() { q.Refund(1) })
}
