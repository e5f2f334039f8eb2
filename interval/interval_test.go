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

package interval

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func iv(start, end int) Interval[int] { return Interval[int]{Start: start, End: end} }

func collect(t *Tree[int, string], q Interval[int]) []Interval[int] {
	var got []Interval[int]
	t.Overlaps(q, func(i Interval[int], _ string) bool {
		got = append(got, i)
		return true
	})
	return got
}

func TestOverlaps(t *testing.T) {
	tr := NewTree[int, string](cmpInt)
	for _, i := range []Interval[int]{
		iv(0, 10), iv(5, 8), iv(10, 20), iv(15, 25), iv(30, 40),
	} {
		require.NoError(t, tr.Insert(i, ""))
	}
	require.NoError(t, tr.CheckInvariants())

	require.Equal(t,
		[]Interval[int]{iv(0, 10), iv(5, 8)},
		collect(tr, iv(6, 9)))
	// Half-open: [0,10) does not touch a query starting at 10.
	require.Equal(t,
		[]Interval[int]{iv(10, 20)},
		collect(tr, iv(10, 12)))
	require.Equal(t,
		[]Interval[int]{iv(10, 20), iv(15, 25)},
		collect(tr, iv(10, 16)))
	require.Nil(t, collect(tr, iv(25, 30)))
	require.Equal(t,
		[]Interval[int]{iv(0, 10), iv(5, 8), iv(10, 20), iv(15, 25), iv(30, 40)},
		collect(tr, iv(-100, 100)))

	// Early stop.
	n := 0
	tr.Overlaps(iv(-100, 100), func(Interval[int], string) bool {
		n++
		return n < 2
	})
	require.Equal(t, 2, n)
}

func TestDuplicateAndDelete(t *testing.T) {
	tr := NewTree[int, string](cmpInt)
	require.NoError(t, tr.Insert(iv(1, 5), "a"))
	require.Error(t, tr.Insert(iv(1, 5), "b"))
	require.NoError(t, tr.Insert(iv(1, 6), "c")) // same start, longer

	require.NoError(t, tr.Delete(iv(1, 5)))
	require.Equal(t, 1, tr.Len())
	require.Equal(t, []Interval[int]{iv(1, 6)}, collect(tr, iv(4, 5)))
	require.NoError(t, tr.CheckInvariants())
}

// TestRandomizedOverlaps cross-checks pruned queries against a linear scan
// while the max-endpoint augmentation is churned by inserts, deletes, and
// their rotations.
func TestRandomizedOverlaps(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tr := NewTree[int, string](cmpInt)
	var live []Interval[int]
	randIv := func() Interval[int] {
		start := rng.Intn(1000)
		return iv(start, start+1+rng.Intn(50))
	}
	for step := 0; step < 1000; step++ {
		if len(live) > 0 && rng.Intn(4) == 0 {
			j := rng.Intn(len(live))
			require.NoError(t, tr.Delete(live[j]))
			live = append(live[:j], live[j+1:]...)
		} else {
			i := randIv()
			if tr.Insert(i, "") == nil {
				live = append(live, i)
			}
		}
		if step%100 == 0 {
			require.NoError(t, tr.CheckInvariants())
		}
		q := randIv()
		want := map[Interval[int]]bool{}
		for _, i := range live {
			if i.Overlaps(q, cmpInt) {
				want[i] = true
			}
		}
		got := map[Interval[int]]bool{}
		tr.Overlaps(q, func(i Interval[int], _ string) bool {
			got[i] = true
			return true
		})
		require.Equal(t, want, got)
	}
}
