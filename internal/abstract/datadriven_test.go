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

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/ajwerner/avl/alloc"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
)

// TestDataDriven drives a Map[int, int] through the commands in
// testdata/map. Values equal their keys. Commands:
//
//	init [quota=<n>]   construct a fresh tree
//	insert / delete    one result line per key in the input, then len
//	emplace            construct elements in place, input "k" pairs
//	emplace-fail       run a constructor that fails
//	get                lookup, one line per key
//	scan               in-order keys on one line
//	dump               tree shape with heights and subtree sizes
//	check              structural invariants
//	clear / deinit     teardown variants
func TestDataDriven(t *testing.T) {
	var m Map[int, int, struct{}]
	datadriven.RunTest(t, "testdata/map", func(t *testing.T, d *datadriven.TestData) string {
		keys := func() []int {
			var ks []int
			for _, f := range strings.Fields(d.Input) {
				k, err := strconv.Atoi(f)
				if err != nil {
					t.Fatalf("bad key %q: %v", f, err)
				}
				ks = append(ks, k)
			}
			return ks
		}
		var b strings.Builder
		switch d.Cmd {
		case "init":
			cfg := Config[int, int, struct{}]{Cmp: cmpInt}
			if d.HasArg("quota") {
				var n int
				d.ScanArgs(t, "quota", &n)
				cfg.Quota = alloc.NewQuota(int64(n))
			}
			m = MakeMap[int, int, struct{}](cfg)
			return ""

		case "insert":
			for _, k := range keys() {
				if err := m.Insert(k, k); err != nil {
					fmt.Fprintf(&b, "%d: %s\n", k, err)
				} else {
					fmt.Fprintf(&b, "%d: ok\n", k)
				}
			}
			fmt.Fprintf(&b, "len=%d\n", m.Len())
			return b.String()

		case "delete":
			for _, k := range keys() {
				if err := m.Delete(k); err != nil {
					fmt.Fprintf(&b, "%d: %s\n", k, err)
				} else {
					fmt.Fprintf(&b, "%d: ok\n", k)
				}
			}
			fmt.Fprintf(&b, "len=%d\n", m.Len())
			return b.String()

		case "emplace":
			for _, k := range keys() {
				k := k
				_, err := m.Emplace(func(key, value *int) error {
					*key, *value = k, k
					return nil
				})
				if err != nil {
					fmt.Fprintf(&b, "%d: %s\n", k, err)
				} else {
					fmt.Fprintf(&b, "%d: ok\n", k)
				}
			}
			fmt.Fprintf(&b, "len=%d\n", m.Len())
			return b.String()

		case "emplace-fail":
			_, err := m.Emplace(func(key, value *int) error {
				return errors.New("construct failed")
			})
			fmt.Fprintf(&b, "%s\n", err)
			fmt.Fprintf(&b, "len=%d\n", m.Len())
			return b.String()

		case "get":
			for _, k := range keys() {
				if v, ok := m.Get(k); ok {
					fmt.Fprintf(&b, "%d: %d\n", k, v)
				} else {
					fmt.Fprintf(&b, "%d: not found\n", k)
				}
			}
			return b.String()

		case "scan":
			var ks []string
			it := m.Iterator()
			for it.First(); it.Valid(); it.Next() {
				ks = append(ks, strconv.Itoa(it.Key()))
			}
			return strings.Join(ks, " ") + "\n"

		case "dump":
			return m.Dump()

		case "check":
			if err := m.CheckInvariants(); err != nil {
				return err.Error() + "\n"
			}
			return "ok\n"

		case "clear":
			m.Clear()
			return ""

		case "deinit":
			m.Deinit()
			return ""

		default:
			return fmt.Sprintf("unknown command %q", d.Cmd)
		}
	})
}
