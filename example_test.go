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

package avl_test

import (
	"fmt"

	"github.com/ajwerner/avl"
)

func ExampleMap() {
	m := avl.NewOrderedMap[string, int]()
	m.Insert("foo", 1)
	m.Insert("bar", 2)
	fmt.Println(m.Get("foo"))
	fmt.Println(m.Get("baz"))
	it := m.Iterator()
	for it.First(); it.Valid(); it.Next() {
		fmt.Println(it.Key(), it.Value())
	}

	// Output:
	// 1 true
	// 0 false
	// bar 2
	// foo 1
}

func ExampleMap_Emplace() {
	type blob struct{ data []byte }
	m := avl.NewOrderedMap[string, blob]()
	v, err := m.Emplace(func(key *string, value *blob) error {
		*key = "a"
		value.data = []byte("constructed in place")
		return nil
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(v.data))

	// Output:
	// constructed in place
}
