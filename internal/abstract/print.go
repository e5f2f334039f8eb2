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
	"strings"
)

func (n *Node[K, V, A]) writeString(b *strings.Builder) {
	if n.left != nil {
		b.WriteString("(")
		n.left.writeString(b)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v", n.key)
	if n.right != nil {
		b.WriteString("(")
		n.right.writeString(b)
		b.WriteString(")")
	}
}

// Dump renders one node per line, right subtree first and indented by
// depth, so the tree reads left-rotated on screen. Each line carries the
// key, stored height, and subtree size. Used by the data-driven tests.
func (t *Map[K, V, A]) Dump() string {
	if t.Len() == 0 {
		return "empty\n"
	}
	var b strings.Builder
	t.root.dump(&b, 0)
	return b.String()
}

func (n *Node[K, V, A]) dump(b *strings.Builder, depth int) {
	if n == nil {
		return
	}
	n.right.dump(b, depth+1)
	fmt.Fprintf(b, "%s%v h=%d sz=%d\n",
		strings.Repeat("  ", depth), n.key, n.height, n.size)
	n.left.dump(b, depth+1)
}
