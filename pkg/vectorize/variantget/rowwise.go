// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package variantget

import (
	"github.com/matrixorigin/variant/pkg/container/variant"
	"github.com/matrixorigin/variant/pkg/container/vector"
)

// getRowwise is the reference strategy: fully decode each row's value
// into a tree, then walk the path with ordinary map and index lookups.
// It pays full-subtree decode cost per row and exists to be simple;
// its output must match getVectorized row for row.
func getRowwise(input *vector.VariantVector, opts GetOptions) (vector.AnyVector, error) {
	length := input.Length()

	rowTree := func(i int) (variant.Node, bool, error) {
		root, err := input.ValueAt(i)
		if err != nil {
			return variant.Node{}, false, err
		}
		tree, err := root.Decode()
		if err != nil {
			return variant.Node{}, false, err
		}
		cur, ok := walkNode(tree, opts.Path)
		return cur, ok, nil
	}

	if opts.TargetType == nil {
		out := vector.NewVariantVector(length)
		for i := 0; i < length; i++ {
			if input.IsNull(uint64(i)) {
				out.AppendNull()
				continue
			}
			cur, ok, err := rowTree(i)
			if err != nil {
				return nil, err
			}
			if !ok {
				out.AppendNull()
				continue
			}
			if err := out.AppendNode(cur); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	wrapper := vector.NewFunctionResultWrapper(*opts.TargetType)
	for i := 0; i < length; i++ {
		t := terminal{miss: true}
		if !input.IsNull(uint64(i)) {
			cur, ok, err := rowTree(i)
			if err != nil {
				return nil, err
			}
			if ok {
				t = terminalOfNode(cur)
			}
		}
		if err := appendTerminal(wrapper, *opts.TargetType, t, opts.CastPolicy); err != nil {
			return nil, err
		}
	}
	return wrapper.GetResultVector(), nil
}

// walkNode resolves the whole path against a decoded tree. ok=false is
// a path miss at some step.
func walkNode(n variant.Node, p Path) (variant.Node, bool) {
	cur := n
	for s := 0; s < p.Len(); s++ {
		elem := p.At(s)
		if elem.IsField() {
			if cur.Kind != variant.KindObject {
				return variant.Node{}, false
			}
			next, ok := cur.Field(elem.Name())
			if !ok {
				return variant.Node{}, false
			}
			cur = next
			continue
		}
		if cur.Kind != variant.KindArray {
			return variant.Node{}, false
		}
		idx := elem.Index()
		if idx < 0 || idx >= len(cur.Elems) {
			return variant.Node{}, false
		}
		cur = cur.Elems[idx]
	}
	return cur, true
}
