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

// Package variantget implements path extraction over a column of
// encoded variant values: given a path of field and index accessors,
// it produces either a column of the sub-value re-encoded as a
// variant, or a column of a requested primitive type.
//
// Two traversal strategies share one contract. The vectorized strategy
// advances a running byte offset per row, one path step at a time,
// decoding only node headers until the terminal step. The row-wise
// strategy fully decodes each row and walks the tree. Their outputs
// are identical row for row.
package variantget

import (
	"github.com/matrixorigin/variant/pkg/common/moerr"
	"github.com/matrixorigin/variant/pkg/container/variant"
	"github.com/matrixorigin/variant/pkg/container/vector"
)

// Get extracts opts.Path from every row of the input column. The
// output column has the input's length. A row comes out null when it
// was null in the input, when the path does not resolve against its
// value, when the terminal value is the variant null, or, with a
// target type under NullOnCastFailure, when the terminal value cannot
// be represented in that type. Structurally corrupt rows abort the
// whole call.
func Get(input *vector.VariantVector, opts GetOptions) (vector.AnyVector, error) {
	if input == nil {
		return nil, moerr.NewInvalidInputNoCtx("variant extraction over nil column")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Strategy == StrategyRowwise {
		return getRowwise(input, opts)
	}
	return getVectorized(input, opts)
}

// getVectorized resolves the first K-1 accessors column-wise, keeping
// per-row state of a byte offset into the row's value blob and an
// alive flag. The last accessor is resolved during terminal
// materialization, together with the decode or cast of its target.
func getVectorized(input *vector.VariantVector, opts GetOptions) (vector.AnyVector, error) {
	length := input.Length()
	offs := make([]int32, length)
	alive := make([]bool, length)
	for i := 0; i < length; i++ {
		alive[i] = !input.IsNull(uint64(i))
	}

	for s := 0; s+1 < opts.Path.Len(); s++ {
		elem := opts.Path.At(s)
		for i := 0; i < length; i++ {
			if !alive[i] {
				continue
			}
			node, err := input.ValueAtOffset(i, int(offs[i]))
			if err != nil {
				return nil, err
			}
			rel, ok, err := stepOffset(node, elem)
			if err != nil {
				return nil, err
			}
			if !ok {
				alive[i] = false
				continue
			}
			offs[i] += int32(rel)
		}
	}
	return materialize(input, offs, alive, opts)
}

// stepOffset resolves one accessor against a node header, returning
// the selected child's byte offset relative to the node. ok=false is a
// path miss: wrong node kind, absent field, or out-of-bounds index.
func stepOffset(node variant.Variant, elem PathElem) (int, bool, error) {
	if elem.IsField() {
		if node.Kind() != variant.KindObject {
			return 0, false, nil
		}
		return node.FieldOffset(elem.Name())
	}
	if node.Kind() != variant.KindArray {
		return 0, false, nil
	}
	cnt, err := node.Len()
	if err != nil {
		return 0, false, err
	}
	if elem.Index() < 0 || elem.Index() >= cnt {
		return 0, false, nil
	}
	rel, err := node.ElemOffset(elem.Index())
	if err != nil {
		return 0, false, err
	}
	return rel, true, nil
}

// materialize applies the last accessor (if any) per alive row and
// builds the output column from the terminal nodes.
func materialize(input *vector.VariantVector, offs []int32, alive []bool, opts GetOptions) (vector.AnyVector, error) {
	length := input.Length()
	var last PathElem
	hasLast := opts.Path.Len() > 0
	if hasLast {
		last = opts.Path.At(opts.Path.Len() - 1)
	}

	// resolves row i to its terminal node; ok=false is a miss
	terminalAt := func(i int) (variant.Variant, bool, error) {
		node, err := input.ValueAtOffset(i, int(offs[i]))
		if err != nil {
			return variant.Variant{}, false, err
		}
		if !hasLast {
			return node, true, nil
		}
		rel, ok, err := stepOffset(node, last)
		if err != nil || !ok {
			return variant.Variant{}, false, err
		}
		node, err = node.Child(rel)
		if err != nil {
			return variant.Variant{}, false, err
		}
		return node, true, nil
	}

	if opts.TargetType == nil {
		out := vector.NewVariantVector(length)
		for i := 0; i < length; i++ {
			if !alive[i] {
				out.AppendNull()
				continue
			}
			node, ok, err := terminalAt(i)
			if err != nil {
				return nil, err
			}
			if !ok {
				out.AppendNull()
				continue
			}
			tree, err := node.Decode()
			if err != nil {
				return nil, err
			}
			if err := out.AppendNode(tree); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	wrapper := vector.NewFunctionResultWrapper(*opts.TargetType)
	for i := 0; i < length; i++ {
		t := terminal{miss: true}
		if alive[i] {
			node, ok, err := terminalAt(i)
			if err != nil {
				return nil, err
			}
			if ok {
				if t, err = terminalOfVariant(node); err != nil {
					return nil, err
				}
			}
		}
		if err := appendTerminal(wrapper, *opts.TargetType, t, opts.CastPolicy); err != nil {
			return nil, err
		}
	}
	return wrapper.GetResultVector(), nil
}
