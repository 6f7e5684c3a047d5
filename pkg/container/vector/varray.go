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

package vector

import (
	"github.com/matrixorigin/variant/pkg/common/moerr"
	"github.com/matrixorigin/variant/pkg/common/util"
	"github.com/matrixorigin/variant/pkg/container/nulls"
	"github.com/matrixorigin/variant/pkg/container/types"
	"github.com/matrixorigin/variant/pkg/container/variant"
)

// VariantVector holds one column of encoded variant values: per row a
// (metadata, value) byte pair, plus a null mask. The vector owns the
// backing buffers of every non-null row; views handed out by ValueAt
// borrow them and must not outlive the vector.
type VariantVector struct {
	nsp *nulls.Nulls

	meta [][]byte
	val  [][]byte

	length int
}

func NewVariantVector(capacity int) *VariantVector {
	return &VariantVector{
		nsp:  &nulls.Nulls{},
		meta: make([][]byte, 0, capacity),
		val:  make([][]byte, 0, capacity),
	}
}

func (v *VariantVector) Length() int {
	return v.length
}

func (v *VariantVector) GetType() types.Type {
	return types.T_variant.ToType()
}

func (v *VariantVector) GetNulls() *nulls.Nulls {
	return v.nsp
}

func (v *VariantVector) IsNull(i uint64) bool {
	return nulls.Contains(v.nsp, i)
}

// Append copies one (metadata, value) pair into the vector.
func (v *VariantVector) Append(metadata, value []byte) {
	v.meta = append(v.meta, util.CloneBytes(metadata))
	v.val = append(v.val, util.CloneBytes(value))
	v.length++
}

func (v *VariantVector) AppendNull() {
	v.meta = append(v.meta, nil)
	v.val = append(v.val, nil)
	nulls.Add(v.nsp, uint64(v.length))
	v.length++
}

// AppendNode encodes a decoded tree and appends the result.
func (v *VariantVector) AppendNode(n variant.Node) error {
	metadata, value, err := variant.Encode(n)
	if err != nil {
		return err
	}
	v.meta = append(v.meta, metadata)
	v.val = append(v.val, value)
	v.length++
	return nil
}

// MetaAt returns the raw metadata blob of row i.
func (v *VariantVector) MetaAt(i int) []byte {
	return v.meta[i]
}

// ValAt returns the raw value blob of row i.
func (v *VariantVector) ValAt(i int) []byte {
	return v.val[i]
}

// ValueAt returns a borrowed view of the root node of row i.
func (v *VariantVector) ValueAt(i int) (variant.Variant, error) {
	return v.ValueAtOffset(i, 0)
}

// ValueAtOffset returns a borrowed view of the node at the given byte
// offset within row i's value blob. The row must not be null.
func (v *VariantVector) ValueAtOffset(i int, off int) (variant.Variant, error) {
	if v.IsNull(uint64(i)) {
		return variant.Variant{}, moerr.NewInternalErrorNoCtx("variant access to null row %d", i)
	}
	m, err := variant.ParseMetadata(v.meta[i])
	if err != nil {
		return variant.Variant{}, err
	}
	return variant.NewAtOffset(m, v.val[i], off)
}

// Window returns a view over rows [start, end). The view shares the
// row buffers with v and carries a rebased copy of the null mask.
func (v *VariantVector) Window(start, end int) *VariantVector {
	w := &VariantVector{
		nsp:    &nulls.Nulls{},
		meta:   v.meta[start:end],
		val:    v.val[start:end],
		length: end - start,
	}
	nulls.Range(v.nsp, uint64(start), uint64(end), uint64(start), w.nsp)
	return w
}
