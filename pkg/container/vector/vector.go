// Copyright 2021 Matrix Origin
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

// Package vector provides the columnar containers of this module: the
// fixed-width / varchar Vector and the VariantVector of encoded
// (metadata, value) byte pairs.
package vector

import (
	"fmt"

	"github.com/matrixorigin/variant/pkg/common/moerr"
	"github.com/matrixorigin/variant/pkg/common/util"
	"github.com/matrixorigin/variant/pkg/container/nulls"
	"github.com/matrixorigin/variant/pkg/container/types"
)

// AnyVector is the common read surface of Vector and VariantVector.
type AnyVector interface {
	Length() int
	GetType() types.Type
	GetNulls() *nulls.Nulls
}

// Vector holds one column of fixed-width or varchar values with a
// null mask.
type Vector struct {
	typ types.Type
	nsp *nulls.Nulls

	// fixed-width data, one typ.Size chunk per row
	data []byte
	// var-len data, one slice per row
	bytes [][]byte

	length int
}

func NewVec(typ types.Type) *Vector {
	return &Vector{typ: typ, nsp: &nulls.Nulls{}}
}

func (v *Vector) Length() int {
	return v.length
}

func (v *Vector) GetType() types.Type {
	return v.typ
}

func (v *Vector) GetNulls() *nulls.Nulls {
	return v.nsp
}

func (v *Vector) IsNull(i uint64) bool {
	return nulls.Contains(v.nsp, i)
}

func (v *Vector) String() string {
	return fmt.Sprintf("%s-%s", v.typ, nulls.String(v.nsp))
}

// AppendFixed appends one fixed-width value. A null row still occupies
// a zero-valued slot so that row indexes stay aligned.
func AppendFixed[T types.FixedSizeT](v *Vector, val T, isNull bool) error {
	if !v.typ.IsFixedLen() {
		return moerr.NewInternalErrorNoCtx("append fixed to %s vector", v.typ)
	}
	if isNull {
		var zero T
		val = zero
		nulls.Add(v.nsp, uint64(v.length))
	}
	v.data = append(v.data, types.EncodeFixed(val)...)
	v.length++
	return nil
}

// AppendBytes appends one varchar value, copying val.
func AppendBytes(v *Vector, val []byte, isNull bool) error {
	if v.typ.IsFixedLen() {
		return moerr.NewInternalErrorNoCtx("append bytes to %s vector", v.typ)
	}
	if isNull {
		val = nil
		nulls.Add(v.nsp, uint64(v.length))
	}
	v.bytes = append(v.bytes, util.CloneBytesIf(val, !isNull))
	v.length++
	return nil
}

// MustFixedCol returns the whole fixed-width column as a typed slice
// sharing the vector's storage.
func MustFixedCol[T types.FixedSizeT](v *Vector) []T {
	return types.DecodeSlice[T](v.data)
}

// GetFixedAt returns the value at row i of a fixed-width column.
func GetFixedAt[T types.FixedSizeT](v *Vector, i int) T {
	return MustFixedCol[T](v)[i]
}

// GetBytesAt returns the value at row i of a varchar column.
func (v *Vector) GetBytesAt(i int) []byte {
	return v.bytes[i]
}
