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

package vector

import (
	"github.com/matrixorigin/variant/pkg/common/moerr"
	"github.com/matrixorigin/variant/pkg/container/nulls"
	"github.com/matrixorigin/variant/pkg/container/types"
)

// FunctionParameterWrapper is the typed read wrapper a kernel uses to
// consume one input vector.
type FunctionParameterWrapper[T types.FixedSizeT] interface {
	GetType() types.Type
	GetSourceVector() *Vector
	GetValue(idx uint64) (T, bool)
	GetStrValue(idx uint64) ([]byte, bool)
}

type functionParameterNormal[T types.FixedSizeT] struct {
	typ          types.Type
	sourceVector *Vector
	values       []T
	nsp          *nulls.Nulls
}

func GenerateFunctionFixedTypeParameter[T types.FixedSizeT](v *Vector) FunctionParameterWrapper[T] {
	return &functionParameterNormal[T]{
		typ:          v.GetType(),
		sourceVector: v,
		values:       MustFixedCol[T](v),
		nsp:          v.GetNulls(),
	}
}

func (p *functionParameterNormal[T]) GetType() types.Type {
	return p.typ
}

func (p *functionParameterNormal[T]) GetSourceVector() *Vector {
	return p.sourceVector
}

func (p *functionParameterNormal[T]) GetValue(idx uint64) (T, bool) {
	if nulls.Contains(p.nsp, idx) {
		var zero T
		return zero, true
	}
	return p.values[idx], false
}

func (p *functionParameterNormal[T]) GetStrValue(idx uint64) ([]byte, bool) {
	if nulls.Contains(p.nsp, idx) {
		return nil, true
	}
	return p.sourceVector.GetBytesAt(int(idx)), false
}

// GenerateFunctionStrParameter wraps a varchar vector. The fixed type
// parameter is irrelevant for string access.
func GenerateFunctionStrParameter(v *Vector) FunctionParameterWrapper[uint8] {
	return &functionParameterNormal[uint8]{
		typ:          v.GetType(),
		sourceVector: v,
		nsp:          v.GetNulls(),
	}
}

// FunctionResultWrapper is the untyped handle to a kernel's output
// vector.
type FunctionResultWrapper interface {
	GetResultVector() *Vector
}

// FunctionResult is the typed append wrapper over an output vector.
type FunctionResult[T types.FixedSizeT] struct {
	vec *Vector
}

func NewFunctionResultWrapper(typ types.Type) FunctionResultWrapper {
	vec := NewVec(typ)
	switch typ.Oid {
	case types.T_bool:
		return &FunctionResult[bool]{vec: vec}
	case types.T_int8:
		return &FunctionResult[int8]{vec: vec}
	case types.T_int16:
		return &FunctionResult[int16]{vec: vec}
	case types.T_int32:
		return &FunctionResult[int32]{vec: vec}
	case types.T_int64:
		return &FunctionResult[int64]{vec: vec}
	case types.T_uint8:
		return &FunctionResult[uint8]{vec: vec}
	case types.T_uint16:
		return &FunctionResult[uint16]{vec: vec}
	case types.T_uint32:
		return &FunctionResult[uint32]{vec: vec}
	case types.T_uint64:
		return &FunctionResult[uint64]{vec: vec}
	case types.T_float64:
		return &FunctionResult[float64]{vec: vec}
	case types.T_varchar:
		return &FunctionResult[uint8]{vec: vec}
	}
	panic(moerr.NewInternalErrorNoCtx("unsupported result type %s", typ))
}

func MustFunctionResult[T types.FixedSizeT](wrapper FunctionResultWrapper) *FunctionResult[T] {
	if fr, ok := wrapper.(*FunctionResult[T]); ok {
		return fr
	}
	panic(moerr.NewInternalErrorNoCtx("mismatched function result type"))
}

func (fr *FunctionResult[T]) Append(val T, isnull bool) error {
	return AppendFixed(fr.vec, val, isnull)
}

func (fr *FunctionResult[T]) AppendBytes(val []byte, isnull bool) error {
	return AppendBytes(fr.vec, val, isnull)
}

func (fr *FunctionResult[T]) GetType() types.Type {
	return fr.vec.GetType()
}

func (fr *FunctionResult[T]) GetResultVector() *Vector {
	return fr.vec
}
