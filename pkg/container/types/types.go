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

package types

import "fmt"

type T uint8

const (
	// T_any is the unknown type.
	T_any T = 0

	T_bool T = 10

	T_int8  T = 20
	T_int16 T = 21
	T_int32 T = 22
	T_int64 T = 23

	T_uint8  T = 30
	T_uint16 T = 31
	T_uint32 T = 32
	T_uint64 T = 33

	T_float64 T = 41

	T_varchar T = 61

	// T_variant is the self-describing (metadata, value) pair type.
	// Columns of this type live in a VariantVector, not a Vector.
	T_variant T = 70
)

type Type struct {
	Oid T

	// Size is the fixed-width byte size of one value, 0 for
	// variable-length types.
	Size int32

	Width int32
	Scale int32
}

func New(oid T) Type {
	return Type{Oid: oid, Size: int32(oid.TypeLen())}
}

func (t T) ToType() Type {
	return New(t)
}

func (t T) TypeLen() int {
	switch t {
	case T_bool, T_int8, T_uint8:
		return 1
	case T_int16, T_uint16:
		return 2
	case T_int32, T_uint32:
		return 4
	case T_int64, T_uint64, T_float64:
		return 8
	case T_varchar, T_variant, T_any:
		return 0
	}
	panic(fmt.Sprintf("unknown type %d", t))
}

func (t T) String() string {
	switch t {
	case T_any:
		return "ANY"
	case T_bool:
		return "BOOL"
	case T_int8:
		return "TINYINT"
	case T_int16:
		return "SMALLINT"
	case T_int32:
		return "INT"
	case T_int64:
		return "BIGINT"
	case T_uint8:
		return "TINYINT UNSIGNED"
	case T_uint16:
		return "SMALLINT UNSIGNED"
	case T_uint32:
		return "INT UNSIGNED"
	case T_uint64:
		return "BIGINT UNSIGNED"
	case T_float64:
		return "DOUBLE"
	case T_varchar:
		return "VARCHAR"
	case T_variant:
		return "VARIANT"
	}
	return fmt.Sprintf("unexpected_type(%d)", t)
}

func (t Type) String() string {
	return t.Oid.String()
}

func (t Type) IsFixedLen() bool {
	return t.Oid.TypeLen() > 0
}

func (t Type) IsInteger() bool {
	return t.IsSignedInt() || t.IsUnsignedInt()
}

func (t Type) IsSignedInt() bool {
	switch t.Oid {
	case T_int8, T_int16, T_int32, T_int64:
		return true
	}
	return false
}

func (t Type) IsUnsignedInt() bool {
	switch t.Oid {
	case T_uint8, T_uint16, T_uint32, T_uint64:
		return true
	}
	return false
}

// FixedSizeT is the constraint for types that can live in a fixed-width
// column.
type FixedSizeT interface {
	bool | int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 | float64
}
