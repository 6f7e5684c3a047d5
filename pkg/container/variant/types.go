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

package variant

import "encoding/binary"

// Kind is the decoded node kind of a variant value.
type Kind byte

const (
	KindNull Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat64
	KindString
	KindBinary
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// IsScalar reports whether the kind is neither a container nor null.
func (k Kind) IsScalar() bool {
	return k != KindNull && k != KindArray && k != KindObject
}

func (k Kind) IsInteger() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
	return false
}

// basic type, low two bits of a value header byte
type basicType byte

const (
	basicPrimitive   basicType = 0
	basicShortString basicType = 1
	basicObject      basicType = 2
	basicArray       basicType = 3
)

// primitive type ids, upper six bits of a primitive header byte
const (
	primNull   byte = 0
	primTrue   byte = 1
	primFalse  byte = 2
	primInt8   byte = 3
	primInt16  byte = 4
	primInt32  byte = 5
	primInt64  byte = 6
	primDouble byte = 7
	primBinary byte = 15
	primString byte = 16
)

const (
	metaVersion   byte = 1
	metaSortedBit byte = 0b10000

	// object header bits: basicObject | offSize<<2 | idSize<<4 | large<<6
	// array header bits:  basicArray | offSize<<2 | large<<4
	objLargeBit byte = 0b100_0000
	arrLargeBit byte = 0b1_0000

	// long string and binary carry a 4-byte length
	strLenSize = 4

	shortStrMax = 63
	smallMax    = 255
)

var endian = binary.LittleEndian
