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

// Package variant implements a self-describing binary encoding for
// semi-structured values. A value is a (metadata, value) byte pair: the
// metadata blob holds the dictionary of object field names, the value
// blob holds the encoded node tree with nested byte offsets.
//
// A Variant is a borrowed view into those buffers. Navigation reports
// byte offsets relative to the current node so that a caller can walk
// nested values without decoding intermediate subtrees.
package variant

import (
	"math"

	"github.com/matrixorigin/variant/pkg/common/moerr"
)

// Variant is a borrowed, non-owning view of one encoded node. It must
// not outlive the buffers it was created from.
type Variant struct {
	meta Metadata
	data []byte
	off  int
	kind Kind
}

// New parses the metadata blob and returns a view of the root node of
// the value blob.
func New(metadata, value []byte) (Variant, error) {
	m, err := ParseMetadata(metadata)
	if err != nil {
		return Variant{}, err
	}
	return NewAtOffset(m, value, 0)
}

// NewAtOffset decodes the node header at the given byte offset of the
// value blob. Only the header is validated here, nested children are
// checked when they are visited themselves. A structurally corrupt
// header is an error, never a null.
func NewAtOffset(meta Metadata, value []byte, off int) (Variant, error) {
	if off < 0 || off >= len(value) {
		return Variant{}, moerr.NewInvalidStateNoCtx("corrupt variant: offset %d out of value bounds %d", off, len(value))
	}
	v := Variant{meta: meta, data: value, off: off}
	h := value[off]
	switch basicType(h & 3) {
	case basicPrimitive:
		kind, size, err := primKindSize(h >> 2)
		if err != nil {
			return Variant{}, err
		}
		if size < 0 {
			// length-prefixed binary or string
			if err := v.checkLen(1 + strLenSize); err != nil {
				return Variant{}, err
			}
			n := readUint(value[off+1:], strLenSize)
			if err := v.checkLen(1 + strLenSize + n); err != nil {
				return Variant{}, err
			}
		} else if err := v.checkLen(1 + size); err != nil {
			return Variant{}, err
		}
		v.kind = kind
	case basicShortString:
		if err := v.checkLen(1 + int(h>>2)); err != nil {
			return Variant{}, err
		}
		v.kind = KindString
	case basicObject:
		if _, err := v.objHeader(); err != nil {
			return Variant{}, err
		}
		v.kind = KindObject
	case basicArray:
		if _, err := v.arrHeader(); err != nil {
			return Variant{}, err
		}
		v.kind = KindArray
	}
	return v, nil
}

func primKindSize(id byte) (Kind, int, error) {
	switch id {
	case primNull:
		return KindNull, 0, nil
	case primTrue, primFalse:
		return KindBool, 0, nil
	case primInt8:
		return KindInt8, 1, nil
	case primInt16:
		return KindInt16, 2, nil
	case primInt32:
		return KindInt32, 4, nil
	case primInt64:
		return KindInt64, 8, nil
	case primDouble:
		return KindFloat64, 8, nil
	case primBinary:
		return KindBinary, -1, nil
	case primString:
		return KindString, -1, nil
	}
	return KindNull, 0, moerr.NewInvalidStateNoCtx("corrupt variant: unknown primitive type %d", id)
}

func (v Variant) checkLen(n int) error {
	if v.off+n > len(v.data) {
		return moerr.NewInvalidStateNoCtx("corrupt variant: node at %d needs %d bytes, value has %d", v.off, n, len(v.data))
	}
	return nil
}

// Kind returns the decoded node kind.
func (v Variant) Kind() Kind {
	return v.kind
}

// IsNull reports whether the node is the encoded null value.
func (v Variant) IsNull() bool {
	return v.kind == KindNull
}

// Metadata returns the parsed metadata view the node was created with.
func (v Variant) Metadata() Metadata {
	return v.meta
}

// container header parsing

type containerHeader struct {
	count int
	// byte size of the header itself: header byte, count, id table
	// (objects only) and offset table
	prefix int
	// offsets into this node's bytes
	idsOff, offsOff int
	idSize, offSize int
}

func (v Variant) objHeader() (containerHeader, error) {
	h := v.data[v.off]
	var ch containerHeader
	ch.offSize = int(h>>2)&3 + 1
	ch.idSize = int(h>>4)&3 + 1
	numSize := 1
	if h&objLargeBit != 0 {
		numSize = 4
	}
	if err := v.checkLen(1 + numSize); err != nil {
		return ch, err
	}
	ch.count = readUint(v.data[v.off+1:], numSize)
	ch.idsOff = 1 + numSize
	ch.offsOff = ch.idsOff + ch.count*ch.idSize
	ch.prefix = ch.offsOff + (ch.count+1)*ch.offSize
	if err := v.checkLen(ch.prefix); err != nil {
		return ch, err
	}
	total := readUint(v.data[v.off+ch.offsOff+ch.count*ch.offSize:], ch.offSize)
	if err := v.checkLen(ch.prefix + total); err != nil {
		return ch, err
	}
	return ch, nil
}

func (v Variant) arrHeader() (containerHeader, error) {
	h := v.data[v.off]
	var ch containerHeader
	ch.offSize = int(h>>2)&3 + 1
	numSize := 1
	if h&arrLargeBit != 0 {
		numSize = 4
	}
	if err := v.checkLen(1 + numSize); err != nil {
		return ch, err
	}
	ch.count = readUint(v.data[v.off+1:], numSize)
	ch.offsOff = 1 + numSize
	ch.prefix = ch.offsOff + (ch.count+1)*ch.offSize
	if err := v.checkLen(ch.prefix); err != nil {
		return ch, err
	}
	total := readUint(v.data[v.off+ch.offsOff+ch.count*ch.offSize:], ch.offSize)
	if err := v.checkLen(ch.prefix + total); err != nil {
		return ch, err
	}
	return ch, nil
}

// Len returns the element count of an array node or the field count of
// an object node.
func (v Variant) Len() (int, error) {
	switch v.kind {
	case KindArray:
		ch, err := v.arrHeader()
		if err != nil {
			return 0, err
		}
		return ch.count, nil
	case KindObject:
		ch, err := v.objHeader()
		if err != nil {
			return 0, err
		}
		return ch.count, nil
	}
	return 0, moerr.NewInvalidArgNoCtx("variant length of kind", v.kind.String())
}

// FieldOffset returns the byte offset, relative to this object node's
// start, of the value bound to name. The second return is false when
// the field is absent from this object; absence is not an error.
func (v Variant) FieldOffset(name string) (int, bool, error) {
	if v.kind != KindObject {
		return 0, false, moerr.NewInvalidArgNoCtx("variant field of kind", v.kind.String())
	}
	id, ok := v.meta.IdOf(name)
	if !ok {
		return 0, false, nil
	}
	ch, err := v.objHeader()
	if err != nil {
		return 0, false, err
	}
	for i := 0; i < ch.count; i++ {
		if readUint(v.data[v.off+ch.idsOff+i*ch.idSize:], ch.idSize) == id {
			return ch.prefix + readUint(v.data[v.off+ch.offsOff+i*ch.offSize:], ch.offSize), true, nil
		}
	}
	// the name is dictionary-known but not carried by this object
	return 0, false, nil
}

// FieldAt returns the name and node view of the i-th field of an
// object node, in encoded order.
func (v Variant) FieldAt(i int) (string, Variant, error) {
	if v.kind != KindObject {
		return "", Variant{}, moerr.NewInvalidArgNoCtx("variant field of kind", v.kind.String())
	}
	ch, err := v.objHeader()
	if err != nil {
		return "", Variant{}, err
	}
	if i < 0 || i >= ch.count {
		return "", Variant{}, moerr.NewInvalidArgNoCtx("variant field index", i)
	}
	name, err := v.meta.Name(readUint(v.data[v.off+ch.idsOff+i*ch.idSize:], ch.idSize))
	if err != nil {
		return "", Variant{}, err
	}
	rel := ch.prefix + readUint(v.data[v.off+ch.offsOff+i*ch.offSize:], ch.offSize)
	child, err := NewAtOffset(v.meta, v.data, v.off+rel)
	if err != nil {
		return "", Variant{}, err
	}
	return name, child, nil
}

// ElemOffset returns the byte offset, relative to this array node's
// start, of the element at index i. The caller is expected to have
// checked i against Len already.
func (v Variant) ElemOffset(i int) (int, error) {
	if v.kind != KindArray {
		return 0, moerr.NewInvalidArgNoCtx("variant element of kind", v.kind.String())
	}
	ch, err := v.arrHeader()
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= ch.count {
		return 0, moerr.NewInvalidArgNoCtx("variant element index", i)
	}
	return ch.prefix + readUint(v.data[v.off+ch.offsOff+i*ch.offSize:], ch.offSize), nil
}

// ElemAt returns the node view of the element at index i.
func (v Variant) ElemAt(i int) (Variant, error) {
	rel, err := v.ElemOffset(i)
	if err != nil {
		return Variant{}, err
	}
	return NewAtOffset(v.meta, v.data, v.off+rel)
}

// Child returns the node view at a byte offset relative to this node,
// as previously reported by FieldOffset or ElemOffset.
func (v Variant) Child(rel int) (Variant, error) {
	return NewAtOffset(v.meta, v.data, v.off+rel)
}

// scalar accessors; the payload bounds were checked at construction

// Bool returns the value of a bool node.
func (v Variant) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, moerr.NewInvalidArgNoCtx("variant bool of kind", v.kind.String())
	}
	return v.data[v.off]>>2 == primTrue, nil
}

// Int64 returns the value of any integer node widened to 64 bits.
func (v Variant) Int64() (int64, error) {
	p := v.data[v.off+1:]
	switch v.kind {
	case KindInt8:
		return int64(int8(p[0])), nil
	case KindInt16:
		return int64(int16(endian.Uint16(p))), nil
	case KindInt32:
		return int64(int32(endian.Uint32(p))), nil
	case KindInt64:
		return int64(endian.Uint64(p)), nil
	}
	return 0, moerr.NewInvalidArgNoCtx("variant int of kind", v.kind.String())
}

// Float64 returns the value of a double node.
func (v Variant) Float64() (float64, error) {
	if v.kind != KindFloat64 {
		return 0, moerr.NewInvalidArgNoCtx("variant float of kind", v.kind.String())
	}
	return math.Float64frombits(endian.Uint64(v.data[v.off+1:])), nil
}

// StringBytes returns the bytes of a string or binary node, borrowed
// from the value blob.
func (v Variant) StringBytes() ([]byte, error) {
	h := v.data[v.off]
	if basicType(h&3) == basicShortString {
		n := int(h >> 2)
		return v.data[v.off+1 : v.off+1+n], nil
	}
	switch v.kind {
	case KindString, KindBinary:
		n := readUint(v.data[v.off+1:], strLenSize)
		return v.data[v.off+1+strLenSize : v.off+1+strLenSize+n], nil
	}
	return nil, moerr.NewInvalidArgNoCtx("variant string of kind", v.kind.String())
}
