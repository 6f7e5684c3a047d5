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

import (
	"sort"

	"github.com/matrixorigin/variant/pkg/common/moerr"
	"github.com/matrixorigin/variant/pkg/common/util"
)

// Metadata is a parsed view of a metadata blob: the dictionary of field
// names shared by every object node of one value blob. It borrows the
// underlying bytes and owns nothing.
type Metadata struct {
	raw        []byte
	offSize    int
	dictSize   int
	offsetsOff int
	bytesOff   int
	sorted     bool
}

// ParseMetadata validates the header of a metadata blob and returns a
// view over it.
func ParseMetadata(raw []byte) (Metadata, error) {
	if len(raw) < 1 {
		return Metadata{}, moerr.NewInvalidStateNoCtx("corrupt variant: empty metadata")
	}
	h := raw[0]
	if h&0b1111 != metaVersion {
		return Metadata{}, moerr.NewInvalidStateNoCtx("corrupt variant: bad metadata version %d", h&0b1111)
	}
	m := Metadata{
		raw:     raw,
		offSize: int(h>>6) + 1,
		sorted:  h&metaSortedBit != 0,
	}
	if len(raw) < 1+m.offSize {
		return Metadata{}, moerr.NewInvalidStateNoCtx("corrupt variant: short metadata")
	}
	m.dictSize = readUint(raw[1:], m.offSize)
	m.offsetsOff = 1 + m.offSize
	m.bytesOff = m.offsetsOff + (m.dictSize+1)*m.offSize
	if m.bytesOff > len(raw) {
		return Metadata{}, moerr.NewInvalidStateNoCtx("corrupt variant: metadata offsets out of bounds")
	}
	// the name-offset table must be monotonic and in bounds, or Name
	// would slice outside the blob
	prev := 0
	for i := 0; i <= m.dictSize; i++ {
		off := m.nameEnd(i)
		if off < prev {
			return Metadata{}, moerr.NewInvalidStateNoCtx("corrupt variant: metadata name offset %d decreases", i)
		}
		if m.bytesOff+off > len(raw) {
			return Metadata{}, moerr.NewInvalidStateNoCtx("corrupt variant: metadata names out of bounds")
		}
		prev = off
	}
	return m, nil
}

func (m Metadata) nameEnd(i int) int {
	return readUint(m.raw[m.offsetsOff+i*m.offSize:], m.offSize)
}

// DictSize returns the number of names in the dictionary.
func (m Metadata) DictSize() int {
	return m.dictSize
}

// Name returns the dictionary entry for a field id. The returned
// string borrows the metadata blob.
func (m Metadata) Name(id int) (string, error) {
	if id < 0 || id >= m.dictSize {
		return "", moerr.NewInvalidStateNoCtx("corrupt variant: field id %d out of dictionary range %d", id, m.dictSize)
	}
	start, end := m.nameEnd(id), m.nameEnd(id+1)
	return util.UnsafeBytesToString(m.raw[m.bytesOff+start : m.bytesOff+end]), nil
}

// IdOf returns the field id bound to name, or false if the name is not
// in the dictionary.
func (m Metadata) IdOf(name string) (int, bool) {
	if m.sorted {
		i := sort.Search(m.dictSize, func(i int) bool {
			n, _ := m.Name(i)
			return n >= name
		})
		if i < m.dictSize {
			if n, _ := m.Name(i); n == name {
				return i, true
			}
		}
		return 0, false
	}
	for i := 0; i < m.dictSize; i++ {
		if n, _ := m.Name(i); n == name {
			return i, true
		}
	}
	return 0, false
}

// buildMetadata compiles a sorted dictionary blob from the given names.
// Names must be deduplicated by the caller; ids are assigned in sorted
// order.
func buildMetadata(names []string) ([]byte, map[string]int) {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	var total int
	for _, n := range sorted {
		total += len(n)
	}
	maxVal := total
	if len(sorted) > maxVal {
		maxVal = len(sorted)
	}
	offSize := uintSize(maxVal)

	blob := make([]byte, 0, 1+(len(sorted)+2)*offSize+total)
	blob = append(blob, metaVersion|metaSortedBit|byte(offSize-1)<<6)
	blob = appendUint(blob, len(sorted), offSize)
	off := 0
	for _, n := range sorted {
		blob = appendUint(blob, off, offSize)
		off += len(n)
	}
	blob = appendUint(blob, off, offSize)
	ids := make(map[string]int, len(sorted))
	for i, n := range sorted {
		blob = append(blob, n...)
		ids[n] = i
	}
	return blob, ids
}

func readUint(b []byte, size int) int {
	switch size {
	case 1:
		return int(b[0])
	case 2:
		return int(endian.Uint16(b))
	case 3:
		return int(b[0]) | int(b[1])<<8 | int(b[2])<<16
	default:
		return int(endian.Uint32(b))
	}
}

func appendUint(b []byte, v, size int) []byte {
	switch size {
	case 1:
		return append(b, byte(v))
	case 2:
		return append(b, byte(v), byte(v>>8))
	case 3:
		return append(b, byte(v), byte(v>>8), byte(v>>16))
	default:
		return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
}

func uintSize(maxVal int) int {
	switch {
	case maxVal > 0xffff:
		return 4
	case maxVal > 0xff:
		return 2
	default:
		return 1
	}
}
