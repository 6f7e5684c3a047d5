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
	"math"
	"sort"

	"github.com/matrixorigin/variant/pkg/common/moerr"
)

// Encode compiles a Node tree into an independent (metadata, value)
// byte pair. Object fields are written sorted by field name, which is
// the canonical encoded order; the metadata dictionary is sorted too.
func Encode(n Node) ([]byte, []byte, error) {
	var names []string
	seen := map[string]struct{}{}
	collectNames(n, seen, &names)
	metadata, ids := buildMetadata(names)
	value, err := encodeNode(n, ids)
	if err != nil {
		return nil, nil, err
	}
	return metadata, value, nil
}

func collectNames(n Node, seen map[string]struct{}, names *[]string) {
	switch n.Kind {
	case KindArray:
		for _, e := range n.Elems {
			collectNames(e, seen, names)
		}
	case KindObject:
		for i, k := range n.Keys {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				*names = append(*names, k)
			}
			collectNames(n.Fields[i], seen, names)
		}
	}
}

func encodeNode(n Node, ids map[string]int) ([]byte, error) {
	switch n.Kind {
	case KindNull:
		return []byte{primNull << 2}, nil
	case KindBool:
		if n.Bool {
			return []byte{primTrue << 2}, nil
		}
		return []byte{primFalse << 2}, nil
	case KindInt8:
		return []byte{primInt8 << 2, byte(n.Int)}, nil
	case KindInt16:
		buf := []byte{primInt16 << 2, 0, 0}
		endian.PutUint16(buf[1:], uint16(n.Int))
		return buf, nil
	case KindInt32:
		buf := []byte{primInt32 << 2, 0, 0, 0, 0}
		endian.PutUint32(buf[1:], uint32(n.Int))
		return buf, nil
	case KindInt64:
		buf := make([]byte, 9)
		buf[0] = primInt64 << 2
		endian.PutUint64(buf[1:], uint64(n.Int))
		return buf, nil
	case KindFloat64:
		buf := make([]byte, 9)
		buf[0] = primDouble << 2
		endian.PutUint64(buf[1:], math.Float64bits(n.Float))
		return buf, nil
	case KindString:
		if len(n.Str) <= shortStrMax {
			buf := make([]byte, 0, 1+len(n.Str))
			buf = append(buf, byte(basicShortString)|byte(len(n.Str))<<2)
			return append(buf, n.Str...), nil
		}
		return encodeLenPrefixed(primString, n.Str), nil
	case KindBinary:
		return encodeLenPrefixed(primBinary, n.Str), nil
	case KindArray:
		return encodeArray(n, ids)
	case KindObject:
		return encodeObject(n, ids)
	}
	return nil, moerr.NewInvalidArgNoCtx("variant encode of kind", n.Kind.String())
}

func encodeLenPrefixed(prim byte, b []byte) []byte {
	buf := make([]byte, 0, 1+strLenSize+len(b))
	buf = append(buf, prim<<2)
	buf = appendUint(buf, len(b), strLenSize)
	return append(buf, b...)
}

func encodeArray(n Node, ids map[string]int) ([]byte, error) {
	cnt := len(n.Elems)
	vals := make([][]byte, cnt)
	offsets := make([]int, cnt+1)
	var total int
	for i, e := range n.Elems {
		v, err := encodeNode(e, ids)
		if err != nil {
			return nil, err
		}
		vals[i] = v
		offsets[i] = total
		total += len(v)
	}
	offsets[cnt] = total

	offSize := uintSize(total)
	numSize, largeBit := 1, byte(0)
	if cnt > smallMax {
		numSize, largeBit = 4, arrLargeBit
	}
	buf := make([]byte, 0, 1+numSize+(cnt+1)*offSize+total)
	buf = append(buf, byte(basicArray)|byte(offSize-1)<<2|largeBit)
	buf = appendUint(buf, cnt, numSize)
	for _, off := range offsets {
		buf = appendUint(buf, off, offSize)
	}
	for _, v := range vals {
		buf = append(buf, v...)
	}
	return buf, nil
}

func encodeObject(n Node, ids map[string]int) ([]byte, error) {
	cnt := len(n.Keys)
	order := make([]int, cnt)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return n.Keys[order[a]] < n.Keys[order[b]]
	})

	vals := make([][]byte, cnt)
	offsets := make([]int, cnt+1)
	fieldIDs := make([]int, cnt)
	var total, maxID int
	for i, idx := range order {
		v, err := encodeNode(n.Fields[idx], ids)
		if err != nil {
			return nil, err
		}
		vals[i] = v
		offsets[i] = total
		total += len(v)
		fieldIDs[i] = ids[n.Keys[idx]]
		if fieldIDs[i] > maxID {
			maxID = fieldIDs[i]
		}
	}
	offsets[cnt] = total

	offSize := uintSize(total)
	idSize := uintSize(maxID)
	numSize, largeBit := 1, byte(0)
	if cnt > smallMax {
		numSize, largeBit = 4, objLargeBit
	}
	buf := make([]byte, 0, 1+numSize+cnt*idSize+(cnt+1)*offSize+total)
	buf = append(buf, byte(basicObject)|byte(offSize-1)<<2|byte(idSize-1)<<4|largeBit)
	buf = appendUint(buf, cnt, numSize)
	for _, id := range fieldIDs {
		buf = appendUint(buf, id, idSize)
	}
	for _, off := range offsets {
		buf = appendUint(buf, off, offSize)
	}
	for _, v := range vals {
		buf = append(buf, v...)
	}
	return buf, nil
}
