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
	"strconv"
	"strings"
)

// Node is a fully decoded variant value, owning its contents. It is
// used by the row-wise extraction strategy and by re-encoding.
type Node struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Str   []byte
	Elems []Node
	// object fields, Keys parallel to Fields
	Keys   []string
	Fields []Node
}

func NullNode() Node             { return Node{Kind: KindNull} }
func BoolNode(b bool) Node       { return Node{Kind: KindBool, Bool: b} }
func Int64Node(i int64) Node     { return Node{Kind: KindInt64, Int: i} }
func Float64Node(f float64) Node { return Node{Kind: KindFloat64, Float: f} }
func StringNode(s string) Node   { return Node{Kind: KindString, Str: []byte(s)} }
func BinaryNode(b []byte) Node   { return Node{Kind: KindBinary, Str: b} }
func ArrayNode(es ...Node) Node  { return Node{Kind: KindArray, Elems: es} }

func ObjectNode(keys []string, fields []Node) Node {
	return Node{Kind: KindObject, Keys: keys, Fields: fields}
}

// Field returns the value bound to name and whether the name is
// present.
func (n Node) Field(name string) (Node, bool) {
	for i, k := range n.Keys {
		if k == name {
			return n.Fields[i], true
		}
	}
	return Node{}, false
}

// Decode copies the whole subtree under v into an owning Node.
func (v Variant) Decode() (Node, error) {
	switch v.kind {
	case KindNull:
		return NullNode(), nil
	case KindBool:
		b, err := v.Bool()
		if err != nil {
			return Node{}, err
		}
		return BoolNode(b), nil
	case KindInt8, KindInt16, KindInt32, KindInt64:
		i, err := v.Int64()
		if err != nil {
			return Node{}, err
		}
		return Node{Kind: v.kind, Int: i}, nil
	case KindFloat64:
		f, err := v.Float64()
		if err != nil {
			return Node{}, err
		}
		return Float64Node(f), nil
	case KindString, KindBinary:
		b, err := v.StringBytes()
		if err != nil {
			return Node{}, err
		}
		cp := make([]byte, len(b))
		copy(cp, b)
		return Node{Kind: v.kind, Str: cp}, nil
	case KindArray:
		cnt, err := v.Len()
		if err != nil {
			return Node{}, err
		}
		elems := make([]Node, cnt)
		for i := 0; i < cnt; i++ {
			child, err := v.ElemAt(i)
			if err != nil {
				return Node{}, err
			}
			if elems[i], err = child.Decode(); err != nil {
				return Node{}, err
			}
		}
		return Node{Kind: KindArray, Elems: elems}, nil
	case KindObject:
		cnt, err := v.Len()
		if err != nil {
			return Node{}, err
		}
		keys := make([]string, cnt)
		fields := make([]Node, cnt)
		for i := 0; i < cnt; i++ {
			name, child, err := v.FieldAt(i)
			if err != nil {
				return Node{}, err
			}
			// names borrow the metadata blob, the tree owns its keys
			keys[i] = strings.Clone(name)
			if fields[i], err = child.Decode(); err != nil {
				return Node{}, err
			}
		}
		return Node{Kind: KindObject, Keys: keys, Fields: fields}, nil
	}
	return Node{}, nil
}

// String renders the node as JSON text, for diagnostics and tests.
func (n Node) String() string {
	return string(n.to(make([]byte, 0, 64)))
}

func (n Node) to(buf []byte) []byte {
	switch n.Kind {
	case KindNull:
		return append(buf, "null"...)
	case KindBool:
		if n.Bool {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return strconv.AppendInt(buf, n.Int, 10)
	case KindFloat64:
		var format byte
		abs := math.Abs(n.Float)
		if abs == 0 || 1e-6 <= abs && abs < 1e21 {
			format = 'f'
		} else {
			format = 'e'
		}
		return strconv.AppendFloat(buf, n.Float, format, -1, 64)
	case KindString, KindBinary:
		return strconv.AppendQuote(buf, string(n.Str))
	case KindArray:
		buf = append(buf, '[')
		for i, e := range n.Elems {
			if i != 0 {
				buf = append(buf, ", "...)
			}
			buf = e.to(buf)
		}
		return append(buf, ']')
	case KindObject:
		buf = append(buf, '{')
		for i, k := range n.Keys {
			if i != 0 {
				buf = append(buf, ", "...)
			}
			buf = strconv.AppendQuote(buf, k)
			buf = append(buf, ": "...)
			buf = n.Fields[i].to(buf)
		}
		return append(buf, '}')
	}
	return buf
}

// String decodes the node under v and renders it as JSON text.
func (v Variant) String() string {
	n, err := v.Decode()
	if err != nil {
		return "corrupt variant: " + err.Error()
	}
	return n.String()
}
