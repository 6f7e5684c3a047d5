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
	"bytes"
	"encoding/json"
	"sort"

	"github.com/matrixorigin/variant/pkg/common/moerr"
)

// ParseFromString parses JSON text into a Node tree. Whole numbers
// become int64 nodes, other numbers float64. Object fields are sorted
// into canonical order.
func ParseFromString(s string) (Node, error) {
	decoder := json.NewDecoder(bytes.NewReader([]byte(s)))
	decoder.UseNumber()
	var in interface{}
	if err := decoder.Decode(&in); err != nil {
		return Node{}, moerr.NewInvalidInputNoCtx("invalid json: %s", err.Error())
	}
	return fromAny(in)
}

func fromAny(in interface{}) (Node, error) {
	switch x := in.(type) {
	case nil:
		return NullNode(), nil
	case bool:
		return BoolNode(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int64Node(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Node{}, moerr.NewInvalidInputNoCtx("invalid json number %s", x.String())
		}
		return Float64Node(f), nil
	case string:
		return StringNode(x), nil
	case []interface{}:
		elems := make([]Node, len(x))
		for i, e := range x {
			var err error
			if elems[i], err = fromAny(e); err != nil {
				return Node{}, err
			}
		}
		return Node{Kind: KindArray, Elems: elems}, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Node, len(keys))
		for i, k := range keys {
			var err error
			if fields[i], err = fromAny(x[k]); err != nil {
				return Node{}, err
			}
		}
		return ObjectNode(keys, fields), nil
	}
	return Node{}, moerr.NewInvalidInputNoCtx("unsupported json value %v", in)
}

// EncodeFromString parses JSON text and encodes it in one step, a
// convenience for building test columns.
func EncodeFromString(s string) ([]byte, []byte, error) {
	n, err := ParseFromString(s)
	if err != nil {
		return nil, nil, err
	}
	return Encode(n)
}
