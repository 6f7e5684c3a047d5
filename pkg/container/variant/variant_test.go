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
	"strings"
	"testing"

	"github.com/matrixorigin/variant/pkg/common/moerr"
	"github.com/stretchr/testify/require"
)

func mustEncode(t *testing.T, s string) ([]byte, []byte) {
	t.Helper()
	metadata, value, err := EncodeFromString(s)
	require.NoError(t, err)
	return metadata, value
}

func TestRoundTrip(t *testing.T) {
	kases := []string{
		`null`,
		`true`,
		`false`,
		`1234`,
		`-7`,
		`1.5`,
		`"hello"`,
		`[10, 20, 30]`,
		`{"a": 1, "b": [true, null], "c": {"d": "x"}}`,
		`{}`,
		`[]`,
	}
	for _, kase := range kases {
		metadata, value := mustEncode(t, kase)
		v, err := New(metadata, value)
		require.NoError(t, err, kase)
		n, err := ParseFromString(kase)
		require.NoError(t, err)
		require.Equal(t, n.String(), v.String(), kase)
	}
}

func TestLongString(t *testing.T) {
	long := strings.Repeat("x", 100)
	metadata, value := mustEncode(t, `"`+long+`"`)
	v, err := New(metadata, value)
	require.NoError(t, err)
	require.Equal(t, KindString, v.Kind())
	b, err := v.StringBytes()
	require.NoError(t, err)
	require.Equal(t, long, string(b))
}

func TestObjectNavigation(t *testing.T) {
	metadata, value := mustEncode(t, `{"first": 1234, "second": [1, 2], "third": "s"}`)
	v, err := New(metadata, value)
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())

	cnt, err := v.Len()
	require.NoError(t, err)
	require.Equal(t, 3, cnt)

	rel, ok, err := v.FieldOffset("first")
	require.NoError(t, err)
	require.True(t, ok)
	child, err := v.Child(rel)
	require.NoError(t, err)
	i, err := child.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(1234), i)

	_, ok, err = v.FieldOffset("absent")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDictionaryKnownButAbsent(t *testing.T) {
	// "b" is in the dictionary because the nested object carries it,
	// but the top-level object does not.
	metadata, value := mustEncode(t, `{"a": {"b": 1}}`)
	v, err := New(metadata, value)
	require.NoError(t, err)
	_, ok, err := v.FieldOffset("b")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestArrayNavigation(t *testing.T) {
	metadata, value := mustEncode(t, `[10, 20, 30]`)
	v, err := New(metadata, value)
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind())

	cnt, err := v.Len()
	require.NoError(t, err)
	require.Equal(t, 3, cnt)

	elem, err := v.ElemAt(1)
	require.NoError(t, err)
	i, err := elem.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(20), i)

	_, err = v.ElemOffset(5)
	require.Error(t, err)
}

func TestKindProbeOnly(t *testing.T) {
	metadata, value := mustEncode(t, `{"k": [1]}`)
	m, err := ParseMetadata(metadata)
	require.NoError(t, err)
	v, err := NewAtOffset(m, value, 0)
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())
	require.False(t, v.IsNull())
}

func TestWrongKindAccessors(t *testing.T) {
	metadata, value := mustEncode(t, `1234`)
	v, err := New(metadata, value)
	require.NoError(t, err)
	_, _, err = v.FieldOffset("x")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
	_, err = v.ElemOffset(0)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
	_, err = v.Float64()
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
}

func TestCorruptValue(t *testing.T) {
	metadata, value := mustEncode(t, `{"a": 1}`)
	m, err := ParseMetadata(metadata)
	require.NoError(t, err)

	_, err = NewAtOffset(m, value, len(value)+10)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidState))

	// truncated container
	_, err = NewAtOffset(m, value[:2], 0)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidState))

	// unknown primitive id
	_, err = NewAtOffset(m, []byte{20 << 2}, 0)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidState))
}

func TestCorruptMetadata(t *testing.T) {
	_, err := ParseMetadata(nil)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidState))
	_, err = ParseMetadata([]byte{0xff, 0xff})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidState))

	// one name, offset table runs backwards
	_, err = ParseMetadata([]byte{0x01, 0x01, 200, 0})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidState))

	// one name, final offset past the blob
	_, err = ParseMetadata([]byte{0x01, 0x01, 0, 200, 'a'})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidState))

	// two names, in-bounds offsets out of order
	_, err = ParseMetadata([]byte{0x01, 0x02, 2, 1, 2, 'a', 'b'})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidState))
}

func TestReencodeIndependence(t *testing.T) {
	metadata, value := mustEncode(t, `{"outer": {"inner": 42}}`)
	v, err := New(metadata, value)
	require.NoError(t, err)
	rel, ok, err := v.FieldOffset("outer")
	require.NoError(t, err)
	require.True(t, ok)
	sub, err := v.Child(rel)
	require.NoError(t, err)

	n, err := sub.Decode()
	require.NoError(t, err)
	m2, v2, err := Encode(n)
	require.NoError(t, err)

	// mutating the source buffers must not change the re-encoded pair
	for i := range value {
		value[i] = 0xff
	}
	got, err := New(m2, v2)
	require.NoError(t, err)
	require.Equal(t, `{"inner": 42}`, got.String())
}

func TestEncodeDeterminism(t *testing.T) {
	m1, v1 := mustEncode(t, `{"b": 2, "a": 1}`)
	m2, v2 := mustEncode(t, `{"a": 1, "b": 2}`)
	require.Equal(t, m1, m2)
	require.Equal(t, v1, v2)
}
