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

package variantget

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/variant/pkg/common/moerr"
)

func TestParsePath(t *testing.T) {
	cases := []struct {
		path string
		want Path
	}{
		{`$`, NewPath()},
		{`$.a`, NewPath(Field("a"))},
		{`$.a.b`, NewPath(Field("a"), Field("b"))},
		{`$[0]`, NewPath(Index(0))},
		{`$.items[2].name`, NewPath(Field("items"), Index(2), Field("name"))},
		{`  $.a  `, NewPath(Field("a"))},
	}
	for _, c := range cases {
		got, err := ParsePath(c.path)
		require.NoError(t, err, c.path)
		require.Equal(t, c.want, got, c.path)
	}
}

func TestParsePathInvalid(t *testing.T) {
	for _, path := range []string{
		``,
		`a.b`,
		`$.`,
		`$..a`,
		`$[`,
		`$[1`,
		`$[x]`,
		`$[-1]`,
		`$a`,
	} {
		_, err := ParsePath(path)
		require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput), path)
	}
}

func TestPathString(t *testing.T) {
	p := NewPath(Field("a"), Index(3), Field("b"))
	require.Equal(t, `$.a[3].b`, p.String())

	parsed, err := ParsePath(p.String())
	require.NoError(t, err)
	require.Equal(t, p, parsed)
}

func TestPathImmutable(t *testing.T) {
	elems := []PathElem{Field("a"), Index(1)}
	p := NewPath(elems...)
	elems[0] = Field("mutated")
	require.Equal(t, "a", p.At(0).Name())
}
