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

package nulls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddContains(t *testing.T) {
	nsp := New()
	require.False(t, Any(nsp))
	Add(nsp, 0, 3, 7)
	require.True(t, Any(nsp))
	require.True(t, Contains(nsp, 3))
	require.False(t, Contains(nsp, 1))
	require.Equal(t, 3, Length(nsp))

	Del(nsp, 3)
	require.False(t, Contains(nsp, 3))
	require.Equal(t, 2, Length(nsp))
}

func TestNilSafety(t *testing.T) {
	var nsp *Nulls
	require.False(t, Any(nsp))
	require.False(t, Contains(nsp, 0))
	require.Equal(t, 0, Length(nsp))
	Add(nsp, 1) // no-op, must not panic
	Del(nsp, 1)
}

func TestOr(t *testing.T) {
	a := Build(1, 2)
	b := Build(2, 5)
	r := &Nulls{}
	Or(a, b, r)
	require.Equal(t, []uint64{1, 2, 5}, r.ToArray())

	r2 := &Nulls{}
	Or(&Nulls{}, nil, r2)
	require.False(t, Any(r2))
}

func TestRange(t *testing.T) {
	nsp := Build(1, 3, 6, 9)
	m := Range(nsp, 3, 9, 3, &Nulls{})
	require.Equal(t, []uint64{0, 3}, m.ToArray())
}

func TestIsSame(t *testing.T) {
	require.True(t, Build(1, 2).IsSame(Build(1, 2)))
	require.False(t, Build(1).IsSame(Build(2)))
	require.True(t, (&Nulls{}).IsSame(New()))
}
