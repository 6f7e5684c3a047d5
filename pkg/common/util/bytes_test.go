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

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneBytes(t *testing.T) {
	src := []byte{1, 2, 3}
	dst := CloneBytes(src)
	assert.Equal(t, src, dst)
	src[0] = 9
	assert.Equal(t, byte(1), dst[0])
	assert.Nil(t, CloneBytes(nil))
}

func TestCloneBytesIf(t *testing.T) {
	src := []byte{1, 2, 3}

	dst := CloneBytesIf(src, true)
	assert.Equal(t, []byte{1, 2, 3}, dst)
	src[0] = 9
	assert.Equal(t, byte(1), dst[0])

	shared := CloneBytesIf(src, false)
	src[1] = 9
	assert.Equal(t, byte(9), shared[1])

	assert.Equal(t, []byte{}, CloneBytesIf(nil, true))
	assert.Nil(t, CloneBytesIf(nil, false))
}
