// Copyright 2021 - 2023 Matrix Origin
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

package moerr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	err := NewInvalidInput(context.TODO(), "bad path %s", "$.foo")
	require.Equal(t, "invalid input: bad path $.foo", err.Error())
	require.Equal(t, ErrInvalidInput, err.ErrorCode())
	require.True(t, IsMoErrCode(err, ErrInvalidInput))
	require.False(t, IsMoErrCode(err, ErrNYI))
}

func TestIsMoErrCode(t *testing.T) {
	require.True(t, IsMoErrCode(nil, Ok))
	require.False(t, IsMoErrCode(errors.New("plain"), ErrInternal))

	err := NewNYINoCtx("variant as %s", "decimal")
	require.True(t, IsMoErrCode(err, ErrNYI))
	require.Equal(t, "variant as decimal is not yet implemented", err.Error())
}

func TestErrorIs(t *testing.T) {
	e1 := NewOutOfRangeNoCtx("uint8", "value 300")
	e2 := NewOutOfRangeNoCtx("uint8", "value 400")
	require.True(t, errors.Is(e1, e2))
	require.False(t, errors.Is(e1, NewInternalErrorNoCtx("x")))
}
