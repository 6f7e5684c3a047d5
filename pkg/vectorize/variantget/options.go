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
	"github.com/matrixorigin/variant/pkg/common/moerr"
	"github.com/matrixorigin/variant/pkg/container/types"
)

// CastPolicy controls what happens when a terminal value cannot be
// represented in the requested target type.
type CastPolicy uint8

const (
	// NullOnCastFailure folds a cast mismatch into a null output row.
	NullOnCastFailure CastPolicy = iota
	// ErrorOnCastFailure aborts the whole call on the first mismatch.
	ErrorOnCastFailure
)

// Strategy selects the traversal algorithm. Both strategies share the
// same contract and must produce identical outputs.
type Strategy uint8

const (
	// StrategyAuto lets the kernel pick; it currently always picks the
	// vectorized traversal.
	StrategyAuto Strategy = iota
	// StrategyVectorized walks the column one path step at a time,
	// tracking a running byte offset per row.
	StrategyVectorized
	// StrategyRowwise fully decodes each row before navigating it.
	StrategyRowwise
)

// GetOptions configures one extraction call.
type GetOptions struct {
	// Path to extract.
	Path Path

	// TargetType of the output column. nil means the result is itself
	// a variant column and no casting is attempted. Asking for
	// T_variant explicitly is a configuration error; variant output is
	// requested by omitting the target type.
	TargetType *types.Type

	CastPolicy CastPolicy

	Strategy Strategy
}

// supported target-type conversions; everything else is rejected
// fail-closed before any row is processed
func supportedTarget(oid types.T) bool {
	switch oid {
	case types.T_bool,
		types.T_int8, types.T_int16, types.T_int32, types.T_int64,
		types.T_uint8, types.T_uint16, types.T_uint32, types.T_uint64,
		types.T_float64, types.T_varchar:
		return true
	}
	return false
}

func (opts *GetOptions) validate() error {
	if opts.TargetType == nil {
		return nil
	}
	if opts.TargetType.Oid == types.T_variant {
		return moerr.NewInvalidInputNoCtx("variant output must be requested by omitting the target type")
	}
	if !supportedTarget(opts.TargetType.Oid) {
		return moerr.NewNYINoCtx("getting variant as %s", opts.TargetType.String())
	}
	return nil
}
