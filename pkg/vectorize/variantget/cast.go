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
	"math"

	"github.com/matrixorigin/variant/pkg/common/moerr"
	"github.com/matrixorigin/variant/pkg/container/types"
	"github.com/matrixorigin/variant/pkg/container/variant"
	"github.com/matrixorigin/variant/pkg/container/vector"
)

// terminal is the normalized scalar a traversal strategy hands to the
// cast dispatch. Both strategies funnel through it so the conversion
// rules cannot drift apart.
type terminal struct {
	// row is null before casting: source null, path miss, or the
	// terminal value is the variant null
	miss bool

	kind variant.Kind
	i    int64
	f    float64
	b    bool
	s    []byte
}

func terminalOfVariant(v variant.Variant) (terminal, error) {
	t := terminal{kind: v.Kind()}
	var err error
	switch {
	case t.kind == variant.KindNull:
		t.miss = true
	case t.kind == variant.KindBool:
		t.b, err = v.Bool()
	case t.kind.IsInteger():
		t.i, err = v.Int64()
	case t.kind == variant.KindFloat64:
		t.f, err = v.Float64()
	case t.kind == variant.KindString || t.kind == variant.KindBinary:
		t.s, err = v.StringBytes()
	}
	return t, err
}

func terminalOfNode(n variant.Node) terminal {
	t := terminal{kind: n.Kind}
	switch {
	case t.kind == variant.KindNull:
		t.miss = true
	case t.kind == variant.KindBool:
		t.b = n.Bool
	case t.kind.IsInteger():
		t.i = n.Int
	case t.kind == variant.KindFloat64:
		t.f = n.Float
	case t.kind == variant.KindString || t.kind == variant.KindBinary:
		t.s = n.Str
	}
	return t
}

// appendTerminal converts one terminal to the target type and appends
// it to the output. Conversion failures follow the cast policy: fold
// into a null row, or abort the call.
func appendTerminal(wrapper vector.FunctionResultWrapper, typ types.Type, t terminal, policy CastPolicy) error {
	switch typ.Oid {
	case types.T_bool:
		return appendBool(wrapper, typ, t, policy)
	case types.T_int8:
		return appendSigned[int8](wrapper, typ, t, policy, math.MinInt8, math.MaxInt8)
	case types.T_int16:
		return appendSigned[int16](wrapper, typ, t, policy, math.MinInt16, math.MaxInt16)
	case types.T_int32:
		return appendSigned[int32](wrapper, typ, t, policy, math.MinInt32, math.MaxInt32)
	case types.T_int64:
		return appendSigned[int64](wrapper, typ, t, policy, math.MinInt64, math.MaxInt64)
	case types.T_uint8:
		return appendUnsigned[uint8](wrapper, typ, t, policy, math.MaxUint8)
	case types.T_uint16:
		return appendUnsigned[uint16](wrapper, typ, t, policy, math.MaxUint16)
	case types.T_uint32:
		return appendUnsigned[uint32](wrapper, typ, t, policy, math.MaxUint32)
	case types.T_uint64:
		return appendUnsigned[uint64](wrapper, typ, t, policy, math.MaxUint64)
	case types.T_float64:
		return appendFloat(wrapper, typ, t, policy)
	case types.T_varchar:
		return appendString(wrapper, typ, t, policy)
	}
	return moerr.NewInternalErrorNoCtx("terminal cast to %s", typ)
}

// castMismatch reports a terminal whose kind has no conversion to the
// target type. Under the null policy it returns nil and the caller
// appends a null row.
func castMismatch(policy CastPolicy, typ types.Type, kind variant.Kind) error {
	if policy == ErrorOnCastFailure {
		return moerr.NewDataTruncatedNoCtx(typ.String(), "variant %s is not convertible", kind)
	}
	return nil
}

func castOutOfRange(policy CastPolicy, typ types.Type, val int64) error {
	if policy == ErrorOnCastFailure {
		return moerr.NewOutOfRangeNoCtx(typ.String(), "value %d", val)
	}
	return nil
}

func appendBool(wrapper vector.FunctionResultWrapper, typ types.Type, t terminal, policy CastPolicy) error {
	fr := vector.MustFunctionResult[bool](wrapper)
	if t.miss {
		return fr.Append(false, true)
	}
	if t.kind != variant.KindBool {
		if err := castMismatch(policy, typ, t.kind); err != nil {
			return err
		}
		return fr.Append(false, true)
	}
	return fr.Append(t.b, false)
}

func appendSigned[T int8 | int16 | int32 | int64](wrapper vector.FunctionResultWrapper, typ types.Type, t terminal, policy CastPolicy, lo, hi int64) error {
	fr := vector.MustFunctionResult[T](wrapper)
	if t.miss {
		return fr.Append(0, true)
	}
	if !t.kind.IsInteger() {
		if err := castMismatch(policy, typ, t.kind); err != nil {
			return err
		}
		return fr.Append(0, true)
	}
	if t.i < lo || t.i > hi {
		if err := castOutOfRange(policy, typ, t.i); err != nil {
			return err
		}
		return fr.Append(0, true)
	}
	return fr.Append(T(t.i), false)
}

// appendUnsigned treats negative values as out of range rather than
// reinterpreting the bits.
func appendUnsigned[T uint8 | uint16 | uint32 | uint64](wrapper vector.FunctionResultWrapper, typ types.Type, t terminal, policy CastPolicy, hi uint64) error {
	fr := vector.MustFunctionResult[T](wrapper)
	if t.miss {
		return fr.Append(0, true)
	}
	if !t.kind.IsInteger() {
		if err := castMismatch(policy, typ, t.kind); err != nil {
			return err
		}
		return fr.Append(0, true)
	}
	if t.i < 0 || uint64(t.i) > hi {
		if err := castOutOfRange(policy, typ, t.i); err != nil {
			return err
		}
		return fr.Append(0, true)
	}
	return fr.Append(T(t.i), false)
}

// appendFloat accepts doubles and widens any integer variant.
func appendFloat(wrapper vector.FunctionResultWrapper, typ types.Type, t terminal, policy CastPolicy) error {
	fr := vector.MustFunctionResult[float64](wrapper)
	if t.miss {
		return fr.Append(0, true)
	}
	switch {
	case t.kind == variant.KindFloat64:
		return fr.Append(t.f, false)
	case t.kind.IsInteger():
		return fr.Append(float64(t.i), false)
	}
	if err := castMismatch(policy, typ, t.kind); err != nil {
		return err
	}
	return fr.Append(0, true)
}

func appendString(wrapper vector.FunctionResultWrapper, typ types.Type, t terminal, policy CastPolicy) error {
	fr := vector.MustFunctionResult[uint8](wrapper)
	if t.miss {
		return fr.AppendBytes(nil, true)
	}
	if t.kind != variant.KindString {
		if err := castMismatch(policy, typ, t.kind); err != nil {
			return err
		}
		return fr.AppendBytes(nil, true)
	}
	return fr.AppendBytes(t.s, false)
}
