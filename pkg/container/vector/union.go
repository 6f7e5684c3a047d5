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

package vector

import (
	"github.com/matrixorigin/variant/pkg/common/moerr"
	"github.com/matrixorigin/variant/pkg/container/nulls"
)

// UnionBatch appends every row of w onto v, keeping w's row order.
// Both vectors must carry the same type.
func (v *Vector) UnionBatch(w *Vector) error {
	if v.typ.Oid != w.typ.Oid {
		return moerr.NewInternalErrorNoCtx("union %s vector with %s", v.typ, w.typ)
	}
	for _, row := range w.nsp.ToArray() {
		nulls.Add(v.nsp, row+uint64(v.length))
	}
	if v.typ.IsFixedLen() {
		v.data = append(v.data, w.data...)
	} else {
		v.bytes = append(v.bytes, w.bytes...)
	}
	v.length += w.length
	return nil
}

// UnionBatch appends every row of w onto v. The row buffers are shared
// with w, not copied.
func (v *VariantVector) UnionBatch(w *VariantVector) {
	for _, row := range w.nsp.ToArray() {
		nulls.Add(v.nsp, row+uint64(v.length))
	}
	v.meta = append(v.meta, w.meta...)
	v.val = append(v.val, w.val...)
	v.length += w.length
}
