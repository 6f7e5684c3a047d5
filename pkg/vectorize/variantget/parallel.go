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
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/matrixorigin/variant/pkg/common/moerr"
	"github.com/matrixorigin/variant/pkg/container/vector"
	"github.com/matrixorigin/variant/pkg/logutil"
)

// GetParallel runs Get over disjoint row windows on a goroutine pool
// and stitches the partial outputs back together in row order. Row
// state is window-local, so the partitions need no synchronization.
// The first error from any window aborts the call.
func GetParallel(input *vector.VariantVector, opts GetOptions, parallelism int) (vector.AnyVector, error) {
	if input == nil {
		return nil, moerr.NewInvalidInputNoCtx("variant extraction over nil column")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	length := input.Length()
	if parallelism > length {
		parallelism = length
	}
	if parallelism <= 1 {
		return Get(input, opts)
	}

	pool, err := ants.NewPool(parallelism)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	chunk := (length + parallelism - 1) / parallelism
	nparts := (length + chunk - 1) / chunk
	logutil.Debugf("variant get %s: %d rows over %d windows", opts.Path.String(), length, nparts)

	outs := make([]vector.AnyVector, nparts)
	errs := make([]error, nparts)
	var wg sync.WaitGroup
	for p := 0; p < nparts; p++ {
		p := p
		start := p * chunk
		end := start + chunk
		if end > length {
			end = length
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			outs[p], errs[p] = Get(input.Window(start, end), opts)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if opts.TargetType == nil {
		out := vector.NewVariantVector(length)
		for _, part := range outs {
			out.UnionBatch(part.(*vector.VariantVector))
		}
		return out, nil
	}
	out := vector.NewVec(*opts.TargetType)
	for _, part := range outs {
		if err := out.UnionBatch(part.(*vector.Vector)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
