//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/arbiterhq/arbiter-go/evaluation/result"
	"github.com/arbiterhq/arbiter-go/metric/judge"
)

type evaluateParam struct {
	ctx      context.Context
	runner   *Runner
	c        *Case
	j        judge.Judge
	caseIdx  int
	judgeIdx int
	results  []*result.CaseResult
	wg       *sync.WaitGroup
}

func (p *evaluateParam) reset() {
	p.ctx = nil
	p.runner = nil
	p.c = nil
	p.j = nil
	p.caseIdx = 0
	p.judgeIdx = 0
	p.results = nil
	p.wg = nil
}

var evaluateParamPool = &sync.Pool{
	New: func() any { return new(evaluateParam) },
}

// evaluateAll fans the (case, judge) pairs out over a bounded worker
// pool. Each worker writes into its own slot, so no result locking is
// needed.
func (r *Runner) evaluateAll(ctx context.Context, cases []*Case, results []*result.CaseResult) error {
	pool, err := ants.NewPoolWithFunc(r.parallelism, func(args any) {
		param, ok := args.(*evaluateParam)
		if !ok {
			panic("evaluate pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			evaluateParamPool.Put(param)
		}()
		param.results[param.caseIdx].MetricResults[param.judgeIdx] =
			param.runner.evaluateOne(param.ctx, param.c, param.j)
	})
	if err != nil {
		return fmt.Errorf("create evaluate pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for caseIdx, c := range cases {
		for judgeIdx, j := range r.judges {
			param := evaluateParamPool.Get().(*evaluateParam)
			param.ctx = ctx
			param.runner = r
			param.c = c
			param.j = j
			param.caseIdx = caseIdx
			param.judgeIdx = judgeIdx
			param.results = results
			param.wg = &wg
			wg.Add(1)
			if err := pool.Invoke(param); err != nil {
				wg.Done()
				param.reset()
				evaluateParamPool.Put(param)
				return fmt.Errorf("submit evaluation: %w", err)
			}
		}
	}
	wg.Wait()
	return nil
}
