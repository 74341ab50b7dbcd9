//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory store for evaluation runs,
// suitable for tests and short-lived processes.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/arbiterhq/arbiter-go/evaluation/result"
)

var _ result.Store = (*Store)(nil)

// Store keeps runs in a map guarded by a mutex.
type Store struct {
	mu   sync.RWMutex
	runs map[string]*result.Run
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{runs: make(map[string]*result.Run)}
}

// Save upserts a run, assigning an ID when absent.
func (s *Store) Save(_ context.Context, run *result.Run) (string, error) {
	if run == nil {
		return "", errors.New("run is nil")
	}
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.RunID] = run
	return run.RunID, nil
}

// Get loads a run by ID.
func (s *Store) Get(_ context.Context, runID string) (*result.Run, error) {
	if runID == "" {
		return nil, errors.New("run id is empty")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run %s not found: %w", runID, os.ErrNotExist)
	}
	return run, nil
}

// List returns the stored run IDs, sorted.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.runs))
	for id := range s.runs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
