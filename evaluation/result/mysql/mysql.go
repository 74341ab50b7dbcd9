//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package mysql provides a MySQL-backed store for evaluation runs.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/arbiterhq/arbiter-go/evaluation/result"
)

var _ result.Store = (*Store)(nil)

const createTableSQL = `CREATE TABLE IF NOT EXISTS %s (
  id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  run_id VARCHAR(191) NOT NULL,
  run_name VARCHAR(191) NOT NULL,
  case_results JSON NOT NULL,
  summary JSON NULL,
  created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
  updated_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
  PRIMARY KEY (id),
  UNIQUE KEY uk_run_id (run_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// Store persists evaluation runs in a single MySQL table.
type Store struct {
	db    *sql.DB
	table string
}

// New opens a connection with the given DSN and ensures the schema.
func New(dsn string, opt ...Option) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("dsn is empty")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return newWithDB(db, opt...)
}

// NewWithDB wraps an existing connection, for callers that manage
// pooling themselves.
func NewWithDB(db *sql.DB, opt ...Option) (*Store, error) {
	if db == nil {
		return nil, errors.New("db is nil")
	}
	return newWithDB(db, opt...)
}

func newWithDB(db *sql.DB, opt ...Option) (*Store, error) {
	opts := newOptions(opt...)
	s := &Store{db: db, table: opts.table}
	if !opts.skipSchemaInit {
		ctx, cancel := context.WithTimeout(context.Background(), opts.initTimeout)
		defer cancel()
		if _, err := db.ExecContext(ctx, fmt.Sprintf(createTableSQL, s.table)); err != nil {
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}
	return s, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts a run, assigning an ID when absent.
func (s *Store) Save(ctx context.Context, run *result.Run) (string, error) {
	if run == nil {
		return "", errors.New("run is nil")
	}
	runID := run.RunID
	if runID == "" {
		runID = uuid.New().String()
	}
	runName := run.RunName
	if runName == "" {
		runName = runID
	}
	caseResults := run.CaseResults
	if caseResults == nil {
		caseResults = []*result.CaseResult{}
	}
	casePayload, err := json.Marshal(caseResults)
	if err != nil {
		return "", fmt.Errorf("marshal case results: %w", err)
	}
	var summaryPayload any
	if run.Summary != nil {
		summaryBytes, err := json.Marshal(run.Summary)
		if err != nil {
			return "", fmt.Errorf("marshal summary: %w", err)
		}
		summaryPayload = summaryBytes
	}
	query := fmt.Sprintf(
		`INSERT INTO %s (run_id, run_name, case_results, summary)
		 VALUES (?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE
		   run_name = VALUES(run_name),
		   case_results = VALUES(case_results),
		   summary = VALUES(summary),
		   updated_at = CURRENT_TIMESTAMP(6)`,
		s.table,
	)
	if _, err := s.db.ExecContext(ctx, query, runID, runName, casePayload, summaryPayload); err != nil {
		return "", fmt.Errorf("store run %s: %w", runID, err)
	}
	run.RunID = runID
	return runID, nil
}

// Get loads a run by ID.
func (s *Store) Get(ctx context.Context, runID string) (*result.Run, error) {
	if runID == "" {
		return nil, errors.New("run id is empty")
	}
	var (
		runName     string
		casePayload []byte
		summary     sql.NullString
		createdAt   time.Time
	)
	query := fmt.Sprintf(
		"SELECT run_name, case_results, summary, created_at FROM %s WHERE run_id = ?",
		s.table,
	)
	row := s.db.QueryRowContext(ctx, query, runID)
	if err := row.Scan(&runName, &casePayload, &summary, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run %s not found: %w", runID, os.ErrNotExist)
		}
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	var caseResults []*result.CaseResult
	if err := json.Unmarshal(casePayload, &caseResults); err != nil {
		return nil, fmt.Errorf("unmarshal case results %s: %w", runID, err)
	}
	run := &result.Run{
		RunID:       runID,
		RunName:     runName,
		CaseResults: caseResults,
		CreatedAt:   createdAt,
	}
	if summary.Valid && summary.String != "" {
		var sum result.Summary
		if err := json.Unmarshal([]byte(summary.String), &sum); err != nil {
			return nil, fmt.Errorf("unmarshal summary %s: %w", runID, err)
		}
		run.Summary = &sum
	}
	return run, nil
}

// List returns the stored run IDs, newest first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT run_id FROM %s ORDER BY created_at DESC", s.table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan run id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return ids, nil
}
