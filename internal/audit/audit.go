package audit

import (
	"database/sql"
	"time"
)

const (
	ActionRunCompleted = "run_completed"
	ActionRunQueued    = "run_queued"
	ActionSeedRotated  = "seed_rotated"
)

type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Log(ref string, action string, metadata string) {

	s.db.Exec(`
	INSERT INTO audit_logs(ref, action, metadata, created_at)
	VALUES (?, ?, ?, ?)
	`, ref, action, metadata, time.Now().Unix())
}
