// internal/repository/progress.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/common/database"
	"career-assessment-workers/internal/common/logger"
	"career-assessment-workers/internal/models"

	"github.com/google/uuid"
)

const cachePrefix = "assessment:progress:"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS assessment_progress (
		individual_id TEXT PRIMARY KEY,
		version BIGINT NOT NULL,
		progress JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS assessment_submissions (
		id UUID PRIMARY KEY,
		individual_id TEXT NOT NULL,
		test_type TEXT NOT NULL,
		responses JSONB NOT NULL,
		skipped_question_ids JSONB NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessment_submissions_individual
		ON assessment_submissions (individual_id, submitted_at)`,
}

// ProgressRepository keeps progress records in Postgres with a Redis
// read-through cache. The cache is optional.
type ProgressRepository struct {
	db     *sql.DB
	cache  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewProgressRepository(db *sql.DB, cache *database.RedisClient, ttl time.Duration, log logger.Logger) *ProgressRepository {
	return &ProgressRepository{
		db:     db,
		cache:  cache,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "progress-repository"}),
	}
}

func cacheKey(individualID string) string {
	return cachePrefix + individualID
}

// EnsureSchema creates the tables when they do not exist yet.
func (r *ProgressRepository) EnsureSchema(ctx context.Context) error {
	return database.Transact(ctx, r.db, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		return nil
	})
}

// Get returns assessment.ErrNotFound when no record exists.
func (r *ProgressRepository) Get(ctx context.Context, individualID string) (*models.AssessmentProgress, error) {
	if r.cache != nil {
		var cached models.AssessmentProgress
		err := r.cache.GetJSON(ctx, cacheKey(individualID), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, database.ErrCacheMiss) {
			r.logger.Warn("progress cache read failed", map[string]interface{}{
				"individualId": individualID,
				"error":        err.Error(),
			})
		}
	}

	var raw []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT progress FROM assessment_progress WHERE individual_id = $1`,
		individualID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("progress %s: %w", individualID, assessment.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query progress %s: %w", individualID, err)
	}

	var p models.AssessmentProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode progress %s: %w", individualID, err)
	}

	r.refresh(ctx, &p)
	return &p, nil
}

// Save writes p and the submissions that produced it in one transaction.
// The write only applies if the stored version is older; a stale write
// returns assessment.ErrConflict and nothing is stored.
func (r *ProgressRepository) Save(ctx context.Context, p *models.AssessmentProgress, subs ...*models.Submission) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress %s: %w", p.IndividualID, err)
	}

	err = database.Transact(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO assessment_progress (individual_id, version, progress, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (individual_id) DO UPDATE
			SET version = EXCLUDED.version, progress = EXCLUDED.progress, updated_at = EXCLUDED.updated_at
			WHERE assessment_progress.version < EXCLUDED.version`,
			p.IndividualID, p.Version, raw, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("save progress %s: %w", p.IndividualID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("save progress %s: %w", p.IndividualID, err)
		}
		if n == 0 {
			return fmt.Errorf("save progress %s at version %d: %w", p.IndividualID, p.Version, assessment.ErrConflict)
		}

		for _, s := range subs {
			if err := insertSubmission(ctx, tx, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, assessment.ErrConflict) {
			r.evict(ctx, p.IndividualID)
		}
		return err
	}

	r.refresh(ctx, p)
	return nil
}

// insertSubmission appends the raw batch. An empty ID is generated.
func insertSubmission(ctx context.Context, tx *sql.Tx, s *models.Submission) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	responses, err := json.Marshal(s.Responses)
	if err != nil {
		return fmt.Errorf("encode responses: %w", err)
	}
	skipped := s.SkippedQuestionIDs
	if skipped == nil {
		skipped = []int{}
	}
	skippedRaw, err := json.Marshal(skipped)
	if err != nil {
		return fmt.Errorf("encode skipped ids: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO assessment_submissions (id, individual_id, test_type, responses, skipped_question_ids, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.IndividualID, string(s.TestType), responses, skippedRaw, s.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert submission for %s: %w", s.IndividualID, err)
	}
	return nil
}

func (r *ProgressRepository) refresh(ctx context.Context, p *models.AssessmentProgress) {
	if r.cache == nil {
		return
	}
	if err := r.cache.SetJSON(ctx, cacheKey(p.IndividualID), p, r.ttl); err != nil {
		r.logger.Warn("progress cache write failed", map[string]interface{}{
			"individualId": p.IndividualID,
			"error":        err.Error(),
		})
	}
}

func (r *ProgressRepository) evict(ctx context.Context, individualID string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Del(ctx, cacheKey(individualID)); err != nil {
		r.logger.Warn("progress cache evict failed", map[string]interface{}{
			"individualId": individualID,
			"error":        err.Error(),
		})
	}
}
