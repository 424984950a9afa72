package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/common/database"
	"career-assessment-workers/internal/common/logger"
	"career-assessment-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

var (
	selectProgress = regexp.QuoteMeta(`SELECT progress FROM assessment_progress WHERE individual_id = $1`)
	upsertProgress = regexp.QuoteMeta(`INSERT INTO assessment_progress`)
	insertSubmit   = regexp.QuoteMeta(`INSERT INTO assessment_submissions`)
)

func newMiniCache(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return &database.RedisClient{Client: rdb}, mr
}

func newRepo(t *testing.T, cache *database.RedisClient) (*ProgressRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewProgressRepository(db, cache, time.Hour, logger.NewTestLogger(t)), mock, db
}

func sampleProgress(version int64) *models.AssessmentProgress {
	return &models.AssessmentProgress{
		IndividualID:    "ind-7",
		PersonalityDone: true,
		Personality: &models.TestResult{
			TestType:         models.TestPersonality,
			NormalizedScores: models.NormalizedScores{models.TraitRealistic: 80},
		},
		Version:   version,
		UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// ==========================
// Get
// ==========================

func TestGet_LoadsFromDatabaseAndFillsCache(t *testing.T) {
	cache, mr := newMiniCache(t)
	repo, mock, _ := newRepo(t, cache)

	raw, err := json.Marshal(sampleProgress(2))
	require.NoError(t, err)
	mock.ExpectQuery(selectProgress).
		WithArgs("ind-7").
		WillReturnRows(sqlmock.NewRows([]string{"progress"}).AddRow(raw))

	p, err := repo.Get(context.Background(), "ind-7")
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.Version)
	assert.True(t, p.PersonalityDone)
	assert.Equal(t, 80, p.Personality.NormalizedScores[models.TraitRealistic])

	assert.True(t, mr.Exists("assessment:progress:ind-7"))
	assert.Equal(t, time.Hour, mr.TTL("assessment:progress:ind-7"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_CacheHitSkipsDatabase(t *testing.T) {
	cache, _ := newMiniCache(t)
	repo, mock, _ := newRepo(t, cache)

	require.NoError(t, cache.SetJSON(context.Background(), "assessment:progress:ind-7", sampleProgress(4), time.Hour))

	p, err := repo.Get(context.Background(), "ind-7")
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, _ := newRepo(t, nil)

	mock.ExpectQuery(selectProgress).WithArgs("nobody").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, assessment.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_CacheErrorFallsBackToDatabase(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	repo, mock, _ := newRepo(t, &database.RedisClient{Client: rdb})

	redisMock.ExpectGet("assessment:progress:ind-7").SetErr(errors.New("connection refused"))

	raw, err := json.Marshal(sampleProgress(1))
	require.NoError(t, err)
	mock.ExpectQuery(selectProgress).
		WithArgs("ind-7").
		WillReturnRows(sqlmock.NewRows([]string{"progress"}).AddRow(raw))

	p, err := repo.Get(context.Background(), "ind-7")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGet_QueryError(t *testing.T) {
	repo, mock, _ := newRepo(t, nil)

	mock.ExpectQuery(selectProgress).WithArgs("ind-7").WillReturnError(errors.New("connection reset"))

	_, err := repo.Get(context.Background(), "ind-7")
	require.Error(t, err)
	assert.False(t, errors.Is(err, assessment.ErrNotFound))
	assert.Contains(t, err.Error(), "connection reset")
}

// ==========================
// Save
// ==========================

func TestSave_WritesAndRefreshesCache(t *testing.T) {
	cache, mr := newMiniCache(t)
	repo, mock, _ := newRepo(t, cache)

	p := sampleProgress(3)
	mock.ExpectBegin()
	mock.ExpectExec(upsertProgress).
		WithArgs("ind-7", int64(3), sqlmock.AnyArg(), p.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), p))

	var cached models.AssessmentProgress
	require.NoError(t, cache.GetJSON(context.Background(), "assessment:progress:ind-7", &cached))
	assert.Equal(t, int64(3), cached.Version)
	assert.True(t, mr.Exists("assessment:progress:ind-7"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_StaleVersionConflicts(t *testing.T) {
	cache, mr := newMiniCache(t)
	repo, mock, _ := newRepo(t, cache)

	require.NoError(t, cache.SetJSON(context.Background(), "assessment:progress:ind-7", sampleProgress(5), time.Hour))

	mock.ExpectBegin()
	mock.ExpectExec(upsertProgress).
		WithArgs("ind-7", int64(3), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), sampleProgress(3), &models.Submission{
		IndividualID: "ind-7",
		TestType:     models.TestPersonality,
		Responses:    []models.Response{{QuestionID: 1, Answer: "Agree"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, assessment.ErrConflict))
	assert.False(t, mr.Exists("assessment:progress:ind-7"), "conflicting write evicts the cached copy")
	assert.NoError(t, mock.ExpectationsWereMet(), "no submission insert after a conflict")
}

func TestSave_ExecError(t *testing.T) {
	repo, mock, _ := newRepo(t, nil)

	mock.ExpectBegin()
	mock.ExpectExec(upsertProgress).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), sampleProgress(1))
	require.Error(t, err)
	assert.False(t, errors.Is(err, assessment.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Submissions and schema
// ==========================

func TestSave_WritesSubmissionsInSameTransaction(t *testing.T) {
	repo, mock, _ := newRepo(t, nil)

	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	s := &models.Submission{
		IndividualID: "ind-7",
		TestType:     models.TestInterest,
		Responses:    []models.Response{{QuestionID: 1, Answer: "Agree"}},
		SubmittedAt:  at,
	}

	mock.ExpectBegin()
	mock.ExpectExec(upsertProgress).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertSubmit).
		WithArgs(sqlmock.AnyArg(), "ind-7", "interest", []byte(`[{"questionId":1,"answer":"Agree"}]`), []byte(`[]`), at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), sampleProgress(2), s))
	assert.Len(t, s.ID, 36)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_SubmissionFailureRollsBack(t *testing.T) {
	cache, mr := newMiniCache(t)
	repo, mock, _ := newRepo(t, cache)

	first := &models.Submission{ID: "first-id", IndividualID: "ind-7", TestType: models.TestPersonality, Responses: []models.Response{}}
	second := &models.Submission{ID: "fixed-id", IndividualID: "ind-7", TestType: models.TestAptitude, Responses: []models.Response{}}

	mock.ExpectBegin()
	mock.ExpectExec(upsertProgress).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertSubmit).
		WithArgs("first-id", "ind-7", "personality", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertSubmit).
		WithArgs("fixed-id", "ind-7", "aptitude", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), sampleProgress(2), first, second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
	assert.Equal(t, "fixed-id", second.ID)
	assert.False(t, mr.Exists("assessment:progress:ind-7"), "rolled back record is not cached")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	repo, mock, _ := newRepo(t, nil)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS assessment_progress`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS assessment_submissions`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE INDEX IF NOT EXISTS idx_assessment_submissions_individual`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_RollsBack(t *testing.T) {
	repo, mock, _ := newRepo(t, nil)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS assessment_progress`)).WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err := repo.EnsureSchema(context.Background())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositorySatisfiesStore(t *testing.T) {
	var _ assessment.ProgressStore = (*ProgressRepository)(nil)
}
