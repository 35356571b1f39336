package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"handcrafted-haven/internal/dto/response"
	"handcrafted-haven/pkg/database"
	"handcrafted-haven/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Postgres error classes the probes classify on instead of matching message
// text.
const pgUndefinedTable = "42P01"

type HealthService interface {
	CheckDB(ctx context.Context) (*response.HealthResponse, int)
	CheckDBWrite(ctx context.Context) (*response.HealthResponse, int)
}

type healthService struct {
	db     database.PgxIface
	config *utils.Config
	log    *zap.Logger
}

// NewHealthService probes the configured database. db is nil when no pool
// could be opened; the probes report that instead of failing at startup.
func NewHealthService(db database.PgxIface, config *utils.Config, log *zap.Logger) HealthService {
	return &healthService{
		db:     db,
		config: config,
		log:    log.With(zap.String("service", "health")),
	}
}

func (s *healthService) CheckDB(ctx context.Context) (*response.HealthResponse, int) {
	startedAt := time.Now()

	if resp, code := s.checkConfigured(); resp != nil {
		return resp, code
	}

	var one int
	if err := s.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		s.log.Warn("Database liveness probe failed", zap.Error(err))
		return probeFailure(err, startedAt), http.StatusServiceUnavailable
	}

	return &response.HealthResponse{
		OK:        true,
		Status:    response.HealthConnected,
		LatencyMs: time.Since(startedAt).Milliseconds(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK
}

// CheckDBWrite inserts and deletes a marker account in one transaction to
// prove the database accepts writes.
func (s *healthService) CheckDBWrite(ctx context.Context) (*response.HealthResponse, int) {
	startedAt := time.Now()

	if resp, code := s.checkConfigured(); resp != nil {
		return resp, code
	}

	err := s.runWriteProbe(ctx)
	if err != nil {
		s.log.Warn("Database write probe failed", zap.Error(err))

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
			return &response.HealthResponse{
				OK:        false,
				Status:    response.HealthSchemaMissing,
				Message:   "Database schema is not applied.",
				LatencyMs: time.Since(startedAt).Milliseconds(),
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			}, http.StatusServiceUnavailable
		}

		return &response.HealthResponse{
			OK:        false,
			Status:    response.HealthWriteFailed,
			Message:   err.Error(),
			LatencyMs: time.Since(startedAt).Milliseconds(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}, http.StatusInternalServerError
	}

	return &response.HealthResponse{
		OK:        true,
		Status:    response.HealthWriteOK,
		LatencyMs: time.Since(startedAt).Milliseconds(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK
}

func (s *healthService) runWriteProbe(ctx context.Context) error {
	marker := uuid.New()
	email := fmt.Sprintf("healthcheck+%s@example.com", marker.String()[:12])

	passwordHash, err := utils.HashPassword("temporary-password")
	if err != nil {
		return fmt.Errorf("hash probe password: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin probe transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, first_name, last_name, email, account_type,
		                   password_hash, created_at, updated_at)
		VALUES ($1, 'Health', 'Check', $2, 'buyer', $3, $4, $4)
	`, marker, email, passwordHash, now)
	if err != nil {
		return fmt.Errorf("probe insert: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE email = $1`, email); err != nil {
		return fmt.Errorf("probe delete: %w", err)
	}

	return tx.Commit(ctx)
}

// checkConfigured reports missing_env when no connection string is set and
// unreachable when one is set but no pool could be opened.
func (s *healthService) checkConfigured() (*response.HealthResponse, int) {
	if s.config.Database.URL == "" {
		return &response.HealthResponse{
			OK:      false,
			Status:  response.HealthMissingEnv,
			Message: "DATABASE_URL is not configured.",
		}, http.StatusInternalServerError
	}

	if s.db == nil {
		return &response.HealthResponse{
			OK:        false,
			Status:    response.HealthUnreachable,
			Message:   "Database connection failed.",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}, http.StatusServiceUnavailable
	}

	return nil, 0
}

func probeFailure(err error, startedAt time.Time) *response.HealthResponse {
	status := response.HealthUnreachable
	message := "Database connection failed."

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
		status = response.HealthSchemaMissing
		message = "Database schema is not applied."
	}

	return &response.HealthResponse{
		OK:        false,
		Status:    status,
		Message:   message,
		LatencyMs: time.Since(startedAt).Milliseconds(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
