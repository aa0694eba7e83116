package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"favour_crochet_server/structs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "no rows", err: sql.ErrNoRows, want: false},
		{name: "cancelled", err: context.Canceled, want: false},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "too many connections", err: &pgconn.PgError{Code: "53300"}, want: true},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: true},
		{name: "plain", err: errors.New("something else"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestRetryWithBackoff(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 2, EnableRetry: true}

	t.Run("retries transient errors", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("connection reset by peer")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), cfg, func() error {
			calls++
			return &pgconn.PgError{Code: "23505"}
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), cfg, func() error {
			calls++
			return errors.New("i/o timeout")
		})
		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 0, 1, DefaultPageSize},
		{3, 50, 3, 50},
		{-1, 1000, 1, MaxPageSize},
	}

	for _, tt := range tests {
		page, size := NormalizePage(tt.page, tt.size)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantSize, size)
	}
}

func TestDSN(t *testing.T) {
	cfg := &structs.DatabaseConfig{
		Host: "db", Port: 5433, User: "shop", Password: "p@ss", Name: "favour", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://shop:p%40ss@db:5433/favour?sslmode=disable", DSN(cfg))

	cfg.URL = "postgres://override/db"
	assert.Equal(t, "postgres://override/db", DSN(cfg))
}

func TestOpenSQL_UnknownDriver(t *testing.T) {
	_, err := openSQL(&structs.DatabaseConfig{Driver: "mysql"})
	assert.Error(t, err)
}
