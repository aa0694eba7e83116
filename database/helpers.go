package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Transaction executes fn within a database transaction. Any error rolls it back.
func Transaction(ctx context.Context, db bun.IDB, fn func(ctx context.Context, tx bun.Tx) error) error {
	if db == nil {
		return fmt.Errorf("database instance not initialized")
	}
	return db.RunInTx(ctx, &sql.TxOptions{}, fn)
}

// Pagination represents pagination parameters
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"count"`
}

// NormalizePage clamps page and page size to the supported range
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Paginate applies LIMIT/OFFSET to q, scans into dest and returns the total count.
func Paginate(ctx context.Context, q *bun.SelectQuery, page, pageSize int) (Pagination, error) {
	page, pageSize = NormalizePage(page, pageSize)

	var total int
	err := WithRetry(ctx, func() error {
		var err error
		total, err = q.Limit(pageSize).Offset((page - 1) * pageSize).ScanAndCount(ctx)
		return err
	})
	if err != nil {
		return Pagination{}, fmt.Errorf("failed to execute paginated query: %w", err)
	}

	return Pagination{Page: page, PageSize: pageSize, Total: total}, nil
}

// FindByID loads a single row of T by primary key.
func FindByID[T any](ctx context.Context, db bun.IDB, id any) (*T, error) {
	var row T
	err := WithRetry(ctx, func() error {
		return db.NewSelect().Model(&row).Where("?TableAlias.id = ?", id).Limit(1).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}
