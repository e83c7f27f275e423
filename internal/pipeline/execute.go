package pipeline

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// Page is the paginated result contract: the window of view models plus
// enough metadata for a client to walk every page.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type countRow struct {
	Total int64 `json:"total"`
}

// Execute runs the pipeline's count and select queries and assembles a
// Page of decoded view models.
func Execute[T any](ctx context.Context, db *surrealdb.DB, p *Pipeline) (*Page[T], error) {
	vars := p.Vars()

	countRes, err := surrealdb.Query[[]countRow](ctx, db, p.CountQuery(), vars)
	if err != nil {
		return nil, fmt.Errorf("count query failed: %w", err)
	}

	var total int64
	if countRes != nil && len(*countRes) > 0 && len((*countRes)[0].Result) > 0 {
		total = (*countRes)[0].Result[0].Total
	}

	selectRes, err := surrealdb.Query[[]T](ctx, db, p.SelectQuery(), vars)
	if err != nil {
		return nil, fmt.Errorf("select query failed: %w", err)
	}

	items := []T{}
	if selectRes != nil && len(*selectRes) > 0 {
		items = (*selectRes)[0].Result
	}

	totalPages := int((total + int64(p.limit) - 1) / int64(p.limit))

	return &Page[T]{
		Items:      items,
		TotalCount: total,
		Page:       p.page,
		Limit:      p.limit,
		TotalPages: totalPages,
	}, nil
}
