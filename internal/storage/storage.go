package storage

import (
	"context"

	"jarScope/internal/model"
)

// Storage defines a sink for pool valuation records.
type Storage interface {
	PutValuations(ctx context.Context, records []model.PoolValuationRecord) error
}
