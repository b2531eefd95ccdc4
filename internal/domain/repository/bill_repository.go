package repository

import (
	"context"
	"time"

	"github.com/BhavikPahuja/eBillingBackend/internal/domain/entity"
	"github.com/google/uuid"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, error)
	ListAll(ctx context.Context) ([]entity.Bill, error)
	NextSerial(ctx context.Context) (int64, error)
}

// BillFilterParams contains filtering parameters for bill queries.
// From is an inclusive lower bound, Before an exclusive upper bound.
type BillFilterParams struct {
	From   *time.Time
	Before *time.Time
}
