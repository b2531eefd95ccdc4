package repository

import (
	"context"
	"errors"

	"github.com/BhavikPahuja/eBillingBackend/internal/domain/entity"
	domainRepo "github.com/BhavikPahuja/eBillingBackend/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateSerial is returned when an insert hits the unique index
// on bills.serial. With the atomic counter this should not happen; the
// index remains as a backstop.
var ErrDuplicateSerial = errors.New("duplicate bill serial")

const uniqueViolationCode = "23505"

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// Create persists a bill together with its items in a single
// transaction; on failure nothing is written.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	err := r.db.WithContext(ctx).Create(bill).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateSerial
		}
		return err
	}
	return nil
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_items.position ASC")
		}).
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, error) {
	var bills []entity.Bill

	query := r.db.WithContext(ctx).Model(&entity.Bill{})

	if params != nil {
		if params.From != nil {
			query = query.Where("date >= ?", *params.From)
		}
		if params.Before != nil {
			query = query.Where("date < ?", *params.Before)
		}
	}

	err := query.
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_items.position ASC")
		}).
		Order("date DESC").
		Find(&bills).Error

	return bills, err
}

func (r *billRepository) ListAll(ctx context.Context) ([]entity.Bill, error) {
	return r.List(ctx, nil)
}

// NextSerial atomically increments and returns the bill serial
// counter. The first allocation on an empty store returns 1; every
// concurrent caller receives a distinct value.
func (r *billRepository) NextSerial(ctx context.Context) (int64, error) {
	var serial int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO serial_counters (name, value) VALUES ('bills', 1)
		ON CONFLICT (name) DO UPDATE SET value = serial_counters.value + 1
		RETURNING value`).Scan(&serial).Error
	if err != nil {
		return 0, err
	}
	return serial, nil
}
