package service

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/BhavikPahuja/eBillingBackend/internal/domain/entity"
	"github.com/BhavikPahuja/eBillingBackend/internal/domain/repository"
	infraRepo "github.com/BhavikPahuja/eBillingBackend/internal/infrastructure/repository"
	"github.com/BhavikPahuja/eBillingBackend/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBillRepo struct {
	mu            sync.Mutex
	bills         []entity.Bill
	serial        int64
	nextSerialErr error
	createErr     error
	lastFilter    *repository.BillFilterParams
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{}
}

func (f *fakeBillRepo) NextSerial(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.nextSerialErr != nil {
		return 0, f.nextSerialErr
	}
	f.serial++
	return f.serial, nil
}

func (f *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.bills {
		if existing.Serial == bill.Serial {
			return infraRepo.ErrDuplicateSerial
		}
	}
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	f.bills = append(f.bills, *bill)
	return nil
}

func (f *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bills {
		if f.bills[i].ID == id {
			bill := f.bills[i]
			return &bill, nil
		}
	}
	return nil, nil
}

func (f *fakeBillRepo) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = params

	var result []entity.Bill
	for _, b := range f.bills {
		if params != nil {
			if params.From != nil && b.Date.Before(*params.From) {
				continue
			}
			if params.Before != nil && !b.Date.Before(*params.Before) {
				continue
			}
		}
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (f *fakeBillRepo) ListAll(ctx context.Context) ([]entity.Bill, error) {
	return f.List(ctx, nil)
}

func newTestService(repo repository.BillRepository) *BillService {
	return NewBillService(repo, ShopDetails{
		Name:    "Mobile Shop Mirzewala",
		Address: "Mirzewala, Sri Ganganagar",
	})
}

func validInput() *CreateBillInput {
	return &CreateBillInput{
		BillerName:    "Ramesh Kumar",
		BillerNumber:  "9876543210",
		BillToAddress: "Main Bazar",
		BillToCity:    "Sri Ganganagar",
		Products: []BillItemInput{
			{Name: "Screen Guard", Quantity: 2, Price: 150},
			{Name: "Back Cover", Quantity: 1, Price: 299.50},
		},
	}
}

func TestCreateBill_AssignsSequentialSerials(t *testing.T) {
	repo := newFakeBillRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		serial, err := svc.CreateBill(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, want, serial)
	}
	assert.Len(t, repo.bills, 3)
}

func TestCreateBill_ComputesTotal(t *testing.T) {
	repo := newFakeBillRepo()
	svc := newTestService(repo)

	_, err := svc.CreateBill(context.Background(), validInput())
	require.NoError(t, err)

	// 2 x 150.00 + 1 x 299.50 = 599.50 rupees
	require.Len(t, repo.bills, 1)
	assert.Equal(t, int64(59950), repo.bills[0].TotalAmount)
}

func TestCreateBill_DecimalSafeAccumulation(t *testing.T) {
	repo := newFakeBillRepo()
	svc := newTestService(repo)

	// 0.1 + 0.1 + 0.1 must come out as exactly 0.30
	input := &CreateBillInput{
		BillerName:   "Ramesh Kumar",
		BillerNumber: "9876543210",
		Products: []BillItemInput{
			{Name: "A", Quantity: 1, Price: 0.1},
			{Name: "B", Quantity: 1, Price: 0.1},
			{Name: "C", Quantity: 1, Price: 0.1},
		},
	}
	_, err := svc.CreateBill(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(30), repo.bills[0].TotalAmount)
}

func TestCreateBill_PreservesItemOrder(t *testing.T) {
	repo := newFakeBillRepo()
	svc := newTestService(repo)

	_, err := svc.CreateBill(context.Background(), validInput())
	require.NoError(t, err)

	items := repo.bills[0].Products
	require.Len(t, items, 2)
	assert.Equal(t, "Screen Guard", items[0].Name)
	assert.Equal(t, 0, items[0].Position)
	assert.Equal(t, "Back Cover", items[1].Name)
	assert.Equal(t, 1, items[1].Position)
}

func TestCreateBill_RejectsEmptyProducts(t *testing.T) {
	svc := newTestService(newFakeBillRepo())

	input := validInput()
	input.Products = nil
	_, err := svc.CreateBill(context.Background(), input)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestCreateBill_RejectsMalformedItems(t *testing.T) {
	svc := newTestService(newFakeBillRepo())

	input := validInput()
	input.Products = []BillItemInput{
		{Name: "", Quantity: -1, Price: -5},
	}
	_, err := svc.CreateBill(context.Background(), input)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Len(t, appErr.Errors, 3)
}

func TestCreateBill_PropagatesAllocatorFailure(t *testing.T) {
	repo := newFakeBillRepo()
	repo.nextSerialErr = errors.New("connection refused")
	svc := newTestService(repo)

	_, err := svc.CreateBill(context.Background(), validInput())
	require.Error(t, err)
	assert.Equal(t, 500, apperror.GetAppError(err).Code)
	assert.Empty(t, repo.bills)
}

func TestCreateBill_SerialCollisionIsConflict(t *testing.T) {
	repo := newFakeBillRepo()
	repo.bills = append(repo.bills, entity.Bill{ID: uuid.New(), Serial: 1})
	svc := newTestService(repo)

	_, err := svc.CreateBill(context.Background(), validInput())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestCreateBill_ConcurrentCreatesGetDistinctSerials(t *testing.T) {
	repo := newFakeBillRepo()
	svc := newTestService(repo)

	const workers = 10
	serials := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			serial, err := svc.CreateBill(context.Background(), validInput())
			assert.NoError(t, err)
			serials <- serial
		}()
	}
	wg.Wait()
	close(serials)

	seen := make(map[int64]bool)
	for serial := range serials {
		assert.False(t, seen[serial], "serial %d allocated twice", serial)
		seen[serial] = true
	}
	assert.Len(t, seen, workers)
}

func TestListBills_WidensToBoundToFullDay(t *testing.T) {
	repo := newFakeBillRepo()
	svc := newTestService(repo)

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.bills = []entity.Bill{
		{ID: uuid.New(), Serial: 1, Date: day.Add(23*time.Hour + 59*time.Minute)},
		{ID: uuid.New(), Serial: 2, Date: day.AddDate(0, 0, 1)},
	}

	bills, err := svc.ListBills(context.Background(), &day, &day)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, int64(1), bills[0].Serial)

	require.NotNil(t, repo.lastFilter.Before)
	assert.Equal(t, day.AddDate(0, 0, 1), *repo.lastFilter.Before)
}

func TestListBills_UnfilteredSortedByDateDescending(t *testing.T) {
	repo := newFakeBillRepo()
	svc := newTestService(repo)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 3; i++ {
		repo.bills = append(repo.bills, entity.Bill{
			ID:     uuid.New(),
			Serial: i,
			Date:   base.AddDate(0, 0, int(i)),
		})
	}

	bills, err := svc.ListBills(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, bills, 3)
	assert.Equal(t, int64(3), bills[0].Serial)
	assert.Equal(t, int64(2), bills[1].Serial)
	assert.Equal(t, int64(1), bills[2].Serial)
}

func TestGetBill_NotFound(t *testing.T) {
	svc := newTestService(newFakeBillRepo())

	_, err := svc.GetBill(context.Background(), uuid.New())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestRenderBillPDF(t *testing.T) {
	repo := newFakeBillRepo()
	svc := newTestService(repo)

	serial, err := svc.CreateBill(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), serial)

	data, err := svc.RenderBillPDF(context.Background(), repo.bills[0].ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderBillPDF_UnknownBill(t *testing.T) {
	svc := newTestService(newFakeBillRepo())

	_, err := svc.RenderBillPDF(context.Background(), uuid.New())
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestExportBillsExcel(t *testing.T) {
	repo := newFakeBillRepo()
	svc := newTestService(repo)

	_, err := svc.CreateBill(context.Background(), validInput())
	require.NoError(t, err)

	data, err := svc.ExportBillsExcel(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
