package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/BhavikPahuja/eBillingBackend/internal/domain/entity"
	"github.com/BhavikPahuja/eBillingBackend/internal/domain/repository"
	infraRepo "github.com/BhavikPahuja/eBillingBackend/internal/infrastructure/repository"
	"github.com/BhavikPahuja/eBillingBackend/pkg/apperror"
	"github.com/BhavikPahuja/eBillingBackend/pkg/export"
	"github.com/BhavikPahuja/eBillingBackend/pkg/invoice"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopDetails identifies the shop printed on every invoice PDF.
type ShopDetails struct {
	Name    string
	Address string
}

// BillService handles bill-related operations
type BillService struct {
	billRepo repository.BillRepository
	shop     ShopDetails
}

// NewBillService creates a new bill service
func NewBillService(billRepo repository.BillRepository, shop ShopDetails) *BillService {
	return &BillService{
		billRepo: billRepo,
		shop:     shop,
	}
}

// BillItemInput represents a line item in a bill
type BillItemInput struct {
	Name     string
	Quantity float64
	Price    float64
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	BillerName    string
	BillerNumber  string
	BillToAddress string
	BillToCity    string
	Products      []BillItemInput
}

// CreateBill validates the input, allocates the next invoice serial,
// computes the total and persists a new immutable bill. It returns the
// assigned serial, which callers use as the invoice number.
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (int64, error) {
	if len(input.Products) == 0 {
		return 0, apperror.NewBadRequestError("At least one product is required")
	}

	var fieldErrors []apperror.FieldError
	for i, p := range input.Products {
		if p.Name == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("products[%d].name", i),
				Message: "name is required",
			})
		}
		if p.Quantity < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("products[%d].quantity", i),
				Message: "quantity must not be negative",
			})
		}
		if p.Price < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("products[%d].price", i),
				Message: "price must not be negative",
			})
		}
	}
	if len(fieldErrors) > 0 {
		return 0, apperror.NewValidationError(fieldErrors)
	}

	serial, err := s.billRepo.NextSerial(ctx)
	if err != nil {
		return 0, err
	}

	total := decimal.Zero
	items := make([]entity.BillItem, 0, len(input.Products))
	for i, p := range input.Products {
		price := decimal.NewFromFloat(p.Price)
		quantity := decimal.NewFromFloat(p.Quantity)
		total = total.Add(price.Mul(quantity))

		items = append(items, entity.BillItem{
			Name:     p.Name,
			Quantity: p.Quantity,
			Price:    toPaise(price),
			Position: i,
		})
	}

	bill := &entity.Bill{
		Serial:        serial,
		BillerName:    input.BillerName,
		BillerNumber:  input.BillerNumber,
		BillToAddress: input.BillToAddress,
		BillToCity:    input.BillToCity,
		TotalAmount:   toPaise(total),
		Date:          time.Now(),
		Products:      items,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		if errors.Is(err, infraRepo.ErrDuplicateSerial) {
			return 0, apperror.NewConflictError("Invoice number already exists")
		}
		return 0, err
	}

	return serial, nil
}

// ListBills returns bills optionally filtered by an inclusive date
// range, most recent first. The upper bound covers the entire calendar
// day it names.
func (s *BillService) ListBills(ctx context.Context, from, to *time.Time) ([]entity.Bill, error) {
	params := &repository.BillFilterParams{From: from}
	if to != nil {
		before := to.AddDate(0, 0, 1)
		params.Before = &before
	}
	return s.billRepo.List(ctx, params)
}

// GetBill fetches a single bill by id
func (s *BillService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// RenderBillPDF fetches a bill and renders it as a PDF document
func (s *BillService) RenderBillPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}

	items := make([]invoice.LineItem, 0, len(bill.Products))
	for _, p := range bill.Products {
		items = append(items, invoice.LineItem{
			Name:     p.Name,
			Quantity: p.Quantity,
			Price:    p.GetPriceDecimal(),
		})
	}

	total := bill.GetTotalDecimal()
	data, err := invoice.Render(invoice.Invoice{
		Title:         s.shop.Name,
		Address:       s.shop.Address,
		CompanyName:   bill.BillerName,
		ContactNo:     bill.BillerNumber,
		InvoiceNo:     strconv.FormatInt(bill.Serial, 10),
		Date:          bill.Date.Format("02/01/2006"),
		Items:         items,
		TotalAmount:   total,
		AmountInWords: invoice.AmountInWords(total),
	})
	if err != nil {
		return nil, apperror.NewInternalError("Error generating PDF")
	}
	return data, nil
}

// ExportBillsExcel dumps every bill into an xlsx workbook
func (s *BillService) ExportBillsExcel(ctx context.Context) ([]byte, error) {
	bills, err := s.billRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]export.BillRow, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, export.BillRow{
			Serial: b.Serial,
			Biller: b.BillerName,
			Date:   b.Date.Format("2006-01-02"),
			Total:  b.GetTotalDecimal(),
		})
	}

	data, err := export.ExcelWorkbook(rows)
	if err != nil {
		return nil, apperror.NewInternalError("Error generating Excel")
	}
	return data, nil
}

// toPaise converts a rupee decimal to whole paise
func toPaise(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
