package handler

import (
	"net/http"
	"time"

	"github.com/BhavikPahuja/eBillingBackend/internal/application/service"
	"github.com/BhavikPahuja/eBillingBackend/internal/domain/entity"
	"github.com/BhavikPahuja/eBillingBackend/internal/presentation/http/dto/request"
	"github.com/BhavikPahuja/eBillingBackend/internal/presentation/http/dto/response"
	"github.com/BhavikPahuja/eBillingBackend/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// Create handles POST /api/bills
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid request body"))
		return
	}

	products := make([]service.BillItemInput, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, service.BillItemInput{
			Name:     p.Name,
			Quantity: p.Quantity,
			Price:    p.Price,
		})
	}

	serial, err := h.billService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		BillerName:    req.BillerName,
		BillerNumber:  req.BillerNumber,
		BillToAddress: req.BillToAddress,
		BillToCity:    req.BillToCity,
		Products:      products,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"message":   "Bill created",
		"invoiceNo": serial,
	})
}

// List handles GET /api/bills with optional from/to date bounds
func (h *BillHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid query parameters"))
		return
	}

	var from, to *time.Time
	if filter.From != "" {
		parsed, err := time.Parse("2006-01-02", filter.From)
		if err != nil {
			response.Error(c, apperror.NewBadRequestError("Invalid from date"))
			return
		}
		from = &parsed
	}
	if filter.To != "" {
		parsed, err := time.Parse("2006-01-02", filter.To)
		if err != nil {
			response.Error(c, apperror.NewBadRequestError("Invalid to date"))
			return
		}
		to = &parsed
	}

	bills, err := h.billService.ListBills(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	if bills == nil {
		bills = []entity.Bill{}
	}

	response.OK(c, bills)
}

// GetByID handles GET /api/bills/:id
func (h *BillHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Bill not found")
		return
	}

	bill, err := h.billService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewBillDetail(bill))
}

// GetPDF handles GET /api/bills/:id/pdf
func (h *BillHandler) GetPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Bill not found")
		return
	}

	data, err := h.billService.RenderBillPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=Bill.pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

// GetExcel handles GET /api/bills/excel
func (h *BillHandler) GetExcel(c *gin.Context) {
	data, err := h.billService.ExportBillsExcel(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=bills.xlsx")
	c.Data(http.StatusOK, excelContentType, data)
}
