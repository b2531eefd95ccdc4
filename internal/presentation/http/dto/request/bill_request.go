package request

// BillProductRequest represents one line item in a create-bill request
type BillProductRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Quantity float64 `json:"quantity" binding:"min=0"`
	Price    float64 `json:"price" binding:"min=0"`
}

// CreateBillRequest represents a bill creation request. The serial is
// never accepted from the caller; it is allocated server-side.
type CreateBillRequest struct {
	BillerName    string               `json:"billerName" binding:"required,max=255"`
	BillerNumber  string               `json:"billerNumber" binding:"required,max=50"`
	BillToAddress string               `json:"billToAddress" binding:"omitempty,max=255"`
	BillToCity    string               `json:"billToCity" binding:"omitempty,max=100"`
	Products      []BillProductRequest `json:"products" binding:"required,min=1,dive"`
}

// BillFilterRequest represents bill list filter parameters
type BillFilterRequest struct {
	From string `form:"from"`
	To   string `form:"to"`
}
