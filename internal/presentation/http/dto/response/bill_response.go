package response

import (
	"encoding/json"

	"github.com/BhavikPahuja/eBillingBackend/internal/domain/entity"
)

// BillDetail wraps a bill for the single-bill endpoint, mirroring
// products under an items key for renderer-side convenience.
type BillDetail struct {
	Bill entity.Bill
}

// NewBillDetail creates a bill detail response
func NewBillDetail(bill *entity.Bill) *BillDetail {
	return &BillDetail{Bill: *bill}
}

// MarshalJSON emits the bill's own JSON shape plus the items alias
func (bd BillDetail) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(bd.Bill)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}

	products := bd.Bill.Products
	if products == nil {
		products = []entity.BillItem{}
	}
	items, err := json.Marshal(products)
	if err != nil {
		return nil, err
	}
	fields["items"] = items

	return json.Marshal(fields)
}
