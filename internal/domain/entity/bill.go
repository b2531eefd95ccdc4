package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill represents a single immutable invoice record
type Bill struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Serial        int64     `gorm:"uniqueIndex;not null" json:"serial"`
	BillerName    string    `gorm:"size:255" json:"billerName"`
	BillerNumber  string    `gorm:"size:50" json:"billerNumber"`
	BillToAddress string    `gorm:"size:255" json:"billToAddress"`
	BillToCity    string    `gorm:"size:100" json:"billToCity"`
	TotalAmount   int64     `gorm:"not null;default:0" json:"-"` // Stored in paise, excluded from JSON
	Date          time.Time `gorm:"index;not null" json:"date"`
	CreatedAt     time.Time `json:"-"`

	// Relationships
	Products []BillItem `gorm:"foreignKey:BillID" json:"products"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"totalAmount"`
	}{
		Alias:       Alias(b),
		TotalAmount: float64(b.TotalAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// GetTotalDecimal returns the total as a decimal rupee amount
func (b *Bill) GetTotalDecimal() float64 {
	return float64(b.TotalAmount) / 100
}

// BillItem represents a line item owned by a bill. Items have no
// lifecycle of their own; Position preserves insertion order.
type BillItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	BillID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Quantity float64   `gorm:"not null" json:"quantity"`
	Price    int64     `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Position int       `gorm:"not null" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (bi BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(bi),
		Price: float64(bi.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill item
func (bi *BillItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// GetPriceDecimal returns the unit price as a decimal rupee amount
func (bi *BillItem) GetPriceDecimal() float64 {
	return float64(bi.Price) / 100
}

// SerialCounter backs the atomic invoice serial sequence. A single row
// named "bills" holds the last allocated serial.
type SerialCounter struct {
	Name  string `gorm:"size:50;primary_key"`
	Value int64  `gorm:"not null"`
}

// TableName returns the table name for the SerialCounter model
func (SerialCounter) TableName() string {
	return "serial_counters"
}
