package invoice

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// LineItem is one product row on the invoice.
type LineItem struct {
	Name     string
	Quantity float64
	Price    float64
}

// Invoice is the fully-resolved view model the renderer lays out.
// The optional summary figures default per defaultSummary: SubTotal
// falls back to TotalAmount, the rest to zero.
type Invoice struct {
	Title       string
	Address     string
	CompanyName string
	ContactNo   string
	InvoiceNo   string
	Date        string

	Items       []LineItem
	TotalAmount float64

	AmountInWords  string
	SubTotal       *float64
	Received       *float64
	Balance        *float64
	CurrentBalance *float64
}

type rgb struct{ r, g, b int }

var (
	primaryColor  = rgb{25, 118, 210}  // #1976d2 header and accents
	borderColor   = rgb{176, 190, 197} // #b0bec5
	tableHeaderBg = rgb{227, 234, 252} // #e3eafc
	tableBodyBg   = rgb{250, 251, 252} // #fafbfc
	footerBg      = rgb{240, 244, 255} // #f0f4ff
	sectionColor  = rgb{51, 51, 51}    // #333
	wordsColor    = rgb{68, 68, 68}    // #444
	black         = rgb{0, 0, 0}
)

// Fixed layout geometry, in points on an A4 page.
var itemColX = [5]float64{40, 80, 300, 390, 480}

const (
	pageMargin = 40.0
	tableRight = 555.0
	tableWidth = tableRight - pageMargin
	rowHeight  = 30.0

	// Helvetica ascender fraction, used to place text by its top edge.
	fontAscent = 0.718
)

var tableHeaders = [5]string{"#", "Item Name", "Quantity", "Price / Unit", "Amount"}

// renderEpoch pins the document metadata dates so that rendering the
// same view model twice produces byte-identical output.
var renderEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Render lays the invoice out on a single A4 page and returns the
// finished PDF. Either a complete document is returned or an error.
func Render(inv Invoice) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	// Catalog sorting keeps resource object numbering stable across
	// runs, so the same view model always yields the same bytes.
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(renderEpoch)
	pdf.SetModificationDate(renderEpoch)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(x, yTop float64, size float64, s string) {
		pdf.Text(x, yTop+size*fontAscent, tr(toLatin(s)))
	}
	fill := func(c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
	ink := func(c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }

	// Header
	ink(primaryColor)
	pdf.SetFont("Helvetica", "", 30)
	text(pageMargin, pageMargin, 30, inv.Title)

	ink(black)
	pdf.SetFont("Helvetica", "", 12)
	text(pageMargin, 85, 12, inv.Address)

	pdf.SetLineWidth(2)
	pdf.SetDrawColor(primaryColor.r, primaryColor.g, primaryColor.b)
	pdf.Line(pageMargin, 110, tableRight, 110)

	// Customer and invoice info
	const infoY = 120.0
	text(pageMargin, infoY, 12, "Bill To: "+inv.CompanyName)
	text(pageMargin, infoY+18, 12, "Contact No.: "+inv.ContactNo)
	text(350, infoY, 12, "Invoice No: "+inv.InvoiceNo)
	text(350, infoY+18, 12, "Date: "+inv.Date)

	// Section label
	ink(sectionColor)
	pdf.SetFont("Helvetica", "", 16)
	text(pageMargin, infoY+60, 16, "Invoice Details")

	// Table header row
	tableTop := infoY + 90
	fill(tableHeaderBg)
	pdf.Rect(pageMargin, tableTop, tableWidth, rowHeight, "F")

	ink(primaryColor)
	pdf.SetFont("Helvetica", "B", 12)
	for i, header := range tableHeaders {
		text(itemColX[i]+5, tableTop+8, 12, header)
	}

	pdf.SetLineWidth(1)
	pdf.SetDrawColor(borderColor.r, borderColor.g, borderColor.b)
	rowBorders(pdf, tableTop)

	// Table body rows
	pdf.SetFont("Helvetica", "", 12)
	ink(black)
	currentY := tableTop + rowHeight

	for index, item := range inv.Items {
		if index%2 == 0 {
			fill(tableBodyBg)
			pdf.Rect(pageMargin, currentY, tableWidth, rowHeight, "F")
		}
		rowBorders(pdf, currentY)

		text(itemColX[0]+5, currentY+8, 12, strconv.Itoa(index+1))
		text(itemColX[1]+5, currentY+8, 12, item.Name)
		text(itemColX[2]+5, currentY+8, 12, formatQuantity(item.Quantity))
		text(itemColX[3]+5, currentY+8, 12, FormatINR(item.Price))
		text(itemColX[4]+5, currentY+8, 12, FormatINR(item.Quantity*item.Price))

		currentY += rowHeight
	}

	// Table footer with total
	fill(footerBg)
	pdf.Rect(pageMargin, currentY, tableWidth, rowHeight, "F")
	rowBorders(pdf, currentY)

	pdf.SetFont("Helvetica", "B", 12)
	ink(primaryColor)
	text(itemColX[3]+5, currentY+8, 12, "Total")
	text(itemColX[4]+5, currentY+8, 12, FormatINR(inv.TotalAmount))

	currentY += rowHeight + 10

	// Amount in words
	pdf.SetFont("Helvetica", "I", 12)
	ink(wordsColor)
	text(pageMargin, currentY, 12, "Invoice Amount in Words: "+inv.AmountInWords)

	// Summary block
	const summaryX = 320.0
	summaryY := currentY + 40
	const summaryLineHeight = 20.0

	summary := [5][2]string{
		{"Sub Total:", FormatINR(orDefault(inv.SubTotal, inv.TotalAmount))},
		{"Total:", FormatINR(inv.TotalAmount)},
		{"Received:", FormatINR(orDefault(inv.Received, 0))},
		{"Balance:", FormatINR(orDefault(inv.Balance, 0))},
		{"Current Balance:", FormatINR(orDefault(inv.CurrentBalance, 0))},
	}

	pdf.SetFont("Helvetica", "", 12)
	ink(black)
	for i, row := range summary {
		y := summaryY + float64(i)*summaryLineHeight
		text(summaryX, y, 12, row[0])
		text(summaryX+120, y, 12, row[1])
	}

	// Footer message
	ink(primaryColor)
	pdf.SetFont("Helvetica", "I", 14)
	text(pageMargin, 760, 14, "Thank you for doing business with us.")

	if pdf.Err() {
		return nil, fmt.Errorf("invoice: render failed: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice: render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// rowBorders draws the outer rectangle and the column separators for
// one table row starting at y.
func rowBorders(pdf *fpdf.Fpdf, y float64) {
	pdf.Rect(pageMargin, y, tableWidth, rowHeight, "D")
	for _, x := range itemColX[1:] {
		pdf.Line(x, y, x, y+rowHeight)
	}
}

// formatQuantity prints whole quantities without a decimal point.
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// toLatin rewrites text for the cp1252-encoded core fonts, which have
// no glyph for the Rupee sign. Amounts render with an "Rs." prefix.
func toLatin(s string) string {
	return strings.ReplaceAll(s, "₹", "Rs.")
}

func orDefault(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
