package pdf_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/max25782/server/internal/models"
	"github.com/max25782/server/pkg/pdf"

	"github.com/stretchr/testify/assert"
)

func sampleInvoice(lineCount int) *models.Invoice {
	lines := make([]models.InvoiceLine, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		lines = append(lines, models.InvoiceLine{
			Name:        fmt.Sprintf("Product %d", i+1),
			Description: "A fine product",
			Length:      "1.2",
			Weight:      "3.4",
			Price:       "$150.00",
			Quantity:    "2",
			LineTotal:   "$300.00",
		})
	}
	return &models.Invoice{
		Header: models.InvoiceHeader{
			Brand:        "Delivery App",
			AddressLines: []string{"Delivery App", "123 Main Street", "New York, NY, 10025"},
		},
		QRPayload: `{"id":"order-1"}`,
		QRCaption: "Scan to view order #order-1",
		Customer: models.InvoiceParty{
			Name:    "Alice",
			Email:   "alice@example.com",
			Phone:   "No phone",
			Address: "No address",
		},
		Info: models.InvoiceInfo{
			OrderID: "order-1",
			Date:    "5/3/2026",
			Total:   "$300.00",
		},
		Lines: lines,
		Totals: models.InvoiceTotals{
			Length: "2.40 m",
			Weight: "6.80 kg",
			Total:  "$300.00",
		},
		Footer: "Thank you for your order! We hope to see you again.",
	}
}

func TestRender_ProducesPDFBytes(t *testing.T) {
	renderer := pdf.NewRenderer("")

	buf, err := renderer.Render(sampleInvoice(1))

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf, []byte("%PDF")))
}

func TestRender_ManyLinesSpanPages(t *testing.T) {
	renderer := pdf.NewRenderer("")

	short, err := renderer.Render(sampleInvoice(1))
	assert.NoError(t, err)
	long, err := renderer.Render(sampleInvoice(12))
	assert.NoError(t, err)

	// A dozen lines cannot fit on one A4 page, so the document grows.
	assert.Greater(t, len(long), len(short))
	assert.True(t, bytes.Contains(long, []byte("/Count 2")) || bytes.Contains(long, []byte("/Count 3")))
}

func TestRender_EmptyOrder(t *testing.T) {
	renderer := pdf.NewRenderer("")

	inv := sampleInvoice(0)
	buf, err := renderer.Render(inv)

	assert.NoError(t, err)
	assert.NotEmpty(t, buf)
}
