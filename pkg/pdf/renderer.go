// Package pdf renders an invoice document model into a paginated PDF byte
// buffer. Layout concerns (coordinates, fonts, page breaks) live here; the
// model itself carries only pre-formatted values.
package pdf

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/max25782/server/internal/models"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	marginLeft  = 50.0
	marginRight = 550.0
	// Rows past this vertical cursor trigger a page break.
	pageBreakY = 700.0
)

// Renderer draws invoice models onto A4 pages.
type Renderer struct {
	logoPath string
}

// NewRenderer creates a Renderer. logoPath may be empty or point at a PNG
// drawn in the header; a missing file is skipped silently.
func NewRenderer(logoPath string) *Renderer {
	return &Renderer{logoPath: logoPath}
}

// Render lays the invoice out and returns the finished PDF bytes.
func (r *Renderer) Render(inv *models.Invoice) ([]byte, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	r.drawHeader(doc, inv)
	if err := r.drawQRCode(doc, inv); err != nil {
		return nil, err
	}
	r.drawCustomerInfo(doc, inv)
	r.drawOrderInfo(doc, inv)
	y := r.drawLineTable(doc, inv)
	r.drawTotals(doc, inv, y)
	r.drawFooter(doc, inv)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to produce PDF output: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawHeader(doc *fpdf.Fpdf, inv *models.Invoice) {
	if r.logoPath != "" {
		if _, err := os.Stat(r.logoPath); err == nil {
			doc.ImageOptions(r.logoPath, marginLeft, 45, 50, 0, false, fpdf.ImageOptions{}, 0, "")
		}
	}

	doc.SetTextColor(68, 68, 68)
	doc.SetFont("Helvetica", "", 20)
	doc.Text(110, 70, inv.Header.Brand)

	doc.SetFont("Helvetica", "", 10)
	y := 58.0
	for _, line := range inv.Header.AddressLines {
		doc.SetXY(200, y)
		doc.CellFormat(marginRight-200, 12, line, "", 0, "R", false, 0, "")
		y += 15
	}
}

func (r *Renderer) drawQRCode(doc *fpdf.Fpdf, inv *models.Invoice) error {
	png, err := qrcode.Encode(inv.QRPayload, qrcode.Medium, 150)
	if err != nil {
		return fmt.Errorf("failed to encode order QR code: %w", err)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("order-qr", opts, bytes.NewReader(png))
	doc.ImageOptions("order-qr", 450, 45, 100, 0, false, opts, 0, "")

	doc.SetFont("Helvetica", "", 8)
	doc.SetXY(450, 150)
	doc.CellFormat(100, 10, inv.QRCaption, "", 0, "C", false, 0, "")
	return nil
}

func (r *Renderer) drawHr(doc *fpdf.Fpdf, y float64) {
	doc.SetDrawColor(170, 170, 170)
	doc.SetLineWidth(1)
	doc.Line(marginLeft, y, marginRight, y)
}

func (r *Renderer) drawLabeledRow(doc *fpdf.Fpdf, y float64, label, value string) {
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(marginLeft, y, label)
	doc.SetFont("Helvetica", "", 12)
	doc.Text(marginLeft+100, y, value)
}

func (r *Renderer) drawCustomerInfo(doc *fpdf.Fpdf, inv *models.Invoice) {
	doc.SetTextColor(68, 68, 68)
	doc.SetFont("Helvetica", "", 16)
	doc.Text(marginLeft, 142, "Customer Information")
	r.drawHr(doc, 150)

	r.drawLabeledRow(doc, 175, "Name:", inv.Customer.Name)
	r.drawLabeledRow(doc, 190, "Email:", inv.Customer.Email)
	r.drawLabeledRow(doc, 205, "Phone:", inv.Customer.Phone)
	r.drawLabeledRow(doc, 220, "Address:", inv.Customer.Address)
}

func (r *Renderer) drawOrderInfo(doc *fpdf.Fpdf, inv *models.Invoice) {
	doc.SetFont("Helvetica", "", 16)
	doc.Text(marginLeft, 262, "Order Information")
	r.drawHr(doc, 270)

	r.drawLabeledRow(doc, 295, "Order number:", inv.Info.OrderID)
	r.drawLabeledRow(doc, 310, "Order date:", inv.Info.Date)
	r.drawLabeledRow(doc, 325, "Order total:", inv.Info.Total)
}

func (r *Renderer) drawLineTable(doc *fpdf.Fpdf, inv *models.Invoice) float64 {
	doc.SetFont("Helvetica", "", 16)
	doc.Text(marginLeft, 362, "Products")
	r.drawHr(doc, 370)

	y := 390.0
	doc.SetFont("Helvetica", "B", 10)
	doc.Text(marginLeft, y, "Image")
	doc.Text(marginLeft+100, y, "Name")
	doc.Text(marginLeft+200, y, "Description")
	doc.Text(marginLeft+300, y, "Length (m)")
	doc.Text(marginLeft+350, y, "Weight (kg)")
	doc.Text(marginLeft+400, y, "Price")
	doc.Text(marginLeft+440, y, "Qty")
	doc.Text(marginLeft+480, y, "Total")

	y += 20
	r.drawHr(doc, y)
	y += 10

	const imageHeight = 60.0
	doc.SetFont("Helvetica", "", 10)
	for _, line := range inv.Lines {
		r.drawLineImage(doc, line.Image, y, imageHeight)

		textY := y + 10
		doc.SetFont("Helvetica", "", 10)
		doc.Text(marginLeft+100, textY, line.Name)
		doc.Text(marginLeft+200, textY, line.Description)
		doc.Text(marginLeft+300, textY, line.Length)
		doc.Text(marginLeft+350, textY, line.Weight)
		doc.Text(marginLeft+400, textY, line.Price)
		doc.Text(marginLeft+440, textY, line.Quantity)
		doc.Text(marginLeft+480, textY, line.LineTotal)

		y += imageHeight + 10
		r.drawHr(doc, y)
		y += 10

		if y > pageBreakY {
			doc.AddPage()
			y = 50
			r.drawHr(doc, y)
			y += 10
		}
	}
	return y
}

func (r *Renderer) drawLineImage(doc *fpdf.Fpdf, image string, y, height float64) {
	path := strings.TrimPrefix(image, "/")
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			opts := fpdf.ImageOptions{ImageType: imageTypeFor(path)}
			doc.ImageOptions(path, marginLeft, y, 60, height, false, opts, 0, "")
			return
		}
		log.Printf("Invoice image %s not found, drawing placeholder", path)
	}
	doc.Rect(marginLeft, y, 60, height, "D")
	doc.SetFont("Helvetica", "", 8)
	doc.Text(marginLeft+15, y+30, "No image")
}

func imageTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "JPG"
	case ".gif":
		return "GIF"
	default:
		return "PNG"
	}
}

func (r *Renderer) drawTotals(doc *fpdf.Fpdf, inv *models.Invoice, y float64) {
	y += 20
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(marginLeft, y, "Totals:")
	y += 18

	rows := []struct{ label, value string }{
		{"Total length:", inv.Totals.Length},
		{"Total weight:", inv.Totals.Weight},
		{"Grand total:", inv.Totals.Total},
	}
	for _, row := range rows {
		doc.SetFont("Helvetica", "B", 10)
		doc.Text(marginLeft, y, row.label)
		doc.SetFont("Helvetica", "", 10)
		doc.Text(marginLeft+150, y, row.value)
		y += 15
	}
}

func (r *Renderer) drawFooter(doc *fpdf.Fpdf, inv *models.Invoice) {
	_, pageHeight := doc.GetPageSize()
	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(marginLeft, pageHeight-50)
	doc.CellFormat(500, 12, inv.Footer, "", 0, "C", false, 0, "")
}
