package models

// Invoice is the flat document model for an order invoice. All values are
// pre-formatted strings so the rendering collaborator only has to lay them
// out; building the same order twice yields an identical model.
type Invoice struct {
	Header    InvoiceHeader `json:"header"`
	QRPayload string        `json:"qr_payload"`
	QRCaption string        `json:"qr_caption"`
	Customer  InvoiceParty  `json:"customer"`
	Info      InvoiceInfo   `json:"info"`
	Lines     []InvoiceLine `json:"lines"`
	Totals    InvoiceTotals `json:"totals"`
	Footer    string        `json:"footer"`
}

// InvoiceHeader is the brand block at the top of the document.
type InvoiceHeader struct {
	Brand        string   `json:"brand"`
	AddressLines []string `json:"address_lines"`
}

// InvoiceParty is the customer info block.
type InvoiceParty struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// InvoiceInfo is the order info block.
type InvoiceInfo struct {
	OrderID string `json:"order_id"`
	Date    string `json:"date"`
	Total   string `json:"total"`
}

// InvoiceLine is one row of the line-item table.
type InvoiceLine struct {
	Image       string `json:"image"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Length      string `json:"length"`
	Weight      string `json:"weight"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	LineTotal   string `json:"line_total"`
}

// InvoiceTotals is the closing totals block.
type InvoiceTotals struct {
	Length string `json:"length"`
	Weight string `json:"weight"`
	Total  string `json:"total"`
}
