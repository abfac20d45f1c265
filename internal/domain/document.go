package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Kind string

const (
	KindQuote         Kind = "devis"
	KindPurchaseOrder Kind = "bon-commande"
	KindInvoice       Kind = "facture"
)

// Title returns the printed document title for the kind
func (k Kind) Title() string {
	switch k {
	case KindQuote:
		return "DEVIS"
	case KindPurchaseOrder:
		return "BON DE COMMANDE"
	case KindInvoice:
		return "FACTURE"
	default:
		return "DOCUMENT"
	}
}

// ParseKind resolves a kind from its slug (the value used in CLI args and YAML files)
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindQuote:
		return KindQuote, nil
	case KindPurchaseOrder:
		return KindPurchaseOrder, nil
	case KindInvoice:
		return KindInvoice, nil
	}
	return "", fmt.Errorf("unknown document kind %q (expected devis, bon-commande or facture)", s)
}

type LineItem struct {
	Description string  `yaml:"description"`
	Quantity    int     `yaml:"quantity"`
	UnitPrice   float64 `yaml:"unit_price"`
}

// Total returns quantity x unit price, unrounded
func (l LineItem) Total() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

type Client struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
}

type Discount struct {
	Enabled    bool    `yaml:"enabled"`
	Percentage float64 `yaml:"percentage"`
}

// Document is one quote, purchase order or invoice being authored.
// It lives only for the duration of the editing session; nothing is persisted.
type Document struct {
	Kind       Kind       `yaml:"kind"`
	Number     string     `yaml:"number"`
	IssueDate  time.Time  `yaml:"date"`
	ValidUntil *time.Time `yaml:"valid_until,omitempty"` // quotes only
	Client     Client     `yaml:"client"`
	Lines      []LineItem `yaml:"lines"`
	Discount   Discount   `yaml:"discount"`
}

var ErrLastLine = errors.New("a document must keep at least one line")

// NewDocument creates a document with today's date and a single blank line
func NewDocument(kind Kind) *Document {
	return &Document{
		Kind:      kind,
		IssueDate: time.Now(),
		Lines:     []LineItem{newLine()},
	}
}

func newLine() LineItem {
	return LineItem{Description: "", Quantity: 1, UnitPrice: 0}
}

// AddLine appends a blank line with default quantity 1 and price 0
func (d *Document) AddLine() {
	d.Lines = append(d.Lines, newLine())
}

// RemoveLine removes the line at index i. Removing the sole remaining line
// is rejected so the document never becomes empty.
func (d *Document) RemoveLine(i int) error {
	if i < 0 || i >= len(d.Lines) {
		return fmt.Errorf("line index %d out of range", i)
	}
	if len(d.Lines) == 1 {
		return ErrLastLine
	}
	d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
	return nil
}

func (d *Document) SetLineDescription(i int, desc string) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	d.Lines[i].Description = desc
}

// SetLineQuantity parses raw input; anything that does not parse to an
// integer >= 1 falls back to 1, never to a stale or invalid value.
func (d *Document) SetLineQuantity(i int, raw string) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 1 {
		qty = 1
	}
	d.Lines[i].Quantity = qty
}

// SetLineUnitPrice parses raw input; parse failures and negative values
// fall back to 0.
func (d *Document) SetLineUnitPrice(i int, raw string) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || price < 0 {
		price = 0
	}
	d.Lines[i].UnitPrice = price
}

// SetDiscountPercent parses raw input and clamps it to [0,100];
// parse failures fall back to 0
func (d *Document) SetDiscountPercent(raw string) {
	pct, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	d.Discount.Percentage = pct
}

// Subtotal sums quantity x unit price over all lines
func (d *Document) Subtotal() float64 {
	sum := 0.0
	for _, l := range d.Lines {
		sum += l.Total()
	}
	return sum
}

// DiscountAmount is zero unless the discount is enabled with a positive percentage
func (d *Document) DiscountAmount() float64 {
	if !d.Discount.Enabled || d.Discount.Percentage == 0 {
		return 0
	}
	return d.Subtotal() * d.Discount.Percentage / 100
}

// Total is the subtotal minus the discount amount
func (d *Document) Total() float64 {
	return d.Subtotal() - d.DiscountAmount()
}

// Filename builds the export name: {TITLE}_{number or sans_numero}_{ISO date}.pdf
func (d *Document) Filename() string {
	number := d.Number
	if number == "" {
		number = "sans_numero"
	}
	return fmt.Sprintf("%s_%s_%s.pdf", d.Kind.Title(), number, time.Now().Format("2006-01-02"))
}

// Validate returns an error if the document is invalid
func (d *Document) Validate() error {
	if _, err := ParseKind(string(d.Kind)); err != nil {
		return err
	}
	if len(d.Lines) == 0 {
		return errors.New("document has no lines")
	}
	for i, l := range d.Lines {
		if l.Quantity < 1 {
			return fmt.Errorf("line %d: quantity must be at least 1", i+1)
		}
		if l.UnitPrice < 0 {
			return fmt.Errorf("line %d: unit price cannot be negative", i+1)
		}
	}
	if d.Discount.Percentage < 0 || d.Discount.Percentage > 100 {
		return errors.New("discount percentage must be between 0 and 100")
	}
	return nil
}
