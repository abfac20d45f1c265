package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func twoServiceDoc() *Document {
	doc := NewDocument(KindInvoice)
	doc.Lines = []LineItem{
		{Description: "Service A", Quantity: 2, UnitPrice: 100.0},
		{Description: "Service B", Quantity: 1, UnitPrice: 50.0},
	}
	return doc
}

func TestNewDocumentDefaults(t *testing.T) {
	doc := NewDocument(KindQuote)

	if len(doc.Lines) != 1 {
		t.Fatalf("expected 1 default line, got %d", len(doc.Lines))
	}
	line := doc.Lines[0]
	if line.Description != "" || line.Quantity != 1 || line.UnitPrice != 0 {
		t.Fatalf("unexpected default line: %+v", line)
	}
	if doc.IssueDate.IsZero() {
		t.Fatal("expected issue date to default to today")
	}
	if doc.Discount.Enabled {
		t.Fatal("expected discount to start disabled")
	}
}

func TestTotalsWithoutDiscount(t *testing.T) {
	doc := twoServiceDoc()

	if got := doc.Subtotal(); got != 250.0 {
		t.Fatalf("expected subtotal 250, got %v", got)
	}
	if got := doc.DiscountAmount(); got != 0 {
		t.Fatalf("expected discount 0, got %v", got)
	}
	if got := doc.Total(); got != 250.0 {
		t.Fatalf("expected total 250, got %v", got)
	}
}

func TestTotalsWithDiscount(t *testing.T) {
	doc := twoServiceDoc()
	doc.Discount = Discount{Enabled: true, Percentage: 10}

	if got := doc.DiscountAmount(); got != 25.0 {
		t.Fatalf("expected discount 25, got %v", got)
	}
	if got := doc.Total(); got != 225.0 {
		t.Fatalf("expected total 225, got %v", got)
	}
}

func TestDiscountAmountZeroCases(t *testing.T) {
	doc := twoServiceDoc()

	// Enabled with zero percentage
	doc.Discount = Discount{Enabled: true, Percentage: 0}
	if got := doc.DiscountAmount(); got != 0 {
		t.Fatalf("expected 0 for zero percentage, got %v", got)
	}

	// Disabled with non-zero percentage
	doc.Discount = Discount{Enabled: false, Percentage: 50}
	if got := doc.DiscountAmount(); got != 0 {
		t.Fatalf("expected 0 for disabled discount, got %v", got)
	}
}

func TestSubtotalOrderIndependent(t *testing.T) {
	doc := twoServiceDoc()
	reversed := twoServiceDoc()
	reversed.Lines[0], reversed.Lines[1] = reversed.Lines[1], reversed.Lines[0]

	if doc.Subtotal() != reversed.Subtotal() {
		t.Fatalf("subtotal should not depend on line order: %v vs %v",
			doc.Subtotal(), reversed.Subtotal())
	}
}

func TestAddLine(t *testing.T) {
	doc := NewDocument(KindInvoice)
	doc.AddLine()

	if len(doc.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(doc.Lines))
	}
	added := doc.Lines[1]
	if added.Description != "" || added.Quantity != 1 || added.UnitPrice != 0 {
		t.Fatalf("unexpected defaults on added line: %+v", added)
	}
}

func TestRemoveLineKeepsAtLeastOne(t *testing.T) {
	doc := NewDocument(KindInvoice)

	err := doc.RemoveLine(0)
	if !errors.Is(err, ErrLastLine) {
		t.Fatalf("expected ErrLastLine, got %v", err)
	}
	if len(doc.Lines) != 1 {
		t.Fatalf("expected 1 line after rejected removal, got %d", len(doc.Lines))
	}

	doc.AddLine()
	if err := doc.RemoveLine(0); err != nil {
		t.Fatalf("unexpected error removing line: %v", err)
	}
	if len(doc.Lines) != 1 {
		t.Fatalf("expected 1 line after removal, got %d", len(doc.Lines))
	}
}

func TestRemoveLineOutOfRange(t *testing.T) {
	doc := NewDocument(KindInvoice)
	if err := doc.RemoveLine(5); err == nil {
		t.Fatal("expected error for out of range index")
	}
}

func TestSetLineQuantityCoercion(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"4", 4},
		{" 3 ", 3},
		{"abc", 1},
		{"", 1},
		{"0", 1},
		{"-3", 1},
		{"2.5", 1},
	}

	for _, tt := range tests {
		doc := NewDocument(KindInvoice)
		doc.SetLineQuantity(0, tt.input)
		if got := doc.Lines[0].Quantity; got != tt.want {
			t.Errorf("SetLineQuantity(%q): expected %d, got %d", tt.input, tt.want, got)
		}
	}
}

func TestSetLineUnitPriceCoercion(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"12.5", 12.5},
		{"0", 0},
		{"abc", 0},
		{"", 0},
		{"-5", 0},
	}

	for _, tt := range tests {
		doc := NewDocument(KindInvoice)
		doc.SetLineUnitPrice(0, tt.input)
		if got := doc.Lines[0].UnitPrice; got != tt.want {
			t.Errorf("SetLineUnitPrice(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestSetDiscountPercentClamp(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"10", 10},
		{"12.5", 12.5},
		{"150", 100},
		{"-3", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		doc := NewDocument(KindInvoice)
		doc.SetDiscountPercent(tt.input)
		if got := doc.Discount.Percentage; got != tt.want {
			t.Errorf("SetDiscountPercent(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestKindTitles(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindQuote, "DEVIS"},
		{KindPurchaseOrder, "BON DE COMMANDE"},
		{KindInvoice, "FACTURE"},
		{Kind("autre"), "DOCUMENT"},
	}

	for _, tt := range tests {
		if got := tt.kind.Title(); got != tt.want {
			t.Errorf("%q.Title(): expected %q, got %q", tt.kind, tt.want, got)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, slug := range []string{"devis", "bon-commande", "facture", " FACTURE "} {
		if _, err := ParseKind(slug); err != nil {
			t.Errorf("ParseKind(%q): unexpected error %v", slug, err)
		}
	}
	if _, err := ParseKind("memo"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestFilename(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	doc := NewDocument(KindInvoice)
	doc.Number = "001"
	if got, want := doc.Filename(), "FACTURE_001_"+today+".pdf"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	doc = NewDocument(KindQuote)
	if got, want := doc.Filename(), "DEVIS_sans_numero_"+today+".pdf"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestValidate(t *testing.T) {
	doc := twoServiceDoc()
	if err := doc.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	empty := &Document{Kind: KindInvoice}
	if err := empty.Validate(); err == nil || !strings.Contains(err.Error(), "no lines") {
		t.Fatalf("expected no-lines error, got %v", err)
	}

	bad := twoServiceDoc()
	bad.Lines[0].Quantity = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero quantity")
	}

	bad = twoServiceDoc()
	bad.Discount.Percentage = 120
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for out of range discount")
	}
}
