package render

import (
	"strings"
	"testing"

	"github.com/azoth/docgen/internal/domain"
)

func TestPreviewContent(t *testing.T) {
	doc := testDoc(domain.KindQuote)
	out := Preview(Build(doc, testCompany))

	for _, want := range []string{
		"AZOTH AGENCE",
		"DEVIS",
		"N° 042",
		"ACME SARL",
		"INFORMATIONS DE PAIEMENT",
		"Service A",
		"200.00€",
		"Sous-total HT:",
		"250.00€",
		"TOTAL FINAL HT",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}

func TestPreviewPlaceholders(t *testing.T) {
	doc := domain.NewDocument(domain.KindInvoice)
	out := Preview(Build(doc, testCompany))

	if !strings.Contains(out, "N° ___") {
		t.Error("expected number placeholder in preview")
	}
	if !strings.Contains(out, "___") {
		t.Error("expected client placeholders in preview")
	}
}

func TestPreviewDiscountLine(t *testing.T) {
	doc := testDoc(domain.KindInvoice)
	doc.Discount = domain.Discount{Enabled: true, Percentage: 10}
	out := Preview(Build(doc, testCompany))

	if !strings.Contains(out, "Réduction (10%):") {
		t.Error("expected discount line in preview")
	}
	if !strings.Contains(out, "-25.00€") {
		t.Error("expected discount amount in preview")
	}
}

func TestPreviewDroppedLinesNotice(t *testing.T) {
	doc := testDoc(domain.KindInvoice)
	doc.Lines = nil
	for i := 0; i < 40; i++ {
		doc.Lines = append(doc.Lines, domain.LineItem{Description: "Prestation", Quantity: 1, UnitPrice: 10})
	}
	out := Preview(Build(doc, testCompany))

	if !strings.Contains(out, "23 ligne(s) au-delà de la page") {
		t.Error("expected dropped lines notice in preview")
	}
}

func TestTableLineTruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("x", 60)
	line := tableLine(long, "1", "10.00€", "10.00€")
	if !strings.Contains(line, "…") {
		t.Error("expected truncated description to end with an ellipsis")
	}
	if strings.Contains(line, long) {
		t.Error("expected long description to be truncated")
	}
}
