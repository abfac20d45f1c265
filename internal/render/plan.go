// Package render turns a document snapshot into a layout plan, an ordered
// list of positioned drawing commands sharing one formatting policy, and
// provides two backends for it: a gofpdf page renderer and a terminal
// preview. Because both consume the same plan, the preview and the printed
// PDF can differ in styling but never in content.
package render

import (
	"strconv"

	"github.com/azoth/docgen/internal/config"
	"github.com/azoth/docgen/internal/domain"
)

// A4 portrait, in millimetres
const (
	pageWidth  = 210.0
	pageHeight = 297.0
)

// Vertical guards: rows stop above the bottom margin, signature and footer
// are omitted when the space left is too small. Content past a guard is
// dropped rather than flowed onto a second page, matching the single-page
// document format.
const (
	rowLimit       = pageHeight - 60
	signatureLimit = pageHeight - 30
	footerLimit    = pageHeight - 15
)

// Section tags every op with the content block it belongs to
type Section int

const (
	SectionHeader Section = iota
	SectionTitle
	SectionMeta
	SectionClient
	SectionPayment
	SectionTableHead
	SectionTableRow
	SectionTotals
	SectionSignature
	SectionFooter
)

type OpKind int

const (
	OpText OpKind = iota
	OpRect
	OpLine
	OpImage
)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

type Color struct {
	R, G, B int
}

type Font struct {
	Size float64
	Bold bool
}

// Op is one positioned drawing command. Kind decides which fields apply:
// text ops use Text/Align/Font/Color, rects use W/H/Fill/Color, lines use
// X2/Y2/Color and image ops reserve a W x H box for the logo.
type Op struct {
	Kind    OpKind
	Section Section
	Row     int // table row index, -1 outside the table body

	X, Y   float64
	W, H   float64
	X2, Y2 float64

	Text  string
	Align Align
	Font  Font
	Color Color
	Fill  bool
}

// Plan is the full layout for one document: every op in draw order plus the
// export filename. DroppedLines counts table rows cut by the page guard.
type Plan struct {
	Ops          []Op
	Filename     string
	DroppedLines int
}

var (
	colorPink      = Color{217, 70, 239}
	colorBlue      = Color{59, 130, 246}
	colorPanelPink = Color{232, 213, 232}
	colorPanelBlue = Color{168, 216, 234}
	colorTintPink  = Color{249, 231, 252}
	colorTintFoot  = Color{247, 241, 247}
	colorWhite     = Color{255, 255, 255}
	colorGray50    = Color{50, 50, 50}
	colorGray60    = Color{60, 60, 60}
	colorGray80    = Color{80, 80, 80}
	colorGray100   = Color{100, 100, 100}
	colorGray150   = Color{150, 150, 150}
	colorGray240   = Color{240, 240, 240}
	colorGray245   = Color{245, 245, 245}
)

type planBuilder struct {
	ops []Op
}

func (b *planBuilder) text(s Section, row int, x, y float64, text string, align Align, f Font, c Color) {
	b.ops = append(b.ops, Op{Kind: OpText, Section: s, Row: row, X: x, Y: y, Text: text, Align: align, Font: f, Color: c})
}

func (b *planBuilder) rect(s Section, x, y, w, h float64, c Color, fill bool) {
	b.ops = append(b.ops, Op{Kind: OpRect, Section: s, Row: -1, X: x, Y: y, W: w, H: h, Color: c, Fill: fill})
}

func (b *planBuilder) line(s Section, x1, y1, x2, y2 float64, c Color) {
	b.ops = append(b.ops, Op{Kind: OpLine, Section: s, Row: -1, X: x1, Y: y1, X2: x2, Y2: y2, Color: c})
}

func (b *planBuilder) image(s Section, x, y, w, h float64) {
	b.ops = append(b.ops, Op{Kind: OpImage, Section: s, Row: -1, X: x, Y: y, W: w, H: h})
}

// Build lays out one document against the configured company identity.
// The document is read, never modified.
func Build(doc *domain.Document, company config.CompanyConfig) *Plan {
	b := &planBuilder{}

	// Header: logo box and company identity
	b.image(SectionHeader, 15, 15, 20, 20)
	b.text(SectionHeader, -1, 40, 20, company.Name, AlignLeft, Font{Size: 10}, colorGray100)
	b.text(SectionHeader, -1, 40, 25, company.Owner, AlignLeft, Font{Size: 8}, colorGray100)
	b.text(SectionHeader, -1, 40, 29, "SIREN: "+company.Siren, AlignLeft, Font{Size: 8}, colorGray100)
	b.text(SectionHeader, -1, 40, 33, company.Email, AlignLeft, Font{Size: 8}, colorGray100)
	b.text(SectionHeader, -1, 40, 37, company.Phone, AlignLeft, Font{Size: 8}, colorGray100)

	// Title, right aligned. The purchase order title is too wide for the
	// column so it wraps onto two lines at a fixed split.
	titleFont := Font{Size: 24, Bold: true}
	if doc.Kind == domain.KindPurchaseOrder {
		b.text(SectionTitle, -1, pageWidth-15, 20, "BON DE", AlignRight, titleFont, colorPink)
		b.text(SectionTitle, -1, pageWidth-15, 30, "COMMANDE", AlignRight, titleFont, colorBlue)
	} else {
		b.text(SectionTitle, -1, pageWidth-15, 25, doc.Kind.Title(), AlignRight, titleFont, colorPink)
	}

	// Document metadata
	metaFont := Font{Size: 9}
	y := 50.0
	b.text(SectionMeta, -1, 15, y, "N° "+orPlaceholder(doc.Number), AlignLeft, metaFont, colorGray100)
	b.text(SectionMeta, -1, 60, y, "Date: "+FormatDate(doc.IssueDate), AlignLeft, metaFont, colorGray100)
	if doc.Kind == domain.KindQuote && doc.ValidUntil != nil {
		y += 5
		b.text(SectionMeta, -1, 15, y, "Valable jusqu'au: "+FormatDate(*doc.ValidUntil), AlignLeft, metaFont, colorGray100)
	}

	// Client and payment panels
	y += 10
	b.rect(SectionClient, 15, y, 85, 30, colorPanelPink, true)
	b.rect(SectionPayment, 105, y, 90, 30, colorPanelBlue, true)

	b.text(SectionClient, -1, 18, y+5, "CLIENT", AlignLeft, Font{Size: 8, Bold: true}, colorGray80)
	b.text(SectionClient, -1, 18, y+10, orPlaceholder(doc.Client.Name), AlignLeft, Font{Size: 9}, colorGray80)
	b.text(SectionClient, -1, 18, y+15, orPlaceholder(doc.Client.Address), AlignLeft, Font{Size: 8}, colorGray80)
	b.text(SectionClient, -1, 18, y+20, orPlaceholder(doc.Client.City), AlignLeft, Font{Size: 8}, colorGray80)

	b.text(SectionPayment, -1, 108, y+5, "INFORMATIONS DE PAIEMENT", AlignLeft, Font{Size: 8, Bold: true}, colorGray80)
	b.text(SectionPayment, -1, 108, y+10, "Conditions: À réception", AlignLeft, Font{Size: 8}, colorGray80)
	b.text(SectionPayment, -1, 108, y+15, "Mode: Virement bancaire", AlignLeft, Font{Size: 8}, colorGray80)
	b.text(SectionPayment, -1, 108, y+20, "Devise: EUR (€)", AlignLeft, Font{Size: 8}, colorGray80)

	// Table header band
	y += 40
	headFont := Font{Size: 8, Bold: true}
	b.rect(SectionTableHead, 15, y, pageWidth-30, 8, colorPanelPink, true)
	b.text(SectionTableHead, -1, 18, y+5, "DESCRIPTION", AlignLeft, headFont, colorGray50)
	b.text(SectionTableHead, -1, pageWidth-80, y+5, "QTÉ", AlignRight, headFont, colorGray50)
	b.text(SectionTableHead, -1, pageWidth-50, y+5, "P.U. HT", AlignRight, headFont, colorGray50)
	b.text(SectionTableHead, -1, pageWidth-18, y+5, "TOTAL HT", AlignRight, headFont, colorGray50)
	y += 8

	// Table body. Rows past the vertical guard are dropped, not paginated.
	dropped := 0
	rowFont := Font{Size: 9}
	for i, line := range doc.Lines {
		if y > rowLimit {
			dropped++
			continue
		}
		b.text(SectionTableRow, i, 18, y+5, orPlaceholder(line.Description), AlignLeft, rowFont, colorGray60)
		b.text(SectionTableRow, i, pageWidth-80, y+5, strconv.Itoa(line.Quantity), AlignRight, rowFont, colorGray60)
		b.text(SectionTableRow, i, pageWidth-50, y+5, FormatEuro(line.UnitPrice), AlignRight, rowFont, colorGray60)
		b.text(SectionTableRow, i, pageWidth-18, y+5, FormatEuro(line.Total()), AlignRight, rowFont, colorGray60)
		y += 8
		if i < len(doc.Lines)-1 {
			b.line(SectionTableRow, 15, y, pageWidth-15, y, colorGray240)
		}
	}

	// Totals block: subtotal always, discount only when it applies,
	// final total emphasized
	y += 5
	totalFont := Font{Size: 9, Bold: true}
	b.rect(SectionTotals, pageWidth-95, y, 80, 7, colorGray245, true)
	b.text(SectionTotals, -1, pageWidth-90, y+5, "Sous-total HT:", AlignLeft, totalFont, colorGray60)
	b.text(SectionTotals, -1, pageWidth-18, y+5, FormatEuro(doc.Subtotal()), AlignRight, totalFont, colorGray60)

	if doc.Discount.Enabled && doc.DiscountAmount() > 0 {
		y += 8
		b.rect(SectionTotals, pageWidth-95, y, 80, 7, colorTintPink, true)
		b.text(SectionTotals, -1, pageWidth-90, y+5, "Réduction ("+FormatPercent(doc.Discount.Percentage)+"):", AlignLeft, totalFont, colorPink)
		b.text(SectionTotals, -1, pageWidth-18, y+5, "-"+FormatEuro(doc.DiscountAmount()), AlignRight, totalFont, colorPink)
	}

	y += 8
	grandFont := Font{Size: 11, Bold: true}
	b.rect(SectionTotals, pageWidth-95, y, 80, 10, colorPink, true)
	b.text(SectionTotals, -1, pageWidth-90, y+7, "TOTAL FINAL HT", AlignLeft, grandFont, colorWhite)
	b.text(SectionTotals, -1, pageWidth-18, y+7, FormatEuro(doc.Total()), AlignRight, grandFont, colorWhite)

	// Signature box, only when it still fits
	y += 20
	if y < signatureLimit {
		b.rect(SectionSignature, pageWidth/2-30, y, 60, 20, colorPanelBlue, false)
		b.text(SectionSignature, -1, pageWidth/2, y+8, "BON POUR ACCORD", AlignCenter, Font{Size: 8}, colorGray100)
		b.text(SectionSignature, -1, pageWidth/2, y+13, "Signature du client", AlignCenter, Font{Size: 7}, colorGray150)
	}

	// Footer band, same guard
	y += 25
	if y < footerLimit {
		b.rect(SectionFooter, 15, y, pageWidth-30, 12, colorTintFoot, true)
		b.text(SectionFooter, -1, pageWidth/2, y+5, "Merci de votre confiance", AlignCenter, Font{Size: 9, Bold: true}, colorGray100)
		b.text(SectionFooter, -1, pageWidth/2, y+9, company.Tagline, AlignCenter, Font{Size: 7}, colorGray100)
	}

	return &Plan{
		Ops:          b.ops,
		Filename:     doc.Filename(),
		DroppedLines: dropped,
	}
}
