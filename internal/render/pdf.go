package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Logo holds a decoded-and-checked logo image ready for embedding.
// Format is a gofpdf image type ("JPEG" or "PNG").
type Logo struct {
	Bytes  []byte
	Format string
}

const logoImageName = "company-logo"

// WritePDF replays a plan onto a single A4 page and writes the PDF to w.
// A nil logo leaves the reserved logo box empty; everything else still
// renders.
func WritePDF(plan *Plan, logo *Logo, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Core fonts are cp1252; translate the French strings and the euro glyph
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	var imgOpts gofpdf.ImageOptions
	if logo != nil {
		imgOpts = gofpdf.ImageOptions{ImageType: logo.Format}
		pdf.RegisterImageOptionsReader(logoImageName, imgOpts, bytes.NewReader(logo.Bytes))
	}

	for _, op := range plan.Ops {
		switch op.Kind {
		case OpText:
			style := ""
			if op.Font.Bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, op.Font.Size)
			pdf.SetTextColor(op.Color.R, op.Color.G, op.Color.B)
			text := tr(op.Text)
			x := op.X
			switch op.Align {
			case AlignRight:
				x -= pdf.GetStringWidth(text)
			case AlignCenter:
				x -= pdf.GetStringWidth(text) / 2
			}
			pdf.Text(x, op.Y, text)

		case OpRect:
			if op.Fill {
				pdf.SetFillColor(op.Color.R, op.Color.G, op.Color.B)
				pdf.Rect(op.X, op.Y, op.W, op.H, "F")
			} else {
				pdf.SetDrawColor(op.Color.R, op.Color.G, op.Color.B)
				pdf.Rect(op.X, op.Y, op.W, op.H, "D")
			}

		case OpLine:
			pdf.SetDrawColor(op.Color.R, op.Color.G, op.Color.B)
			pdf.Line(op.X, op.Y, op.X2, op.Y2)

		case OpImage:
			if logo != nil {
				pdf.ImageOptions(logoImageName, op.X, op.Y, op.W, op.H, false, imgOpts, 0, "")
			}
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
