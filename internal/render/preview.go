package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styling for the preview. The palette follows the printed
// document: pink accents, blue panels, muted grays.
var (
	previewPink  = lipgloss.Color("205")
	previewBlue  = lipgloss.Color("39")
	previewMuted = lipgloss.Color("241")

	previewTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(previewPink)
	previewTitle2Style = lipgloss.NewStyle().Bold(true).Foreground(previewBlue)
	previewMutedStyle  = lipgloss.NewStyle().Foreground(previewMuted)
	previewLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(previewMuted)
	previewTotalStyle  = lipgloss.NewStyle().Bold(true).Background(previewPink).Foreground(lipgloss.Color("0"))
	previewPinkStyle   = lipgloss.NewStyle().Foreground(previewPink)

	previewPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1).
				Width(34)
	previewClientPanel  = previewPanelStyle.BorderForeground(previewPink)
	previewPaymentPanel = previewPanelStyle.BorderForeground(previewBlue)

	previewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(previewBlue).
			Padding(0, 2).
			Align(lipgloss.Center)
)

// table column widths (characters)
const (
	colDescWidth  = 34
	colQtyWidth   = 5
	colPriceWidth = 12
	colTotalWidth = 12
)

const previewWidth = colDescWidth + colQtyWidth + colPriceWidth + colTotalWidth + 3

// Preview renders a plan as styled text for the terminal. It walks the same
// ops the PDF backend draws, keyed by section instead of coordinates, so the
// two outputs always carry the same content.
func Preview(plan *Plan) string {
	var header, title, meta, client, payment, head, totals, signature, footer []string
	rows := map[int][]string{}
	maxRow := -1

	for _, op := range plan.Ops {
		if op.Kind != OpText {
			continue
		}
		switch op.Section {
		case SectionHeader:
			header = append(header, op.Text)
		case SectionTitle:
			title = append(title, op.Text)
		case SectionMeta:
			meta = append(meta, op.Text)
		case SectionClient:
			client = append(client, op.Text)
		case SectionPayment:
			payment = append(payment, op.Text)
		case SectionTableHead:
			head = append(head, op.Text)
		case SectionTableRow:
			rows[op.Row] = append(rows[op.Row], op.Text)
			if op.Row > maxRow {
				maxRow = op.Row
			}
		case SectionTotals:
			totals = append(totals, op.Text)
		case SectionSignature:
			signature = append(signature, op.Text)
		case SectionFooter:
			footer = append(footer, op.Text)
		}
	}

	var s strings.Builder

	// Company identity and title, side by side
	var left string
	for i, l := range header {
		if i == 0 {
			left += previewTitleStyle.Render(l) + "\n"
		} else {
			left += previewMutedStyle.Render(l) + "\n"
		}
	}
	var right string
	for i, l := range title {
		style := previewTitleStyle
		if i == 1 {
			style = previewTitle2Style
		}
		right += style.Render(l) + "\n"
	}
	leftBlock := lipgloss.NewStyle().Width(previewWidth - 20).Render(strings.TrimRight(left, "\n"))
	rightBlock := lipgloss.NewStyle().Width(20).Align(lipgloss.Right).Render(strings.TrimRight(right, "\n"))
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftBlock, rightBlock))
	s.WriteString("\n\n")

	// Metadata badges
	s.WriteString(previewMutedStyle.Render(strings.Join(meta, "   ")))
	s.WriteString("\n\n")

	// Client and payment panels
	s.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		previewClientPanel.Render(panelText(client)),
		" ",
		previewPaymentPanel.Render(panelText(payment)),
	))
	s.WriteString("\n\n")

	// Table
	if len(head) == 4 {
		s.WriteString(previewLabelStyle.Render(tableLine(head[0], head[1], head[2], head[3])))
		s.WriteString("\n")
	}
	s.WriteString(previewMutedStyle.Render(strings.Repeat("─", previewWidth)))
	s.WriteString("\n")
	for i := 0; i <= maxRow; i++ {
		cells := rows[i]
		if len(cells) != 4 {
			continue
		}
		s.WriteString(tableLine(cells[0], cells[1], cells[2], cells[3]))
		s.WriteString("\n")
	}
	if plan.DroppedLines > 0 {
		s.WriteString(previewMutedStyle.Render(fmt.Sprintf("… %d ligne(s) au-delà de la page", plan.DroppedLines)))
		s.WriteString("\n")
	}
	s.WriteString(previewMutedStyle.Render(strings.Repeat("─", previewWidth)))
	s.WriteString("\n")

	// Totals: ops come in label/value pairs, the last pair is the grand total
	for i := 0; i+1 < len(totals); i += 2 {
		label, value := totals[i], totals[i+1]
		line := fmt.Sprintf("%s %s", label, padLeft(value, colTotalWidth))
		line = padLeft(line, previewWidth)
		switch {
		case i+2 >= len(totals):
			s.WriteString(previewTotalStyle.Render(line))
		case strings.HasPrefix(label, "Réduction"):
			s.WriteString(previewPinkStyle.Render(line))
		default:
			s.WriteString(line)
		}
		s.WriteString("\n")
	}

	// Signature box and footer
	if len(signature) > 0 {
		s.WriteString("\n")
		box := previewBoxStyle.Render(strings.Join(signature, "\n"))
		s.WriteString(lipgloss.PlaceHorizontal(previewWidth, lipgloss.Center, box))
		s.WriteString("\n")
	}
	if len(footer) > 0 {
		s.WriteString("\n")
		for i, l := range footer {
			style := previewLabelStyle
			if i > 0 {
				style = previewMutedStyle
			}
			s.WriteString(lipgloss.PlaceHorizontal(previewWidth, lipgloss.Center, style.Render(l)))
			s.WriteString("\n")
		}
	}

	return s.String()
}

func panelText(lines []string) string {
	var out []string
	for i, l := range lines {
		if i == 0 {
			out = append(out, previewLabelStyle.Render(l))
		} else {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

func tableLine(desc, qty, price, total string) string {
	if len(desc) > colDescWidth {
		desc = desc[:colDescWidth-1] + "…"
	}
	return fmt.Sprintf("%-*s %*s %*s %*s",
		colDescWidth, desc,
		colQtyWidth, qty,
		colPriceWidth, price,
		colTotalWidth, total,
	)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
