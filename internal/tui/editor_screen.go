package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/azoth/docgen/internal/app"
	"github.com/azoth/docgen/internal/domain"
	"github.com/azoth/docgen/internal/render"
)

// fieldAttr identifies what a form field edits on the document
type fieldAttr int

const (
	attrNumber fieldAttr = iota
	attrDate
	attrValidUntil
	attrClientName
	attrClientAddress
	attrClientCity
	attrLineDesc
	attrLineQty
	attrLinePrice
	attrDiscount
)

type fieldRef struct {
	attr fieldAttr
	line int // line index for attrLine*, -1 otherwise
}

type documentSavedMsg struct {
	path string
	err  error
}

// EditorModel is the creation screen for one document. The document lives
// only as long as the screen; leaving it discards everything.
type EditorModel struct {
	app *app.App
	doc *domain.Document

	inputs []textinput.Model
	refs   []fieldRef
	focus  int

	showPreview bool
	statusMsg   string
	err         error
}

// NewEditorModel creates an editor holding a fresh document of the given kind
func NewEditorModel(a *app.App, kind domain.Kind) tea.Model {
	m := &EditorModel{
		app: a,
		doc: domain.NewDocument(kind),
	}
	m.buildForm()
	return m
}

// IsCapturingInput is always true: the whole screen is a form
func (m *EditorModel) IsCapturingInput() bool {
	return true
}

func (m *EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// buildForm rebuilds the input list from the document. Called whenever the
// form structure changes (line added/removed, discount toggled); values are
// re-read from the document.
func (m *EditorModel) buildForm() {
	m.inputs = m.inputs[:0]
	m.refs = m.refs[:0]

	add := func(ref fieldRef, placeholder, value string, width, limit int) {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Width = width
		in.CharLimit = limit
		in.SetValue(value)
		m.inputs = append(m.inputs, in)
		m.refs = append(m.refs, ref)
	}

	add(fieldRef{attrNumber, -1}, "001", m.doc.Number, 12, 30)
	add(fieldRef{attrDate, -1}, "YYYY-MM-DD", m.doc.IssueDate.Format("2006-01-02"), 12, 10)
	if m.doc.Kind == domain.KindQuote {
		valid := ""
		if m.doc.ValidUntil != nil {
			valid = m.doc.ValidUntil.Format("2006-01-02")
		}
		add(fieldRef{attrValidUntil, -1}, "YYYY-MM-DD", valid, 12, 10)
	}

	add(fieldRef{attrClientName, -1}, "Nom de l'entreprise", m.doc.Client.Name, 40, 100)
	add(fieldRef{attrClientAddress, -1}, "Rue et numéro", m.doc.Client.Address, 40, 100)
	add(fieldRef{attrClientCity, -1}, "Code postal et ville", m.doc.Client.City, 40, 100)

	for i, line := range m.doc.Lines {
		add(fieldRef{attrLineDesc, i}, "Description du service ou produit", line.Description, 40, 200)
		add(fieldRef{attrLineQty, i}, "1", fmt.Sprintf("%d", line.Quantity), 6, 6)
		add(fieldRef{attrLinePrice, i}, "0.00", fmt.Sprintf("%.2f", line.UnitPrice), 10, 12)
	}

	if m.doc.Discount.Enabled {
		pct := strconv.FormatFloat(m.doc.Discount.Percentage, 'f', -1, 64)
		add(fieldRef{attrDiscount, -1}, "Ex: 10", pct, 6, 6)
	}

	if m.focus >= len(m.inputs) {
		m.focus = len(m.inputs) - 1
	}
	m.inputs[m.focus].Focus()
}

// sync writes the focused input's value back into the document. Numeric
// fields go through the coercing setters so the document never holds an
// invalid quantity, price or percentage.
func (m *EditorModel) sync() {
	ref := m.refs[m.focus]
	value := m.inputs[m.focus].Value()

	switch ref.attr {
	case attrNumber:
		m.doc.Number = value
	case attrDate:
		if t, err := time.Parse("2006-01-02", value); err == nil {
			m.doc.IssueDate = t
		}
	case attrValidUntil:
		if value == "" {
			m.doc.ValidUntil = nil
		} else if t, err := time.Parse("2006-01-02", value); err == nil {
			m.doc.ValidUntil = &t
		}
	case attrClientName:
		m.doc.Client.Name = value
	case attrClientAddress:
		m.doc.Client.Address = value
	case attrClientCity:
		m.doc.Client.City = value
	case attrLineDesc:
		m.doc.SetLineDescription(ref.line, value)
	case attrLineQty:
		m.doc.SetLineQuantity(ref.line, value)
	case attrLinePrice:
		m.doc.SetLineUnitPrice(ref.line, value)
	case attrDiscount:
		m.doc.SetDiscountPercent(value)
	}
}

func (m *EditorModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *EditorModel) generatePDF() tea.Cmd {
	doc := m.doc
	docs := m.app.Documents
	return func() tea.Msg {
		path, err := docs.GeneratePDF(context.Background(), doc)
		return documentSavedMsg{path: path, err: err}
	}
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case documentSavedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.statusMsg = fmt.Sprintf("Saved: %s", msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.showPreview {
				m.showPreview = false
				return m, nil
			}
			return m, func() tea.Msg { return BackToHomeMsg{} }

		case "ctrl+p":
			m.showPreview = !m.showPreview
			return m, nil
		}

		if m.showPreview {
			// Preview is read-only
			return m, nil
		}

		switch msg.String() {
		case "tab", "down", "enter":
			return m, m.setFocus(m.focus + 1)

		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)

		case "ctrl+n":
			m.doc.AddLine()
			m.buildForm()
			// Jump to the new line's description
			for i, ref := range m.refs {
				if ref.attr == attrLineDesc && ref.line == len(m.doc.Lines)-1 {
					return m, m.setFocus(i)
				}
			}
			return m, nil

		case "ctrl+d":
			ref := m.refs[m.focus]
			if ref.line < 0 {
				return m, nil
			}
			if err := m.doc.RemoveLine(ref.line); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.buildForm()
			return m, nil

		case "ctrl+r":
			m.doc.Discount.Enabled = !m.doc.Discount.Enabled
			m.buildForm()
			if m.doc.Discount.Enabled {
				return m, m.setFocus(len(m.inputs) - 1)
			}
			return m, nil

		case "ctrl+g":
			m.err = nil
			return m, m.generatePDF()
		}
	}

	// Update the focused text input and mirror the edit into the document
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.sync()
	}
	return m, cmd
}

func (m *EditorModel) View() string {
	if m.showPreview {
		return m.viewPreview()
	}
	return m.viewForm()
}

func (m *EditorModel) viewPreview() string {
	var s string
	s += titleStyle.Render("Aperçu du document") + "\n\n"
	s += m.app.Documents.Preview(m.doc)
	s += "\n" + helpStyle.Render("  ctrl+p/esc: back to form  ctrl+g: generate PDF")
	return s
}

func (m *EditorModel) viewForm() string {
	var s string

	s += titleStyle.Render(m.doc.Kind.Title()) + "  " +
		subtitleStyle.Render(m.app.Config.Company.Name) + "\n\n"

	section := ""
	lineShown := -1
	for i, ref := range m.refs {
		// Section headers as the form changes subject
		switch {
		case ref.attr <= attrValidUntil && section != "document":
			section = "document"
			s += sectionStyle.Render("Document") + "\n"
		case ref.attr >= attrClientName && ref.attr <= attrClientCity && section != "client":
			section = "client"
			s += "\n" + sectionStyle.Render("Client") + "\n"
		case ref.line >= 0 && section != "lines":
			section = "lines"
			s += "\n" + sectionStyle.Render("Lines") + "\n"
		case ref.attr == attrDiscount && section != "discount":
			section = "discount"
			s += "\n" + sectionStyle.Render("Discount") + "\n"
		}

		// One sub-header per line, with its running total
		if ref.line >= 0 && ref.line != lineShown {
			lineShown = ref.line
			lineTotal := render.FormatEuro(m.doc.Lines[ref.line].Total())
			s += subtitleStyle.Render(fmt.Sprintf("  Ligne %d — Total: %s", ref.line+1, lineTotal)) + "\n"
		}

		s += m.renderField(i, ref)
	}

	if !m.doc.Discount.Enabled {
		s += "\n" + subtitleStyle.Render("  [ ] Réduction (ctrl+r to enable)") + "\n"
	}

	// Totals
	s += "\n" + sectionStyle.Render("Totals") + "\n"
	s += fmt.Sprintf("  Sous-total HT: %s\n", render.FormatEuro(m.doc.Subtotal()))
	if m.doc.Discount.Enabled && m.doc.DiscountAmount() > 0 {
		s += fmt.Sprintf("  Réduction (%s): -%s\n",
			render.FormatPercent(m.doc.Discount.Percentage),
			render.FormatEuro(m.doc.DiscountAmount()))
	}
	s += totalStyle.Render(fmt.Sprintf("  Total final HT: %s", render.FormatEuro(m.doc.Total()))) + "\n"

	if m.statusMsg != "" {
		s += "\n" + lipgloss.NewStyle().Foreground(successColor).Render("  "+m.statusMsg) + "\n"
	}
	if m.err != nil {
		s += "\n" + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n"
	}

	s += "\n" + helpStyle.Render("  tab: next field  ctrl+n: add line  ctrl+d: delete line  ctrl+r: discount  ctrl+p: preview  ctrl+g: generate PDF  esc: back")

	return s
}

func (m *EditorModel) renderField(i int, ref fieldRef) string {
	labels := map[fieldAttr]string{
		attrNumber:        "Number:",
		attrDate:          "Date:",
		attrValidUntil:    "Valid until:",
		attrClientName:    "Name:",
		attrClientAddress: "Address:",
		attrClientCity:    "City:",
		attrLineDesc:      "Description:",
		attrLineQty:       "Qty:",
		attrLinePrice:     "Unit price (€ HT):",
		attrDiscount:      "Percentage (%):",
	}

	indicator := "  "
	labelStyle := subtitleStyle
	if i == m.focus {
		indicator = "> "
		labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	}
	return fmt.Sprintf("%s%s %s\n", indicator, labelStyle.Render(labels[ref.attr]), m.inputs[i].View())
}
