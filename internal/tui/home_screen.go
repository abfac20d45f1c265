package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/azoth/docgen/internal/app"
	"github.com/azoth/docgen/internal/domain"
)

type kindChoice struct {
	kind        domain.Kind
	title       string
	description string
}

var kindChoices = []kindChoice{
	{domain.KindQuote, "Devis", "Créer un nouveau devis pour un client"},
	{domain.KindPurchaseOrder, "Bon de Commande", "Générer un bon de commande"},
	{domain.KindInvoice, "Facture", "Créer une facture pour un client"},
}

// HomeModel is the document kind selection screen
type HomeModel struct {
	app    *app.App
	cursor int
}

// NewHomeModel creates a new home screen model
func NewHomeModel(a *app.App) tea.Model {
	return &HomeModel{app: a}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(kindChoices)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.Select):
			choice := kindChoices[m.cursor]
			return m, func() tea.Msg { return OpenEditorMsg{Kind: choice.kind} }
		}
	}
	return m, nil
}

func (m *HomeModel) View() string {
	var s string

	s += titleStyle.Render("Générateur de Documents Commerciaux") + "\n"
	s += subtitleStyle.Render("Choisissez le type de document que vous souhaitez créer") + "\n\n"

	for i, choice := range kindChoices {
		style := cardStyle
		title := choice.title
		if i == m.cursor {
			style = cardSelectedStyle
			title = titleStyle.Render(title)
		}
		card := fmt.Sprintf("%s\n%s", title, subtitleStyle.Render(choice.description))
		s += style.Render(card) + "\n"
	}

	// About block, mirroring the configured identity
	co := m.app.Config.Company
	about := fmt.Sprintf("%s — %s\nSIREN: %s\n%s  %s",
		co.Name, co.Owner, co.Siren, co.Email, co.Phone)
	s += "\n" + subtitleStyle.Render(about) + "\n"

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: create  q: quit")

	return s
}
