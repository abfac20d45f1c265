package tui

import "github.com/azoth/docgen/internal/domain"

// OpenEditorMsg requests the editor screen for a fresh document of the given kind
type OpenEditorMsg struct {
	Kind domain.Kind
}

// BackToHomeMsg returns to the kind selection screen, discarding the
// document being edited
type BackToHomeMsg struct{}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}
