package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/log"

	"github.com/azoth/docgen/internal/config"
	"github.com/azoth/docgen/internal/domain"
	"github.com/azoth/docgen/internal/render"
)

// DocumentService turns authored documents into PDFs
type DocumentService interface {
	// GeneratePDF renders the document into the configured output
	// directory and returns the written path
	GeneratePDF(ctx context.Context, doc *domain.Document) (string, error)

	// RenderPDF renders the document to an arbitrary writer
	RenderPDF(ctx context.Context, doc *domain.Document, w io.Writer) error

	// Preview renders the document as styled terminal text
	Preview(doc *domain.Document) string
}

type documentService struct {
	cfg    *config.Config
	logger *log.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(cfg *config.Config, logger *log.Logger) DocumentService {
	return &documentService{cfg: cfg, logger: logger}
}

func (s *documentService) GeneratePDF(ctx context.Context, doc *domain.Document) (string, error) {
	if err := os.MkdirAll(s.cfg.Output.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(s.cfg.Output.Dir, doc.Filename())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := s.RenderPDF(ctx, doc, f); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}

func (s *documentService) RenderPDF(ctx context.Context, doc *domain.Document, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	plan := render.Build(doc, s.cfg.Company)
	if plan.DroppedLines > 0 {
		s.logger.Warn("lines beyond the page were dropped", "count", plan.DroppedLines)
	}

	// The logo is best effort: a missing or undecodable image is logged
	// and the document renders without it
	logo := s.loadLogo(s.cfg.Output.LogoPath)

	return render.WritePDF(plan, logo, w)
}

func (s *documentService) Preview(doc *domain.Document) string {
	return render.Preview(render.Build(doc, s.cfg.Company))
}

func (s *documentService) loadLogo(path string) *render.Logo {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("could not read logo, rendering without it", "path", path, "err", err)
		return nil
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		s.logger.Warn("could not decode logo, rendering without it", "path", path, "err", err)
		return nil
	}

	switch format {
	case "jpeg", "png":
		return &render.Logo{Bytes: data, Format: format}
	default:
		s.logger.Warn("unsupported logo format, rendering without it", "path", path, "format", format)
		return nil
	}
}
