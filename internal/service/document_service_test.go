package service

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/azoth/docgen/internal/config"
	"github.com/azoth/docgen/internal/domain"
)

func testService(t *testing.T) (DocumentService, *config.Config) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Output.Dir = t.TempDir()
	cfg.Output.LogoPath = filepath.Join(t.TempDir(), "missing.jpeg")
	return NewDocumentService(cfg, log.New(io.Discard)), cfg
}

func validDoc() *domain.Document {
	doc := domain.NewDocument(domain.KindInvoice)
	doc.Number = "007"
	doc.Client = domain.Client{Name: "ACME SARL", Address: "1 rue des Lilas", City: "75001 Paris"}
	doc.Lines = []domain.LineItem{
		{Description: "Audit SEO", Quantity: 1, UnitPrice: 450},
	}
	return doc
}

func TestGeneratePDF(t *testing.T) {
	svc, cfg := testService(t)
	doc := validDoc()

	path, err := svc.GeneratePDF(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Dir(path) != cfg.Output.Dir {
		t.Errorf("expected file in %s, got %s", cfg.Output.Dir, path)
	}
	if filepath.Base(path) != doc.Filename() {
		t.Errorf("expected filename %s, got %s", doc.Filename(), filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("generated file is not a PDF")
	}
}

func TestGeneratePDFInvalidDocument(t *testing.T) {
	svc, cfg := testService(t)

	doc := validDoc()
	doc.Lines[0].Quantity = 0

	if _, err := svc.GeneratePDF(context.Background(), doc); err == nil {
		t.Fatal("expected validation error")
	}

	// A failed render must not leave a file behind
	entries, err := os.ReadDir(cfg.Output.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty output directory, found %d entries", len(entries))
	}
}

func TestRenderPDFCancelledContext(t *testing.T) {
	svc, _ := testService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := svc.RenderPDF(ctx, validDoc(), &buf); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderPDFIgnoresBrokenLogo(t *testing.T) {
	svc, cfg := testService(t)

	// Not an image at all
	cfg.Output.LogoPath = filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(cfg.Output.LogoPath, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := svc.RenderPDF(context.Background(), validDoc(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("expected a PDF despite the broken logo")
	}
}

func TestPreview(t *testing.T) {
	svc, _ := testService(t)

	out := svc.Preview(validDoc())
	for _, want := range []string{"FACTURE", "Audit SEO", "450.00€"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}
