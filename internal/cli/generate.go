package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/azoth/docgen/internal/domain"
)

var generateCmd = &cobra.Command{
	Use:   "generate [devis|bon-commande|facture]",
	Short: "Generate a PDF without the TUI",
	Long: `Generate a document PDF from flags or from a YAML file.

Examples:
  docgen generate facture --number 001 --client-name "ACME" \
      --line "Site vitrine:1:1200" --line "Maintenance:3:80"
  docgen generate devis --valid-until 2026-09-30 --discount 10 --line "Audit SEO:1:450"
  docgen generate --file devis.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		file, _ := cmd.Flags().GetString("file")

		var doc *domain.Document
		var err error
		if file != "" {
			doc, err = loadDocumentFile(file)
		} else {
			if len(args) != 1 {
				return fmt.Errorf("a document kind is required unless --file is given")
			}
			doc, err = documentFromFlags(cmd, args[0])
		}
		if err != nil {
			return err
		}

		if err := doc.Validate(); err != nil {
			return fmt.Errorf("invalid document: %w", err)
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			appInstance.Config.Output.Dir = out
		}

		path, err := appInstance.Documents.GeneratePDF(ctx, doc)
		if err != nil {
			return fmt.Errorf("failed to generate PDF: %w", err)
		}

		fmt.Printf("✓ PDF written: %s\n", path)
		fmt.Printf("  Subtotal: %.2f€\n", doc.Subtotal())
		if amount := doc.DiscountAmount(); amount > 0 {
			fmt.Printf("  Discount: -%.2f€\n", amount)
		}
		fmt.Printf("  Total: %.2f€\n", doc.Total())
		return nil
	},
}

func documentFromFlags(cmd *cobra.Command, kindArg string) (*domain.Document, error) {
	kind, err := domain.ParseKind(kindArg)
	if err != nil {
		return nil, err
	}

	doc := domain.NewDocument(kind)
	doc.Number, _ = cmd.Flags().GetString("number")
	doc.Client.Name, _ = cmd.Flags().GetString("client-name")
	doc.Client.Address, _ = cmd.Flags().GetString("client-address")
	doc.Client.City, _ = cmd.Flags().GetString("client-city")

	if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		doc.IssueDate = date
	}

	if validStr, _ := cmd.Flags().GetString("valid-until"); validStr != "" {
		if kind != domain.KindQuote {
			return nil, fmt.Errorf("--valid-until only applies to devis")
		}
		valid, err := parseDate(validStr)
		if err != nil {
			return nil, fmt.Errorf("invalid valid-until date: %w", err)
		}
		doc.ValidUntil = &valid
	}

	lineSpecs, _ := cmd.Flags().GetStringArray("line")
	if len(lineSpecs) > 0 {
		doc.Lines = doc.Lines[:0]
		for _, spec := range lineSpecs {
			line, err := parseLine(spec)
			if err != nil {
				return nil, err
			}
			doc.Lines = append(doc.Lines, line)
		}
	}

	if pct, _ := cmd.Flags().GetFloat64("discount"); pct > 0 {
		if pct > 100 {
			return nil, fmt.Errorf("discount must be between 0 and 100")
		}
		doc.Discount = domain.Discount{Enabled: true, Percentage: pct}
	}

	return doc, nil
}

// parseLine parses "description:quantity:unit_price". The description may
// itself contain colons, so the numeric parts are taken from the right.
func parseLine(spec string) (domain.LineItem, error) {
	var line domain.LineItem

	last := strings.LastIndex(spec, ":")
	if last < 0 {
		return line, fmt.Errorf("invalid line %q (expected description:quantity:unit_price)", spec)
	}
	mid := strings.LastIndex(spec[:last], ":")
	if mid < 0 {
		return line, fmt.Errorf("invalid line %q (expected description:quantity:unit_price)", spec)
	}

	qty, err := strconv.Atoi(spec[mid+1 : last])
	if err != nil || qty < 1 {
		return line, fmt.Errorf("invalid quantity in line %q", spec)
	}
	price, err := strconv.ParseFloat(spec[last+1:], 64)
	if err != nil || price < 0 {
		return line, fmt.Errorf("invalid unit price in line %q", spec)
	}

	line.Description = spec[:mid]
	line.Quantity = qty
	line.UnitPrice = price
	return line, nil
}

func loadDocumentFile(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc := &domain.Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if doc.IssueDate.IsZero() {
		doc.IssueDate = time.Now()
	}
	return doc, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func init() {
	generateCmd.Flags().String("file", "", "Load the document from a YAML file")
	generateCmd.Flags().String("number", "", "Document number")
	generateCmd.Flags().String("date", "", "Issue date (YYYY-MM-DD, defaults to today)")
	generateCmd.Flags().String("valid-until", "", "Validity date for quotes (YYYY-MM-DD)")
	generateCmd.Flags().String("client-name", "", "Client name")
	generateCmd.Flags().String("client-address", "", "Client street address")
	generateCmd.Flags().String("client-city", "", "Client postal code and city")
	generateCmd.Flags().StringArray("line", nil, "Line item as description:quantity:unit_price (repeatable)")
	generateCmd.Flags().Float64("discount", 0, "Discount percentage (0-100)")
	generateCmd.Flags().String("out", "", "Output directory (overrides config)")
}
