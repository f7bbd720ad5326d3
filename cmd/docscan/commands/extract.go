package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"docscan/internal/app"
	"docscan/internal/docclass"
	"docscan/internal/domain"
	"docscan/internal/export"
)

var (
	extractClass  string
	extractFormat string
	extractOutput string
)

var extractCmd = &cobra.Command{
	Use:   "extract [file|-]",
	Short: "Classify OCR text and extract its fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractClass, "class", "auto", "document class (cnic, domicile, phc, pmdc) or auto")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "json", "output format: json, csv or xlsx")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	switch extractFormat {
	case "json", "csv", "xlsx":
	default:
		return fmt.Errorf("unknown format %q", extractFormat)
	}

	text, err := readInput(cmd.InOrStdin(), args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	app.RegisterProviders()
	comps, err := app.Build(cmd.Context(), cfg, log, false)
	if err != nil {
		return err
	}

	ocr := domain.NewOCRResult(text)
	var res *domain.PipelineResult
	if strings.EqualFold(extractClass, "auto") {
		res, err = comps.Pipeline.Detect(cmd.Context(), ocr)
	} else {
		class, perr := domain.ParseDocumentClass(extractClass)
		if perr != nil {
			return perr
		}
		res, err = comps.Pipeline.Process(cmd.Context(), class, ocr)
	}
	if err != nil && !errors.Is(err, domain.ErrClassificationRejected) {
		return err
	}

	out := cmd.OutOrStdout()
	if extractOutput != "" {
		f, ferr := os.Create(extractOutput)
		if ferr != nil {
			return fmt.Errorf("creating output: %w", ferr)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err != nil {
		_ = writeJSON(out, res)
		return err
	}

	switch extractFormat {
	case "csv":
		return export.WriteCSV(out, docclass.MustLookup(res.Class), *res.Record)
	case "xlsx":
		return export.WriteXLSX(out, docclass.MustLookup(res.Class), *res.Record)
	default:
		return writeJSON(out, res)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
