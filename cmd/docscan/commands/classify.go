package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docscan/internal/classifier"
	"docscan/internal/domain"
)

var classifyClass string

var classifyCmd = &cobra.Command{
	Use:   "classify [file|-]",
	Short: "Score OCR text against one class, or all of them with --class auto",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyClass, "class", "auto", "document class (cnic, domicile, phc, pmdc) or auto")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var out any
	if strings.EqualFold(classifyClass, "auto") {
		det := classifier.Detect(text)
		out = struct {
			Class      domain.DocumentClass                    `json:"document_class"`
			Verdict    domain.Verdict                          `json:"verdict"`
			Candidates map[domain.DocumentClass]domain.Verdict `json:"candidates"`
		}{det.Class, det.Verdict, det.Candidates}
	} else {
		class, err := domain.ParseDocumentClass(classifyClass)
		if err != nil {
			return err
		}
		v, err := classifier.ClassifyAs(class, text)
		if err != nil {
			return err
		}
		out = v
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
