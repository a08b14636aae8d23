package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gosection/internal/report"
	"github.com/alexiusacademia/gosection/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionReportFile string
	sectionReportOut  string
)

var sectionReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF or Excel report of a composite section",
	Long: `Analyze a composite section and write the properties and member
contributions to a report. The format follows the output extension.

Examples:
  gosection section report -f tee.json --out tee.pdf
  gosection section report -f tee.yaml --out tee.xlsx`,
	RunE: runSectionReport,
}

func init() {
	sectionCmd.AddCommand(sectionReportCmd)

	sectionReportCmd.Flags().StringVarP(&sectionReportFile, "file", "f", "", "Path to section file (.json, .yaml, .xlsx) [required]")
	sectionReportCmd.Flags().StringVar(&sectionReportOut, "out", "", "Report file (.pdf or .xlsx) [required]")
	sectionReportCmd.MarkFlagRequired("file")
	sectionReportCmd.MarkFlagRequired("out")
}

func runSectionReport(cmd *cobra.Command, args []string) error {
	ext := strings.ToLower(filepath.Ext(sectionReportOut))
	if ext != ".pdf" && ext != ".xlsx" {
		return fmt.Errorf("unsupported report file %q: use .pdf or .xlsx", sectionReportOut)
	}

	sec, err := section.LoadFromFile(sectionReportFile)
	if err != nil {
		return fmt.Errorf("loading section: %w", err)
	}
	if sec.Unit == "" {
		sec.Unit = cfg.Unit
	}
	result, err := sec.Analyze()
	if err != nil {
		return fmt.Errorf("analyzing section: %w", err)
	}

	if dir := filepath.Dir(sectionReportOut); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(sectionReportOut)
	if err != nil {
		return err
	}
	defer f.Close()

	rep := report.New(result, cfg.Precision)
	if ext == ".pdf" {
		err = report.WritePDF(f, rep)
	} else {
		err = report.WriteWorkbook(f, rep)
	}
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  Report written to: %s\n", sectionReportOut)
	return nil
}
