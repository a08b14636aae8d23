package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gosection/internal/diagram"
	"github.com/alexiusacademia/gosection/internal/section"
	"github.com/spf13/cobra"
)

// profileSteps is the number of bands sampled for the width profile
const profileSteps = 60

var (
	sectionAnalyzeFile        string
	sectionAnalyzeShowDiagram bool
	sectionAnalyzeShowProfile bool
	sectionAnalyzeExportFile  string
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Calculate the properties of a composite section",
	Long: `Calculate the area, center of gravity and moments of inertia of
a composite section defined in a JSON, YAML or Excel file.

Each member's own moment of inertia is shifted to the section centroid
with the parallel axis theorem.

Examples:
  gosection section analyze --file tee.json
  gosection section analyze -f tee.yaml --diagram --profile
  gosection section analyze -f tee.xlsx -o tee.png`,
	RunE: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeFile, "file", "f", "", "Path to section file (.json, .yaml, .xlsx) [required]")
	sectionAnalyzeCmd.MarkFlagRequired("file")

	// Diagram options
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeShowDiagram, "diagram", false, "Show ASCII section diagram")
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeShowProfile, "profile", false, "Show width profile chart")
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runSectionAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Load section from file
	sec, err := section.LoadFromFile(sectionAnalyzeFile)
	if err != nil {
		return fmt.Errorf("loading section: %w", err)
	}
	if sec.Unit == "" {
		sec.Unit = cfg.Unit
	}

	assembly, err := sec.Build()
	if err != nil {
		return fmt.Errorf("building section: %w", err)
	}
	result, err := assembly.Analyze()
	if err != nil {
		return fmt.Errorf("analyzing section: %w", err)
	}
	unit := result.Unit

	// Print results
	printHeader(out, "COMPOSITE SECTION PROPERTIES")
	if sec.Name != "" {
		fmt.Fprintf(out, "  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", sec.Description)
	}
	fmt.Fprintf(out, "  Members: %d\n", assembly.Composite.Len())
	fmt.Fprintln(out)

	printMembers(out, result.Members, unit)
	printProperties(out, result.Properties, unit)

	fmt.Fprint(out, diagram.DrawSummaryBox("SUMMARY", []string{
		fmt.Sprintf("A  = %s %s²", num(result.Properties.Area), unit),
		fmt.Sprintf("Ix = %s %s⁴", num(result.Properties.Ix), unit),
		fmt.Sprintf("Iy = %s %s⁴", num(result.Properties.Iy), unit),
	}))

	var data diagram.SectionDiagramData
	if sectionAnalyzeShowDiagram || sectionAnalyzeExportFile != "" {
		data, err = diagram.NewSectionDiagramData(sec.Name, unit, assembly.Labels, assembly.Composite)
		if err != nil {
			return err
		}
	}

	if sectionAnalyzeShowDiagram {
		fmt.Fprint(out, diagram.DrawASCIISectionDiagram(data))
	}

	widths := section.WidthProfile(assembly.Composite, profileSteps)
	if sectionAnalyzeShowProfile {
		fmt.Fprint(out, diagram.DrawWidthProfile(widths, unit))
	}

	if sectionAnalyzeExportFile != "" {
		if err := diagram.ExportSectionDiagram(data, sectionAnalyzeExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "\n  Diagram exported to: %s\n", sectionAnalyzeExportFile)

		if sectionAnalyzeShowProfile {
			profileFile := profilePath(sectionAnalyzeExportFile)
			b := assembly.Composite.Bounds()
			if err := diagram.ExportWidthProfile(widths, b.MinY, b.MaxY, unit, profileFile); err != nil {
				return fmt.Errorf("exporting width profile: %w", err)
			}
			fmt.Fprintf(out, "  Width profile exported to: %s\n", profileFile)
		}
	}

	fmt.Fprintln(out)
	return nil
}

// profilePath derives the width profile image name from the diagram's,
// tee.png becomes tee-profile.png
func profilePath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-profile" + ext
}
