package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gosection/internal/shape"
	"github.com/pmezard/go-difflib/difflib"
)

func teeSection(t *testing.T) shape.Composite {
	t.Helper()
	flange, err := shape.NewRectangularBar(100, 20)
	if err != nil {
		t.Fatal(err)
	}
	stem, err := shape.NewRectangularBar(20, 80)
	if err != nil {
		t.Fatal(err)
	}
	return shape.NewComposite().Add(flange.At(0, 90)).Add(stem.At(0, 40))
}

func assertText(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	t.Errorf("output mismatch:\n%s", diff)
}

func TestDrawSummaryBox(t *testing.T) {
	want := "  ╔═════════════╗\n" +
		"  ║  ROD        ║\n" +
		"  ╠═════════════╣\n" +
		"  ║  A = 12.57  ║\n" +
		"  ╚═════════════╝\n"
	assertText(t, want, DrawSummaryBox("ROD", []string{"A = 12.57"}))
}

func TestDrawSummaryBoxWideTitle(t *testing.T) {
	got := DrawSummaryBox("SECTION PROPERTIES", []string{"A = 1"})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if n := len([]rune(line)); n != width {
			t.Errorf("line %d has width %d, want %d: %q", i, n, width, line)
		}
	}
}

func TestNewSectionDiagramData(t *testing.T) {
	data, err := NewSectionDiagramData("Tee", "mm", []string{"flange"}, teeSection(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(data.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(data.Members))
	}
	if data.Members[0].Label != "flange" || data.Members[1].Label != "" {
		t.Errorf("labels = %q, %q", data.Members[0].Label, data.Members[1].Label)
	}
	if data.Bounds.Width() != 100 || data.Bounds.Height() != 100 {
		t.Errorf("bounds = %+v", data.Bounds)
	}
	// flange 2000 at 90, stem 1600 at 40
	wantY := (2000*90.0 + 1600*40.0) / 3600
	if diff := data.Centroid.Y - wantY; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("centroid y = %v, want %v", data.Centroid.Y, wantY)
	}
}

func TestNewSectionDiagramDataEmpty(t *testing.T) {
	if _, err := NewSectionDiagramData("", "mm", nil, shape.NewComposite()); err == nil {
		t.Fatal("expected error for empty composite")
	}
}

func TestDrawASCIISectionDiagram(t *testing.T) {
	data, err := NewSectionDiagramData("Tee", "mm", nil, teeSection(t))
	if err != nil {
		t.Fatal(err)
	}
	out := DrawASCIISectionDiagram(data)

	if !strings.Contains(out, "◄─ N.A.") {
		t.Error("missing neutral axis marker")
	}
	// The top row is flange across the full width; the bottom row is only stem
	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  │") {
			rows = append(rows, line)
		}
	}
	if len(rows) != 20 {
		t.Fatalf("raster rows = %d, want 20", len(rows))
	}
	if n := strings.Count(strings.Join(rows, "\n"), "+"); n != 1 {
		t.Errorf("centroid markers = %d, want 1", n)
	}
	// centroid at y = 67.78 falls in the seventh row from the top
	if !strings.HasSuffix(rows[6], "◄─ N.A.") {
		t.Errorf("neutral axis row = %q", rows[6])
	}
	top, bottom := rows[0], rows[len(rows)-1]
	if n := strings.Count(top, "█"); n != 40 {
		t.Errorf("top row material = %d cells, want 40", n)
	}
	if n := strings.Count(bottom, "█"); n != 8 {
		t.Errorf("bottom row material = %d cells, want 8", n)
	}
}

func TestDrawASCIISectionDiagramNestedOverlap(t *testing.T) {
	horizontal, err := shape.NewRectangularBar(100, 20)
	if err != nil {
		t.Fatal(err)
	}
	vertical, err := shape.NewRectangularBar(20, 100)
	if err != nil {
		t.Fatal(err)
	}
	cross := shape.NewComposite().Add(horizontal.At(0, 0)).Add(vertical.At(0, 0))

	data, err := NewSectionDiagramData("Cross", "mm", []string{"cross"}, shape.NewComposite().Add(cross))
	if err != nil {
		t.Fatal(err)
	}
	if len(data.Members) != 1 || len(data.Members[0].Parts) != 2 {
		t.Fatalf("members = %+v", data.Members)
	}
	// The 20 x 20 overlap at the middle is material, not a hole
	if !data.contains(shape.Point{X: 5, Y: 5}) {
		t.Error("overlap of nested members drawn as a hole")
	}

	var rows []string
	for _, line := range strings.Split(DrawASCIISectionDiagram(data), "\n") {
		if strings.HasPrefix(line, "  │") {
			rows = append(rows, line)
		}
	}
	if len(rows) != 20 {
		t.Fatalf("raster rows = %d, want 20", len(rows))
	}
	// rows[9] lies inside the horizontal bar just above the centroid row
	if n := strings.Count(rows[9], "█"); n != 40 {
		t.Errorf("row through overlap = %d cells, want 40: %q", n, rows[9])
	}
	if n := strings.Count(rows[0], "█"); n != 8 {
		t.Errorf("top row material = %d cells, want 8", n)
	}
}

func TestDrawASCIISectionDiagramEmptyBounds(t *testing.T) {
	out := DrawASCIISectionDiagram(SectionDiagramData{})
	if !strings.Contains(out, "empty section") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestDrawWidthProfile(t *testing.T) {
	if DrawWidthProfile(nil, "mm") != "" {
		t.Error("expected empty output for no samples")
	}
	out := DrawWidthProfile([]float64{20, 20, 20, 100, 100}, "mm")
	if !strings.Contains(out, "WIDTH PROFILE") || !strings.Contains(out, "width (mm)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestExportSectionDiagram(t *testing.T) {
	data, err := NewSectionDiagramData("Tee", "mm", []string{"flange", "stem"}, teeSection(t))
	if err != nil {
		t.Fatal(err)
	}
	filename := filepath.Join(t.TempDir(), "out", "tee.png")
	if err := ExportSectionDiagram(data, filename); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(filename)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty image")
	}
}

func TestExportWidthProfile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "profile.svg")
	if err := ExportWidthProfile([]float64{20, 20, 100}, 0, 100, "mm", filename); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filename); err != nil {
		t.Fatal(err)
	}
	if err := ExportWidthProfile(nil, 0, 1, "mm", filename); err == nil {
		t.Error("expected error for no samples")
	}
}
