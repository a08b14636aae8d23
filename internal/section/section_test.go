package section

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gosection/internal/shape"
	"github.com/xuri/excelize/v2"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

const teeJSON = `{
  "name": "T-Section",
  "unit": "mm",
  "shapes": [
    {"kind": "bar", "label": "flange", "x": 0, "y": 90, "width": 100, "height": 20},
    {"kind": "bar", "label": "stem", "x": 0, "y": 40, "width": 20, "height": 80}
  ]
}`

const teeYAML = `
name: T-Section
shapes:
  - kind: bar
    label: flange
    y: 90
    width: 100
    height: 20
  - kind: bar
    label: stem
    y: 40
    width: 20
    height: 80
`

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		section Section
		want    string
	}{
		{"no shapes", Section{}, "at least one shape"},
		{"missing kind", Section{Shapes: []ShapeSpec{{Width: 1}}}, "shapes[0]: kind is required"},
		{"unknown kind", Section{Shapes: []ShapeSpec{{Kind: "rod"}, {Kind: "hexagon"}}}, `shapes[1]: unknown kind "hexagon"`},
		{"empty composite", Section{Shapes: []ShapeSpec{{Kind: "composite"}}}, "shapes[0]: composite must have"},
		{"nested unknown", Section{Shapes: []ShapeSpec{{Kind: "composite", Shapes: []ShapeSpec{{Kind: "cone"}}}}}, "shapes[0].shapes[0]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.section.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %T is not a *ValidationError", err)
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Errorf("error %q does not mention %q", err, c.want)
			}
		})
	}
}

func TestParseJSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := Parse([]byte(teeJSON), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	fromYAML, err := Parse([]byte(teeYAML), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	a, err := fromJSON.Analyze()
	if err != nil {
		t.Fatal(err)
	}
	b, err := fromYAML.Analyze()
	if err != nil {
		t.Fatal(err)
	}
	if *a.Properties != *b.Properties {
		t.Errorf("JSON %+v != YAML %+v", a.Properties, b.Properties)
	}
	if fromYAML.UnitOr("") != DefaultUnit {
		t.Errorf("default unit = %q, want %q", fromYAML.UnitOr(""), DefaultUnit)
	}
	if fromYAML.UnitOr("in") != "in" {
		t.Errorf("configured unit not used")
	}
}

func TestAnalyzeTee(t *testing.T) {
	s, err := Parse([]byte(teeJSON), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	result, err := s.Analyze()
	if err != nil {
		t.Fatal(err)
	}
	p := result.Properties

	wantY := (2000.0*90 + 1600*40) / 3600
	if !approxEqual(p.Area, 3600) || !approxEqual(p.CentroidY, wantY) || !approxEqual(p.CentroidX, 0) {
		t.Errorf("area = %g, centroid = (%g, %g)", p.Area, p.CentroidX, p.CentroidY)
	}
	if !approxEqual(p.CTop, 100-wantY) || !approxEqual(p.CBottom, wantY) {
		t.Errorf("c_top = %g, c_bottom = %g", p.CTop, p.CBottom)
	}
	if !approxEqual(p.SxTop, p.Ix/(100-wantY)) {
		t.Errorf("sx_top = %g", p.SxTop)
	}
	if !approxEqual(p.J, p.Ix+p.Iy) {
		t.Errorf("J = %g, want Ix + Iy", p.J)
	}

	if len(result.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(result.Members))
	}
	var total float64
	for _, m := range result.Members {
		total += m.TotalIx
	}
	if !approxEqual(total, p.Ix) {
		t.Errorf("Σ member Ix = %g, want %g", total, p.Ix)
	}
	if result.Members[0].Label != "flange" || result.Members[1].Kind != "bar" {
		t.Errorf("members = %+v", result.Members)
	}
}

func TestBuildNestedCompositeOffset(t *testing.T) {
	s := Section{Shapes: []ShapeSpec{
		{Kind: "composite", X: 10, Y: 20, Shapes: []ShapeSpec{
			{Kind: "rod", Radius: 1, X: 1},
			{Kind: "rod", Radius: 1, X: -1},
		}},
		{Kind: "pipe", OuterRadius: 5, Thickness: 1, X: -10},
	}}
	a, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	members := a.Composite.Members()
	cg, err := members[0].CenterOfGravity()
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(cg.X, 10) || !approxEqual(cg.Y, 20) {
		t.Errorf("nested cg = %v, want (10, 20)", cg)
	}
	pipe, ok := members[1].(shape.Pipe)
	if !ok || pipe.InnerRadius() != 4 {
		t.Errorf("pipe built from thickness: %#v", members[1])
	}
	if a.Labels[0] != "composite 1" || a.Labels[1] != "pipe 2" {
		t.Errorf("labels = %v", a.Labels)
	}
}

func TestBuildReportsGeometryPath(t *testing.T) {
	s := Section{Shapes: []ShapeSpec{
		{Kind: "rod", Radius: 1},
		{Kind: "composite", Shapes: []ShapeSpec{
			{Kind: "pipe", OuterRadius: 1, InnerRadius: 2},
		}},
	}}
	_, err := s.Build()
	if !errors.Is(err, shape.ErrInvalidGeometry) {
		t.Fatalf("err = %v, want ErrInvalidGeometry", err)
	}
	if !strings.HasPrefix(err.Error(), "shapes[1].shapes[0]: pipe: inner_radius") {
		t.Errorf("err = %q", err)
	}
}

func TestBuildIBeamForms(t *testing.T) {
	s := Section{Shapes: []ShapeSpec{
		{Kind: "ibeam", FlangeWidth: 4, FlangeThickness: 0.5, WebHeight: 5, WebThickness: 0.3},
		{Kind: "ibeam", Width: 4, Height: 6, FlangeThickness: 0.5, WebThickness: 0.3, X: 10},
	}}
	a, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	m := a.Composite.Members()
	i0, _ := m[0].MomentOfInertia()
	i1, _ := m[1].MomentOfInertia()
	if !approxEqual(i0, i1) {
		t.Errorf("Ix from web height %g != Ix from overall height %g", i0, i1)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "tee.json")
	yamlPath := filepath.Join(dir, "tee.YML")
	if err := os.WriteFile(jsonPath, []byte(teeJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yamlPath, []byte(teeYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, yamlPath} {
		s, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if s.Name != "T-Section" || len(s.Shapes) != 2 {
			t.Errorf("%s: loaded %+v", path, s)
		}
	}

	if _, err := LoadFromFile(filepath.Join(dir, "tee.txt")); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
	if _, err := Parse([]byte("{"), FormatJSON); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestLoadFromWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Tee"); err != nil {
		t.Fatal(err)
	}
	rows := [][]interface{}{
		{"Kind", "Label", "X", "Y", "Width", "Height"},
		{"bar", "flange", 0, 90, 100, 20},
		{},
		{"BAR", "stem", 0, 40, 20, 80},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Tee", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	s, err := LoadFromWorkbook(buf)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "Tee" || len(s.Shapes) != 2 {
		t.Fatalf("loaded %+v", s)
	}
	if s.Shapes[1].Kind != "bar" || s.Shapes[1].Height != 80 {
		t.Errorf("stem = %+v", s.Shapes[1])
	}
	result, err := s.Analyze()
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(result.Properties.Area, 3600) {
		t.Errorf("area = %g, want 3600", result.Properties.Area)
	}
}

func TestLoadFromWorkbookRejectsUnknownColumn(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"kind", "diameter"})
	f.SetSheetRow("Sheet1", "A2", &[]interface{}{"rod", 10})
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	_, err = LoadFromWorkbook(buf)
	if err == nil || !strings.Contains(err.Error(), `row 2: unknown column "diameter"`) {
		t.Errorf("err = %v", err)
	}
}

func TestCalculatePropertiesRectangle(t *testing.T) {
	bar, _ := shape.NewRectangularBar(300, 500)
	p, err := CalculateProperties(bar.At(150, 250))
	if err != nil {
		t.Fatal(err)
	}
	// S = b h² / 6, r = h / √12
	if !approxEqual(p.SxTop, 300*500*500/6.0) || !approxEqual(p.SxBottom, p.SxTop) {
		t.Errorf("Sx = %g / %g", p.SxTop, p.SxBottom)
	}
	if !approxEqual(p.SyLeft, 500*300*300/6.0) {
		t.Errorf("Sy = %g", p.SyLeft)
	}
	if !approxEqual(p.Rx, 500/math.Sqrt(12)) {
		t.Errorf("rx = %g", p.Rx)
	}
	if p.MinX != 0 || p.MaxY != 500 || p.Width != 300 || p.Height != 500 {
		t.Errorf("bounds = %+v", p)
	}
}

func TestWidthProfile(t *testing.T) {
	ib, _ := shape.NewIBeam(100, 10, 200, 6)
	widths := WidthProfile(ib, 22)
	if len(widths) != 22 {
		t.Fatalf("len = %d", len(widths))
	}
	if widths[0] != 100 || widths[11] != 6 || widths[21] != 100 {
		t.Errorf("widths = %v", widths)
	}

	rod, _ := shape.NewRod(10)
	area, _ := rod.Area()
	if got := ProfileArea(rod, 2000); math.Abs(got-area)/area > 1e-3 {
		t.Errorf("profile area = %g, closed form = %g", got, area)
	}
	if WidthProfile(rod, 0) != nil {
		t.Error("zero steps should give no samples")
	}
}

func TestBuildRejectsNegativeAlternateDimensions(t *testing.T) {
	cases := []struct {
		name  string
		json  string
		param string
	}{
		{"pipe thickness", `{"shapes": [{"kind": "pipe", "outer_radius": 2, "thickness": -1}]}`, "pipe: thickness"},
		{"box thickness", `{"shapes": [{"kind": "box", "width": 4, "height": 6, "thickness": -1}]}`, "box: thickness"},
		{"ibeam height", `{"shapes": [
			{"kind": "ibeam", "width": 4, "height": -6, "web_thickness": 0.3, "flange_thickness": 0.5},
			{"kind": "rod", "radius": 1}
		]}`, "ibeam: height"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := Parse([]byte(c.json), FormatJSON)
			if err != nil {
				t.Fatal(err)
			}
			_, err = s.Analyze()
			if !errors.Is(err, shape.ErrInvalidGeometry) {
				t.Fatalf("err = %v, want ErrInvalidGeometry", err)
			}
			if !strings.Contains(err.Error(), c.param) {
				t.Errorf("error %q does not name %q", err, c.param)
			}
		})
	}
}

func TestValidateRejectsConflictingForms(t *testing.T) {
	cases := []struct {
		name string
		spec ShapeSpec
		want string
	}{
		{"pipe", ShapeSpec{Kind: "pipe", OuterRadius: 4, InnerRadius: 3, Thickness: 1}, "inner_radius or thickness"},
		{"box", ShapeSpec{Kind: "box", Width: 4, Height: 6, InnerHeight: 4, Thickness: 1}, "or thickness, not both"},
		{"ibeam heights", ShapeSpec{Kind: "ibeam", Height: 6, WebHeight: 5, FlangeThickness: 0.5, WebThickness: 0.3}, "web_height or height"},
		{"ibeam widths", ShapeSpec{Kind: "ibeam", Height: 6, FlangeWidth: 4, Width: 4}, "width with height"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Section{Shapes: []ShapeSpec{{Kind: "rod", Radius: 1}, c.spec}}
			err := s.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if !strings.Contains(err.Error(), "shapes[1]: ") || !strings.Contains(err.Error(), c.want) {
				t.Errorf("err = %q, want path and %q", err, c.want)
			}
		})
	}
}

func TestAnalyzeRejectsNonFiniteResults(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"moment overflow", `{"shapes": [{"kind": "rod", "radius": 1e100}]}`},
		{"centroid overflow", `{"shapes": [{"kind": "bar", "width": 10, "height": 10, "x": 1e308}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := Parse([]byte(c.json), FormatJSON)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := s.Analyze(); !errors.Is(err, ErrNonFiniteResult) {
				t.Errorf("err = %v, want ErrNonFiniteResult", err)
			}
		})
	}
}
