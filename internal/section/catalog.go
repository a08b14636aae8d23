package section

// KindInfo describes one kind of shape accepted in a section file
type KindInfo struct {
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Parameters  []string `json:"parameters"`

	// Alternative parameter sets accepted for the same kind
	Alternatives [][]string `json:"alternatives,omitempty"`
}

// Catalog lists the shape kinds in the order they are documented
var Catalog = []KindInfo{
	{
		Kind:        "rod",
		Description: "Solid circular rod",
		Parameters:  []string{"radius"},
	},
	{
		Kind:         "pipe",
		Description:  "Hollow circular pipe",
		Parameters:   []string{"outer_radius", "inner_radius"},
		Alternatives: [][]string{{"outer_radius", "thickness"}},
	},
	{
		Kind:        "bar",
		Description: "Solid rectangular bar",
		Parameters:  []string{"width", "height"},
	},
	{
		Kind:         "box",
		Description:  "Rectangular hollow box beam",
		Parameters:   []string{"width", "height", "inner_width", "inner_height"},
		Alternatives: [][]string{{"width", "height", "thickness"}},
	},
	{
		Kind:         "ibeam",
		Description:  "Doubly symmetric I-beam",
		Parameters:   []string{"flange_width", "flange_thickness", "web_height", "web_thickness"},
		Alternatives: [][]string{{"width", "height", "web_thickness", "flange_thickness"}},
	},
	{
		Kind:        KindComposite,
		Description: "Nested group of shapes offset by x and y",
		Parameters:  []string{"shapes"},
	},
}
