package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gosection/internal/section"
)

const rule = "───────────────────────────────────────────────────────────────"

func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
}

func printHeading(out io.Writer, heading string) {
	fmt.Fprintln(out, heading)
	fmt.Fprintln(out, rule)
}

// num formats a value with the configured number of decimals
func num(v float64) string {
	return fmt.Sprintf("%.*f", cfg.Precision, v)
}

func printProperties(out io.Writer, p *section.SectionProperties, unit string) {
	printHeading(out, "SECTION PROPERTIES:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%s %s²\n", num(p.Area), unit)
	fmt.Fprintf(w, "  Centroid (x, y):\t(%s, %s) %s\n", num(p.CentroidX), num(p.CentroidY), unit)
	fmt.Fprintf(w, "  Ix (horizontal axis):\t%s %s⁴\n", num(p.Ix), unit)
	fmt.Fprintf(w, "  Iy (vertical axis):\t%s %s⁴\n", num(p.Iy), unit)
	fmt.Fprintf(w, "  J (polar):\t%s %s⁴\n", num(p.J), unit)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "EXTENTS:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width:\t%s %s\n", num(p.Width), unit)
	fmt.Fprintf(w, "  Height:\t%s %s\n", num(p.Height), unit)
	fmt.Fprintf(w, "  c top / bottom:\t%s / %s %s\n", num(p.CTop), num(p.CBottom), unit)
	fmt.Fprintf(w, "  c left / right:\t%s / %s %s\n", num(p.CLeft), num(p.CRight), unit)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "DERIVED PROPERTIES:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Sx top / bottom:\t%s / %s %s³\n", num(p.SxTop), num(p.SxBottom), unit)
	fmt.Fprintf(w, "  Sy left / right:\t%s / %s %s³\n", num(p.SyLeft), num(p.SyRight), unit)
	fmt.Fprintf(w, "  rx / ry:\t%s / %s %s\n", num(p.Rx), num(p.Ry), unit)
	w.Flush()
	fmt.Fprintln(out)
}

func printMembers(out io.Writer, members []section.MemberResult, unit string) {
	printHeading(out, "MEMBER CONTRIBUTIONS:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member\tKind\tA (%s²)\tx\ty\tIx + A·dy²\tIy + A·dx²\n", unit)
	fmt.Fprintf(w, "  ──────\t────\t──────\t─\t─\t──────────\t──────────\n")
	for _, m := range members {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Label, m.Kind, num(m.Area), num(m.CentroidX), num(m.CentroidY), num(m.TotalIx), num(m.TotalIy))
	}
	w.Flush()
	fmt.Fprintln(out)
}
