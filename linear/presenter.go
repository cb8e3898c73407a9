package linear

import (
	"fmt"
	"math"
	"strings"
)

// header is the shared first line of both text forms.
func (m *Model) header() string {
	return fmt.Sprintf("linreg(formula = %s, data = %s)", m.Formula, m.Dataset)
}

// PrintString returns the short text form of the model: the call header,
// then parameter names and their coefficient values in aligned columns.
func (m *Model) PrintString() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\nCoefficients:\n")

	values := make([]string, len(m.Coefficients))
	widths := make([]int, len(m.Coefficients))
	for i, c := range m.Coefficients {
		values[i] = signif(c, 5)
		widths[i] = len(m.ParameterNames[i])
		if len(values[i]) > widths[i] {
			widths[i] = len(values[i])
		}
	}

	for i, name := range m.ParameterNames {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%*s", widths[i], name)
	}
	b.WriteString("\n")
	for i, v := range values {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%*s", widths[i], v)
	}
	b.WriteString("\n")
	return b.String()
}

// SummaryString returns the full text form: the call header, one row per
// coefficient with its estimate, standard error, t value, p value and
// significance marker, and a closing residual standard error line.
func (m *Model) SummaryString() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\nCoefficients:\n")

	nameWidth := len("Estimate")
	for _, name := range m.ParameterNames {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	fmt.Fprintf(&b, "%-*s %10s %10s %10s %10s\n",
		nameWidth, "", "Estimate", "Std. Error", "t value", "Pr(>|t|)")

	for i, name := range m.ParameterNames {
		fmt.Fprintf(&b, "%-*s %10s %10s %10s %10s %s\n",
			nameWidth, name,
			signif(m.Coefficients[i], 3),
			signif(m.StandardErrors[i], 3),
			signif(m.TValues[i], 4),
			signif(m.PValues[i], 3),
			significanceMarker(m.PValues[i]))
	}

	fmt.Fprintf(&b, "\nResidual standard error: %s on %d degrees of freedom!\n",
		signif(math.Sqrt(m.ResidualVariance), 4), m.DegreesOfFreedom)
	return b.String()
}

// significanceMarker assigns the significance stars for a p-value. The
// thresholds are tested loosest first and each hit overwrites the previous
// marker, so the result reflects the smallest threshold satisfied.
func significanceMarker(p float64) string {
	marker := ""
	if p < 0.10 {
		marker = "*"
	}
	if p < 0.05 {
		marker = "**"
	}
	if p < 0.01 {
		marker = "***"
	}
	return marker
}

// signif formats v rounded to the given number of significant figures.
func signif(v float64, digits int) string {
	return fmt.Sprintf("%.*g", digits, v)
}
