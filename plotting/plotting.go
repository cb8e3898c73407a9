// Package plotting renders the diagnostic plot descriptors produced by the
// linear package with gonum/plot.
package plotting

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/statgo-dev/linreg/linear"
	"github.com/statgo-dev/linreg/pkg/errors"
)

// Render builds a gonum plot from a descriptor: the point set as a scatter,
// the overlay as a line, the aesthetic mapping as axis labels.
func Render(desc linear.PlotDescriptor) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = desc.Title
	p.X.Label.Text = desc.Aes.X
	p.Y.Label.Text = desc.Aes.Y

	scatter, err := plotter.NewScatter(desc.Points)
	if err != nil {
		return nil, errors.Wrapf(err, "plotting: scatter for %q", desc.Title)
	}
	p.Add(scatter)

	if len(desc.Overlay) > 0 {
		line, err := plotter.NewLine(desc.Overlay)
		if err != nil {
			return nil, errors.Wrapf(err, "plotting: overlay for %q", desc.Title)
		}
		p.Add(line)
	}

	return p, nil
}

// SavePNG renders a descriptor and writes it to path as a 6×4 inch PNG.
func SavePNG(desc linear.PlotDescriptor, path string) error {
	p, err := Render(desc)
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "plotting: save %q", path)
	}
	return nil
}
