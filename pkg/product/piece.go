package product

import (
	"github.com/chazu/stockyard/pkg/render"
)

// Piece is the simplest Stock: one shape in one material.
type Piece struct {
	Name     string
	Shape    render.Shape
	Material render.Material
}

func (p Piece) Render() render.Renderable {
	name := p.Name
	if name == "" {
		name = "piece"
	}
	return render.Single(name, p.Shape, p.Material)
}
