package gauge

import (
	"strconv"

	"github.com/rshade/carbonmeter/internal/surface"
)

// ElementID returns the document id of a gauge part inside containerID.
// Prefixing keeps several gauges on one document apart.
func ElementID(containerID, part string) string {
	return containerID + "-" + part
}

// Materialize converts draw instructions into surface nodes for containerID.
func Materialize(containerID string, instructions []Instruction) []*surface.Node {
	nodes := make([]*surface.Node, 0, len(instructions))
	for _, ins := range instructions {
		nodes = append(nodes, toNode(containerID, ins))
	}
	return nodes
}

func toNode(containerID string, ins Instruction) *surface.Node {
	n := &surface.Node{Attrs: map[string]string{}}
	if ins.ID != "" {
		n.ID = ElementID(containerID, ins.ID)
	}

	switch ins.Op {
	case OpArc:
		n.Kind = surface.KindPath
		n.Attrs["d"] = ins.Path
	case OpLine:
		n.Kind = surface.KindLine
		n.Attrs["x1"] = num(ins.From.X)
		n.Attrs["y1"] = num(ins.From.Y)
		n.Attrs["x2"] = num(ins.To.X)
		n.Attrs["y2"] = num(ins.To.Y)
		n.Attrs["stroke-linecap"] = "round"
	case OpCircle:
		n.Kind = surface.KindCircle
		n.Attrs["cx"] = num(ins.At.X)
		n.Attrs["cy"] = num(ins.At.Y)
		n.Attrs["r"] = num(ins.Radius)
	case OpText:
		n.Kind = surface.KindText
		n.Attrs["x"] = num(ins.At.X)
		n.Attrs["y"] = num(ins.At.Y)
		n.Text = ins.Text
	case OpGroup:
		n.Kind = surface.KindGroup
		for _, child := range ins.Children {
			n.Children = append(n.Children, toNode(containerID, child))
		}
	}

	setIf(n, "stroke", ins.Stroke)
	if ins.StrokeWidth > 0 {
		n.Attrs["stroke-width"] = num(ins.StrokeWidth)
	}
	setIf(n, "fill", ins.Fill)
	if ins.FontSize > 0 {
		n.Attrs["font-size"] = strconv.FormatFloat(ins.FontSize, 'f', -1, 64)
	}
	setIf(n, "text-anchor", ins.Anchor)
	setIf(n, "transform", ins.Transform)
	return n
}

func setIf(n *surface.Node, key, value string) {
	if value != "" {
		n.Attrs[key] = value
	}
}
