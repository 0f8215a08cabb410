package surface

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// geometryAttrs are consumed positionally by the svgo primitives and are not
// repeated as free-form attributes.
var geometryAttrs = map[Kind][]string{ //nolint:gochecknoglobals // Constant lookup table
	KindPath:   {"d"},
	KindLine:   {"x1", "y1", "x2", "y2"},
	KindCircle: {"cx", "cy", "r"},
	KindRect:   {"x", "y", "width", "height"},
	KindText:   {"x", "y"},
}

var attrEscaper = strings.NewReplacer( //nolint:gochecknoglobals // Stateless replacer
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
)

// WriteSVG writes containerID as a standalone SVG document sized to the
// container.
func (d *Document) WriteSVG(w io.Writer, containerID string) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	root, ok := d.containers[containerID]
	if !ok {
		return fmt.Errorf("write svg %q: %w", containerID, ErrElementNotFound)
	}
	size := d.sizes[containerID]

	canvas := svg.New(w)
	canvas.Start(float64(size.Width), float64(size.Height))
	canvas.Gid(containerID)
	for _, child := range root.Children {
		writeNode(canvas, child)
	}
	canvas.Gend()
	canvas.End()
	return nil
}

func writeNode(canvas *svg.SVG, n *Node) {
	extra := extraAttrs(n)

	switch n.Kind {
	case KindGroup:
		canvas.Group(extra...)
		for _, child := range n.Children {
			writeNode(canvas, child)
		}
		canvas.Gend()
	case KindPath:
		canvas.Path(n.Attr("d"), extra...)
	case KindLine:
		canvas.Line(floatAttr(n, "x1"), floatAttr(n, "y1"), floatAttr(n, "x2"), floatAttr(n, "y2"), extra...)
	case KindCircle:
		canvas.Circle(floatAttr(n, "cx"), floatAttr(n, "cy"), floatAttr(n, "r"), extra...)
	case KindRect:
		canvas.Rect(floatAttr(n, "x"), floatAttr(n, "y"), floatAttr(n, "width"), floatAttr(n, "height"), extra...)
		if t := n.Transition; t != nil && n.ID != "" {
			canvas.Animate(n.ID, t.Attr, t.From, t.To, t.Duration, 1)
		}
	case KindText:
		canvas.Text(floatAttr(n, "x"), floatAttr(n, "y"), n.Text, extra...)
	}
}

// extraAttrs renders the non-positional attributes as key="value" pairs in
// a stable order. svgo passes strings containing '=' through verbatim.
func extraAttrs(n *Node) []string {
	skip := geometryAttrs[n.Kind]
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		if !slices.Contains(skip, k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	out := make([]string, 0, len(keys)+1)
	if n.ID != "" {
		out = append(out, fmt.Sprintf(`id="%s"`, attrEscaper.Replace(n.ID)))
	}
	for _, k := range keys {
		out = append(out, fmt.Sprintf(`%s="%s"`, k, attrEscaper.Replace(n.Attrs[k])))
	}
	return out
}

func floatAttr(n *Node, key string) float64 {
	f, err := strconv.ParseFloat(n.Attr(key), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
