// Package surface implements a headless drawing surface whose elements are
// addressed by stable identifiers, and materializes it as SVG.
package surface

import (
	"errors"
	"fmt"
	"maps"
	"sync"
)

var (
	// ErrElementNotFound is returned when no element has the requested id.
	ErrElementNotFound = errors.New("element not found")

	// ErrDuplicateID is returned by Mount when two nodes share an id.
	ErrDuplicateID = errors.New("duplicate element id")
)

// Kind identifies the primitive a Node draws.
type Kind int

// Node kinds.
const (
	KindGroup Kind = iota
	KindPath
	KindLine
	KindCircle
	KindRect
	KindText
)

// String returns the SVG element name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "g"
	case KindPath:
		return "path"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Transition animates a numeric attribute once when the element is shown.
type Transition struct {
	Attr     string
	From     float64
	To       float64
	Duration float64 // seconds
}

// Node is one element of the surface. Geometry lives in Attrs using SVG
// attribute names (d, x1, cx, width...). Text holds the content of text nodes.
type Node struct {
	ID         string
	Kind       Kind
	Attrs      map[string]string
	Text       string
	Transition *Transition
	Children   []*Node
}

// Attr returns the attribute value, or "" when unset.
func (n *Node) Attr(key string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

func (n *Node) clone() *Node {
	c := *n
	c.Attrs = maps.Clone(n.Attrs)
	if n.Transition != nil {
		t := *n.Transition
		c.Transition = &t
	}
	c.Children = make([]*Node, len(n.Children))
	for i, child := range n.Children {
		c.Children[i] = child.clone()
	}
	return &c
}

// Container is a top-level drawing area of fixed size.
type Container struct {
	ID     string
	Width  int
	Height int
}

// Document is a set of containers and the nodes mounted into them.
// It is safe for concurrent use.
type Document struct {
	mu         sync.RWMutex
	containers map[string]*Node
	sizes      map[string]Container
	index      map[string]*Node
}

// NewDocument creates a document with the given containers.
func NewDocument(containers ...Container) *Document {
	d := &Document{
		containers: make(map[string]*Node, len(containers)),
		sizes:      make(map[string]Container, len(containers)),
		index:      make(map[string]*Node),
	}
	for _, c := range containers {
		root := &Node{ID: c.ID, Kind: KindGroup}
		d.containers[c.ID] = root
		d.sizes[c.ID] = c
		d.index[c.ID] = root
	}
	return d
}

// HasContainer reports whether a container with id exists.
func (d *Document) HasContainer(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.containers[id]
	return ok
}

// Lookup returns a copy of the element with id.
func (d *Document) Lookup(id string) (*Node, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n, ok := d.index[id]
	if !ok {
		return nil, false
	}
	return n.clone(), true
}

// Mount replaces the children of containerID with nodes. The document is
// left untouched when the container is missing or ids collide.
func (d *Document) Mount(containerID string, nodes []*Node) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	root, ok := d.containers[containerID]
	if !ok {
		return fmt.Errorf("mount %q: %w", containerID, ErrElementNotFound)
	}

	// Ids of the subtree being replaced may be reused by the new nodes.
	stale := make(map[string]struct{})
	for _, child := range root.Children {
		walk(child, func(n *Node) { stale[n.ID] = struct{}{} })
	}

	cloned := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			cloned = append(cloned, n.clone())
		}
	}

	fresh := make(map[string]*Node)
	var dup error
	for _, n := range cloned {
		walk(n, func(n *Node) {
			if n.ID == "" || dup != nil {
				return
			}
			if _, exists := fresh[n.ID]; exists {
				dup = fmt.Errorf("mount %q: %w: %s", containerID, ErrDuplicateID, n.ID)
				return
			}
			if _, exists := d.index[n.ID]; exists {
				if _, ok := stale[n.ID]; !ok {
					dup = fmt.Errorf("mount %q: %w: %s", containerID, ErrDuplicateID, n.ID)
					return
				}
			}
			fresh[n.ID] = n
		})
	}
	if dup != nil {
		return dup
	}

	for id := range stale {
		delete(d.index, id)
	}
	root.Children = cloned
	maps.Copy(d.index, fresh)
	return nil
}

// Clear removes every child of containerID.
func (d *Document) Clear(containerID string) error {
	return d.Mount(containerID, nil)
}

// SetAttr sets an attribute on a mounted element.
func (d *Document) SetAttr(id, key, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	n, ok := d.index[id]
	if !ok {
		return fmt.Errorf("set %s on %q: %w", key, id, ErrElementNotFound)
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return nil
}

// SetText replaces the text content of a mounted element.
func (d *Document) SetText(id, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	n, ok := d.index[id]
	if !ok {
		return fmt.Errorf("set text on %q: %w", id, ErrElementNotFound)
	}
	n.Text = text
	return nil
}

// Children returns copies of the nodes mounted in containerID.
func (d *Document) Children(containerID string) ([]*Node, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	root, ok := d.containers[containerID]
	if !ok {
		return nil, fmt.Errorf("children of %q: %w", containerID, ErrElementNotFound)
	}
	out := make([]*Node, len(root.Children))
	for i, c := range root.Children {
		out[i] = c.clone()
	}
	return out, nil
}

func walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		walk(c, fn)
	}
}
