// Package layout defines the styled box tree a preview image is built from and
// the builder that constructs one per content record.
package layout

import (
	"fmt"
	"image/color"
)

// Kind tags a node as a container of child nodes or a leaf carrying text.
type Kind string

const (
	KindContainer Kind = "container"
	KindText      Kind = "text"
)

// Direction is the main axis of a container.
type Direction string

const (
	DirectionColumn Direction = "column"
	DirectionRow    Direction = "row"
)

// Justify controls main-axis distribution of a container's children.
type Justify string

const (
	JustifyStart        Justify = "start"
	JustifySpaceBetween Justify = "space-between"
)

// Align controls cross-axis placement of a container's children. The zero
// value stretches containers to the full cross size, which is what lets the
// footer row span the canvas.
type Align string

const (
	AlignStretch Align = "stretch"
	AlignCenter  Align = "center"
)

// Style is the box-model and typography property set a node may carry. All
// lengths are logical pixels; zero values mean "unset".
type Style struct {
	Width  float64
	Height float64

	Direction Direction
	Justify   Justify
	Align     Align
	Gap       float64
	Padding   float64

	Background color.RGBA

	Color      color.RGBA
	FontSize   float64
	LineHeight float64 // multiplier over FontSize; 0 uses the default
	MaxWidth   float64

	BorderWidth float64
	BorderColor color.RGBA
}

// Node is one box in the preview document tree. Exactly one of Children/Text
// is meaningful, matching Kind; the decorative footer square is a container
// with no children.
type Node struct {
	Kind     Kind
	Style    Style
	Children []*Node
	Text     string
}

// Container constructs a container node.
func Container(style Style, children ...*Node) *Node {
	return &Node{Kind: KindContainer, Style: style, Children: children}
}

// TextNode constructs a text leaf.
func TextNode(style Style, text string) *Node {
	return &Node{Kind: KindText, Style: style, Text: text}
}

// ViolationError reports a node that breaks the structural invariant. The
// builder cannot produce one; hitting this means a hand-built tree is broken.
type ViolationError struct {
	Message string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("layout violation: %s", e.Message)
}

// Validate checks the node and its subtree against the structural invariant:
// containers carry children (possibly none) and no text, text leaves carry
// non-empty text and no children.
func (n *Node) Validate() error {
	switch n.Kind {
	case KindContainer:
		if n.Text != "" {
			return &ViolationError{Message: "container node carries text"}
		}
		for _, child := range n.Children {
			if child == nil {
				return &ViolationError{Message: "container node has nil child"}
			}
			if err := child.Validate(); err != nil {
				return err
			}
		}
	case KindText:
		if len(n.Children) > 0 {
			return &ViolationError{Message: "text node has children"}
		}
		if n.Text == "" {
			return &ViolationError{Message: "text node has no text"}
		}
	default:
		return &ViolationError{Message: fmt.Sprintf("unknown node kind %q", n.Kind)}
	}
	return nil
}
