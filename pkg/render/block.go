package render

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/matzehuels/boxflow/pkg/layout"
)

// Block is one node of a solved tree, flattened to absolute geometry.
type Block struct {
	ID     string  `json:"id" bson:"id"`
	Kind   string  `json:"kind" bson:"kind"`
	Label  string  `json:"label,omitempty" bson:"label,omitempty"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	// Parent is the ID of the containing block, empty for the root.
	Parent string `json:"parent,omitempty" bson:"parent,omitempty"`

	// Depth is the distance from the root, starting at zero. Blocks are
	// emitted parents-first, so drawing them in order paints children
	// over their ancestors.
	Depth int `json:"depth" bson:"depth"`
}

// Document is the serialization format for a solved layout.
type Document struct {
	// Frame is the available size the tree was solved against.
	FrameWidth  float64 `json:"frame_width" bson:"frame_width"`
	FrameHeight float64 `json:"frame_height" bson:"frame_height"`

	Blocks []Block `json:"blocks" bson:"blocks"`

	// Findings are the human-readable diagnostics of the solve.
	Findings []string `json:"findings,omitempty" bson:"findings,omitempty"`
}

// Flatten walks the solved tree pre-order and returns one block per node
// with absolute coordinates.
func Flatten(root layout.Node) []Block {
	depths := map[layout.NodeID]int{root.ID(): 0}
	parents := map[layout.NodeID]string{}

	var blocks []Block
	for node := range layout.Iter(root) {
		id := strconv.FormatUint(uint64(node.ID()), 10)
		for _, child := range node.Children() {
			depths[child.ID()] = depths[node.ID()] + 1
			parents[child.ID()] = id
		}
		size := node.Size()
		pos := node.Position()
		blocks = append(blocks, Block{
			ID:     id,
			Kind:   node.Kind(),
			Label:  node.Label(),
			X:      pos.X,
			Y:      pos.Y,
			Width:  size.Width,
			Height: size.Height,
			Parent: parents[node.ID()],
			Depth:  depths[node.ID()],
		})
	}
	return blocks
}

// NewDocument flattens a solved tree into a document. The findings are
// those returned by the solve that produced the tree's geometry.
func NewDocument(root layout.Node, frame layout.Size, findings []layout.Finding) Document {
	doc := Document{
		FrameWidth:  frame.Width,
		FrameHeight: frame.Height,
		Blocks:      Flatten(root),
	}
	for _, f := range findings {
		doc.Findings = append(doc.Findings, f.Error())
	}
	return doc
}

// MarshalDocument serializes a Document to pretty-printed JSON bytes.
func MarshalDocument(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// UnmarshalDocument deserializes JSON bytes into a Document.
// A document without blocks is rejected.
func UnmarshalDocument(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("unmarshal document: %w", err)
	}
	if len(d.Blocks) == 0 {
		return Document{}, fmt.Errorf("document must contain blocks")
	}
	return d, nil
}

// WriteDocumentFile writes a Document to a JSON file.
func WriteDocumentFile(d Document, path string) error {
	data, err := MarshalDocument(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadDocumentFile reads a Document from a JSON file.
func ReadDocumentFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalDocument(data)
}
