// Package document decodes YAML (or JSON) layout documents into layout trees
// and encodes computed frames.
package document

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	flexerrors "github.com/grindlemire/go-flex/internal/errors"
)

// Document is a layout tree plus the size it should be laid out at.
type Document struct {
	// Width and Height are the available size. When unset the caller's
	// defaults apply.
	Width  *float64  `yaml:"width" validate:"omitempty,gte=0"`
	Height *float64  `yaml:"height" validate:"omitempty,gte=0"`
	Root   *NodeSpec `yaml:"root" validate:"required"`
}

// NodeSpec describes one node of the tree.
type NodeSpec struct {
	ID string `yaml:"id" validate:"omitempty,max=64"`

	Style StyleSpec `yaml:"style"`

	// Text is leaf content measured by the host when the node has no
	// explicit size.
	Text string `yaml:"text"`

	// Measure is a fixed intrinsic size for leaves, standing in for content
	// the document cannot express.
	Measure *SizeSpec `yaml:"measure"`

	// Rotation is carried through to frames. Layout ignores it.
	Rotation string `yaml:"rotation" validate:"omitempty,angle"`

	Children []*NodeSpec `yaml:"children" validate:"dive,required"`
}

// SizeSpec is an intrinsic width/height pair.
type SizeSpec struct {
	Width  float64 `yaml:"width" validate:"gte=0"`
	Height float64 `yaml:"height" validate:"gte=0"`
}

// StyleSpec mirrors layout.Style with document-friendly names.
type StyleSpec struct {
	Width       Length   `yaml:"width" validate:"omitempty,gte=0"`
	Height      Length   `yaml:"height" validate:"omitempty,gte=0"`
	MinWidth    Length   `yaml:"minWidth" validate:"omitempty,gte=0"`
	MinHeight   Length   `yaml:"minHeight" validate:"omitempty,gte=0"`
	MaxWidth    Length   `yaml:"maxWidth" validate:"omitempty,gte=0"`
	MaxHeight   Length   `yaml:"maxHeight" validate:"omitempty,gte=0"`
	AspectRatio *float64 `yaml:"aspectRatio" validate:"omitempty,gt=0"`

	FlexDirection  string   `yaml:"flexDirection" validate:"omitempty,oneof=row column row-reverse column-reverse"`
	JustifyContent string   `yaml:"justifyContent" validate:"omitempty,oneof=flex-start flex-end center space-between space-around space-evenly"`
	AlignItems     string   `yaml:"alignItems" validate:"omitempty,oneof=stretch flex-start flex-end center baseline"`
	AlignContent   string   `yaml:"alignContent" validate:"omitempty,oneof=stretch flex-start flex-end center baseline space-between space-around"`
	AlignSelf      string   `yaml:"alignSelf" validate:"omitempty,oneof=auto stretch flex-start flex-end center baseline"`
	FlexWrap       string   `yaml:"flexWrap" validate:"omitempty,oneof=nowrap wrap wrap-reverse"`
	Gap            *float64 `yaml:"gap" validate:"omitempty,gte=0"`
	RowGap         *float64 `yaml:"rowGap" validate:"omitempty,gte=0"`
	ColumnGap      *float64 `yaml:"columnGap" validate:"omitempty,gte=0"`

	Flex       *float64 `yaml:"flex" validate:"omitempty,gte=0"`
	FlexGrow   *float64 `yaml:"flexGrow" validate:"omitempty,gte=0"`
	FlexShrink *float64 `yaml:"flexShrink" validate:"omitempty,gte=0"`
	FlexBasis  Length   `yaml:"flexBasis" validate:"omitempty,gte=0"`

	Padding Edges `yaml:"padding"`
	Margin  Edges `yaml:"margin"`

	Position string `yaml:"position" validate:"omitempty,oneof=relative absolute"`
	Top      Length `yaml:"top"`
	Right    Length `yaml:"right"`
	Bottom   Length `yaml:"bottom"`
	Left     Length `yaml:"left"`

	Display string `yaml:"display" validate:"omitempty,oneof=flex none"`
}

// Decode reads a document from r. name is used in error messages.
// Unknown keys are rejected.
func Decode(name string, r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, flexerrors.NewValidationError("root", "document is empty", err)
		}
		return nil, flexerrors.NewParseError(name, 0, err)
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Parse decodes a document held in memory.
func Parse(name string, data []byte) (*Document, error) {
	return Decode(name, bytes.NewReader(data))
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, flexerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}
