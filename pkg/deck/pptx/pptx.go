// Package pptx writes minimal Office presentation containers: fixed-size
// slides carrying absolutely positioned text boxes, solid rectangles and
// embedded PNG pictures. It covers exactly what a generated one-pager needs;
// there is no layout engine and no template support.
package pptx

import (
	"fmt"
)

const emuPerInch = 914400

// Box is a shape position and extent in inches from the slide's top-left.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// Color is an sRGB triple.
type Color struct {
	R uint8
	G uint8
	B uint8
}

func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

type Align string

const (
	AlignLeft   Align = ""
	AlignCenter Align = "ctr"
	AlignRight  Align = "r"
)

// Presentation is a fixed-size deck under construction.
type Presentation struct {
	width  float64
	height float64

	slides []*Slide
}

// New creates an empty presentation with the given page size in inches.
func New(width, height float64) *Presentation {
	return &Presentation{
		width:  width,
		height: height,
	}
}

func (p *Presentation) AddSlide() *Slide {
	slide := &Slide{}
	p.slides = append(p.slides, slide)

	return slide
}

// Slide holds shapes in insertion order. Insertion order is also z-order and
// document order in the serialized part.
type Slide struct {
	textBoxes []*TextBox
	rects     []*Rect
	pictures  []*Picture

	order []any
}

// TextBox is an absolutely positioned text frame.
type TextBox struct {
	box Box

	paragraphs []*Paragraph
}

func (s *Slide) AddTextBox(box Box) *TextBox {
	shape := &TextBox{box: box}

	s.textBoxes = append(s.textBoxes, shape)
	s.order = append(s.order, shape)

	return shape
}

// Paragraph is a single-run paragraph. Zero values mean "inherit": no size,
// not bold, default color, left aligned.
type Paragraph struct {
	Text string

	Size float64 // points
	Bold bool

	Color *Color
	Align Align

	SpaceAfter float64 // points
}

func (t *TextBox) AddParagraph(text string) *Paragraph {
	paragraph := &Paragraph{Text: text}
	t.paragraphs = append(t.paragraphs, paragraph)

	return paragraph
}

// Rect is a borderless solid-fill rectangle.
type Rect struct {
	box Box

	fill Color
}

func (s *Slide) AddRect(box Box, fill Color) *Rect {
	shape := &Rect{box: box, fill: fill}

	s.rects = append(s.rects, shape)
	s.order = append(s.order, shape)

	return shape
}

// Picture embeds PNG bytes at a fixed position. The data is stored verbatim
// as a media part.
type Picture struct {
	box Box

	data []byte
}

func (s *Slide) AddPicture(data []byte, box Box) *Picture {
	shape := &Picture{box: box, data: data}

	s.pictures = append(s.pictures, shape)
	s.order = append(s.order, shape)

	return shape
}

func emu(inches float64) int64 {
	return int64(inches*emuPerInch + 0.5)
}

func inches(emu int64) float64 {
	return float64(emu) / emuPerInch
}
