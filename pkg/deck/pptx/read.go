package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Document is the shape-level view recovered from a serialized presentation.
// It carries geometry, fills and text in document order; fonts and other run
// properties are not read back.
type Document struct {
	Slides []*SlideData
}

type SlideData struct {
	Shapes   []Shape
	Pictures []PictureData
}

type Shape struct {
	Name string
	Box  Box

	Fill *Color

	Paragraphs []ParagraphData
}

// Text returns the shape's paragraphs joined with newlines.
func (s Shape) Text() string {
	var buf bytes.Buffer

	for i, p := range s.Paragraphs {
		if i > 0 {
			buf.WriteString("\n")
		}

		buf.WriteString(p.Text)
	}

	return buf.String()
}

type ParagraphData struct {
	Text  string
	Align Align
}

type PictureData struct {
	Box Box
}

// Read opens a presentation container and decodes its slides.
func Read(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))

	if err != nil {
		return nil, err
	}

	parts := map[int][]byte{}

	for _, f := range zr.File {
		var index int

		if _, err := fmt.Sscanf(f.Name, "ppt/slides/slide%d.xml", &index); err != nil {
			continue
		}

		r, err := f.Open()

		if err != nil {
			return nil, err
		}

		part, err := io.ReadAll(r)
		r.Close()

		if err != nil {
			return nil, err
		}

		parts[index] = part
	}

	document := &Document{}

	for i := 1; i <= len(parts); i++ {
		part, ok := parts[i]

		if !ok {
			return nil, fmt.Errorf("missing slide part %d", i)
		}

		slide, err := readSlide(part)

		if err != nil {
			return nil, err
		}

		document.Slides = append(document.Slides, slide)
	}

	return document, nil
}

type slideXML struct {
	Shapes   []shapeXML   `xml:"cSld>spTree>sp"`
	Pictures []pictureXML `xml:"cSld>spTree>pic"`
}

type xfrmXML struct {
	Off struct {
		X int64 `xml:"x,attr"`
		Y int64 `xml:"y,attr"`
	} `xml:"off"`

	Ext struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"ext"`
}

func (x xfrmXML) box() Box {
	return Box{
		X: inches(x.Off.X),
		Y: inches(x.Off.Y),
		W: inches(x.Ext.Cx),
		H: inches(x.Ext.Cy),
	}
}

type shapeXML struct {
	NvSpPr struct {
		CNvPr struct {
			Name string `xml:"name,attr"`
		} `xml:"cNvPr"`
	} `xml:"nvSpPr"`

	SpPr struct {
		Xfrm xfrmXML `xml:"xfrm"`

		Fill *struct {
			Clr struct {
				Val string `xml:"val,attr"`
			} `xml:"srgbClr"`
		} `xml:"solidFill"`
	} `xml:"spPr"`

	TxBody struct {
		Paragraphs []struct {
			PPr *struct {
				Algn string `xml:"algn,attr"`
			} `xml:"pPr"`

			Runs []struct {
				Text string `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"txBody"`
}

type pictureXML struct {
	SpPr struct {
		Xfrm xfrmXML `xml:"xfrm"`
	} `xml:"spPr"`
}

func readSlide(part []byte) (*SlideData, error) {
	var sld slideXML

	if err := xml.Unmarshal(part, &sld); err != nil {
		return nil, err
	}

	slide := &SlideData{}

	for _, sp := range sld.Shapes {
		shape := Shape{
			Name: sp.NvSpPr.CNvPr.Name,
			Box:  sp.SpPr.Xfrm.box(),
		}

		if sp.SpPr.Fill != nil {
			fill, err := parseHex(sp.SpPr.Fill.Clr.Val)

			if err != nil {
				return nil, err
			}

			shape.Fill = &fill
		}

		for _, p := range sp.TxBody.Paragraphs {
			var text bytes.Buffer

			for _, r := range p.Runs {
				text.WriteString(r.Text)
			}

			if len(p.Runs) == 0 {
				continue
			}

			paragraph := ParagraphData{
				Text: text.String(),
			}

			if p.PPr != nil {
				paragraph.Align = Align(p.PPr.Algn)
			}

			shape.Paragraphs = append(shape.Paragraphs, paragraph)
		}

		slide.Shapes = append(slide.Shapes, shape)
	}

	for _, pic := range sld.Pictures {
		slide.Pictures = append(slide.Pictures, PictureData{
			Box: pic.SpPr.Xfrm.box(),
		})
	}

	return slide, nil
}

func parseHex(val string) (Color, error) {
	if len(val) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", val)
	}

	n, err := strconv.ParseUint(val, 16, 32)

	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", val)
	}

	return Color{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
	}, nil
}
