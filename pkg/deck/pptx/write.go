package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Bytes serializes the presentation to its zip container.
func (p *Presentation) Bytes() ([]byte, error) {
	var buf bytes.Buffer

	if err := p.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (p *Presentation) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	add := func(name, data string) error {
		f, err := zw.Create(name)

		if err != nil {
			return err
		}

		_, err = f.Write([]byte(data))
		return err
	}

	if err := add("[Content_Types].xml", p.contentTypes()); err != nil {
		return err
	}

	if err := add("_rels/.rels", relsRoot); err != nil {
		return err
	}

	if err := add("ppt/presentation.xml", p.presentationXML()); err != nil {
		return err
	}

	if err := add("ppt/_rels/presentation.xml.rels", p.presentationRels()); err != nil {
		return err
	}

	if err := add("ppt/slideMasters/slideMaster1.xml", slideMaster); err != nil {
		return err
	}

	if err := add("ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRels); err != nil {
		return err
	}

	if err := add("ppt/slideLayouts/slideLayout1.xml", slideLayout); err != nil {
		return err
	}

	if err := add("ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRels); err != nil {
		return err
	}

	if err := add("ppt/theme/theme1.xml", theme); err != nil {
		return err
	}

	image := 0

	for i, slide := range p.slides {
		media := make([]string, 0, len(slide.pictures))

		for _, picture := range slide.pictures {
			image++

			name := fmt.Sprintf("ppt/media/image%d.png", image)

			f, err := zw.Create(name)

			if err != nil {
				return err
			}

			if _, err := f.Write(picture.data); err != nil {
				return err
			}

			media = append(media, fmt.Sprintf("../media/image%d.png", image))
		}

		if err := add(fmt.Sprintf("ppt/slides/slide%d.xml", i+1), slide.xml()); err != nil {
			return err
		}

		if err := add(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), slideRels(media)); err != nil {
			return err
		}
	}

	return zw.Close()
}

func (p *Presentation) contentTypes() string {
	var b strings.Builder

	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)

	for i := range p.slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}

	b.WriteString(`</Types>`)

	return b.String()
}

func (p *Presentation) presentationXML() string {
	var b strings.Builder

	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)

	b.WriteString(`<p:sldIdLst>`)

	for i := range p.slides {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 2+i)
	}

	b.WriteString(`</p:sldIdLst>`)

	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, emu(p.width), emu(p.height))
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)

	return b.String()
}

func (p *Presentation) presentationRels() string {
	var b strings.Builder

	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)

	for i := range p.slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, 2+i, i+1)
	}

	b.WriteString(`</Relationships>`)

	return b.String()
}

func slideRels(media []string) string {
	var b strings.Builder

	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>`)

	for i, target := range media {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="%s"/>`, 2+i, target)
	}

	b.WriteString(`</Relationships>`)

	return b.String()
}

func (s *Slide) xml() string {
	var b strings.Builder

	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)

	id := 1
	rel := 1

	for _, shape := range s.order {
		id++

		switch shape := shape.(type) {
		case *TextBox:
			writeTextBox(&b, id, shape)

		case *Rect:
			writeRect(&b, id, shape)

		case *Picture:
			rel++
			writePicture(&b, id, rel, shape)
		}
	}

	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)

	return b.String()
}

func writeXfrm(b *strings.Builder, box Box) {
	fmt.Fprintf(b, `<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, emu(box.X), emu(box.Y), emu(box.W), emu(box.H))
}

func writeTextBox(b *strings.Builder, id int, t *TextBox) {
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, id)

	b.WriteString(`<p:spPr>`)
	writeXfrm(b, t.box)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)

	b.WriteString(`<p:txBody><a:bodyPr wrap="square"/><a:lstStyle/>`)

	if len(t.paragraphs) == 0 {
		b.WriteString(`<a:p/>`)
	}

	for _, paragraph := range t.paragraphs {
		writeParagraph(b, paragraph)
	}

	b.WriteString(`</p:txBody></p:sp>`)
}

func writeParagraph(b *strings.Builder, p *Paragraph) {
	b.WriteString(`<a:p>`)

	if p.Align != AlignLeft || p.SpaceAfter > 0 {
		b.WriteString(`<a:pPr`)

		if p.Align != AlignLeft {
			fmt.Fprintf(b, ` algn="%s"`, p.Align)
		}

		if p.SpaceAfter > 0 {
			fmt.Fprintf(b, `><a:spcAft><a:spcPts val="%d"/></a:spcAft></a:pPr>`, int64(p.SpaceAfter*100+0.5))
		} else {
			b.WriteString(`/>`)
		}
	}

	b.WriteString(`<a:r><a:rPr lang="en-US"`)

	if p.Size > 0 {
		fmt.Fprintf(b, ` sz="%d"`, int64(p.Size*100+0.5))
	}

	if p.Bold {
		b.WriteString(` b="1"`)
	}

	if p.Color != nil {
		fmt.Fprintf(b, `><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr>`, p.Color.Hex())
	} else {
		b.WriteString(`/>`)
	}

	b.WriteString(`<a:t>`)
	b.WriteString(escape(p.Text))
	b.WriteString(`</a:t></a:r></a:p>`)
}

func writeRect(b *strings.Builder, id int, r *Rect) {
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Rectangle %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`, id, id)

	b.WriteString(`<p:spPr>`)
	writeXfrm(b, r.box)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`)
	fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, r.fill.Hex())
	b.WriteString(`<a:ln><a:noFill/></a:ln></p:spPr>`)

	b.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/><a:p/></p:txBody></p:sp>`)
}

func writePicture(b *strings.Builder, id, rel int, p *Picture) {
	fmt.Fprintf(b, `<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Picture %d"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>`, id, id)
	fmt.Fprintf(b, `<p:blipFill><a:blip r:embed="rId%d"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`, rel)

	b.WriteString(`<p:spPr>`)
	writeXfrm(b, p.box)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`)
}

func escape(s string) string {
	var buf bytes.Buffer

	xml.EscapeText(&buf, []byte(s))

	return buf.String()
}
