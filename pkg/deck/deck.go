// Package deck renders the fixed five-row "left-rail" customer update slide.
// The geometry is the visual contract: row order, offsets and row height must
// not change without breaking consumers of the layout.
package deck

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/slidesmith/slidesmith/pkg/content"
	"github.com/slidesmith/slidesmith/pkg/deck/pptx"

	"github.com/disintegration/imaging"
)

type Color = pptx.Color

// Slide is the immutable per-generation rendering configuration.
type Slide struct {
	Customer string
	Accent   Color

	// Logo is optional raw image data. It is decorative: anything that fails
	// to decode is skipped without error.
	Logo []byte

	// Date stamps the footer; the zero value means now.
	Date time.Time
}

const (
	pageWidth  = 13.33
	pageHeight = 7.5

	rowTop    = 1.25
	rowHeight = 1.4
)

var (
	black       = Color{R: 0, G: 0, B: 0}
	ruleColor   = Color{R: 165, G: 175, B: 190}
	footerColor = Color{R: 90, G: 90, B: 90}
)

type row struct {
	rail  string
	title string

	lines  []string
	bullet bool
}

// Render lays out one slide for the record and serializes the deck. The
// record must be complete; there are no defaults for missing fields.
func Render(slide Slide, record *content.Record) ([]byte, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	date := slide.Date

	if date.IsZero() {
		date = time.Now()
	}

	rows := []row{
		{"Corporate\nVision", "Corporate Vision", []string{record.CorporateVision}, false},
		{"Business\nStrategies", "Business Strategies", record.BusinessStrategies, true},
		{"Supply Chain\nContribution", "Supply Chain Contribution", record.SupplyChainContribution, true},
		{"Risks of\nSupply Chain\nFailure", "Risks of Supply Chain Failure", record.RisksOfSupplyChainFailure, true},
		{"Critical\nCapabilities", "Critical Capabilities", record.CriticalCapabilities, true},
	}

	presentation := pptx.New(pageWidth, pageHeight)
	canvas := presentation.AddSlide()

	title := canvas.AddTextBox(pptx.Box{X: 0.5, Y: 0.35, W: 9, H: 0.9})
	heading := title.AddParagraph("Customer Updates")
	heading.Size = 44
	heading.Bold = true

	addLogo(canvas, slide.Logo)

	canvas.AddRect(pptx.Box{X: 2.8, Y: 1.2, W: 0.06, H: 5.8}, slide.Accent)

	y := rowTop

	for _, row := range rows {
		addRailLabel(canvas, row.rail, y-0.05)
		addRowContent(canvas, row, y-0.02)

		canvas.AddRect(pptx.Box{X: 0.5, Y: y + rowHeight, W: 12.3, H: 0.044}, ruleColor)

		y += rowHeight
	}

	footer := canvas.AddTextBox(pptx.Box{X: 0.5, Y: 6.9, W: 12.3, H: 0.4})
	stamp := footer.AddParagraph(slide.Customer + "  •  " + date.Format("Jan 02, 2006"))
	stamp.Size = 12
	stamp.Color = &footerColor
	stamp.Align = pptx.AlignRight

	return presentation.Bytes()
}

func addRailLabel(canvas *pptx.Slide, rail string, y float64) {
	box := canvas.AddTextBox(pptx.Box{X: 0.3, Y: y, W: 2.5, H: 1.0})

	for _, line := range strings.Split(rail, "\n") {
		p := box.AddParagraph(line)
		p.Size = 24
		p.Bold = true
		p.Color = &black
	}
}

func addRowContent(canvas *pptx.Slide, r row, y float64) {
	title := canvas.AddTextBox(pptx.Box{X: 3.0, Y: y, W: 9.6, H: 0.7})
	heading := title.AddParagraph(r.title)
	heading.Size = 22
	heading.Bold = true

	body := canvas.AddTextBox(pptx.Box{X: 3.0, Y: y + 0.55, W: 9.6, H: 1.4})

	for _, line := range r.lines {
		if r.bullet {
			line = "• " + line
		}

		p := body.AddParagraph(line)
		p.Size = 14

		if r.bullet {
			p.SpaceAfter = 2
		}
	}
}

// addLogo re-encodes the uploaded image as PNG and pins it to the top-right
// corner at a fixed width. Decode failures are deliberately swallowed.
func addLogo(canvas *pptx.Slide, data []byte) {
	if len(data) == 0 {
		return
	}

	img, err := imaging.Decode(bytes.NewReader(data))

	if err != nil {
		return
	}

	bounds := img.Bounds()

	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return
	}

	var buf bytes.Buffer

	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return
	}

	const width = 1.6

	height := width * float64(bounds.Dy()) / float64(bounds.Dx())

	canvas.AddPicture(buf.Bytes(), pptx.Box{X: 11.4, Y: 0.3, W: width, H: height})
}

// ParseColor decodes an accent color in "#RRGGBB" form.
func ParseColor(val string) (Color, error) {
	hex := strings.TrimPrefix(val, "#")

	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", val)
	}

	n, err := strconv.ParseUint(hex, 16, 32)

	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", val)
	}

	return Color{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
	}, nil
}

// Filename derives the download name from the customer and date, e.g.
// "Rugs_USA_Customer_Updates_20260829.pptx".
func Filename(customer string, date time.Time) string {
	if date.IsZero() {
		date = time.Now()
	}

	name := strings.ReplaceAll(strings.TrimSpace(customer), " ", "_")

	return name + "_Customer_Updates_" + date.Format("20060102") + ".pptx"
}
