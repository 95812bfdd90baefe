package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"github.com/signintech/gopdf"

	"github.com/kozaktomas/card-grid/internal/layout"
	"github.com/kozaktomas/card-grid/internal/units"
)

// Orientation of a PDF page.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// DocumentSpec describes the single PDF page, in inches.
type DocumentSpec struct {
	WidthIn     float64
	HeightIn    float64
	Orientation Orientation
}

// NewDocumentSpec sizes a page to paper. Square paper is portrait.
func NewDocumentSpec(paper layout.PaperSpec) DocumentSpec {
	spec := DocumentSpec{
		WidthIn:     units.MMToInches(paper.WidthMM),
		HeightIn:    units.MMToInches(paper.HeightMM),
		Orientation: Portrait,
	}
	if paper.Landscape() {
		spec.Orientation = Landscape
	}
	return spec
}

// WidthPt returns the page width in PDF points.
func (d DocumentSpec) WidthPt() float64 {
	return units.InchesToPoints(d.WidthIn)
}

// HeightPt returns the page height in PDF points.
func (d DocumentSpec) HeightPt() float64 {
	return units.InchesToPoints(d.HeightIn)
}

// String formats the page as "8.27 x 11.69 in portrait".
func (d DocumentSpec) String() string {
	return fmt.Sprintf("%.2f x %.2f in %s", d.WidthIn, d.HeightIn, d.Orientation)
}

// WriteDocument writes a one-page PDF sized exactly to paper with img
// covering the whole page. The page box is given in points.
func WriteDocument(w io.Writer, img image.Image, paper layout.PaperSpec) error {
	if err := layout.CheckPaper(paper); err != nil {
		return err
	}
	spec := NewDocumentSpec(paper)

	var pageImage bytes.Buffer
	if err := jpeg.Encode(&pageImage, img, &jpeg.Options{Quality: documentJPEGQuality}); err != nil {
		return fmt.Errorf("failed to encode page image: %w", err)
	}
	holder, err := gopdf.ImageHolderByBytes(pageImage.Bytes())
	if err != nil {
		return fmt.Errorf("failed to load page image: %w", err)
	}

	pdf := gopdf.GoPdf{}
	page := gopdf.Rect{W: spec.WidthPt(), H: spec.HeightPt()}
	pdf.Start(gopdf.Config{PageSize: page, Unit: gopdf.UnitPT})
	pdf.SetInfo(gopdf.PdfInfo{
		Title:   BaseFilename,
		Creator: BaseFilename,
	})
	pdf.AddPage()
	if err := pdf.ImageByHolder(holder, 0, 0, &page); err != nil {
		return fmt.Errorf("failed to place page image: %w", err)
	}
	if err := pdf.Write(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
