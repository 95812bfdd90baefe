package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/kozaktomas/card-grid/internal/fit"
	"github.com/kozaktomas/card-grid/internal/layout"
	"github.com/kozaktomas/card-grid/internal/source"
)

// GGSurface paints with the gogpu/gg software rasterizer.
//
// gg's DrawImageEx writes straight into the pixmap without consulting the
// clip stack, so the surface keeps its own stack and crops the source
// rectangle before every image blit.
type GGSurface struct {
	dc    *gg.Context
	clips []layout.Rect

	src *source.Image
	buf *gg.ImageBuf
}

// NewGGSurface returns an empty surface. Reset sizes it.
func NewGGSurface() *GGSurface {
	return &GGSurface{}
}

// Reset sizes the surface and fills it with background. Any clip is dropped.
func (s *GGSurface) Reset(width, height int, background color.Color) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: surface size %dx%d must be positive", layout.ErrInvalidParameter, width, height)
	}
	if s.dc == nil || s.dc.Width() != width || s.dc.Height() != height {
		if s.dc != nil {
			_ = s.dc.Close()
		}
		s.dc = gg.NewContext(width, height)
	}
	for len(s.clips) > 0 {
		s.PopClip()
	}
	s.dc.ResetClip()
	s.dc.ClearWithColor(gg.FromColor(background))
	return nil
}

// FillRect fills r, restricted to the current clip.
func (s *GGSurface) FillRect(r layout.Rect, c color.Color) error {
	if clip, ok := s.clip(); ok {
		r = r.Intersect(clip)
	}
	if r.Empty() {
		return nil
	}
	s.dc.SetColor(c)
	s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	if err := s.dc.Fill(); err != nil {
		return fmt.Errorf("failed to fill rect: %w", err)
	}
	return nil
}

// StrokeRect outlines r with a line of the given width.
func (s *GGSurface) StrokeRect(r layout.Rect, c color.Color, lineWidth float64) error {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	if err := s.dc.Stroke(); err != nil {
		return fmt.Errorf("failed to stroke rect: %w", err)
	}
	return nil
}

// DrawImage scales src into dst, restricted to the current clip.
func (s *GGSurface) DrawImage(src *source.Image, dst layout.Rect) error {
	p := fit.Placement{Draw: dst}
	if clip, ok := s.clip(); ok {
		p.Clip = &clip
	}
	srcRect, visible, ok := fit.Visible(p, src.Width, src.Height)
	if !ok {
		return nil
	}

	s.dc.DrawImageEx(s.imageBuf(src), gg.DrawImageOptions{
		X:             visible.X,
		Y:             visible.Y,
		DstWidth:      visible.W,
		DstHeight:     visible.H,
		SrcRect:       &srcRect,
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// PushClip intersects the clip region with r.
func (s *GGSurface) PushClip(r layout.Rect) {
	if clip, ok := s.clip(); ok {
		r = r.Intersect(clip)
	}
	s.clips = append(s.clips, r)
	s.dc.Push()
	s.dc.ClipRect(r.X, r.Y, r.W, r.H)
}

// PopClip restores the clip region in effect before the last PushClip.
func (s *GGSurface) PopClip() {
	if len(s.clips) == 0 {
		return
	}
	s.clips = s.clips[:len(s.clips)-1]
	s.dc.Pop()
}

// Image returns a copy of the surface pixels.
func (s *GGSurface) Image() image.Image {
	if s.dc == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	_ = s.dc.FlushGPU()
	return s.dc.Image()
}

// Close releases the drawing context.
func (s *GGSurface) Close() error {
	if s.dc == nil {
		return nil
	}
	s.src, s.buf = nil, nil
	return s.dc.Close()
}

func (s *GGSurface) clip() (layout.Rect, bool) {
	if len(s.clips) == 0 {
		return layout.Rect{}, false
	}
	return s.clips[len(s.clips)-1], true
}

// imageBuf converts src once per source image and reuses it for every cell.
func (s *GGSurface) imageBuf(src *source.Image) *gg.ImageBuf {
	if s.src != src {
		s.src = src
		s.buf = gg.ImageBufFromImage(src.Pixels)
	}
	return s.buf
}
