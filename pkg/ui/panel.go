package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is the interface every panel entry implements.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
}

type sliderEntry struct{ *Slider }

func (s sliderEntry) Height() float64 { return s.H + 25 }

type checkboxEntry struct{ *Checkbox }

func (c checkboxEntry) Height() float64 { return c.Size + 9 }

type sectionEntry struct{ title string }

func (sectionEntry) Update()            {}
func (sectionEntry) Draw(*ebiten.Image) {}
func (sectionEntry) Height() float64    { return 25 }

// Panel stacks widgets vertically with section headers and mouse-wheel
// scrolling. Widget positions are recomputed while drawing, so the panel
// owns layout and the widgets own interaction.
type Panel struct {
	X, Y          float64
	Width, Height float64

	Title   string
	entries []Widget
	labels  []string
	scroll  float64

	bgColor     color.RGBA
	borderColor color.RGBA
}

// NewPanel creates an empty panel at the given position.
func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       title,
		bgColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		borderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection adds a section header row.
func (p *Panel) AddSection(title string) {
	p.entries = append(p.entries, sectionEntry{title: title})
	p.labels = append(p.labels, title)
}

// AddSlider adds a labeled slider and returns it for value access.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.entries = append(p.entries, sliderEntry{s})
	p.labels = append(p.labels, label)
	return s
}

// AddCheckbox adds a labeled checkbox and returns it for value access.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.entries = append(p.entries, checkboxEntry{c})
	p.labels = append(p.labels, label)
	return c
}

// Update handles scrolling and forwards input to all widgets.
func (p *Panel) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.scroll -= dy * 20
		maxScroll := p.contentHeight() - p.Height + 40
		if maxScroll < 0 {
			maxScroll = 0
		}
		if p.scroll < 0 {
			p.scroll = 0
		}
		if p.scroll > maxScroll {
			p.scroll = maxScroll
		}
	}

	for _, w := range p.entries {
		w.Update()
	}
}

// Draw renders the panel background and the visible widgets.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.bgColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.borderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	y := p.Y + 30 - p.scroll
	for i, w := range p.entries {
		visible := y >= p.Y-30 && y+w.Height() <= p.Y+p.Height+30

		switch e := w.(type) {
		case sectionEntry:
			if visible {
				vector.FillRect(screen,
					float32(p.X+5), float32(y),
					float32(p.Width-10), 20,
					color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
				ebitenutil.DebugPrintAt(screen, e.title, int(p.X+10), int(y+3))
			}
		case sliderEntry:
			e.Y = y + 15
			if visible {
				ebitenutil.DebugPrintAt(screen, p.labels[i], int(p.X+10), int(y))
				e.Draw(screen)
			}
		case checkboxEntry:
			e.Y = y
			if visible {
				ebitenutil.DebugPrintAt(screen, p.labels[i], int(p.X+30), int(y+2))
				e.Draw(screen)
			}
		}
		y += w.Height()
	}
}

func (p *Panel) contentHeight() float64 {
	h := 30.0
	for _, w := range p.entries {
		h += w.Height()
	}
	return h
}
