package placeholder

import (
	"image/color"
	"strings"
	"unicode"

	"github.com/MakeNowJust/heredoc"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

var Bin = heredoc.Doc(`
  ▄▄▄▄▄▄▄▄▄▄▄▄▄▄
▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀
 █ ▐▌ ▐▌ ▐▌ ▐▌ █
 █ ▐▌ ▐▌ ▐▌ ▐▌ █
 █ ▐▌ ▐▌ ▐▌ ▐▌ █
 ▀▄▄▄▄▄▄▄▄▄▄▄▄▄▀
`)

// Placeholder is drawn in place of a list with nothing in it.
type Placeholder struct {
	art     string
	caption string
	fg      color.Color
}

func Empty(caption string, fg color.Color) *Placeholder {
	return &Placeholder{
		art:     Bin,
		caption: caption,
		fg:      fg,
	}
}

// Size is the width and height the placeholder needs.
func (p *Placeholder) Size() (int, int) {
	lines := p.lines()
	w := 0
	for _, line := range lines {
		w = max(w, ansi.StringWidth(line))
	}
	return w, len(lines)
}

func (p *Placeholder) lines() []string {
	lines := strings.Split(strings.TrimRight(p.art, "\n"), "\n")
	if p.caption != "" {
		lines = append(lines, "", p.caption)
	}
	return lines
}

// Draw centres the placeholder in area. Anything outside area is dropped.
func (p *Placeholder) Draw(scr uv.Screen, area uv.Rectangle) {
	w, h := p.Size()
	top := area.Min.Y + max(0, (area.Dy()-h)/2)
	for y, line := range p.lines() {
		row := top + y
		if row >= area.Max.Y {
			return
		}
		left := area.Min.X + max(0, (area.Dx()-w)/2)
		if y == h-1 && p.caption != "" {
			left = area.Min.X + max(0, (area.Dx()-ansi.StringWidth(line))/2)
		}
		x := left
		for _, r := range line {
			if x >= area.Max.X {
				break
			}
			if !unicode.IsSpace(r) {
				scr.SetCell(x, row, &uv.Cell{
					Content: string(r),
					Style:   uv.Style{Fg: p.fg},
					Width:   1,
				})
			}
			x++
		}
	}
}

// Render draws the placeholder centred in a width by height block.
func (p *Placeholder) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	scr := uv.NewScreenBuffer(width, height)
	p.Draw(scr, uv.Rect(0, 0, width, height))
	return strings.ReplaceAll(scr.Render(), "\r\n", "\n")
}
