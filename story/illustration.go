package story

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

const svgDataPrefix = "data:image/svg+xml;charset=utf-8,"

const svgSource = `<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
<title>{{esc .Prompt}}</title>
<defs>
<linearGradient id="bg" x1="0" y1="0" x2="1" y2="1">
{{- range .Stops}}
<stop offset="{{.Offset}}%" stop-color="{{.Color}}"/>
{{- end}}
</linearGradient>
</defs>
<rect width="100%" height="100%" fill="url(#bg)"/>
{{- range .Circles}}
<circle cx="{{.X}}" cy="{{.Y}}" r="{{.R}}" fill="#FFFFFF" fill-opacity="{{.Opacity}}"/>
{{- end}}
<text x="{{.CenterX}}" y="{{.Glyph.Y}}" font-family="Georgia, serif" font-size="{{.Glyph.Size}}" font-weight="bold" fill="#FFFFFF" fill-opacity="0.9" text-anchor="middle" dominant-baseline="middle">{{esc .Initials}}</text>
{{- range .Captions}}
<text x="{{$.CenterX}}" y="{{.Y}}" font-family="Georgia, serif" font-size="{{.Size}}" fill="#FFFFFF" text-anchor="middle">{{esc .Text}}</text>
{{- end}}
</svg>`

var svgTemplate = template.Must(template.New("illustration").
	Funcs(template.FuncMap{"esc": html.EscapeString}).
	Parse(svgSource))

type gradientStop struct {
	Offset int
	Color  string
}

type circle struct {
	X, Y, R int
	Opacity string
}

type textLine struct {
	Y, Size int
	Text    string
}

type canvas struct {
	Width, Height int
	Offsets       [3]int
	Circles       []circle
	Glyph         textLine
	CaptionY      [2]int
	CaptionSize   [2]int
}

var chapterCanvas = canvas{
	Width:   1200,
	Height:  675,
	Offsets: [3]int{0, 50, 100},
	Circles: []circle{
		{X: 180, Y: 140, R: 120, Opacity: "0.18"},
		{X: 1040, Y: 520, R: 170, Opacity: "0.12"},
		{X: 960, Y: 110, R: 70, Opacity: "0.22"},
	},
	Glyph:       textLine{Y: 320, Size: 220},
	CaptionY:    [2]int{560, 612},
	CaptionSize: [2]int{34, 30},
}

var coverCanvas = canvas{
	Width:   1200,
	Height:  1600,
	Offsets: [3]int{0, 60, 100},
	Circles: []circle{
		{X: 220, Y: 260, R: 200, Opacity: "0.16"},
		{X: 1000, Y: 1320, R: 280, Opacity: "0.12"},
		{X: 980, Y: 300, R: 120, Opacity: "0.2"},
	},
	Glyph:       textLine{Y: 760, Size: 360},
	CaptionY:    [2]int{1260, 1350},
	CaptionSize: [2]int{72, 38},
}

type svgDocument struct {
	Width, Height int
	CenterX       int
	Prompt        string
	Stops         []gradientStop
	Circles       []circle
	Glyph         textLine
	Initials      string
	Captions      []textLine
}

// ChapterIllustration renders the chapter artwork as an inline SVG data URL.
func (g *Generator) ChapterIllustration(title string, index, total int, prompt string, characters []string) string {
	return render(chapterCanvas, g.palette(), prompt, Initials(characters), [2]string{
		fmt.Sprintf("Chapter %d / %d", index, total),
		captionTitle(index, title),
	})
}

// CoverIllustration renders the cover artwork as an inline SVG data URL.
func (g *Generator) CoverIllustration(title, prompt string, characters []string) string {
	return render(coverCanvas, g.palette(), prompt, Initials(characters), [2]string{
		title,
		coverSubtitle,
	})
}

func (g *Generator) palette() Palette {
	return palettes[g.rnd.IntN(len(palettes))]
}

// Initials takes the upper-cased first letter of each named character, at most
// three of them.
func Initials(characters []string) string {
	var sb strings.Builder
	count := 0
	for _, name := range characters {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(name)
		sb.WriteRune(unicode.ToUpper(r))
		if count++; count == 3 {
			break
		}
	}
	if count == 0 {
		return fallbackInitials
	}
	return sb.String()
}

func render(c canvas, p Palette, prompt, initials string, captions [2]string) string {
	doc := svgDocument{
		Width:    c.Width,
		Height:   c.Height,
		CenterX:  c.Width / 2,
		Prompt:   prompt,
		Circles:  c.Circles,
		Glyph:    c.Glyph,
		Initials: initials,
	}
	for i, color := range p {
		doc.Stops = append(doc.Stops, gradientStop{Offset: c.Offsets[i], Color: color})
	}
	for i, text := range captions {
		doc.Captions = append(doc.Captions, textLine{Y: c.CaptionY[i], Size: c.CaptionSize[i], Text: text})
	}

	var sb strings.Builder
	// strings.Builder never fails, only a broken template can.
	if err := svgTemplate.Execute(&sb, doc); err != nil {
		panic(fmt.Sprintf("rendering illustration: %v", err))
	}
	return svgDataPrefix + url.PathEscape(sb.String())
}

// DecodeIllustration returns the SVG markup behind a data URL made by this package.
func DecodeIllustration(dataURL string) (string, error) {
	encoded, ok := strings.CutPrefix(dataURL, svgDataPrefix)
	if !ok {
		return "", fmt.Errorf("not an svg data url")
	}
	svg, err := url.PathUnescape(encoded)
	if err != nil {
		return "", fmt.Errorf("unescaping svg: %w", err)
	}
	return svg, nil
}
