package story

import (
	"fmt"
	"strings"
)

// ArcFor places a chapter on the narrative arc. The first chapter is always the
// setup, even in a single-chapter story.
func ArcFor(index, total int) Arc {
	switch {
	case index == 1:
		return Setup
	case index == total:
		return Climax
	default:
		return Escalation
	}
}

// BeatFor picks the beat sentence arc. Whenever the chapter is the last one the
// resolution beat wins over the arc label, so the climax sentence never shows up
// on a final chapter.
func BeatFor(index, total int) Arc {
	if index < total {
		return ArcFor(index, total)
	}
	return Resolution
}

func (g *Generator) paragraph(theme, setting, audience string, characters []string) string {
	who := fallbackWho
	if len(characters) > 0 {
		who = strings.Join(firstN(characters, 3), ", ")
	}
	place := orDefault(setting, fallbackPlace)
	voice := ParseAudience(audience).Voice()
	adorn := adornments[g.rnd.IntN(len(adornments))]

	return fmt.Sprintf(
		"With a %s voice, the tale leans into %s, as %s step through %s. "+
			"They carry %s, and with each breath they learn that courage grows when it is shared.",
		voice, orDefault(theme, fallbackTheme), who, place, adorn,
	)
}

func (g *Generator) chapterText(index, total int, theme, setting, audience string, characters []string) string {
	intro := g.paragraph(theme, setting, audience, characters)
	beat := BeatFor(index, total).Beat()
	return intro + " " + beat + g.dialogue(characters)
}

func (g *Generator) dialogue(characters []string) string {
	if len(characters) == 0 {
		return " "
	}
	speaker := characters[g.rnd.IntN(len(characters))]

	others := make([]string, 0, len(characters))
	for _, c := range characters {
		if c != speaker {
			others = append(others, c)
		}
	}
	if len(others) == 0 {
		others = characters
	}
	friend := others[g.rnd.IntN(len(others))]

	return fmt.Sprintf("\n\n\"We can do this together,\" %s says. \"We always could,\" %s replies.", speaker, friend)
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
