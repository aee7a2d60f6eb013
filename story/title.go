package story

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ChapterTitle builds the heading for chapter index (1-based). Seeds cycle every
// ten chapters; style and tone are appended when given. setting only fills the
// "Secrets of the ..." seed and falls back to "Unknown".
func ChapterTitle(index int, style, tone, setting string) string {
	base := titleSeeds[seedIndex(index)]
	if strings.Contains(base, settingPlaceholder) {
		place := fallbackSetting
		if setting != "" {
			place = titleCase(setting)
		}
		base = strings.ReplaceAll(base, settingPlaceholder, place)
	}
	if style != "" {
		base = fmt.Sprintf("%s — %s", base, titleCase(style))
	}
	if tone != "" {
		base = fmt.Sprintf("%s (%s)", base, titleCase(tone))
	}
	return fmt.Sprintf("Chapter %d: %s", index, base)
}

func seedIndex(index int) int {
	n := len(titleSeeds)
	return ((index-1)%n + n) % n
}

// titleCase upper-cases the first letter of every word and lower-cases the rest.
// A Caser keeps state, so a new one is made per call.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// captionTitle strips the "Chapter N: " prefix for use under the chapter counter.
func captionTitle(index int, title string) string {
	prefix := fmt.Sprintf("Chapter %d:", index)
	if trimmed, ok := strings.CutPrefix(title, prefix); ok {
		return strings.TrimSpace(trimmed)
	}
	return strings.TrimSpace(strings.Replace(title, "Chapter", "", 1))
}
