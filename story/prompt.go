package story

import (
	"fmt"
	"strings"
)

// ChapterPrompt describes the illustration wanted for one chapter.
func ChapterPrompt(index int, title, theme, setting string, characters []string, style string) string {
	who := fallbackWho
	if len(characters) > 0 {
		who = strings.Join(firstN(characters, 3), ", ")
	}
	return fmt.Sprintf(
		"Storybook illustration for chapter %d, \"%s\": %s in %s, evoking %s, painted in a %s style.",
		index, title, who, orDefault(setting, "an "+coverFallbackSetting),
		orDefault(theme, fallbackTheme), orDefault(style, fallbackStyle),
	)
}

// CoverPrompt describes the cover art for the whole book.
func CoverPrompt(title, theme, setting string, characters []string) string {
	return fmt.Sprintf(
		"Illustrated cover in a cozy, luminous style. Title: '%s'. Theme: %s. Setting: %s. Characters: %s.",
		title, orDefault(theme, fallbackTheme), orDefault(setting, coverFallbackSetting),
		orDefault(strings.Join(characters, ", "), coverFallbackCast),
	)
}
