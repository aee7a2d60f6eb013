package story

import "strings"

var titleSeeds = [...]string{
	"A New Beginning",
	"Whispers in the Wind",
	"The Hidden Path",
	"A Promise at Dawn",
	"Shadows and Starlight",
	"Secrets of the {setting}",
	"Turning the Tide",
	"The Heart Remembers",
	"Trials of Courage",
	"Home Again",
}

// settingPlaceholder is filled in by ChapterTitle.
const settingPlaceholder = "{setting}"

type Palette [3]string

var palettes = [...]Palette{
	{"#FDE68A", "#F9A8D4", "#A78BFA"},
	{"#A7F3D0", "#60A5FA", "#1E3A8A"},
	{"#FECACA", "#FB923C", "#7C2D12"},
	{"#E0E7FF", "#818CF8", "#312E81"},
}

var adornments = [...]string{
	"sun-dappled paths",
	"quiet lanterns",
	"soft thunder beyond the hills",
	"maps scribbled in the margins",
	"a pocket full of brave ideas",
}

const (
	fallbackWho      = "a small band of friends"
	fallbackPlace    = "a place where the sky feels close and the air hums with possibility"
	fallbackTheme    = "wonder"
	fallbackStyle    = "storybook"
	fallbackSetting  = "Unknown"
	fallbackInitials = "★"

	coverFallbackSetting = "imaginative landscape"
	coverFallbackCast    = "a group of friends"
	coverSubtitle        = "An illustrated storybook"
)

type Audience int

const (
	Children Audience = iota
	Teens
	Adults
)

// ParseAudience maps a free-form audience to one of the known voices.
// Unknown values get the children's voice.
func ParseAudience(s string) Audience {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "teens":
		return Teens
	case "adults":
		return Adults
	default:
		return Children
	}
}

func (a Audience) Voice() string {
	switch a {
	case Teens:
		return "brisk and adventurous"
	case Adults:
		return "lyrical and reflective"
	default:
		return "gentle and curious"
	}
}

func (a Audience) String() string {
	switch a {
	case Teens:
		return "teens"
	case Adults:
		return "adults"
	default:
		return "children"
	}
}

type Arc int

const (
	Setup Arc = iota
	Escalation
	Climax
	Resolution
)

func (a Arc) Beat() string {
	switch a {
	case Escalation:
		return "The path grows twisty; trust and patience are tested in warm, human ways."
	case Climax:
		return "At last, the heart of the problem opens—difficult, yet navigable with kindness."
	case Resolution:
		return "With lessons gathered, the world feels wider, and home feels new."
	default:
		return "They meet a gentle challenge that hints at something larger."
	}
}

func (a Arc) String() string {
	switch a {
	case Escalation:
		return "escalation"
	case Climax:
		return "climax"
	case Resolution:
		return "resolution"
	default:
		return "setup"
	}
}
