package story

import (
	"reflect"
	"strings"
	"testing"
)

// fixedSource replays values in order, reduced into range.
type fixedSource struct {
	values []int
	next   int
}

func (f *fixedSource) IntN(n int) int {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[f.next%len(f.values)]
	f.next++
	return v % n
}

func zeroGenerator() *Generator {
	return NewGenerator(&fixedSource{})
}

func lanternWalk() Request {
	req := NewRequest()
	req.Title = "The Lantern Walk"
	req.Chapters = 3
	req.Characters = []string{"Mira", "Obo"}
	return req
}

// Every valid chapter count yields exactly that many chapters, indexed from 1.
func TestGenerateChapterCount(t *testing.T) {
	g := NewSeededGenerator(1)
	for n := MinChapters; n <= MaxChapters; n++ {
		req := NewRequest()
		req.Title = "Count"
		req.Chapters = n
		s := g.Generate(req)
		if len(s.Chapters) != n {
			t.Fatalf("chapters=%d: got %d chapters", n, len(s.Chapters))
		}
		for i, c := range s.Chapters {
			if c.Index != i+1 {
				t.Fatalf("chapters=%d: chapter %d has index %d", n, i, c.Index)
			}
		}
	}
}

func TestGenerateImagesGate(t *testing.T) {
	for _, include := range []bool{true, false} {
		req := lanternWalk()
		req.IncludeImages = include
		s := NewSeededGenerator(2).Generate(req)
		for _, c := range s.Chapters {
			hasPrompt, hasSvg := c.ImagePrompt != "", c.ImageSvg != ""
			if hasPrompt != include || hasSvg != include {
				t.Fatalf("include=%v: chapter %d prompt=%v svg=%v", include, c.Index, hasPrompt, hasSvg)
			}
		}
		if (s.CoverImageSvg != "") != include {
			t.Fatalf("include=%v: cover svg present=%v", include, s.CoverImageSvg != "")
		}
		if s.CoverPrompt == "" {
			t.Fatalf("include=%v: cover prompt missing", include)
		}
	}
}

func TestGenerateLanternWalk(t *testing.T) {
	s := NewSeededGenerator(3).Generate(lanternWalk())

	wantTitles := []string{
		"Chapter 1: A New Beginning",
		"Chapter 2: Whispers in the Wind",
		"Chapter 3: The Hidden Path",
	}
	wantBeats := []Arc{Setup, Escalation, Resolution}
	for i, c := range s.Chapters {
		if c.Title != wantTitles[i] {
			t.Fatalf("chapter %d title %q, want %q", c.Index, c.Title, wantTitles[i])
		}
		if !strings.Contains(c.Text, wantBeats[i].Beat()) {
			t.Fatalf("chapter %d missing %s beat: %q", c.Index, wantBeats[i], c.Text)
		}
		if !strings.HasPrefix(c.ImageSvg, svgDataPrefix) {
			t.Fatalf("chapter %d svg is not a data url", c.Index)
		}
	}
	if strings.Contains(s.Chapters[2].Text, Climax.Beat()) {
		t.Fatalf("last chapter must use the resolution beat")
	}
	if s.CoverImageSvg == "" {
		t.Fatalf("cover svg missing")
	}
	if s.GeneratorVersion != GeneratorVersion {
		t.Fatalf("generator version %q", s.GeneratorVersion)
	}
	if !reflect.DeepEqual(s.Characters, []string{"Mira", "Obo"}) || s.Audience != "children" || s.Language != "en" {
		t.Fatalf("request fields not echoed: %+v", s)
	}
}

func TestGenerateSingleChapterTieBreak(t *testing.T) {
	req := lanternWalk()
	req.Chapters = 1
	s := NewSeededGenerator(4).Generate(req)
	if ArcFor(1, 1) != Setup {
		t.Fatalf("arc label for a single chapter should be setup, got %s", ArcFor(1, 1))
	}
	text := s.Chapters[0].Text
	if !strings.Contains(text, Resolution.Beat()) {
		t.Fatalf("single chapter should carry the resolution beat: %q", text)
	}
	if strings.Contains(text, Setup.Beat()) {
		t.Fatalf("single chapter should not carry the setup beat: %q", text)
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	req := lanternWalk()
	req.Chapters = 6
	a := NewSeededGenerator(42).Generate(req)
	b := NewSeededGenerator(42).Generate(req)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different stories")
	}
}

func TestGenerateNormalizesBlanks(t *testing.T) {
	req := lanternWalk()
	req.Theme = "   "
	req.Audience = ""
	req.Characters = []string{" ", "Mira", ""}
	s := zeroGenerator().Generate(req)
	if s.Theme != "" || s.Audience != DefaultAudience {
		t.Fatalf("blanks not normalized: theme=%q audience=%q", s.Theme, s.Audience)
	}
	if !reflect.DeepEqual(s.Characters, []string{"Mira"}) {
		t.Fatalf("characters %v", s.Characters)
	}
	if !strings.Contains(s.Chapters[0].Text, "leans into wonder") {
		t.Fatalf("blank theme should fall back: %q", s.Chapters[0].Text)
	}
}

func TestArcAndBeat(t *testing.T) {
	cases := []struct {
		index, total int
		arc, beat    Arc
	}{
		{1, 1, Setup, Resolution},
		{1, 5, Setup, Setup},
		{2, 5, Escalation, Escalation},
		{4, 5, Escalation, Escalation},
		{5, 5, Climax, Resolution},
		{2, 2, Climax, Resolution},
	}
	for _, c := range cases {
		if got := ArcFor(c.index, c.total); got != c.arc {
			t.Fatalf("ArcFor(%d,%d)=%s want %s", c.index, c.total, got, c.arc)
		}
		if got := BeatFor(c.index, c.total); got != c.beat {
			t.Fatalf("BeatFor(%d,%d)=%s want %s", c.index, c.total, got, c.beat)
		}
	}
}
