package story

import (
	"strings"
	"testing"
)

func TestChapterTitle(t *testing.T) {
	cases := []struct {
		index                int
		style, tone, setting string
		want                 string
	}{
		{1, "", "", "", "Chapter 1: A New Beginning"},
		{5, "", "", "", "Chapter 5: Shadows and Starlight"},
		{15, "", "", "", "Chapter 15: Shadows and Starlight"},
		{10, "", "", "", "Chapter 10: Home Again"},
		{11, "", "", "", "Chapter 11: A New Beginning"},
		{1, "fairy tale", "", "", "Chapter 1: A New Beginning — Fairy Tale"},
		{2, "", "cozy", "", "Chapter 2: Whispers in the Wind (Cozy)"},
		{3, "WHIMSICAL", "epic", "", "Chapter 3: The Hidden Path — Whimsical (Epic)"},
		{6, "", "", "", "Chapter 6: Secrets of the Unknown"},
		{6, "", "", "misty harbor", "Chapter 6: Secrets of the Misty Harbor"},
	}
	for _, c := range cases {
		if got := ChapterTitle(c.index, c.style, c.tone, c.setting); got != c.want {
			t.Fatalf("ChapterTitle(%d,%q,%q,%q)=%q want %q", c.index, c.style, c.tone, c.setting, got, c.want)
		}
	}
}

func TestParagraphExact(t *testing.T) {
	got := zeroGenerator().paragraph("", "", "children", []string{"Mira", "Obo"})
	want := "With a gentle and curious voice, the tale leans into wonder, as Mira, Obo step through " +
		"a place where the sky feels close and the air hums with possibility. " +
		"They carry sun-dappled paths, and with each breath they learn that courage grows when it is shared."
	if got != want {
		t.Fatalf("paragraph:\n got %q\nwant %q", got, want)
	}
}

func TestParagraphNamesAtMostThree(t *testing.T) {
	got := zeroGenerator().paragraph("friendship", "the old mill", "teens", []string{"A", "B", "C", "D"})
	if !strings.Contains(got, "as A, B, C step through the old mill") {
		t.Fatalf("unexpected cast: %q", got)
	}
	if !strings.Contains(got, "brisk and adventurous") || !strings.Contains(got, "leans into friendship") {
		t.Fatalf("voice or theme missing: %q", got)
	}
}

func TestParagraphAudienceFallback(t *testing.T) {
	for _, audience := range []string{"robots", "", "CHILDREN"} {
		got := zeroGenerator().paragraph("", "", audience, nil)
		want := zeroGenerator().paragraph("", "", "children", nil)
		if got != want {
			t.Fatalf("audience %q: got %q want %q", audience, got, want)
		}
	}
	if v := ParseAudience("Adults").Voice(); v != "lyrical and reflective" {
		t.Fatalf("adults voice %q", v)
	}
}

func TestParagraphAdornmentFromSource(t *testing.T) {
	g := NewGenerator(&fixedSource{values: []int{4}})
	got := g.paragraph("", "", "children", nil)
	if !strings.Contains(got, "They carry a pocket full of brave ideas,") {
		t.Fatalf("adornment not taken from source: %q", got)
	}
}

func TestDialogue(t *testing.T) {
	g := NewGenerator(&fixedSource{values: []int{0, 0}})
	got := g.dialogue([]string{"Mira", "Obo"})
	want := "\n\n\"We can do this together,\" Mira says. \"We always could,\" Obo replies."
	if got != want {
		t.Fatalf("dialogue %q want %q", got, want)
	}

	g = NewGenerator(&fixedSource{values: []int{1, 0}})
	got = g.dialogue([]string{"Mira", "Obo", "Tam"})
	if !strings.Contains(got, "Obo says") || !strings.Contains(got, "Mira replies") {
		t.Fatalf("speaker should be Obo and friend Mira: %q", got)
	}
}

func TestDialogueSingleCharacterTalksToThemself(t *testing.T) {
	got := zeroGenerator().dialogue([]string{"Mira"})
	if !strings.Contains(got, "Mira says") || !strings.Contains(got, "Mira replies") {
		t.Fatalf("unexpected dialogue %q", got)
	}
}

func TestChapterTextWithoutCharacters(t *testing.T) {
	text := zeroGenerator().chapterText(2, 3, "", "", "children", nil)
	if !strings.HasSuffix(text, Escalation.Beat()+" ") {
		t.Fatalf("expected trailing space after beat: %q", text)
	}
	if strings.Contains(text, "\"") {
		t.Fatalf("no dialogue expected: %q", text)
	}
}

func TestPrompts(t *testing.T) {
	p := ChapterPrompt(2, "Chapter 2: Whispers in the Wind", "", "", nil, "")
	want := "Storybook illustration for chapter 2, \"Chapter 2: Whispers in the Wind\": a small band of friends " +
		"in an imaginative landscape, evoking wonder, painted in a storybook style."
	if p != want {
		t.Fatalf("chapter prompt:\n got %q\nwant %q", p, want)
	}

	c := CoverPrompt("The Lantern Walk", "courage", "", []string{"Mira", "Obo", "Tam", "Lu"})
	want = "Illustrated cover in a cozy, luminous style. Title: 'The Lantern Walk'. Theme: courage. " +
		"Setting: imaginative landscape. Characters: Mira, Obo, Tam, Lu."
	if c != want {
		t.Fatalf("cover prompt:\n got %q\nwant %q", c, want)
	}
	if c := CoverPrompt("T", "", "", nil); !strings.HasSuffix(c, "Characters: a group of friends.") {
		t.Fatalf("cover fallback cast: %q", c)
	}
}

func TestCaptionTitle(t *testing.T) {
	cases := []struct {
		index       int
		title, want string
	}{
		{2, "Chapter 2: Whispers in the Wind", "Whispers in the Wind"},
		{6, ChapterTitle(6, "", "", "misty harbor"), "Secrets of the Misty Harbor"},
		{3, "Chapter 3: The Hidden Path — Whimsical", "The Hidden Path — Whimsical"},
		{4, "Chapter Four", "Four"},
	}
	for _, c := range cases {
		if got := captionTitle(c.index, c.title); got != c.want {
			t.Fatalf("captionTitle(%d,%q)=%q want %q", c.index, c.title, got, c.want)
		}
	}
}
