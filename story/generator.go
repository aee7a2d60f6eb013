package story

import "math/rand/v2"

// Source is the randomness a Generator draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Generator assembles stories. It is not safe for concurrent use; give each
// goroutine its own.
type Generator struct {
	rnd Source
}

func NewGenerator(rnd Source) *Generator {
	return &Generator{rnd: rnd}
}

// NewRandomGenerator returns a Generator with its own freshly seeded source.
func NewRandomGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewSeededGenerator returns a Generator whose output is reproducible for a seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed)))
}

// Generate builds a complete story. The request is expected to be validated;
// it is normalized here so optional blanks fall back the same way everywhere.
func (g *Generator) Generate(req Request) Story {
	req = req.Normalize()

	chapters := make([]Chapter, 0, req.Chapters)
	for i := 1; i <= req.Chapters; i++ {
		chapter := Chapter{
			Index: i,
			Title: ChapterTitle(i, req.Style, req.Tone, req.Setting),
			Text:  g.chapterText(i, req.Chapters, req.Theme, req.Setting, req.Audience, req.Characters),
		}
		if req.IncludeImages {
			chapter.ImagePrompt = ChapterPrompt(i, chapter.Title, req.Theme, req.Setting, req.Characters, req.Style)
			chapter.ImageSvg = g.ChapterIllustration(chapter.Title, i, req.Chapters, chapter.ImagePrompt, req.Characters)
		}
		chapters = append(chapters, chapter)
	}

	s := Story{
		Title:            req.Title,
		Theme:            req.Theme,
		Audience:         req.Audience,
		Style:            req.Style,
		Tone:             req.Tone,
		Moral:            req.Moral,
		Setting:          req.Setting,
		Language:         req.Language,
		Characters:       req.Characters,
		Chapters:         chapters,
		CoverPrompt:      CoverPrompt(req.Title, req.Theme, req.Setting, req.Characters),
		GeneratorVersion: GeneratorVersion,
	}
	if req.IncludeImages {
		s.CoverImageSvg = g.CoverIllustration(req.Title, s.CoverPrompt, req.Characters)
	}
	return s
}
