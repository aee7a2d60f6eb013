package studio

import (
	"log/slog"
	"strconv"
	"time"

	"storybook/core"
	"storybook/holder"
	"storybook/lib/sl"
	"storybook/metrics"
	"storybook/storage"
	"storybook/story"
)

const maxDiagnosticCollections = 10

var _ core.StoryService = (*Studio)(nil)

// Studio generates stories and keeps them in the archive.
type Studio struct {
	archive      *holder.Archive
	log          *slog.Logger
	now          func() time.Time
	newGenerator func() *story.Generator
}

func NewStudio(archive *holder.Archive, log *slog.Logger) *Studio {
	return &Studio{
		archive:      archive,
		log:          log.With(sl.Module("studio")),
		now:          time.Now,
		newGenerator: story.NewRandomGenerator,
	}
}

// Generate always returns the complete story. A failed save is reported in
// SaveError and leaves the story untouched.
func (s *Studio) Generate(req story.Request) *core.Generation {
	req = req.Normalize()

	start := time.Now()
	st := s.newGenerator().Generate(req)
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	st.CreatedAt = s.now().UTC().Truncate(time.Millisecond)

	metrics.StoriesGenerated.WithLabelValues(story.ParseAudience(req.Audience).String(), strconv.FormatBool(req.IncludeImages)).Inc()
	metrics.ChaptersGenerated.Add(float64(len(st.Chapters)))

	s.log.With(
		slog.String("title", st.Title),
		slog.Int("chapters", len(st.Chapters)),
		slog.Bool("images", req.IncludeImages),
		slog.Bool("save", req.Save),
	).Debug("story generated")

	gen := &core.Generation{Story: st}
	if !req.Save {
		return gen
	}
	id, err := s.archive.Save(st)
	if err != nil {
		metrics.StorageErrors.WithLabelValues("create").Inc()
		gen.SaveError = err
		return gen
	}
	gen.ID = id
	return gen
}

func (s *Studio) Recent(limit int) ([]storage.Document, error) {
	docs, err := s.archive.Recent(limit)
	if err != nil {
		metrics.StorageErrors.WithLabelValues("list").Inc()
		return nil, err
	}
	return docs, nil
}

func (s *Studio) Diagnostics() core.Diagnostics {
	d := core.Diagnostics{Storage: s.archive.Backend()}
	names, err := s.archive.Collections()
	if err != nil {
		d.Err = err
		return d
	}
	d.Connected = true
	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	d.Collections = names
	return d
}

func (s *Studio) Close() error {
	return s.archive.Close()
}
