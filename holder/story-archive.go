package holder

import (
	"fmt"
	"log/slog"

	"storybook/lib/sl"
	"storybook/storage"
	"storybook/story"
)

// Archive keeps generated stories in the story collection.
type Archive struct {
	storage storage.DocumentStorage
	log     *slog.Logger
}

func NewArchive(store storage.DocumentStorage, log *slog.Logger) *Archive {
	return &Archive{
		storage: store,
		log:     log.With(sl.Module("archive")),
	}
}

func (a *Archive) Save(s story.Story) (string, error) {
	id, err := a.storage.Create(storage.StoryCollection, s)
	if err != nil {
		a.log.With(slog.String("title", s.Title)).Error("saving story", sl.Err(err))
		return "", fmt.Errorf("saving story: %w", err)
	}
	a.log.With(
		slog.String("id", id),
		slog.Int("chapters", len(s.Chapters)),
	).Debug("story saved")
	return id, nil
}

func (a *Archive) Recent(limit int) ([]storage.Document, error) {
	docs, err := a.storage.List(storage.StoryCollection, storage.Document{}, int64(limit))
	if err != nil {
		a.log.Error("listing stories", sl.Err(err))
		return nil, fmt.Errorf("listing stories: %w", err)
	}
	return docs, nil
}

func (a *Archive) Backend() string {
	return a.storage.Name()
}

func (a *Archive) Collections() ([]string, error) {
	return a.storage.CollectionNames()
}

func (a *Archive) Close() error {
	return a.storage.Close()
}
