package story

import (
	"strings"
	"time"
)

const (
	GeneratorVersion = "1.1-images-local"

	DefaultAudience = "children"
	DefaultLanguage = "en"
	DefaultChapters = 5
	MinChapters     = 1
	MaxChapters     = 15
)

// Request describes the story to generate. Empty optional strings mean "not given".
type Request struct {
	Title         string   `json:"title" binding:"required"`
	Theme         string   `json:"theme,omitempty"`
	Audience      string   `json:"audience"`
	Style         string   `json:"style,omitempty"`
	Tone          string   `json:"tone,omitempty"`
	Moral         string   `json:"moral,omitempty"`
	Setting       string   `json:"setting,omitempty"`
	Language      string   `json:"language"`
	Characters    []string `json:"characters"`
	Chapters      int      `json:"chapters" binding:"min=1,max=15"`
	Save          bool     `json:"save"`
	IncludeImages bool     `json:"include_images"`
}

// NewRequest returns a request carrying the defaults for every optional field,
// so that decoding a body on top of it only overrides what the client sent.
func NewRequest() Request {
	return Request{
		Audience:      DefaultAudience,
		Language:      DefaultLanguage,
		Characters:    []string{},
		Chapters:      DefaultChapters,
		Save:          true,
		IncludeImages: true,
	}
}

// Normalize trims optional strings, drops blank character names and restores
// defaults for fields left empty.
func (r Request) Normalize() Request {
	r.Title = strings.TrimSpace(r.Title)
	r.Theme = strings.TrimSpace(r.Theme)
	r.Style = strings.TrimSpace(r.Style)
	r.Tone = strings.TrimSpace(r.Tone)
	r.Moral = strings.TrimSpace(r.Moral)
	r.Setting = strings.TrimSpace(r.Setting)
	r.Audience = strings.TrimSpace(r.Audience)
	if r.Audience == "" {
		r.Audience = DefaultAudience
	}
	r.Language = strings.TrimSpace(r.Language)
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
	if r.Chapters == 0 {
		r.Chapters = DefaultChapters
	}

	characters := make([]string, 0, len(r.Characters))
	for _, c := range r.Characters {
		if c = strings.TrimSpace(c); c != "" {
			characters = append(characters, c)
		}
	}
	r.Characters = characters
	return r
}

type Chapter struct {
	Index       int    `json:"index" bson:"index"`
	Title       string `json:"title" bson:"title"`
	Text        string `json:"text" bson:"text"`
	ImagePrompt string `json:"image_prompt,omitempty" bson:"image_prompt,omitempty"`
	ImageSvg    string `json:"image_svg,omitempty" bson:"image_svg,omitempty"`
}

type Story struct {
	Title            string    `json:"title" bson:"title"`
	Theme            string    `json:"theme,omitempty" bson:"theme,omitempty"`
	Audience         string    `json:"audience" bson:"audience"`
	Style            string    `json:"style,omitempty" bson:"style,omitempty"`
	Tone             string    `json:"tone,omitempty" bson:"tone,omitempty"`
	Moral            string    `json:"moral,omitempty" bson:"moral,omitempty"`
	Setting          string    `json:"setting,omitempty" bson:"setting,omitempty"`
	Language         string    `json:"language" bson:"language"`
	Characters       []string  `json:"characters" bson:"characters"`
	Chapters         []Chapter `json:"chapters" bson:"chapters"`
	CoverPrompt      string    `json:"cover_prompt" bson:"cover_prompt"`
	CoverImageSvg    string    `json:"cover_image_svg,omitempty" bson:"cover_image_svg,omitempty"`
	GeneratorVersion string    `json:"generator_version" bson:"generator_version"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}
