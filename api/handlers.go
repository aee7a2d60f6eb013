package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"storybook/core"
	"storybook/lib/sl"
	"storybook/storage"
	"storybook/story"

	"github.com/gin-gonic/gin"
)

const rootMessage = "AI Storybook Generator API is running"

type generateResponse struct {
	SystemPrompt string      `json:"system_prompt"`
	Story        story.Story `json:"story"`
	ID           *string     `json:"id"`
	SaveError    string      `json:"save_error,omitempty"`
}

type listResponse struct {
	Items []storage.Document `json:"items"`
}

type diagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

func (s *Server) systemPrompt(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"system_prompt": core.SystemPrompt})
}

func (s *Server) generate(c *gin.Context) {
	req := story.NewRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		badRequest(c, "title must not be blank")
		return
	}

	gen := s.service.Generate(req)
	resp := generateResponse{
		SystemPrompt: core.SystemPrompt,
		Story:        gen.Story,
	}
	if gen.ID != "" {
		resp.ID = &gen.ID
	}
	if gen.SaveError != nil {
		s.log.With(
			slog.String("title", gen.Story.Title),
			slog.String("request_id", c.GetString(requestIDKey)),
		).Error("story generated but not saved", sl.Err(gen.SaveError))
		resp.SaveError = gen.SaveError.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) listStories(c *gin.Context) {
	limit := s.conf.Stories.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > s.conf.Stories.MaxLimit {
			badRequest(c, "limit must be an integer between 1 and "+strconv.Itoa(s.conf.Stories.MaxLimit))
			return
		}
		limit = n
	}

	docs, err := s.service.Recent(limit)
	if err != nil {
		s.log.Error("listing stories", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "stories are not available"})
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: docs})
}

func (s *Server) diagnostics(c *gin.Context) {
	d := s.service.Diagnostics()
	resp := diagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "✅ Connected & Working",
		DatabaseName:     d.Storage,
		ConnectionStatus: "Connected",
		Collections:      d.Collections,
	}
	if !d.Connected {
		resp.ConnectionStatus = "Not Connected"
		resp.Database = "❌ Not Available"
		if d.Err != nil {
			resp.Database = "⚠️ Connected but Error: " + truncate(d.Err.Error(), 50)
		}
	}
	if resp.Collections == nil {
		resp.Collections = []string{}
	}
	c.JSON(http.StatusOK, resp)
}

func badRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": detail})
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
