package events

import (
	"github.com/aevon-lab/ebs/internal/core/storage"
	"github.com/gin-gonic/gin"
)

type Service struct {
	store            storage.EventStore
	maxBodySizeBytes int
}

func NewService(repo storage.EventStore, maxBodySizeMB int) *Service {
	if repo == nil {
		panic("events: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		store:            repo,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the event CRUD routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/events", s.CreateHandler)
	r.GET("/v1/events/:event_id", s.GetHandler)
	r.DELETE("/v1/events/:event_id", s.DeleteHandler)
}
