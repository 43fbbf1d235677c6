package events

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/aevon-lab/ebs/internal/api/v1"
	httperr "github.com/aevon-lab/ebs/internal/core/errors"
	"github.com/aevon-lab/ebs/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgInvalidID      = "Event id must be a version 4 UUID"
	msgPersistFailed  = "Failed to persist event"
	msgLoadFailed     = "Failed to load event"
	msgDeleteFailed   = "Failed to delete event"
	msgDuplicateEvent = "Event already exists"
	msgEventNotFound  = "Event not found"
)

// eventError carries the structured HTTP error shape from a helper back to the handler.
type eventError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *eventError) Error() string {
	return e.message
}

// CreateHandler handles POST /v1/events.
func (s *Service) CreateHandler(c *gin.Context) {
	evt, payloadSize, err := s.parseEvent(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if verr := evt.Validate(); verr != nil {
		slog.Warn("[Events] Validation failed", "error", verr, "event_id", evt.ID)
		writeError(c, &eventError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    verr.Error(),
		})
		return
	}
	evt.Timestamp = evt.Timestamp.UTC()

	slog.Info("[Events] Received event",
		"event_id", evt.ID,
		"client", evt.Client,
		"payload_size", payloadSize)

	if err := s.persistEvent(c, evt); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, evt)
}

// GetHandler handles GET /v1/events/:event_id.
func (s *Service) GetHandler(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	evt, err := s.store.GetEvent(c.Request.Context(), id)
	if err != nil {
		writeError(c, storeError(err, id, msgLoadFailed))
		return
	}

	c.JSON(http.StatusOK, evt)
}

// DeleteHandler handles DELETE /v1/events/:event_id.
func (s *Service) DeleteHandler(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := s.store.DeleteEvent(c.Request.Context(), id); err != nil {
		writeError(c, storeError(err, id, msgDeleteFailed))
		return
	}

	slog.Info("[Events] Deleted event", "event_id", id)
	c.Status(http.StatusNoContent)
}

// parseEvent reads the size-limited request body and binds it into an Event.
func (s *Service) parseEvent(c *gin.Context) (*v1.Event, int, *eventError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("[Events] Failed to read request body", "error", err)
		return nil, 0, &eventError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Events] Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, len(bodyBytes), &eventError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var evt v1.Event
	if err := c.ShouldBindJSON(&evt); err != nil {
		slog.Warn("[Events] Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, len(bodyBytes), &eventError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
			details:    err.Error(),
		}
	}

	return &evt, len(bodyBytes), nil
}

func (s *Service) persistEvent(c *gin.Context, evt *v1.Event) *eventError {
	if err := s.store.SaveEvent(c.Request.Context(), evt); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("[Events] Duplicate event rejected", "event_id", evt.ID)
			return &eventError{
				statusCode: http.StatusConflict,
				errorType:  httperr.HttpDuplicateEventError,
				message:    msgDuplicateEvent,
			}
		}

		slog.Error("[Events] Failed to persist event", "error", err, "event_id", evt.ID)
		return &eventError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}
	return nil
}

// eventID extracts and validates the :event_id path parameter, writing a 400 when invalid.
func eventID(c *gin.Context) (string, bool) {
	id := c.Param("event_id")
	if !v1.IsValidID(id) {
		writeError(c, &eventError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidIDError,
			message:    msgInvalidID,
			details:    map[string]interface{}{"event_id": id},
		})
		return "", false
	}
	return id, true
}

func storeError(err error, id, failMsg string) *eventError {
	if errors.Is(err, storage.ErrNotFound) {
		return &eventError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpEventNotFoundError,
			message:    msgEventNotFound,
			details:    map[string]interface{}{"event_id": id},
		}
	}

	slog.Error("[Events] Store operation failed", "error", err, "event_id", id)
	return &eventError{
		statusCode: http.StatusInternalServerError,
		errorType:  httperr.HttpInternalError,
		message:    failMsg,
	}
}

// writeError serializes an eventError as the JSON HTTP response.
func writeError(c *gin.Context, err *eventError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
