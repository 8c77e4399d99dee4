package supa

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Error is a platform error carrying the HTTP status the API should
// answer with. The client wrappers produce these; handlers never build
// them by hand.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// RespondError translates an upstream error into exactly one JSON error
// response. Call sites must return immediately afterwards.
func RespondError(c *gin.Context, err error) {
	var pe *Error
	if errors.As(err, &pe) {
		status := pe.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": pe.Message})
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected upstream error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func upstreamErr(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Status: http.StatusBadRequest, Message: err.Error()}
}

func authErr(status int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Status: status, Message: err.Error()}
}
