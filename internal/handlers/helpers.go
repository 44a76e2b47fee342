package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"starwars_api/internal/responses"
)

// internalError logs err with the request logger and answers 500 without leaking
// driver details to the client.
func internalError(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg(message)
	responses.Fail(c, http.StatusInternalServerError, nil, message)
}
