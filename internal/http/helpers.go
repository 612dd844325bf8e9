package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/readersession"
)

// GetUserID extracts the reader's ID from the gin context.
func GetUserID(c *gin.Context) string {
	return readersession.GetReaderID(c)
}

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // validation errors and similar
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error codes
const (
	CodeValidation = "validation_failed"
	CodeUpstream   = "upstream_unavailable"
)

// --- Error Response Helpers ---

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondValidation sends a 400 listing every violated rule.
func respondValidation(c *gin.Context, details []string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid request",
		Code:    CodeValidation,
		Details: details,
	})
}

func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 without exposing it.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondUpstreamError logs the error and sends a 502 for failures of the
// text provider or the progress backend.
func respondUpstreamError(c *gin.Context, err error, context string) {
	log.Printf("Upstream error (%s): %v", context, err)
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: context + " unavailable", Code: CodeUpstream})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// --- Success Response Helpers ---

func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondAccepted sends a 202 Accepted response (for async operations).
func respondAccepted(c *gin.Context, message string, data any) {
	c.JSON(http.StatusAccepted, SuccessResponse{Message: message, Data: data})
}

// --- Parameter Parsing ---

// parseChapterParam extracts a chapter number in [1, 114] from the URL.
// On failure it responds with 400 and returns false.
func parseChapterParam(c *gin.Context, paramName string) (int, bool) {
	n, err := strconv.Atoi(c.Param(paramName))
	if err != nil || !entities.ValidChapter(n) {
		respondBadRequest(c, entities.ErrMsgInvalidChapter)
		return 0, false
	}
	return n, true
}

// parseEditionParam extracts a supported edition from the URL.
func parseEditionParam(c *gin.Context, paramName string) (entities.Edition, bool) {
	edition := entities.Edition(c.Param(paramName))
	if !edition.Valid() {
		respondBadRequest(c, entities.ErrMsgInvalidEdition)
		return "", false
	}
	return edition, true
}

// parseOptionalInt reads an integer query parameter, returning def when it is
// absent.
func parseOptionalInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return n, true
}
