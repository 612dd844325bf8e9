package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/readersession"
)

type SessionController struct {
	sessions       *readersession.Manager
	defaultEdition entities.Edition
}

func NewSessionController(sessions *readersession.Manager, defaultEdition entities.Edition) *SessionController {
	return &SessionController{sessions: sessions, defaultEdition: defaultEdition}
}

// GetSession handles GET /api/session
func (sc *SessionController) GetSession(c *gin.Context) {
	if sc.sessions == nil {
		c.JSON(http.StatusOK, readersession.Info{ReaderID: GetUserID(c), Edition: sc.defaultEdition})
		return
	}

	info := sc.sessions.Info(c.Request.Context())
	info.ReaderID = GetUserID(c)
	c.JSON(http.StatusOK, info)
}

type SetEditionRequest struct {
	Edition entities.Edition `json:"edition" binding:"required"`
}

// SetEdition handles PUT /api/session/edition
func (sc *SessionController) SetEdition(c *gin.Context) {
	var req SetEditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !req.Edition.Valid() {
		respondBadRequest(c, entities.ErrMsgInvalidEdition)
		return
	}
	if sc.sessions == nil {
		respondError(c, http.StatusConflict, "sessions are disabled")
		return
	}

	sc.sessions.SetEdition(c.Request.Context(), req.Edition)
	respondSuccess(c, "edition updated")
}
