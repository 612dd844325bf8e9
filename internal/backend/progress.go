package backend

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quranreader/internal/entities"
)

type ProgressController struct {
	store ProgressStore
}

func NewProgressController(store ProgressStore) *ProgressController {
	return &ProgressController{store: store}
}

// List handles GET /progress/:userId
func (pc *ProgressController) List(c *gin.Context) {
	records, err := pc.store.ListByUser(c.Param("userId"))
	if err != nil {
		respondInternalError(c, err, "list progress")
		return
	}
	if records == nil {
		records = []entities.ProgressRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// Save handles POST /progress
func (pc *ProgressController) Save(c *gin.Context) {
	var req entities.SaveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if violations := entities.ValidateProgressRequest(req); len(violations) > 0 {
		respondError(c, http.StatusBadRequest, "validation failed", violations)
		return
	}

	record, err := pc.store.Upsert(req)
	if err != nil {
		respondInternalError(c, err, "save progress")
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /progress/:userId/:chapter/:edition
func (pc *ProgressController) Delete(c *gin.Context) {
	chapter, err := strconv.Atoi(c.Param("chapter"))
	if err != nil || !entities.ValidChapter(chapter) {
		respondError(c, http.StatusBadRequest, entities.ErrMsgInvalidChapter, nil)
		return
	}
	edition := entities.Edition(c.Param("edition"))
	if !edition.Valid() {
		respondError(c, http.StatusBadRequest, entities.ErrMsgInvalidEdition, nil)
		return
	}

	found, err := pc.store.Delete(c.Param("userId"), chapter, edition)
	if err != nil {
		respondInternalError(c, err, "delete progress")
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "progress not found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
