package backend

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quranreader/internal/entities"
)

type StatsController struct {
	store StatsStore
}

func NewStatsController(store StatsStore) *StatsController {
	return &StatsController{store: store}
}

// Get handles GET /stats/:userId
// A user without statistics gets a JSON null.
func (sc *StatsController) Get(c *gin.Context) {
	record, err := sc.store.Get(c.Param("userId"))
	if err != nil {
		respondInternalError(c, err, "get stats")
		return
	}
	if record == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte("null"))
		return
	}
	c.JSON(http.StatusOK, record)
}

// Update handles POST /stats
// Only the fields present in the body change.
func (sc *StatsController) Update(c *gin.Context) {
	var req entities.UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	for _, v := range []*int{req.TotalSurahsRead, req.TotalVersesRead, req.ReadingStreak} {
		if v != nil && *v < 0 {
			respondError(c, http.StatusBadRequest, "statistics cannot be negative", nil)
			return
		}
	}

	record, err := sc.store.Apply(req)
	if err != nil {
		respondInternalError(c, err, "update stats")
		return
	}
	c.JSON(http.StatusOK, record)
}
