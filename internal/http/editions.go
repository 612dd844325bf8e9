package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quranreader/internal/entities"
)

type EditionInfo struct {
	ID       entities.Edition `json:"id"`
	Label    string           `json:"label"`
	Original bool             `json:"original"`
}

// ListEditions handles GET /api/editions
func ListEditions(c *gin.Context) {
	editions := entities.Editions()
	out := make([]EditionInfo, 0, len(editions))
	for _, e := range editions {
		out = append(out, EditionInfo{ID: e, Label: e.Label(), Original: e == entities.OriginalEdition})
	}
	c.JSON(http.StatusOK, out)
}
