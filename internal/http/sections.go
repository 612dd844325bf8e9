package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quranreader/internal/sections"
)

// ListSections handles GET /api/sections
func ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, sections.All())
}

// GetSection handles GET /api/sections/:number
func GetSection(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		respondBadRequest(c, "invalid section number")
		return
	}

	section, ok := sections.ByNumber(n)
	if !ok {
		respondNotFound(c, "section")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"section":  section,
		"chapters": sections.ChaptersIn(n),
	})
}
