package http

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/progress"
	"github.com/mrlokans/quranreader/internal/report"
	"github.com/mrlokans/quranreader/internal/stats"
)

// maxImportSize bounds the body of an import request.
const maxImportSize = 5 << 20

type ProgressController struct {
	store    ProgressStore
	transfer Transferer
	chapters ChapterSource
	now      func() time.Time
}

func NewProgressController(store ProgressStore, transfer Transferer, chapters ChapterSource) *ProgressController {
	return &ProgressController{
		store:    store,
		transfer: transfer,
		chapters: chapters,
		now:      time.Now,
	}
}

// ProgressBody is the write payload; the user comes from the session.
type ProgressBody struct {
	ChapterNumber int              `json:"chapterNumber"`
	EditionID     entities.Edition `json:"editionId"`
	CurrentPage   int              `json:"currentPage"`
	TotalPages    int              `json:"totalPages"`
}

// ProgressDetail is a record with its completion percentage.
type ProgressDetail struct {
	progress.TrackedRecord
	Percentage int `json:"percentage"`
}

func detail(tracked progress.TrackedRecord) ProgressDetail {
	return ProgressDetail{
		TrackedRecord: tracked,
		Percentage:    stats.ProgressPercentage(tracked.CurrentPage, tracked.TotalPages),
	}
}

// ListProgress handles GET /api/progress
func (pc *ProgressController) ListProgress(c *gin.Context) {
	records := pc.store.LoadProgress(c.Request.Context(), GetUserID(c))

	out := make([]ProgressDetail, 0, len(records))
	for _, r := range records {
		out = append(out, detail(r))
	}
	c.JSON(http.StatusOK, out)
}

// GetProgress handles GET /api/progress/:number/:edition
func (pc *ProgressController) GetProgress(c *gin.Context) {
	chapter, ok := parseChapterParam(c, "number")
	if !ok {
		return
	}
	edition, ok := parseEditionParam(c, "edition")
	if !ok {
		return
	}

	record, found := pc.store.GetProgress(c.Request.Context(), GetUserID(c), chapter, edition)
	if !found {
		respondNotFound(c, "progress")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"progress":   record,
		"percentage": stats.ProgressPercentage(record.CurrentPage, record.TotalPages),
	})
}

// SaveProgress handles POST /api/progress
func (pc *ProgressController) SaveProgress(c *gin.Context) {
	var body ProgressBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	req := entities.SaveProgressRequest{
		UserID:        GetUserID(c),
		ChapterNumber: body.ChapterNumber,
		EditionID:     body.EditionID,
		CurrentPage:   body.CurrentPage,
		TotalPages:    body.TotalPages,
	}
	if violations := entities.ValidateProgressRequest(req); len(violations) > 0 {
		respondValidation(c, violations)
		return
	}

	c.JSON(http.StatusOK, detail(pc.store.SaveProgress(c.Request.Context(), req)))
}

// DeleteProgress handles DELETE /api/progress/:number/:edition
func (pc *ProgressController) DeleteProgress(c *gin.Context) {
	chapter, ok := parseChapterParam(c, "number")
	if !ok {
		return
	}
	edition, ok := parseEditionParam(c, "edition")
	if !ok {
		return
	}

	pc.store.DeleteProgress(c.Request.Context(), GetUserID(c), chapter, edition)
	c.Status(http.StatusNoContent)
}

// Export handles GET /api/progress/export
func (pc *ProgressController) Export(c *gin.Context) {
	doc, err := pc.transfer.Export(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "export progress")
		return
	}

	filename := fmt.Sprintf("quran-progress-%s.json", pc.now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

// Import handles POST /api/progress/import
// The body is an exported document; records are stored under its userId.
func (pc *ProgressController) Import(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize+1))
	if err != nil {
		respondBadRequest(c, "failed to read request body")
		return
	}
	if len(body) > maxImportSize {
		respondError(c, http.StatusRequestEntityTooLarge, "import document too large")
		return
	}

	result := pc.transfer.Import(string(body))
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Report handles GET /api/progress/report.xlsx
func (pc *ProgressController) Report(c *gin.Context) {
	userID := GetUserID(c)
	tracked := pc.store.LoadProgress(c.Request.Context(), userID)

	records := make([]entities.ProgressRecord, 0, len(tracked))
	for _, t := range tracked {
		records = append(records, t.ProgressRecord)
	}

	names := make(map[int]string)
	if pc.chapters != nil {
		chapters, err := pc.chapters.GetSurahList(c.Request.Context())
		if err != nil {
			log.Printf("Report: chapter names unavailable: %v", err)
		}
		for _, ch := range chapters {
			names[ch.Number] = ch.EnglishName
		}
	}

	now := pc.now()
	var buf bytes.Buffer
	err := report.Write(&buf, report.Input{
		UserID:       userID,
		Records:      records,
		ChapterNames: names,
		Now:          now,
	})
	if err != nil {
		respondInternalError(c, err, "build report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.Filename(now)))
	c.Data(http.StatusOK, report.ContentType, buf.Bytes())
}
