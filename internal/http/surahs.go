package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/quran"
	"github.com/mrlokans/quranreader/internal/reader"
	"github.com/mrlokans/quranreader/internal/readersession"
	"github.com/mrlokans/quranreader/internal/sections"
)

type SurahsController struct {
	chapters       ChapterSource
	reader         ReaderService
	sessions       *readersession.Manager
	defaultEdition entities.Edition
}

func NewSurahsController(chapters ChapterSource, reader ReaderService, sessions *readersession.Manager) *SurahsController {
	return &SurahsController{
		chapters:       chapters,
		reader:         reader,
		sessions:       sessions,
		defaultEdition: entities.EditionEnglishAsad,
	}
}

// SetDefaultEdition changes the edition used when neither the request nor
// the session names one.
func (sc *SurahsController) SetDefaultEdition(edition entities.Edition) {
	if edition.Valid() {
		sc.defaultEdition = edition
	}
}

// SurahDetail is a chapter with the section it starts in.
type SurahDetail struct {
	entities.Chapter
	Section *sections.Section `json:"section,omitempty"`
}

// ListSurahs handles GET /api/surahs
// Optional ?revelation=Meccan|Medinan narrows the list.
func (sc *SurahsController) ListSurahs(c *gin.Context) {
	revelation := entities.RevelationType(c.Query("revelation"))
	if revelation != "" && revelation != entities.RevelationMeccan && revelation != entities.RevelationMedinan {
		respondBadRequest(c, "invalid revelation type")
		return
	}

	chapters, err := sc.chapters.GetSurahList(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err, "surah list")
		return
	}
	if revelation != "" {
		chapters = quran.FilterByRevelation(chapters, revelation)
	}

	c.JSON(http.StatusOK, chapters)
}

// GetSurah handles GET /api/surahs/:number
func (sc *SurahsController) GetSurah(c *gin.Context) {
	number, ok := parseChapterParam(c, "number")
	if !ok {
		return
	}

	chapter, err := sc.chapters.GetSurahInfo(c.Request.Context(), number)
	if errors.Is(err, quran.ErrChapterNotFound) {
		respondNotFound(c, "surah")
		return
	}
	if err != nil {
		respondUpstreamError(c, err, "surah")
		return
	}

	detail := SurahDetail{Chapter: *chapter}
	if section, ok := sections.ForChapter(number); ok {
		detail.Section = &section
	}
	c.JSON(http.StatusOK, detail)
}

// edition picks the edition from the query, then the session, then the default.
func (sc *SurahsController) edition(c *gin.Context) (entities.Edition, bool) {
	if raw := c.Query("edition"); raw != "" {
		edition := entities.Edition(raw)
		if !edition.Valid() {
			respondBadRequest(c, entities.ErrMsgInvalidEdition)
			return "", false
		}
		return edition, true
	}
	return sc.sessions.EditionFrom(c, sc.defaultEdition), true
}

// Read handles GET /api/surahs/:number/read?edition=&page=
// Without page the reader resumes at the saved position.
func (sc *SurahsController) Read(c *gin.Context) {
	number, ok := parseChapterParam(c, "number")
	if !ok {
		return
	}
	edition, ok := sc.edition(c)
	if !ok {
		return
	}
	page, ok := parseOptionalInt(c, "page", 0)
	if !ok {
		return
	}

	view, err := sc.reader.Open(c.Request.Context(), GetUserID(c), number, edition, page)
	if err != nil {
		sc.respondReaderError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PageChangeRequest is the body of a page change.
type PageChangeRequest struct {
	Edition entities.Edition `json:"edition"`
	Page    int              `json:"page" binding:"required"`
}

// ChangePage handles POST /api/surahs/:number/page
func (sc *SurahsController) ChangePage(c *gin.Context) {
	number, ok := parseChapterParam(c, "number")
	if !ok {
		return
	}

	var req PageChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.Edition == "" {
		req.Edition = sc.sessions.EditionFrom(c, sc.defaultEdition)
	}

	record, err := sc.reader.ChangePage(c.Request.Context(), GetUserID(c), number, req.Edition, req.Page)
	if err != nil {
		sc.respondReaderError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (sc *SurahsController) respondReaderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reader.ErrInvalidChapter):
		respondBadRequest(c, entities.ErrMsgInvalidChapter)
	case errors.Is(err, reader.ErrInvalidEdition):
		respondBadRequest(c, entities.ErrMsgInvalidEdition)
	case errors.Is(err, reader.ErrPageOutOfRange):
		respondBadRequest(c, entities.ErrMsgInvalidPage)
	case errors.Is(err, quran.ErrChapterNotFound):
		respondNotFound(c, "surah")
	default:
		respondUpstreamError(c, err, "surah text")
	}
}
