package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/progress"
	"github.com/mrlokans/quranreader/internal/quran"
	"github.com/mrlokans/quranreader/internal/reader"
	"github.com/mrlokans/quranreader/internal/report"
	"github.com/mrlokans/quranreader/internal/stats"
	"github.com/mrlokans/quranreader/internal/storage"
	"github.com/mrlokans/quranreader/internal/transfer"
)

var testChapters = []entities.Chapter{
	{Number: 1, EnglishName: "Al-Faatiha", NumberOfAyahs: 7, RevelationType: entities.RevelationMeccan},
	{Number: 2, EnglishName: "Al-Baqara", NumberOfAyahs: 286, RevelationType: entities.RevelationMedinan},
	{Number: 3, EnglishName: "Aal-i-Imraan", NumberOfAyahs: 200, RevelationType: entities.RevelationMedinan},
}

// fakeText serves testChapters with generated verse text.
type fakeText struct {
	err error
}

func (f *fakeText) GetSurahList(context.Context) ([]entities.Chapter, error) {
	if f.err != nil {
		return nil, f.err
	}
	return testChapters, nil
}

func (f *fakeText) GetSurahInfo(_ context.Context, number int) (*entities.Chapter, error) {
	if f.err != nil {
		return nil, f.err
	}
	chapter, ok := quran.FindChapter(testChapters, number)
	if !ok {
		return nil, quran.ErrChapterNotFound
	}
	return &chapter, nil
}

func (f *fakeText) GetSurah(ctx context.Context, number int, edition entities.Edition) (*entities.SurahData, error) {
	chapter, err := f.GetSurahInfo(ctx, number)
	if err != nil {
		return nil, err
	}
	surah := &entities.SurahData{Chapter: *chapter}
	for i := 1; i <= chapter.NumberOfAyahs; i++ {
		surah.Ayahs = append(surah.Ayahs, entities.Ayah{NumberInSurah: i, Text: fmt.Sprintf("%s %d:%d", edition, number, i)})
	}
	return surah, nil
}

// offlineRemote fails every call so progress lives in the local tier.
type offlineRemote struct{}

func (offlineRemote) GetProgress(context.Context, string) ([]entities.ProgressRecord, error) {
	return nil, errors.New("offline")
}

func (offlineRemote) SaveProgress(context.Context, entities.SaveProgressRequest) (*entities.ProgressRecord, error) {
	return nil, errors.New("offline")
}

func (offlineRemote) DeleteProgress(context.Context, string, int, entities.Edition) error {
	return errors.New("offline")
}

type fakeUpdater struct {
	requests []entities.UpdateStatsRequest
	err      error
}

func (u *fakeUpdater) UpdateStats(_ context.Context, req entities.UpdateStatsRequest) (*entities.StatsRecord, error) {
	if u.err != nil {
		return nil, u.err
	}
	u.requests = append(u.requests, req)
	return &entities.StatsRecord{ID: "s1", UserID: req.UserID, TotalSurahsRead: *req.TotalSurahsRead}, nil
}

type fakeEnqueuer struct {
	users []string
}

func (f *fakeEnqueuer) EnqueuePushStats(_ time.Duration, userIDs ...string) ([]string, error) {
	f.users = append(f.users, userIDs...)
	return []string{"task-1"}, nil
}

type testServer struct {
	router  *gin.Engine
	text    *fakeText
	repo    *progress.Repository
	updater *fakeUpdater
}

func newTestServer(t *testing.T, mutate func(*RouterConfig)) *testServer {
	t.Helper()

	text := &fakeText{}
	local := progress.NewLocalStore(storage.NewMemoryAdapter())
	repo := progress.NewRepository(offlineRemote{}, local)
	updater := &fakeUpdater{}

	cfg := RouterConfig{
		Chapters:       text,
		Reader:         reader.NewService(text, repo),
		Progress:       repo,
		Transfer:       transfer.NewExporter(local),
		Pusher:         stats.NewPusher(local, updater),
		StaticReaderID: "reader-1",
		Version:        "test",
	}
	if mutate != nil {
		mutate(&cfg)
	}

	return &testServer{router: NewRouter(cfg), text: text, repo: repo, updater: updater}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Reader
	switch b := body.(type) {
	case nil:
		payload = bytes.NewReader(nil)
	case string:
		payload = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRouter_Editions(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/api/editions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	editions := decode[[]EditionInfo](t, w)
	require.Len(t, editions, 3)
	assert.True(t, editions[0].Original)
	assert.Equal(t, entities.EditionUthmani, editions[0].ID)
}

func TestRouter_Surahs(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/api/surahs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entities.Chapter](t, w), 3)

	w = s.do(t, http.MethodGet, "/api/surahs?revelation=Medinan", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entities.Chapter](t, w), 2)

	w = s.do(t, http.MethodGet, "/api/surahs?revelation=Other", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/surahs/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[SurahDetail](t, w)
	assert.Equal(t, "Al-Baqara", detail.EnglishName)
	require.NotNil(t, detail.Section)
	assert.Equal(t, 1, detail.Section.Number)

	w = s.do(t, http.MethodGet, "/api/surahs/50", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/surahs/115", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.text.err = errors.New("provider down")
	w = s.do(t, http.MethodGet, "/api/surahs", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRouter_ReadAndChangePage(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/api/surahs/2/read?edition=en.asad&page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[reader.View](t, w)
	assert.Equal(t, 2, view.CurrentPage)
	assert.Equal(t, 29, view.TotalPages)
	require.Len(t, view.Verses, 10)
	assert.Equal(t, "quran-uthmani 2:11", view.Verses[0].Text)
	assert.Equal(t, "en.asad 2:11", view.Verses[0].Translation)

	w = s.do(t, http.MethodPost, "/api/surahs/2/page", PageChangeRequest{Edition: entities.EditionEnglishAsad, Page: 5})
	require.Equal(t, http.StatusOK, w.Code)
	saved := decode[progress.TrackedRecord](t, w)
	assert.Equal(t, 5, saved.CurrentPage)
	assert.Equal(t, 29, saved.TotalPages)
	assert.Equal(t, "reader-1", saved.UserID)

	w = s.do(t, http.MethodGet, "/api/surahs/2/read?edition=en.asad", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view = decode[reader.View](t, w)
	assert.Equal(t, 5, view.CurrentPage)
	assert.Equal(t, 17, view.Percentage)

	w = s.do(t, http.MethodPost, "/api/surahs/2/page", PageChangeRequest{Edition: entities.EditionEnglishAsad, Page: 30})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/surahs/2/read?edition=xx", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/surahs/2/read?page=two", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Sections(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/api/sections", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 30)

	w = s.do(t, http.MethodGet, "/api/sections/30", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Chapters []int `json:"chapters"`
	}](t, w)
	assert.Len(t, body.Chapters, 37)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/sections/31", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/sections/x", nil).Code)
}

func TestRouter_ProgressCRUD(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/api/progress", ProgressBody{
		ChapterNumber: 2, EditionID: entities.EditionEnglishAsad, CurrentPage: 3, TotalPages: 29,
	})
	require.Equal(t, http.StatusOK, w.Code)
	saved := decode[ProgressDetail](t, w)
	assert.Equal(t, entities.SyncStateLocalOnly, saved.State)
	assert.Equal(t, 10, saved.Percentage)

	w = s.do(t, http.MethodGet, "/api/progress", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]ProgressDetail](t, w), 1)

	w = s.do(t, http.MethodGet, "/api/progress/2/en.asad", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"percentage":10`)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/progress/3/en.asad", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/progress/2/xx", nil).Code)

	w = s.do(t, http.MethodDelete, "/api/progress/2/en.asad", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/progress/2/en.asad", nil).Code)
}

func TestRouter_SaveProgressValidation(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/api/progress", ProgressBody{
		ChapterNumber: 115, EditionID: "fr", CurrentPage: 9, TotalPages: 0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, CodeValidation, resp.Code)
	assert.ElementsMatch(t, []any{
		entities.ErrMsgInvalidChapter,
		entities.ErrMsgInvalidEdition,
		entities.ErrMsgInvalidTotalPages,
	}, resp.Details)

	w = s.do(t, http.MethodPost, "/api/progress", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, s.repo.Session("reader-1"))
}

func TestRouter_ReaderHeaderIsolatesUsers(t *testing.T) {
	s := newTestServer(t, nil)

	s.do(t, http.MethodPost, "/api/progress", ProgressBody{
		ChapterNumber: 1, EditionID: entities.EditionUthmani, CurrentPage: 1, TotalPages: 1,
	}, "X-Reader-ID", "other")

	assert.Len(t, decode[[]ProgressDetail](t, s.do(t, http.MethodGet, "/api/progress", nil, "X-Reader-ID", "other")), 1)
	assert.Empty(t, decode[[]ProgressDetail](t, s.do(t, http.MethodGet, "/api/progress", nil)))
}

func TestRouter_ExportImport(t *testing.T) {
	s := newTestServer(t, nil)

	s.do(t, http.MethodPost, "/api/progress", ProgressBody{
		ChapterNumber: 2, EditionID: entities.EditionEnglishAsad, CurrentPage: 3, TotalPages: 29,
	})

	w := s.do(t, http.MethodGet, "/api/progress/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "quran-progress-")
	doc := decode[transfer.Document](t, w)
	assert.Equal(t, "reader-1", doc.UserID)
	require.Len(t, doc.Progress, 1)

	doc.UserID = "restored"
	w = s.do(t, http.MethodPost, "/api/progress/import", doc)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[transfer.Result](t, w).Success)

	restored := decode[[]ProgressDetail](t, s.do(t, http.MethodGet, "/api/progress", nil, "X-Reader-ID", "restored"))
	require.Len(t, restored, 1)
	assert.Equal(t, 3, restored[0].CurrentPage)

	w = s.do(t, http.MethodPost, "/api/progress/import", "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, transfer.ErrMsgInvalidJSON, decode[transfer.Result](t, w).Error)

	w = s.do(t, http.MethodPost, "/api/progress/import", `{"progress":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, transfer.ErrMsgInvalidFormat, decode[transfer.Result](t, w).Error)
}

func TestRouter_Report(t *testing.T) {
	s := newTestServer(t, nil)
	s.do(t, http.MethodPost, "/api/progress", ProgressBody{
		ChapterNumber: 2, EditionID: entities.EditionEnglishAsad, CurrentPage: 3, TotalPages: 29,
	})

	w := s.do(t, http.MethodGet, "/api/progress/report.xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.ContentType, w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"), "xlsx is a zip archive")
}

func TestRouter_Stats(t *testing.T) {
	s := newTestServer(t, nil)
	s.do(t, http.MethodPost, "/api/progress", ProgressBody{
		ChapterNumber: 1, EditionID: entities.EditionUthmani, CurrentPage: 1, TotalPages: 1,
	})

	w := s.do(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[StatsResponse](t, w)
	assert.Equal(t, 1, resp.TotalSurahsRead)
	assert.Equal(t, 10, resp.TotalVersesRead)
	assert.Equal(t, 1, resp.ReadingStreak)
	require.NotNil(t, resp.NextMilestone)
	assert.Equal(t, 7, *resp.NextMilestone)

	w = s.do(t, http.MethodPost, "/api/stats/push", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, s.updater.requests, 1)
	assert.Equal(t, "reader-1", s.updater.requests[0].UserID)

	s.updater.err = errors.New("backend down")
	w = s.do(t, http.MethodPost, "/api/stats/push", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRouter_StatsPushQueued(t *testing.T) {
	enqueuer := &fakeEnqueuer{}
	s := newTestServer(t, func(cfg *RouterConfig) { cfg.Enqueuer = enqueuer })

	w := s.do(t, http.MethodPost, "/api/stats/push", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []string{"reader-1"}, enqueuer.users)
	assert.Empty(t, s.updater.requests)
}

func TestRouter_SessionWithoutManager(t *testing.T) {
	s := newTestServer(t, func(cfg *RouterConfig) { cfg.DefaultEdition = entities.EditionUrduJalandhry })

	w := s.do(t, http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"readerId":"reader-1","edition":"ur.jalandhry"}`, w.Body.String())

	w = s.do(t, http.MethodPut, "/api/session/edition", SetEditionRequest{Edition: entities.EditionEnglishAsad})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPut, "/api/session/edition", SetEditionRequest{Edition: "xx"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/surahs/1/read", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entities.EditionUrduJalandhry, decode[reader.View](t, w).Edition)
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t, nil)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/ping", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/tasks/abc", nil).Code)
}
