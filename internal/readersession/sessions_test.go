package readersession

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quranreader/internal/config"
	"github.com/mrlokans/quranreader/internal/database"
	"github.com/mrlokans/quranreader/internal/entities"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()

	db, err := database.NewQuietDatabase(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)

	m, err := NewManager(sqlDB, config.Session{
		Lifetime:       time.Hour,
		CookieName:     "reader_session",
		DefaultEdition: "ur.jalandhry",
	})
	require.NoError(t, err)
	return m
}

func setupRouter(m *Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.LoadSave(), m.Identify())
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"reader":  GetReaderID(c),
			"edition": m.Edition(c.Request.Context()),
		})
	})
	router.PUT("/edition/:edition", func(c *gin.Context) {
		m.SetEdition(c.Request.Context(), entities.Edition(c.Param("edition")))
		c.Status(http.StatusNoContent)
	})
	return router
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == "reader_session" {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestNewManager(t *testing.T) {
	m := setupManager(t)

	assert.Equal(t, "reader_session", m.Cookie.Name)
	assert.True(t, m.Cookie.HttpOnly)
	assert.True(t, m.Cookie.Persist)
	assert.Equal(t, http.SameSiteLaxMode, m.Cookie.SameSite)
	assert.Equal(t, time.Hour, m.Lifetime)
}

func TestIdentify_AssignsAndKeepsReaderID(t *testing.T) {
	m := setupManager(t)
	m.newID = func() string { return "reader-1" }
	router := setupRouter(m)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"reader":"reader-1"`)
	cookie := sessionCookie(t, rr)

	m.newID = func() string { return "reader-2" }
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookie)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Contains(t, rr.Body.String(), `"reader":"reader-1"`)
}

func TestIdentify_HeaderOverridesSession(t *testing.T) {
	m := setupManager(t)
	router := setupRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(HeaderReaderID, "api-client")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Contains(t, rr.Body.String(), `"reader":"api-client"`)
}

func TestEdition_DefaultAndUpdate(t *testing.T) {
	m := setupManager(t)
	router := setupRouter(m)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Contains(t, rr.Body.String(), `"edition":"ur.jalandhry"`)
	cookie := sessionCookie(t, rr)

	req := httptest.NewRequest(http.MethodPut, "/edition/en.asad", nil)
	req.AddCookie(cookie)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookie)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Contains(t, rr.Body.String(), `"edition":"en.asad"`)
}

func TestInfo(t *testing.T) {
	m := setupManager(t)

	rr := httptest.NewRecorder()
	handler := m.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := m.Info(r.Context())
		assert.Empty(t, info.ReaderID)
		assert.Nil(t, info.StartedAt)

		id := m.EnsureReader(r.Context())
		info = m.Info(r.Context())
		assert.Equal(t, id, info.ReaderID)
		assert.Equal(t, entities.EditionUrduJalandhry, info.Edition)
		assert.NotNil(t, info.StartedAt)

		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestStaticReader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(StaticReader("local"))
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, GetReaderID(c))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, "local", rr.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(HeaderReaderID, "other")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "other", rr.Body.String())
}

func TestEditionFrom_NilManager(t *testing.T) {
	var m *Manager
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, entities.EditionEnglishAsad, m.EditionFrom(c, entities.EditionEnglishAsad))
}
