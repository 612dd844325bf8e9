package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/quranreader/internal/entities"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseChapterParam(t *testing.T) {
	tests := []struct {
		value string
		want  int
		ok    bool
	}{
		{"1", 1, true},
		{"114", 114, true},
		{"0", 0, false},
		{"115", 0, false},
		{"abc", 0, false},
		{"-1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "number", Value: tt.value}}

			got, ok := parseChapterParam(c, "number")

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if !tt.ok {
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, w.Body.String(), entities.ErrMsgInvalidChapter)
			}
		})
	}
}

func TestParseEditionParam(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "edition", Value: "en.asad"}}

	edition, ok := parseEditionParam(c, "edition")
	assert.True(t, ok)
	assert.Equal(t, entities.EditionEnglishAsad, edition)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "edition", Value: "fr.hamidullah"}}

	_, ok = parseEditionParam(c, "edition")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), entities.ErrMsgInvalidEdition)
}

func TestParseOptionalInt(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	n, ok := parseOptionalInt(c, "page", 0)
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	c.Request = httptest.NewRequest(http.MethodGet, "/?page=7", nil)
	n, ok = parseOptionalInt(c, "page", 0)
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	c.Request = httptest.NewRequest(http.MethodGet, "/?page=x", nil)
	_, ok = parseOptionalInt(c, "page", 0)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondValidation(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondValidation(c, []string{entities.ErrMsgInvalidPage})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request","code":"validation_failed","details":["invalid page number"]}`, w.Body.String())
}

func TestRespondUpstreamError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondUpstreamError(c, assert.AnError, "surah list")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "surah list unavailable")
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
