package readersession

import (
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mrlokans/quranreader/internal/entities"
)

// Context keys set by Identify.
const (
	ContextKeyReaderID = "reader_id"
	HeaderReaderID     = "X-Reader-ID"
)

// sessionResponseWriter commits the session and writes its cookie right
// before the response headers go out.
type sessionResponseWriter struct {
	gin.ResponseWriter
	m             *Manager
	request       *http.Request
	wroteHeader   bool
	cookieWritten bool
}

func (w *sessionResponseWriter) WriteHeader(code int) {
	w.beforeHeader()
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionResponseWriter) WriteHeaderNow() {
	w.beforeHeader()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *sessionResponseWriter) Write(b []byte) (int, error) {
	w.beforeHeader()
	return w.ResponseWriter.Write(b)
}

func (w *sessionResponseWriter) WriteString(s string) (int, error) {
	w.beforeHeader()
	return w.ResponseWriter.WriteString(s)
}

func (w *sessionResponseWriter) beforeHeader() {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.writeSessionCookie()
	}
}

func (w *sessionResponseWriter) writeSessionCookie() {
	if w.cookieWritten {
		return
	}
	w.cookieWritten = true

	ctx := w.request.Context()
	switch w.m.Status(ctx) {
	case scs.Modified:
		token, expiry, err := w.m.Commit(ctx)
		if err != nil {
			return
		}
		w.m.WriteSessionCookie(ctx, w.ResponseWriter, token, expiry)
	case scs.Destroyed:
		w.m.WriteSessionCookie(ctx, w.ResponseWriter, "", time.Time{})
	}
}

// LoadSave loads the session into the request context and saves it once the
// handler starts writing. It must run before Identify.
func (m *Manager) LoadSave() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if cookie, err := c.Request.Cookie(m.Cookie.Name); err == nil {
			token = cookie.Value
		}

		ctx, err := m.Load(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Request = c.Request.WithContext(ctx)

		srw := &sessionResponseWriter{
			ResponseWriter: c.Writer,
			m:              m,
			request:        c.Request,
		}
		c.Writer = srw

		c.Next()

		if !srw.wroteHeader {
			srw.writeSessionCookie()
		}
	}
}

// Identify resolves the reader for the request and stores the ID in the gin
// context under ContextKeyReaderID.
func (m *Manager) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(HeaderReaderID)); id != "" {
			c.Set(ContextKeyReaderID, id)
			c.Next()
			return
		}
		c.Set(ContextKeyReaderID, m.EnsureReader(c.Request.Context()))
		c.Next()
	}
}

// StaticReader is the Identify replacement used when sessions are disabled:
// every request without the X-Reader-ID header acts as readerID.
func StaticReader(readerID string) gin.HandlerFunc {
	if readerID == "" {
		readerID = uuid.NewString()
	}
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(HeaderReaderID)); id != "" {
			c.Set(ContextKeyReaderID, id)
		} else {
			c.Set(ContextKeyReaderID, readerID)
		}
		c.Next()
	}
}

// GetReaderID extracts the reader's ID from the gin context.
func GetReaderID(c *gin.Context) string {
	return c.GetString(ContextKeyReaderID)
}

// EditionFrom returns the session's preferred edition, or the fallback when
// the request carries no session.
func (m *Manager) EditionFrom(c *gin.Context, fallback entities.Edition) entities.Edition {
	if m == nil {
		return fallback
	}
	return m.Edition(c.Request.Context())
}
