package readersession

import (
	"context"
	"database/sql"
	"encoding/gob"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"

	"github.com/mrlokans/quranreader/internal/config"
	"github.com/mrlokans/quranreader/internal/entities"
)

// Session data keys
const (
	SessionKeyReaderID  = "reader_id"
	SessionKeyEdition   = "edition"
	SessionKeyStartedAt = "started_at"
)

func init() {
	gob.Register(time.Time{})
}

const createSessionsTable = `CREATE TABLE IF NOT EXISTS sessions (
	token TEXT PRIMARY KEY,
	data BLOB NOT NULL,
	expiry REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`

// Manager wraps scs.SessionManager with reader-specific accessors.
type Manager struct {
	*scs.SessionManager
	defaultEdition entities.Edition
	newID          func() string
}

// NewManager creates the sessions table if needed and configures cookies.
// The sqlDB parameter should be the underlying *sql.DB from GORM.
func NewManager(sqlDB *sql.DB, cfg config.Session) (*Manager, error) {
	if _, err := sqlDB.Exec(createSessionsTable); err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Lifetime = cfg.Lifetime
	if cfg.CookieName != "" {
		sm.Cookie.Name = cfg.CookieName
	}
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"
	sm.Cookie.Persist = true

	edition := entities.Edition(cfg.DefaultEdition)
	if !edition.Valid() {
		edition = entities.EditionEnglishAsad
	}

	return &Manager{
		SessionManager: sm,
		defaultEdition: edition,
		newID:          uuid.NewString,
	}, nil
}

// EnsureReader returns the reader ID stored in the session, assigning a new
// one on first use.
func (m *Manager) EnsureReader(ctx context.Context) string {
	if id := m.GetString(ctx, SessionKeyReaderID); id != "" {
		return id
	}

	id := m.newID()
	m.Put(ctx, SessionKeyReaderID, id)
	m.Put(ctx, SessionKeyStartedAt, time.Now())
	return id
}

// ReaderID returns the session's reader ID or "" when none was assigned.
func (m *Manager) ReaderID(ctx context.Context) string {
	return m.GetString(ctx, SessionKeyReaderID)
}

// Edition returns the reader's preferred edition.
func (m *Manager) Edition(ctx context.Context) entities.Edition {
	edition := entities.Edition(m.GetString(ctx, SessionKeyEdition))
	if !edition.Valid() {
		return m.defaultEdition
	}
	return edition
}

// SetEdition stores the reader's preferred edition.
func (m *Manager) SetEdition(ctx context.Context, edition entities.Edition) {
	m.Put(ctx, SessionKeyEdition, string(edition))
}

// Info holds the session information for a request.
type Info struct {
	ReaderID  string           `json:"readerId"`
	Edition   entities.Edition `json:"edition"`
	StartedAt *time.Time       `json:"startedAt,omitempty"`
}

// Info returns the whole session at once.
func (m *Manager) Info(ctx context.Context) Info {
	info := Info{
		ReaderID: m.ReaderID(ctx),
		Edition:  m.Edition(ctx),
	}
	if startedAt, ok := m.Get(ctx, SessionKeyStartedAt).(time.Time); ok {
		info.StartedAt = &startedAt
	}
	return info
}
