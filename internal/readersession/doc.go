// Package readersession identifies anonymous readers with cookie sessions.
//
// Sessions live in the reader's sqlite database through scs and sqlite3store.
// The first request without a session gets a fresh reader ID; later requests
// carry it in the cookie. API clients may name the reader explicitly with the
// X-Reader-ID header, which takes precedence over the cookie.
package readersession
