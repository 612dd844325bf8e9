// Package backend serves the remote progress and statistics API that the
// reader talks to through progressapi. It is a small gin application over the
// gorm repositories in database/progress and database/stats, used for local
// development and in integration tests.
//
// # Endpoints
//
// All routes live under a configurable prefix (/api by default):
//
//	GET    /progress/:userId
//	POST   /progress
//	DELETE /progress/:userId/:chapter/:edition
//	GET    /stats/:userId
//	POST   /stats
package backend
