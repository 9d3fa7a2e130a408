// Package docs Directory Microservice API.
//
// Microservice for a directory of places and activities with
// user-submitted trust signals.
//
// Main capabilities:
// - Filterable, searchable entity listings sorted by rating
// - Entity lifecycle: create, partial update, soft delete (archive)
// - Trust signal ledger with confirm side effects
// - Open/closed evaluation of weekly schedules
// - Editorial guides grouped by category
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
