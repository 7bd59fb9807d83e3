// Package models defines the core domain models for secretsanta.
//
// # Models
//
//   - Group: one Secret Santa event with its roster, confirmations and draw
//   - Store: every group, keyed by group ID, persisted as a single JSON document
//
// Participants are identified by display name only (no user accounts). Names are
// unique within a group, compared case-insensitively.
//
// # Persistence Format
//
// The JSON field names match documents written by earlier versions of the app:
// a group without `creator_password_hash` or `pending_password_hashes` is still
// valid and is defaulted on load (see Store.Normalize).
package models
