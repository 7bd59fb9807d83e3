package models

import "strings"

// Phase is the derived lifecycle phase of a group. It is never stored.
type Phase string

const (
	// PhaseOpen means some participants have not confirmed yet.
	PhaseOpen Phase = "open"
	// PhaseFullyConfirmed means every participant confirmed but no draw happened.
	PhaseFullyConfirmed Phase = "fully_confirmed"
	// PhaseDrawn means assignments have been computed.
	PhaseDrawn Phase = "drawn"
)

// Group represents one Secret Santa event.
type Group struct {
	// ID is the opaque group identifier (32 hex chars). Immutable.
	ID string `json:"id"`

	// Name is the display name of the group (e.g., "Family 2026").
	Name string `json:"name"`

	// CreatorPasswordHash gates the maintenance operations.
	// Empty for groups created before creator passwords existed.
	CreatorPasswordHash string `json:"creator_password_hash,omitempty"`

	// Participants is the ordered roster. Order defines draw indices.
	Participants []string `json:"participants"`

	// ConfirmedPasswordHashes maps participant name to password hash.
	// A key is present once that participant has confirmed.
	ConfirmedPasswordHashes map[string]string `json:"participants_confirmed"`

	// PendingPasswordHashes maps participant name to the hash of a
	// creator-issued temporary password that must be used on the next confirmation.
	PendingPasswordHashes map[string]string `json:"pending_password_hashes,omitempty"`

	// Drawn is true once assignments have been computed.
	Drawn bool `json:"drawn"`

	// Assignments maps giver to recipient. Empty unless Drawn.
	Assignments map[string]string `json:"assignments"`
}

// Store is the full set of groups keyed by group ID.
type Store map[string]*Group

// Phase derives the current lifecycle phase.
func (g *Group) Phase() Phase {
	switch {
	case g.Drawn:
		return PhaseDrawn
	case len(g.Participants) > 0 && g.ConfirmedCount() == len(g.Participants):
		return PhaseFullyConfirmed
	default:
		return PhaseOpen
	}
}

// ConfirmedCount returns how many roster members have confirmed.
func (g *Group) ConfirmedCount() int {
	n := 0
	for _, p := range g.Participants {
		if _, ok := g.ConfirmedPasswordHashes[p]; ok {
			n++
		}
	}
	return n
}

// IsConfirmed reports whether name has a confirmed password hash.
func (g *Group) IsConfirmed(name string) bool {
	_, ok := g.ConfirmedPasswordHashes[name]
	return ok
}

// HasPendingPassword reports whether name must confirm with an issued password.
func (g *Group) HasPendingPassword(name string) bool {
	_, ok := g.PendingPasswordHashes[name]
	return ok
}

// HasParticipant reports whether name is on the roster (exact match).
func (g *Group) HasParticipant(name string) bool {
	return g.indexOf(name) >= 0
}

// FindParticipant returns the roster entry equal to name ignoring case.
func (g *Group) FindParticipant(name string) (string, bool) {
	for _, p := range g.Participants {
		if strings.EqualFold(p, name) {
			return p, true
		}
	}
	return "", false
}

func (g *Group) indexOf(name string) int {
	for i, p := range g.Participants {
		if p == name {
			return i
		}
	}
	return -1
}

// Normalize fills defaults for fields missing from older documents.
func (g *Group) Normalize(id string) {
	if g.ID == "" {
		g.ID = id
	}
	if g.Participants == nil {
		g.Participants = []string{}
	}
	if g.ConfirmedPasswordHashes == nil {
		g.ConfirmedPasswordHashes = map[string]string{}
	}
	if g.PendingPasswordHashes == nil {
		g.PendingPasswordHashes = map[string]string{}
	}
	if g.Assignments == nil {
		g.Assignments = map[string]string{}
	}
}

// Clone returns a deep copy of the group.
func (g *Group) Clone() *Group {
	c := *g
	c.Participants = append([]string(nil), g.Participants...)
	c.ConfirmedPasswordHashes = cloneMap(g.ConfirmedPasswordHashes)
	c.PendingPasswordHashes = cloneMap(g.PendingPasswordHashes)
	c.Assignments = cloneMap(g.Assignments)
	return &c
}

// Normalize applies Group.Normalize to every group and drops nil entries.
func (s Store) Normalize() {
	for id, g := range s {
		if g == nil {
			delete(s, id)
			continue
		}
		g.Normalize(id)
	}
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
