// Package lifecycle implements the Secret Santa group state machine.
//
// A group moves from open (collecting confirmations) to fully confirmed (derived:
// every participant confirmed) to drawn. The functions in this file validate and
// apply one operation to a group in memory; Service wraps each of them in a
// single load, mutate, save cycle against a storage.GroupStore.
//
// Every function checks all of its preconditions before touching the group, so a
// returned error always means the group is unchanged.
package lifecycle

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/secretsanta/internal/auth"
	"github.com/mmynk/secretsanta/internal/draw"
	"github.com/mmynk/secretsanta/internal/models"
)

// DrawRequest selects the draw authorization path.
type DrawRequest struct {
	// Force draws before every participant confirmed. Requires CreatorPassword.
	Force bool
	// CreatorPassword is checked only when Force is set.
	CreatorPassword string
}

// NewGroupID returns a 32-char hex identifier.
func NewGroupID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewGroup validates the creation input and returns a group with a fresh ID,
// no confirmations and no draw.
func NewGroup(name, creatorPassword string, participants []string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyGroupName
	}
	if strings.TrimSpace(creatorPassword) == "" {
		return nil, ErrEmptyCreatorPassword
	}
	names, err := ParseParticipants(participants)
	if err != nil {
		return nil, err
	}
	if len(names) < 2 {
		return nil, ErrTooFewParticipants
	}

	g := &models.Group{
		ID:                  NewGroupID(),
		Name:                name,
		CreatorPasswordHash: auth.Hash(creatorPassword),
		Participants:        names,
	}
	g.Normalize(g.ID)
	return g, nil
}

// ParseParticipants trims names and drops blank ones. Names that repeat an
// earlier one ignoring case are rejected with a *DuplicateNamesError listing them.
func ParseParticipants(raw []string) ([]string, error) {
	names := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	var dups []string
	for _, r := range raw {
		n := strings.TrimSpace(r)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if seen[key] {
			dups = append(dups, n)
			continue
		}
		seen[key] = true
		names = append(names, n)
	}
	if len(dups) > 0 {
		return nil, &DuplicateNamesError{Names: dups}
	}
	return names, nil
}

// Confirm records name's participation with a self-chosen password. If the
// creator issued a temporary password for name, that password must be used.
func Confirm(g *models.Group, name, password string) error {
	participant, ok := g.FindParticipant(name)
	if !ok {
		return ErrUnknownParticipant
	}
	if g.IsConfirmed(participant) {
		return ErrAlreadyConfirmed
	}
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	if pending, ok := g.PendingPasswordHashes[participant]; ok && !auth.Verify(password, pending) {
		return ErrMustUseIssuedPassword
	}

	g.ConfirmedPasswordHashes[participant] = auth.Hash(password)
	delete(g.PendingPasswordHashes, participant)
	return nil
}

// Draw assigns every participant a recipient. Without Force it is allowed for
// anyone once all participants confirmed; with Force the creator may draw at
// any point before the group is drawn.
func Draw(g *models.Group, engine *draw.Engine, req DrawRequest) error {
	if g.Drawn {
		return ErrAlreadyDrawn
	}
	if req.Force {
		if err := VerifyCreator(g, req.CreatorPassword); err != nil {
			return err
		}
	} else if g.ConfirmedCount() != len(g.Participants) {
		return ErrNotAllConfirmed
	}

	assignments, err := engine.Draw(g.Participants)
	if err != nil {
		return err
	}
	g.Assignments = assignments
	g.Drawn = true
	return nil
}

// Reveal returns the recipient assigned to name after checking name's password.
// An unknown name is reported the same way as an unconfirmed one.
func Reveal(g *models.Group, name, password string) (string, error) {
	participant, ok := g.FindParticipant(name)
	if !ok {
		return "", ErrNotConfirmed
	}
	digest, ok := g.ConfirmedPasswordHashes[participant]
	if !ok {
		return "", ErrNotConfirmed
	}
	if !auth.Verify(password, digest) {
		return "", ErrWrongPassword
	}
	recipient, ok := g.Assignments[participant]
	if !g.Drawn || !ok {
		return "", ErrNotDrawnYet
	}
	return recipient, nil
}

// VerifyCreator checks password against the group's creator password.
func VerifyCreator(g *models.Group, password string) error {
	if g.CreatorPasswordHash == "" {
		return ErrNoCreatorPassword
	}
	if !auth.Verify(password, g.CreatorPasswordHash) {
		return ErrWrongCreatorPassword
	}
	return nil
}

// RenameGroup changes the display name.
func RenameGroup(g *models.Group, creatorPassword, name string) error {
	if err := VerifyCreator(g, creatorPassword); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyGroupName
	}
	g.Name = name
	return nil
}

// AddParticipant appends name to the roster. Not allowed once drawn.
func AddParticipant(g *models.Group, creatorPassword, name string) error {
	if err := VerifyCreator(g, creatorPassword); err != nil {
		return err
	}
	if g.Drawn {
		return ErrAlreadyDrawn
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyParticipantName
	}
	if existing, ok := g.FindParticipant(name); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateParticipant, existing)
	}
	g.Participants = append(g.Participants, name)
	return nil
}

// RemoveParticipant drops name and its passwords. Not allowed once drawn.
func RemoveParticipant(g *models.Group, creatorPassword, name string) error {
	if err := VerifyCreator(g, creatorPassword); err != nil {
		return err
	}
	if g.Drawn {
		return ErrAlreadyDrawn
	}
	participant, ok := g.FindParticipant(name)
	if !ok {
		return ErrUnknownParticipant
	}

	kept := make([]string, 0, len(g.Participants)-1)
	for _, p := range g.Participants {
		if p != participant {
			kept = append(kept, p)
		}
	}
	g.Participants = kept
	delete(g.ConfirmedPasswordHashes, participant)
	delete(g.PendingPasswordHashes, participant)
	return nil
}

// RenameParticipant renames oldName to newName, moving its confirmation,
// pending password and any assignment entries. Not allowed once drawn.
func RenameParticipant(g *models.Group, creatorPassword, oldName, newName string) error {
	if err := VerifyCreator(g, creatorPassword); err != nil {
		return err
	}
	if g.Drawn {
		return ErrAlreadyDrawn
	}
	participant, ok := g.FindParticipant(oldName)
	if !ok {
		return ErrUnknownParticipant
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyParticipantName
	}
	if existing, ok := g.FindParticipant(newName); ok && existing != participant {
		return fmt.Errorf("%w: %s", ErrDuplicateParticipant, existing)
	}
	if newName == participant {
		return nil
	}

	for i, p := range g.Participants {
		if p == participant {
			g.Participants[i] = newName
		}
	}
	renameKey(g.ConfirmedPasswordHashes, participant, newName)
	renameKey(g.PendingPasswordHashes, participant, newName)
	renameKey(g.Assignments, participant, newName)
	for giver, recipient := range g.Assignments {
		if recipient == participant {
			g.Assignments[giver] = newName
		}
	}
	return nil
}

// ClearConfirmation forgets name's confirmation and pending password and takes
// name out of the draw on both sides. Other assignments are kept as they are.
func ClearConfirmation(g *models.Group, creatorPassword, name string) error {
	if err := VerifyCreator(g, creatorPassword); err != nil {
		return err
	}
	participant, ok := g.FindParticipant(name)
	if !ok {
		return ErrUnknownParticipant
	}

	delete(g.ConfirmedPasswordHashes, participant)
	delete(g.PendingPasswordHashes, participant)
	delete(g.Assignments, participant)
	for giver, recipient := range g.Assignments {
		if recipient == participant {
			delete(g.Assignments, giver)
		}
	}
	return nil
}

// ResetDraw discards the assignments so the group can be drawn again.
// Confirmations are kept.
func ResetDraw(g *models.Group, creatorPassword string) error {
	if err := VerifyCreator(g, creatorPassword); err != nil {
		return err
	}
	g.Assignments = map[string]string{}
	g.Drawn = false
	return nil
}

// RotateCreatorPassword replaces the creator password.
func RotateCreatorPassword(g *models.Group, currentPassword, newPassword string) error {
	if err := VerifyCreator(g, currentPassword); err != nil {
		return err
	}
	if strings.TrimSpace(newPassword) == "" {
		return ErrEmptyCreatorPassword
	}
	g.CreatorPasswordHash = auth.Hash(newPassword)
	return nil
}

// IssueTemporaryPassword revokes name's confirmation and returns a new password
// that name must use on the next confirmation. The plaintext is returned only here.
func IssueTemporaryPassword(g *models.Group, creatorPassword, name string) (string, error) {
	if err := VerifyCreator(g, creatorPassword); err != nil {
		return "", err
	}
	participant, ok := g.FindParticipant(name)
	if !ok {
		return "", ErrUnknownParticipant
	}
	token, err := auth.GenerateTemporaryPassword()
	if err != nil {
		return "", err
	}

	delete(g.ConfirmedPasswordHashes, participant)
	g.PendingPasswordHashes[participant] = auth.Hash(token)
	return token, nil
}

func renameKey(m map[string]string, from, to string) {
	if v, ok := m[from]; ok {
		delete(m, from)
		m[to] = v
	}
}
