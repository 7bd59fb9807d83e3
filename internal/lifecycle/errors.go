package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/secretsanta/internal/draw"
	"github.com/mmynk/secretsanta/internal/storage"
)

// Kind classifies lifecycle failures.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindStateConflict Kind = "state_conflict"
	KindDrawFailure   Kind = "draw_failure"
	KindNotFound      Kind = "not_found"
	KindPersistence   Kind = "persistence"
	KindInternal      Kind = "internal"
)

// Validation errors.
var (
	ErrEmptyGroupName       = errors.New("group name is required")
	ErrEmptyCreatorPassword = errors.New("creator password is required")
	ErrTooFewParticipants   = errors.New("at least 2 participants are required")
	ErrDuplicateNames       = errors.New("duplicate participant names")
	ErrEmptyParticipantName = errors.New("participant name is required")
	ErrDuplicateParticipant = errors.New("participant already exists")
	ErrUnknownParticipant   = errors.New("participant not found")
	ErrEmptyPassword        = errors.New("password cannot be empty")
)

// Authorization errors.
var (
	ErrWrongCreatorPassword  = errors.New("wrong creator password")
	ErrNoCreatorPassword     = errors.New("group has no creator password")
	ErrWrongPassword         = errors.New("wrong password")
	ErrMustUseIssuedPassword = errors.New("must confirm with the password issued by the creator")
)

// State conflict errors.
var (
	ErrAlreadyConfirmed = errors.New("participant already confirmed")
	ErrAlreadyDrawn     = errors.New("draw already done")
	ErrNotAllConfirmed  = errors.New("not every participant has confirmed")
	ErrNotConfirmed     = errors.New("participant has not confirmed")
	ErrNotDrawnYet      = errors.New("draw not done yet")
)

var (
	// ErrGroupNotFound is returned for unknown group IDs.
	ErrGroupNotFound = errors.New("group not found")
	// ErrPersistence wraps load and save failures. The mutation did not take effect.
	ErrPersistence = errors.New("failed to persist groups")
)

// kinds is checked in order, so an error wrapping sentinels of two kinds
// takes the first listed.
var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrPersistence, KindPersistence},
	{storage.ErrLockTimeout, KindPersistence},
	{ErrGroupNotFound, KindNotFound},
	{ErrWrongCreatorPassword, KindAuthorization},
	{ErrNoCreatorPassword, KindAuthorization},
	{ErrWrongPassword, KindAuthorization},
	{ErrMustUseIssuedPassword, KindAuthorization},
	{ErrAlreadyConfirmed, KindStateConflict},
	{ErrAlreadyDrawn, KindStateConflict},
	{ErrNotAllConfirmed, KindStateConflict},
	{ErrNotConfirmed, KindStateConflict},
	{ErrNotDrawnYet, KindStateConflict},
	{draw.ErrInsufficientParticipants, KindDrawFailure},
	{draw.ErrDrawFailed, KindDrawFailure},
	{ErrEmptyGroupName, KindValidation},
	{ErrEmptyCreatorPassword, KindValidation},
	{ErrTooFewParticipants, KindValidation},
	{ErrDuplicateNames, KindValidation},
	{ErrEmptyParticipantName, KindValidation},
	{ErrDuplicateParticipant, KindValidation},
	{ErrUnknownParticipant, KindValidation},
	{ErrEmptyPassword, KindValidation},
}

// KindOf classifies err. Unrecognized errors are KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// DuplicateNamesError lists the names that collide, ignoring case, with an
// earlier name in the same roster.
type DuplicateNamesError struct {
	Names []string
}

func (e *DuplicateNamesError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateNames, strings.Join(e.Names, ", "))
}

func (e *DuplicateNamesError) Unwrap() error {
	return ErrDuplicateNames
}
