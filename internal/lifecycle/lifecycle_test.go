package lifecycle

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/mmynk/secretsanta/internal/auth"
	"github.com/mmynk/secretsanta/internal/draw"
	"github.com/mmynk/secretsanta/internal/models"
)

const creatorPW = "creator-secret"

func mustGroup(t *testing.T, participants ...string) *models.Group {
	t.Helper()
	g, err := NewGroup("Natal", creatorPW, participants)
	if err != nil {
		t.Fatalf("NewGroup: %v", err)
	}
	return g
}

func mustConfirm(t *testing.T, g *models.Group, name, password string) {
	t.Helper()
	if err := Confirm(g, name, password); err != nil {
		t.Fatalf("Confirm(%s): %v", name, err)
	}
}

func TestNewGroup(t *testing.T) {
	g, err := NewGroup("  Natal  ", creatorPW, []string{" Ana ", "", "Bruno", "   "})
	if err != nil {
		t.Fatalf("NewGroup: %v", err)
	}
	if len(g.ID) != 32 {
		t.Errorf("id: expected 32 hex chars, got %q", g.ID)
	}
	if g.Name != "Natal" {
		t.Errorf("name: expected Natal, got %q", g.Name)
	}
	if !reflect.DeepEqual(g.Participants, []string{"Ana", "Bruno"}) {
		t.Errorf("participants: got %v", g.Participants)
	}
	if !auth.Verify(creatorPW, g.CreatorPasswordHash) {
		t.Error("creator password hash does not verify")
	}
	if g.Drawn || len(g.Assignments) != 0 || len(g.ConfirmedPasswordHashes) != 0 {
		t.Errorf("expected fresh group, got %+v", g)
	}

	other := mustGroup(t, "Ana", "Bruno")
	if other.ID == g.ID {
		t.Error("expected unique IDs")
	}
}

func TestNewGroup_Validation(t *testing.T) {
	tests := []struct {
		name         string
		groupName    string
		password     string
		participants []string
		wantErr      error
	}{
		{name: "empty name", groupName: " ", password: creatorPW, participants: []string{"Ana", "Bruno"}, wantErr: ErrEmptyGroupName},
		{name: "empty password", groupName: "Natal", password: "  ", participants: []string{"Ana", "Bruno"}, wantErr: ErrEmptyCreatorPassword},
		{name: "one participant", groupName: "Natal", password: creatorPW, participants: []string{"Ana", " "}, wantErr: ErrTooFewParticipants},
		{name: "no participants", groupName: "Natal", password: creatorPW, participants: nil, wantErr: ErrTooFewParticipants},
		{name: "case-insensitive duplicate", groupName: "Natal", password: creatorPW, participants: []string{"ana", "Ana"}, wantErr: ErrDuplicateNames},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGroup(tt.groupName, tt.password, tt.participants)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if KindOf(err) != KindValidation {
				t.Errorf("kind: expected %s, got %s", KindValidation, KindOf(err))
			}
		})
	}
}

func TestParseParticipants_ListsDuplicates(t *testing.T) {
	_, err := ParseParticipants([]string{"ana", "Ana", "Bruno", "BRUNO ", "Carla"})
	var dupErr *DuplicateNamesError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected *DuplicateNamesError, got %v", err)
	}
	if !reflect.DeepEqual(dupErr.Names, []string{"Ana", "BRUNO"}) {
		t.Errorf("duplicates: expected [Ana BRUNO], got %v", dupErr.Names)
	}
}

func TestConfirm(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")

	mustConfirm(t, g, "Ana", "x1")
	if !auth.Verify("x1", g.ConfirmedPasswordHashes["Ana"]) {
		t.Error("expected confirmed hash for Ana")
	}

	if err := Confirm(g, "Ana", "other"); !errors.Is(err, ErrAlreadyConfirmed) {
		t.Errorf("second confirm: expected ErrAlreadyConfirmed, got %v", err)
	}
	if err := Confirm(g, "Bruno", "   "); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("blank password: expected ErrEmptyPassword, got %v", err)
	}
	if err := Confirm(g, "Zé", "x"); !errors.Is(err, ErrUnknownParticipant) {
		t.Errorf("unknown name: expected ErrUnknownParticipant, got %v", err)
	}
	if g.IsConfirmed("Bruno") {
		t.Error("failed confirmations must not record anything")
	}
}

func TestConfirm_AlreadyConfirmedBeforeEmptyPassword(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")
	mustConfirm(t, g, "Ana", "x1")
	if err := Confirm(g, "Ana", ""); !errors.Is(err, ErrAlreadyConfirmed) {
		t.Errorf("expected ErrAlreadyConfirmed, got %v", err)
	}
}

func TestConfirm_WithIssuedPassword(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")
	mustConfirm(t, g, "Ana", "forgotten")

	token, err := IssueTemporaryPassword(g, creatorPW, "Ana")
	if err != nil {
		t.Fatalf("IssueTemporaryPassword: %v", err)
	}
	if g.IsConfirmed("Ana") {
		t.Error("issuing a password must revoke the confirmation")
	}
	if !g.HasPendingPassword("Ana") {
		t.Error("expected pending password")
	}

	if err := Confirm(g, "Ana", "my-own"); !errors.Is(err, ErrMustUseIssuedPassword) {
		t.Fatalf("expected ErrMustUseIssuedPassword, got %v", err)
	}
	mustConfirm(t, g, "Ana", token)
	if g.HasPendingPassword("Ana") {
		t.Error("pending password must be cleared on confirmation")
	}
	if !auth.Verify(token, g.ConfirmedPasswordHashes["Ana"]) {
		t.Error("expected issued password to be the confirmed one")
	}
}

func TestDraw_AutoRequiresAllConfirmed(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno", "Carla")
	mustConfirm(t, g, "Ana", "x1")
	mustConfirm(t, g, "Bruno", "x2")

	if err := Draw(g, draw.New(), DrawRequest{}); !errors.Is(err, ErrNotAllConfirmed) {
		t.Fatalf("expected ErrNotAllConfirmed, got %v", err)
	}
	if g.Drawn {
		t.Fatal("group must not be drawn")
	}

	mustConfirm(t, g, "Carla", "x3")
	if g.Phase() != models.PhaseFullyConfirmed {
		t.Errorf("phase: expected %s, got %s", models.PhaseFullyConfirmed, g.Phase())
	}
	if err := Draw(g, draw.New(), DrawRequest{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if !g.Drawn || len(g.Assignments) != 3 {
		t.Errorf("expected complete draw, got %+v", g)
	}
	for giver, recipient := range g.Assignments {
		if giver == recipient {
			t.Errorf("%s drew themselves", giver)
		}
	}

	if err := Draw(g, draw.New(), DrawRequest{}); !errors.Is(err, ErrAlreadyDrawn) {
		t.Errorf("second draw: expected ErrAlreadyDrawn, got %v", err)
	}
}

func TestDraw_Force(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "omitted password", password: "", wantErr: ErrWrongCreatorPassword},
		{name: "wrong password", password: "guess", wantErr: ErrWrongCreatorPassword},
		{name: "correct password", password: creatorPW, wantErr: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGroup(t, "Ana", "Bruno", "Carla")
			err := Draw(g, draw.New(), DrawRequest{Force: true, CreatorPassword: tt.password})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if g.Drawn != (tt.wantErr == nil) {
				t.Errorf("drawn: expected %v, got %v", tt.wantErr == nil, g.Drawn)
			}
		})
	}
}

func TestDraw_ForceLegacyGroup(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")
	g.CreatorPasswordHash = ""
	err := Draw(g, draw.New(), DrawRequest{Force: true, CreatorPassword: creatorPW})
	if !errors.Is(err, ErrNoCreatorPassword) {
		t.Fatalf("expected ErrNoCreatorPassword, got %v", err)
	}
	if KindOf(err) != KindAuthorization {
		t.Errorf("kind: expected %s, got %s", KindAuthorization, KindOf(err))
	}
}

func TestDraw_EngineFailureLeavesGroupUntouched(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")
	engine := draw.New(draw.WithShuffler(func([]string) {}))

	err := Draw(g, engine, DrawRequest{Force: true, CreatorPassword: creatorPW})
	if !errors.Is(err, draw.ErrDrawFailed) {
		t.Fatalf("expected ErrDrawFailed, got %v", err)
	}
	if KindOf(err) != KindDrawFailure {
		t.Errorf("kind: expected %s, got %s", KindDrawFailure, KindOf(err))
	}
	if g.Drawn || len(g.Assignments) != 0 {
		t.Errorf("expected no draw, got %+v", g)
	}
}

func TestDraw_TooFewAfterRemoval(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")
	if err := RemoveParticipant(g, creatorPW, "Bruno"); err != nil {
		t.Fatalf("RemoveParticipant: %v", err)
	}
	err := Draw(g, draw.New(), DrawRequest{Force: true, CreatorPassword: creatorPW})
	if !errors.Is(err, draw.ErrInsufficientParticipants) {
		t.Fatalf("expected ErrInsufficientParticipants, got %v", err)
	}
}

func TestConfirmThenReveal(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")
	mustConfirm(t, g, "Ana", "x1")

	if _, err := Reveal(g, "Bruno", "x2"); !errors.Is(err, ErrNotConfirmed) {
		t.Errorf("unconfirmed: expected ErrNotConfirmed, got %v", err)
	}
	mustConfirm(t, g, "Bruno", "x2")

	if _, err := Reveal(g, "Ana", "x1"); !errors.Is(err, ErrNotDrawnYet) {
		t.Errorf("before draw: expected ErrNotDrawnYet, got %v", err)
	}

	if err := Draw(g, draw.New(), DrawRequest{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	got, err := Reveal(g, "Ana", "x1")
	if err != nil || got != "Bruno" {
		t.Errorf("Ana: expected Bruno, got %q (%v)", got, err)
	}
	got, err = Reveal(g, "Bruno", "x2")
	if err != nil || got != "Ana" {
		t.Errorf("Bruno: expected Ana, got %q (%v)", got, err)
	}

	if _, err := Reveal(g, "Ana", "x2"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("wrong password: expected ErrWrongPassword, got %v", err)
	}
	if _, err := Reveal(g, "Nobody", "x1"); !errors.Is(err, ErrNotConfirmed) {
		t.Errorf("unknown name: expected ErrNotConfirmed, got %v", err)
	}
}

func TestCreatorOperations_RequirePassword(t *testing.T) {
	ops := map[string]func(g *models.Group, pw string) error{
		"rename group":       func(g *models.Group, pw string) error { return RenameGroup(g, pw, "Novo") },
		"add participant":    func(g *models.Group, pw string) error { return AddParticipant(g, pw, "Carla") },
		"remove participant": func(g *models.Group, pw string) error { return RemoveParticipant(g, pw, "Ana") },
		"rename participant": func(g *models.Group, pw string) error { return RenameParticipant(g, pw, "Ana", "Anna") },
		"clear confirmation": func(g *models.Group, pw string) error { return ClearConfirmation(g, pw, "Ana") },
		"reset draw":         func(g *models.Group, pw string) error { return ResetDraw(g, pw) },
		"rotate password":    func(g *models.Group, pw string) error { return RotateCreatorPassword(g, pw, "new") },
		"issue password": func(g *models.Group, pw string) error {
			_, err := IssueTemporaryPassword(g, pw, "Ana")
			return err
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			g := mustGroup(t, "Ana", "Bruno")
			mustConfirm(t, g, "Ana", "x1")
			before := g.Clone()

			if err := op(g, "wrong"); !errors.Is(err, ErrWrongCreatorPassword) {
				t.Fatalf("expected ErrWrongCreatorPassword, got %v", err)
			}
			if !reflect.DeepEqual(before, g) {
				t.Errorf("group changed after rejected operation:\nbefore %+v\nafter  %+v", before, g)
			}

			g.CreatorPasswordHash = ""
			if err := op(g, creatorPW); !errors.Is(err, ErrNoCreatorPassword) {
				t.Fatalf("legacy group: expected ErrNoCreatorPassword, got %v", err)
			}

			g.CreatorPasswordHash = before.CreatorPasswordHash
			if err := op(g, creatorPW); err != nil {
				t.Fatalf("with creator password: %v", err)
			}
		})
	}
}

func TestRenameGroup(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")
	if err := RenameGroup(g, creatorPW, "  "); !errors.Is(err, ErrEmptyGroupName) {
		t.Errorf("expected ErrEmptyGroupName, got %v", err)
	}
	if err := RenameGroup(g, creatorPW, " Firma "); err != nil {
		t.Fatalf("RenameGroup: %v", err)
	}
	if g.Name != "Firma" {
		t.Errorf("name: expected Firma, got %q", g.Name)
	}
}

func TestAddParticipant(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")

	if err := AddParticipant(g, creatorPW, "BRUNO"); !errors.Is(err, ErrDuplicateParticipant) {
		t.Errorf("duplicate: expected ErrDuplicateParticipant, got %v", err)
	}
	if err := AddParticipant(g, creatorPW, " "); !errors.Is(err, ErrEmptyParticipantName) {
		t.Errorf("blank: expected ErrEmptyParticipantName, got %v", err)
	}
	if err := AddParticipant(g, creatorPW, " Carla "); err != nil {
		t.Fatalf("AddParticipant: %v", err)
	}
	if !reflect.DeepEqual(g.Participants, []string{"Ana", "Bruno", "Carla"}) {
		t.Errorf("participants: got %v", g.Participants)
	}

	if err := Draw(g, draw.New(), DrawRequest{Force: true, CreatorPassword: creatorPW}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := AddParticipant(g, creatorPW, "Davi"); !errors.Is(err, ErrAlreadyDrawn) {
		t.Errorf("after draw: expected ErrAlreadyDrawn, got %v", err)
	}
}

func TestRemoveParticipant(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno", "Carla")
	mustConfirm(t, g, "Bruno", "x2")

	if err := RemoveParticipant(g, creatorPW, "Zé"); !errors.Is(err, ErrUnknownParticipant) {
		t.Errorf("unknown: expected ErrUnknownParticipant, got %v", err)
	}
	if err := RemoveParticipant(g, creatorPW, "bruno"); err != nil {
		t.Fatalf("RemoveParticipant: %v", err)
	}
	if !reflect.DeepEqual(g.Participants, []string{"Ana", "Carla"}) {
		t.Errorf("participants: got %v", g.Participants)
	}
	if g.IsConfirmed("Bruno") {
		t.Error("removed participant's confirmation must be dropped")
	}

	if err := Draw(g, draw.New(), DrawRequest{Force: true, CreatorPassword: creatorPW}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := RemoveParticipant(g, creatorPW, "Ana"); !errors.Is(err, ErrAlreadyDrawn) {
		t.Errorf("after draw: expected ErrAlreadyDrawn, got %v", err)
	}
}

func TestRenameParticipant_KeepsConfirmation(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")
	mustConfirm(t, g, "Ana", "x1")
	g.PendingPasswordHashes["Bruno"] = auth.Hash("tmp")

	if err := RenameParticipant(g, creatorPW, "Ana", "Ana Maria"); err != nil {
		t.Fatalf("RenameParticipant: %v", err)
	}
	if !reflect.DeepEqual(g.Participants, []string{"Ana Maria", "Bruno"}) {
		t.Errorf("participants: got %v", g.Participants)
	}
	if _, ok := g.ConfirmedPasswordHashes["Ana"]; ok {
		t.Error("old confirmation key must be removed")
	}
	if !auth.Verify("x1", g.ConfirmedPasswordHashes["Ana Maria"]) {
		t.Error("confirmation must move to the new name")
	}

	if err := RenameParticipant(g, creatorPW, "Bruno", "Beto"); err != nil {
		t.Fatalf("RenameParticipant: %v", err)
	}
	if !g.HasPendingPassword("Beto") || g.HasPendingPassword("Bruno") {
		t.Errorf("pending password must move to the new name: %v", g.PendingPasswordHashes)
	}
}

func TestRenameParticipant_Validation(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")

	if err := RenameParticipant(g, creatorPW, "Ana", "bruno"); !errors.Is(err, ErrDuplicateParticipant) {
		t.Errorf("collision: expected ErrDuplicateParticipant, got %v", err)
	}
	if err := RenameParticipant(g, creatorPW, "Zé", "Zeca"); !errors.Is(err, ErrUnknownParticipant) {
		t.Errorf("unknown: expected ErrUnknownParticipant, got %v", err)
	}
	if err := RenameParticipant(g, creatorPW, "Ana", ""); !errors.Is(err, ErrEmptyParticipantName) {
		t.Errorf("blank: expected ErrEmptyParticipantName, got %v", err)
	}
	if err := RenameParticipant(g, creatorPW, "Ana", "ANA"); err != nil {
		t.Errorf("case change of the same name: %v", err)
	}
	if g.Participants[0] != "ANA" {
		t.Errorf("expected ANA, got %q", g.Participants[0])
	}

	if err := Draw(g, draw.New(), DrawRequest{Force: true, CreatorPassword: creatorPW}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := RenameParticipant(g, creatorPW, "ANA", "Ana"); !errors.Is(err, ErrAlreadyDrawn) {
		t.Errorf("after draw: expected ErrAlreadyDrawn, got %v", err)
	}
}

func TestRenameParticipant_MovesAssignments(t *testing.T) {
	// Assignments left over from a reset or an older document.
	g := mustGroup(t, "Ana", "Bruno", "Carla")
	g.Assignments = map[string]string{"Ana": "Bruno", "Bruno": "Carla", "Carla": "Ana"}

	if err := RenameParticipant(g, creatorPW, "Ana", "Anna"); err != nil {
		t.Fatalf("RenameParticipant: %v", err)
	}
	want := map[string]string{"Anna": "Bruno", "Bruno": "Carla", "Carla": "Anna"}
	if !reflect.DeepEqual(g.Assignments, want) {
		t.Errorf("assignments: expected %v, got %v", want, g.Assignments)
	}
}

func TestClearConfirmation_AfterDraw(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno", "Carla", "Davi")
	for i, n := range g.Participants {
		mustConfirm(t, g, n, string(rune('a'+i)))
	}
	if err := Draw(g, draw.New(), DrawRequest{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	before := g.Clone()

	if err := ClearConfirmation(g, creatorPW, "Ana"); err != nil {
		t.Fatalf("ClearConfirmation: %v", err)
	}

	if g.IsConfirmed("Ana") {
		t.Error("Ana must no longer be confirmed")
	}
	if !g.Drawn {
		t.Error("clearing one confirmation must not reset the draw")
	}
	if _, ok := g.Assignments["Ana"]; ok {
		t.Error("Ana must not be a giver")
	}
	for giver, recipient := range g.Assignments {
		if recipient == "Ana" {
			t.Errorf("Ana must not be a recipient (giver %s)", giver)
		}
		if before.Assignments[giver] != recipient {
			t.Errorf("%s: assignment changed from %s to %s", giver, before.Assignments[giver], recipient)
		}
	}
	if len(g.Assignments) != 2 {
		t.Errorf("expected 2 remaining assignments, got %v", g.Assignments)
	}

	if _, err := Reveal(g, "Ana", "a"); !errors.Is(err, ErrNotConfirmed) {
		t.Errorf("expected ErrNotConfirmed, got %v", err)
	}
}

func TestResetDraw_KeepsConfirmations(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")
	mustConfirm(t, g, "Ana", "x1")
	mustConfirm(t, g, "Bruno", "x2")
	if err := Draw(g, draw.New(), DrawRequest{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if err := ResetDraw(g, creatorPW); err != nil {
		t.Fatalf("ResetDraw: %v", err)
	}
	if g.Drawn || len(g.Assignments) != 0 {
		t.Errorf("expected draw cleared, got %+v", g)
	}
	if g.ConfirmedCount() != 2 {
		t.Errorf("confirmations: expected 2, got %d", g.ConfirmedCount())
	}
	if _, err := Reveal(g, "Ana", "x1"); !errors.Is(err, ErrNotDrawnYet) {
		t.Errorf("expected ErrNotDrawnYet, got %v", err)
	}
	if err := Draw(g, draw.New(), DrawRequest{}); err != nil {
		t.Errorf("redraw: %v", err)
	}
}

func TestRotateCreatorPassword(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")

	if err := RotateCreatorPassword(g, creatorPW, " "); !errors.Is(err, ErrEmptyCreatorPassword) {
		t.Errorf("blank: expected ErrEmptyCreatorPassword, got %v", err)
	}
	if err := RotateCreatorPassword(g, creatorPW, "rotated"); err != nil {
		t.Fatalf("RotateCreatorPassword: %v", err)
	}
	if err := VerifyCreator(g, creatorPW); !errors.Is(err, ErrWrongCreatorPassword) {
		t.Errorf("old password: expected ErrWrongCreatorPassword, got %v", err)
	}
	if err := VerifyCreator(g, "rotated"); err != nil {
		t.Errorf("new password: %v", err)
	}
}

func TestIssueTemporaryPassword(t *testing.T) {
	g := mustGroup(t, "Ana", "Bruno")
	if _, err := IssueTemporaryPassword(g, creatorPW, "Zé"); !errors.Is(err, ErrUnknownParticipant) {
		t.Errorf("unknown: expected ErrUnknownParticipant, got %v", err)
	}

	first, err := IssueTemporaryPassword(g, creatorPW, "Bruno")
	if err != nil {
		t.Fatalf("IssueTemporaryPassword: %v", err)
	}
	second, err := IssueTemporaryPassword(g, creatorPW, "Bruno")
	if err != nil {
		t.Fatalf("IssueTemporaryPassword: %v", err)
	}
	if first == second {
		t.Error("expected a new token per issue")
	}
	if err := Confirm(g, "Bruno", first); !errors.Is(err, ErrMustUseIssuedPassword) {
		t.Errorf("superseded token: expected ErrMustUseIssuedPassword, got %v", err)
	}
	mustConfirm(t, g, "Bruno", second)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{err: nil, want: ""},
		{err: ErrWrongPassword, want: KindAuthorization},
		{err: ErrAlreadyDrawn, want: KindStateConflict},
		{err: &DuplicateNamesError{Names: []string{"Ana"}}, want: KindValidation},
		{err: draw.ErrDrawFailed, want: KindDrawFailure},
		{err: ErrGroupNotFound, want: KindNotFound},
		{err: errors.New("boom"), want: KindInternal},
		{err: fmt.Errorf("%w: %w", ErrPersistence, ErrWrongPassword), want: KindPersistence},
		{err: fmt.Errorf("%w: %w", ErrEmptyPassword, ErrAlreadyDrawn), want: KindStateConflict},
		{err: errors.Join(ErrUnknownParticipant, ErrGroupNotFound), want: KindNotFound},
	}
	for _, tt := range tests {
		// Repeat so an unordered lookup would show up as a flaky mismatch.
		for range 20 {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf(%v) = %q, want %q", tt.err, got, tt.want)
				break
			}
		}
	}
}
