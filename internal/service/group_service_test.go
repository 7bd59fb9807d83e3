package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/secretsanta/internal/lifecycle"
	"github.com/mmynk/secretsanta/internal/middleware"
	"github.com/mmynk/secretsanta/internal/storage/jsonfile"
	pb "github.com/mmynk/secretsanta/pkg/proto"
	"github.com/mmynk/secretsanta/pkg/proto/protoconnect"
)

const creatorPW = "creator-secret"

// setupTestServer serves a GroupService backed by a JSON file in a temp dir.
func setupTestServer(t *testing.T, opts ...connect.ClientOption) protoconnect.GroupServiceClient {
	t.Helper()

	store, err := jsonfile.New(filepath.Join(t.TempDir(), "groups.json"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	groupSvc := NewGroupService(lifecycle.NewService(store))
	path, handler := protoconnect.NewGroupServiceHandler(groupSvc,
		connect.WithInterceptors(middleware.LoggingInterceptor(nil)),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL, opts...)
}

func createGroup(t *testing.T, client protoconnect.GroupServiceClient, participants ...string) *pb.Group {
	t.Helper()
	resp, err := client.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
		Name:            "Natal",
		CreatorPassword: creatorPW,
		Participants:    participants,
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group
}

func confirm(t *testing.T, client protoconnect.GroupServiceClient, groupID, name, password string) *pb.Group {
	t.Helper()
	resp, err := client.ConfirmParticipation(context.Background(), connect.NewRequest(&pb.ConfirmParticipationRequest{
		GroupId:  groupID,
		Name:     name,
		Password: password,
	}))
	if err != nil {
		t.Fatalf("ConfirmParticipation(%s) failed: %v", name, err)
	}
	return resp.Msg.Group
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil error", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect.Error, got %T", err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
}

func TestCreateGroup(t *testing.T) {
	client := setupTestServer(t)

	group := createGroup(t, client, "Ana", "Bruno", "Carla")

	if group.Id == "" {
		t.Error("expected non-empty group ID")
	}
	if group.Name != "Natal" {
		t.Errorf("name: expected 'Natal', got '%s'", group.Name)
	}
	if len(group.Participants) != 3 {
		t.Errorf("participants: expected 3, got %d", len(group.Participants))
	}
	if group.Phase != "open" || group.Drawn || group.ConfirmedCount != 0 {
		t.Errorf("expected fresh open group, got %+v", group)
	}
	if !group.HasCreatorPassword {
		t.Error("expected creator password flag")
	}
}

func TestCreateGroup_JSONClient(t *testing.T) {
	client := setupTestServer(t, connect.WithProtoJSON())

	group := createGroup(t, client, "Tom & Jerry", "Ana")

	resp, err := client.GetGroup(context.Background(), connect.NewRequest(&pb.GetGroupRequest{
		GroupId: group.Id,
	}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if got := resp.Msg.Group.Participants; len(got) != 2 || got[0] != "Tom & Jerry" {
		t.Errorf("participants: expected [Tom & Jerry Ana], got %v", got)
	}
}

func TestCreateGroup_DuplicateNames(t *testing.T) {
	client := setupTestServer(t)

	_, err := client.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
		Name:            "Natal",
		CreatorPassword: creatorPW,
		Participants:    []string{"ana", "Ana"},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)
	if !strings.Contains(err.Error(), "Ana") {
		t.Errorf("expected duplicate name in message, got %v", err)
	}
}

func TestGetGroup_NotFound(t *testing.T) {
	client := setupTestServer(t)

	_, err := client.GetGroup(context.Background(), connect.NewRequest(&pb.GetGroupRequest{
		GroupId: "nonexistent-id",
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestConfirmDrawReveal(t *testing.T) {
	client := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, client, "Ana", "Bruno")

	confirm(t, client, group.Id, "Ana", "x1")

	_, err := client.ConfirmParticipation(ctx, connect.NewRequest(&pb.ConfirmParticipationRequest{
		GroupId: group.Id, Name: "Ana", Password: "again",
	}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	_, err = client.Draw(ctx, connect.NewRequest(&pb.DrawRequest{GroupId: group.Id}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	updated := confirm(t, client, group.Id, "Bruno", "x2")
	if updated.Phase != "fully_confirmed" || updated.ConfirmedCount != 2 {
		t.Errorf("expected fully confirmed, got %+v", updated)
	}

	_, err = client.RevealAssignment(ctx, connect.NewRequest(&pb.RevealAssignmentRequest{
		GroupId: group.Id, Name: "Ana", Password: "x1",
	}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	drawResp, err := client.Draw(ctx, connect.NewRequest(&pb.DrawRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if !drawResp.Msg.Group.Drawn || drawResp.Msg.Group.Phase != "drawn" {
		t.Errorf("expected drawn group, got %+v", drawResp.Msg.Group)
	}

	for name, tc := range map[string]struct{ password, want string }{
		"Ana":   {"x1", "Bruno"},
		"Bruno": {"x2", "Ana"},
	} {
		resp, err := client.RevealAssignment(ctx, connect.NewRequest(&pb.RevealAssignmentRequest{
			GroupId: group.Id, Name: name, Password: tc.password,
		}))
		if err != nil {
			t.Fatalf("RevealAssignment(%s) failed: %v", name, err)
		}
		if resp.Msg.Recipient != tc.want {
			t.Errorf("%s: expected %s, got %s", name, tc.want, resp.Msg.Recipient)
		}
	}

	_, err = client.RevealAssignment(ctx, connect.NewRequest(&pb.RevealAssignmentRequest{
		GroupId: group.Id, Name: "Ana", Password: "x2",
	}))
	assertCode(t, err, connect.CodePermissionDenied)

	_, err = client.Draw(ctx, connect.NewRequest(&pb.DrawRequest{GroupId: group.Id}))
	assertCode(t, err, connect.CodeFailedPrecondition)
}

func TestForceDraw(t *testing.T) {
	client := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, client, "Ana", "Bruno", "Carla")

	_, err := client.Draw(ctx, connect.NewRequest(&pb.DrawRequest{GroupId: group.Id, Force: true}))
	assertCode(t, err, connect.CodePermissionDenied)

	resp, err := client.Draw(ctx, connect.NewRequest(&pb.DrawRequest{
		GroupId: group.Id, Force: true, CreatorPassword: creatorPW,
	}))
	if err != nil {
		t.Fatalf("forced Draw failed: %v", err)
	}
	if !resp.Msg.Group.Drawn {
		t.Error("expected drawn group")
	}
	if resp.Msg.Group.ConfirmedCount != 0 {
		t.Errorf("confirmations: expected 0, got %d", resp.Msg.Group.ConfirmedCount)
	}
}

func TestCreatorMaintenance(t *testing.T) {
	client := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, client, "Ana", "Bruno")
	confirm(t, client, group.Id, "Ana", "x1")

	_, err := client.AddParticipant(ctx, connect.NewRequest(&pb.AddParticipantRequest{
		GroupId: group.Id, CreatorPassword: "wrong", Name: "Carla",
	}))
	assertCode(t, err, connect.CodePermissionDenied)

	_, err = client.AddParticipant(ctx, connect.NewRequest(&pb.AddParticipantRequest{
		GroupId: group.Id, CreatorPassword: creatorPW, Name: "bruno",
	}))
	assertCode(t, err, connect.CodeInvalidArgument)

	resp, err := client.AddParticipant(ctx, connect.NewRequest(&pb.AddParticipantRequest{
		GroupId: group.Id, CreatorPassword: creatorPW, Name: "Carla",
	}))
	if err != nil {
		t.Fatalf("AddParticipant failed: %v", err)
	}
	if len(resp.Msg.Group.Participants) != 3 {
		t.Errorf("participants: expected 3, got %v", resp.Msg.Group.Participants)
	}

	resp, err = client.RenameParticipant(ctx, connect.NewRequest(&pb.RenameParticipantRequest{
		GroupId: group.Id, CreatorPassword: creatorPW, OldName: "Ana", NewName: "Ana Maria",
	}))
	if err != nil {
		t.Fatalf("RenameParticipant failed: %v", err)
	}
	if got := resp.Msg.Group.Confirmed; len(got) != 1 || got[0] != "Ana Maria" {
		t.Errorf("confirmed: expected [Ana Maria], got %v", got)
	}

	resp, err = client.RemoveParticipant(ctx, connect.NewRequest(&pb.RemoveParticipantRequest{
		GroupId: group.Id, CreatorPassword: creatorPW, Name: "Bruno",
	}))
	if err != nil {
		t.Fatalf("RemoveParticipant failed: %v", err)
	}

	resp, err = client.RenameGroup(ctx, connect.NewRequest(&pb.RenameGroupRequest{
		GroupId: group.Id, CreatorPassword: creatorPW, Name: "Firma",
	}))
	if err != nil {
		t.Fatalf("RenameGroup failed: %v", err)
	}
	if resp.Msg.Group.Name != "Firma" {
		t.Errorf("name: expected Firma, got %q", resp.Msg.Group.Name)
	}

	issued, err := client.IssueTemporaryPassword(ctx, connect.NewRequest(&pb.IssueTemporaryPasswordRequest{
		GroupId: group.Id, CreatorPassword: creatorPW, Name: "Ana Maria",
	}))
	if err != nil {
		t.Fatalf("IssueTemporaryPassword failed: %v", err)
	}
	if issued.Msg.TemporaryPassword == "" {
		t.Fatal("expected temporary password")
	}
	if got := issued.Msg.Group.PendingPassword; len(got) != 1 || got[0] != "Ana Maria" {
		t.Errorf("pending: expected [Ana Maria], got %v", got)
	}

	_, err = client.ConfirmParticipation(ctx, connect.NewRequest(&pb.ConfirmParticipationRequest{
		GroupId: group.Id, Name: "Ana Maria", Password: "x1",
	}))
	assertCode(t, err, connect.CodePermissionDenied)
	confirm(t, client, group.Id, "Ana Maria", issued.Msg.TemporaryPassword)
	confirm(t, client, group.Id, "Carla", "x3")

	if _, err := client.Draw(ctx, connect.NewRequest(&pb.DrawRequest{GroupId: group.Id})); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	_, err = client.RemoveParticipant(ctx, connect.NewRequest(&pb.RemoveParticipantRequest{
		GroupId: group.Id, CreatorPassword: creatorPW, Name: "Carla",
	}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	resp, err = client.ClearConfirmation(ctx, connect.NewRequest(&pb.ClearConfirmationRequest{
		GroupId: group.Id, CreatorPassword: creatorPW, Name: "Carla",
	}))
	if err != nil {
		t.Fatalf("ClearConfirmation failed: %v", err)
	}
	if !resp.Msg.Group.Drawn {
		t.Error("clearing a confirmation must keep the draw")
	}

	resp, err = client.ResetDraw(ctx, connect.NewRequest(&pb.ResetDrawRequest{
		GroupId: group.Id, CreatorPassword: creatorPW,
	}))
	if err != nil {
		t.Fatalf("ResetDraw failed: %v", err)
	}
	if resp.Msg.Group.Drawn {
		t.Error("expected draw reset")
	}

	if _, err := client.RotateCreatorPassword(ctx, connect.NewRequest(&pb.RotateCreatorPasswordRequest{
		GroupId: group.Id, CreatorPassword: creatorPW, NewPassword: "rotated",
	})); err != nil {
		t.Fatalf("RotateCreatorPassword failed: %v", err)
	}
	_, err = client.ResetDraw(ctx, connect.NewRequest(&pb.ResetDrawRequest{
		GroupId: group.Id, CreatorPassword: creatorPW,
	}))
	assertCode(t, err, connect.CodePermissionDenied)
}

func TestRPCLoggedOncePerLayer(t *testing.T) {
	var global, rpcs, ops bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&global, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	opLogger := slog.New(slog.NewTextHandler(&ops, nil))
	store, err := jsonfile.New(filepath.Join(t.TempDir(), "groups.json"), jsonfile.WithLogger(opLogger))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	groupSvc := NewGroupService(lifecycle.NewService(store, lifecycle.WithLogger(opLogger)))
	path, handler := protoconnect.NewGroupServiceHandler(groupSvc,
		connect.WithInterceptors(middleware.LoggingInterceptor(slog.New(slog.NewTextHandler(&rpcs, nil)))),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client := protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL)

	group := createGroup(t, client, "Ana", "Bruno")
	_, err = client.Draw(context.Background(), connect.NewRequest(&pb.DrawRequest{GroupId: group.Id, Force: true}))
	assertCode(t, err, connect.CodePermissionDenied)

	if global.Len() != 0 {
		t.Errorf("expected nothing on the default logger, got:\n%s", global.String())
	}
	for _, procedure := range []string{protoconnect.GroupServiceCreateGroupProcedure, protoconnect.GroupServiceDrawProcedure} {
		if got := strings.Count(rpcs.String(), "procedure="+procedure); got != 1 {
			t.Errorf("%s: expected 1 interceptor line, got %d:\n%s", procedure, got, rpcs.String())
		}
	}
	for _, op := range []string{lifecycle.OpCreateGroup, lifecycle.OpDraw} {
		if got := strings.Count(ops.String(), "operation="+op+" "); got != 1 {
			t.Errorf("%s: expected 1 operation line, got %d:\n%s", op, got, ops.String())
		}
	}
}

func TestToConnectError(t *testing.T) {
	tests := []struct {
		err  error
		want connect.Code
	}{
		{err: lifecycle.ErrEmptyGroupName, want: connect.CodeInvalidArgument},
		{err: lifecycle.ErrWrongCreatorPassword, want: connect.CodePermissionDenied},
		{err: lifecycle.ErrAlreadyDrawn, want: connect.CodeFailedPrecondition},
		{err: lifecycle.ErrGroupNotFound, want: connect.CodeNotFound},
		{err: lifecycle.ErrPersistence, want: connect.CodeUnavailable},
		{err: errors.New("unexpected"), want: connect.CodeInternal},
	}
	for _, tt := range tests {
		if got := connect.CodeOf(toConnectError(tt.err)); got != tt.want {
			t.Errorf("toConnectError(%v): expected %v, got %v", tt.err, tt.want, got)
		}
	}

	dup := toConnectError(&lifecycle.DuplicateNamesError{Names: []string{"Ana", "Bruno"}})
	var connectErr *connect.Error
	if !errors.As(dup, &connectErr) {
		t.Fatalf("expected connect.Error, got %T", dup)
	}
	if got := connectErr.Meta().Values("Duplicate-Name"); len(got) != 2 {
		t.Errorf("expected 2 Duplicate-Name values, got %v", got)
	}
}
