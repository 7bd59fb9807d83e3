package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/secretsanta/internal/lifecycle"
	"github.com/mmynk/secretsanta/internal/models"
	pb "github.com/mmynk/secretsanta/pkg/proto"
	"github.com/mmynk/secretsanta/pkg/proto/protoconnect"
)

// Ensure GroupService implements protoconnect.GroupServiceHandler
var _ protoconnect.GroupServiceHandler = (*GroupService)(nil)

// GroupService implements the Connect GroupService on top of lifecycle.Service.
type GroupService struct {
	protoconnect.UnimplementedGroupServiceHandler
	groups *lifecycle.Service
}

// NewGroupService creates a new GroupService.
func NewGroupService(groups *lifecycle.Service) *GroupService {
	return &GroupService{groups: groups}
}

// CreateGroup creates a new group.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	group, err := s.groups.CreateGroup(ctx, req.Msg.Name, req.Msg.CreatorPassword, req.Msg.Participants)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.CreateGroupResponse{Group: toProtoGroup(group)}), nil
}

// GetGroup returns the public view of a group.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	group, err := s.groups.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetGroupResponse{Group: toProtoGroup(group)}), nil
}

// ConfirmParticipation confirms a participant with a self-chosen password.
func (s *GroupService) ConfirmParticipation(ctx context.Context, req *connect.Request[pb.ConfirmParticipationRequest]) (*connect.Response[pb.ConfirmParticipationResponse], error) {
	group, err := s.groups.Confirm(ctx, req.Msg.GroupId, req.Msg.Name, req.Msg.Password)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.ConfirmParticipationResponse{Group: toProtoGroup(group)}), nil
}

// Draw runs the draw, either self-service or forced by the creator.
func (s *GroupService) Draw(ctx context.Context, req *connect.Request[pb.DrawRequest]) (*connect.Response[pb.DrawResponse], error) {
	group, err := s.groups.Draw(ctx, req.Msg.GroupId, lifecycle.DrawRequest{
		Force:           req.Msg.Force,
		CreatorPassword: req.Msg.CreatorPassword,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.DrawResponse{Group: toProtoGroup(group)}), nil
}

// RevealAssignment returns the caller's recipient.
func (s *GroupService) RevealAssignment(ctx context.Context, req *connect.Request[pb.RevealAssignmentRequest]) (*connect.Response[pb.RevealAssignmentResponse], error) {
	recipient, err := s.groups.Reveal(ctx, req.Msg.GroupId, req.Msg.Name, req.Msg.Password)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.RevealAssignmentResponse{Recipient: recipient}), nil
}

// RenameGroup changes the group name.
func (s *GroupService) RenameGroup(ctx context.Context, req *connect.Request[pb.RenameGroupRequest]) (*connect.Response[pb.GroupResponse], error) {
	return groupResponse(s.groups.RenameGroup(ctx, req.Msg.GroupId, req.Msg.CreatorPassword, req.Msg.Name))
}

// AddParticipant adds a participant before the draw.
func (s *GroupService) AddParticipant(ctx context.Context, req *connect.Request[pb.AddParticipantRequest]) (*connect.Response[pb.GroupResponse], error) {
	return groupResponse(s.groups.AddParticipant(ctx, req.Msg.GroupId, req.Msg.CreatorPassword, req.Msg.Name))
}

// RemoveParticipant removes a participant before the draw.
func (s *GroupService) RemoveParticipant(ctx context.Context, req *connect.Request[pb.RemoveParticipantRequest]) (*connect.Response[pb.GroupResponse], error) {
	return groupResponse(s.groups.RemoveParticipant(ctx, req.Msg.GroupId, req.Msg.CreatorPassword, req.Msg.Name))
}

// RenameParticipant renames a participant before the draw.
func (s *GroupService) RenameParticipant(ctx context.Context, req *connect.Request[pb.RenameParticipantRequest]) (*connect.Response[pb.GroupResponse], error) {
	return groupResponse(s.groups.RenameParticipant(ctx, req.Msg.GroupId, req.Msg.CreatorPassword, req.Msg.OldName, req.Msg.NewName))
}

// ClearConfirmation revokes a participant's confirmation.
func (s *GroupService) ClearConfirmation(ctx context.Context, req *connect.Request[pb.ClearConfirmationRequest]) (*connect.Response[pb.GroupResponse], error) {
	return groupResponse(s.groups.ClearConfirmation(ctx, req.Msg.GroupId, req.Msg.CreatorPassword, req.Msg.Name))
}

// ResetDraw discards the draw.
func (s *GroupService) ResetDraw(ctx context.Context, req *connect.Request[pb.ResetDrawRequest]) (*connect.Response[pb.GroupResponse], error) {
	return groupResponse(s.groups.ResetDraw(ctx, req.Msg.GroupId, req.Msg.CreatorPassword))
}

// RotateCreatorPassword replaces the creator password.
func (s *GroupService) RotateCreatorPassword(ctx context.Context, req *connect.Request[pb.RotateCreatorPasswordRequest]) (*connect.Response[pb.GroupResponse], error) {
	return groupResponse(s.groups.RotateCreatorPassword(ctx, req.Msg.GroupId, req.Msg.CreatorPassword, req.Msg.NewPassword))
}

// IssueTemporaryPassword issues a one-time confirmation password.
func (s *GroupService) IssueTemporaryPassword(ctx context.Context, req *connect.Request[pb.IssueTemporaryPasswordRequest]) (*connect.Response[pb.IssueTemporaryPasswordResponse], error) {
	group, token, err := s.groups.IssueTemporaryPassword(ctx, req.Msg.GroupId, req.Msg.CreatorPassword, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.IssueTemporaryPasswordResponse{
		Group:             toProtoGroup(group),
		TemporaryPassword: token,
	}), nil
}

func groupResponse(group *models.Group, err error) (*connect.Response[pb.GroupResponse], error) {
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GroupResponse{Group: toProtoGroup(group)}), nil
}

// toConnectError maps lifecycle error kinds to connect codes.
func toConnectError(err error) error {
	var code connect.Code
	switch lifecycle.KindOf(err) {
	case lifecycle.KindValidation:
		code = connect.CodeInvalidArgument
	case lifecycle.KindAuthorization:
		code = connect.CodePermissionDenied
	case lifecycle.KindStateConflict:
		code = connect.CodeFailedPrecondition
	case lifecycle.KindDrawFailure:
		code = connect.CodeAborted
	case lifecycle.KindNotFound:
		code = connect.CodeNotFound
	case lifecycle.KindPersistence:
		code = connect.CodeUnavailable
	default:
		code = connect.CodeInternal
	}

	connectErr := connect.NewError(code, err)
	var dupErr *lifecycle.DuplicateNamesError
	if errors.As(err, &dupErr) {
		for _, name := range dupErr.Names {
			connectErr.Meta().Add("Duplicate-Name", name)
		}
	}
	return connectErr
}

func toProtoGroup(g *models.Group) *pb.Group {
	confirmed := make([]string, 0, len(g.ConfirmedPasswordHashes))
	pending := make([]string, 0, len(g.PendingPasswordHashes))
	for _, p := range g.Participants {
		if g.IsConfirmed(p) {
			confirmed = append(confirmed, p)
		}
		if g.HasPendingPassword(p) {
			pending = append(pending, p)
		}
	}
	return &pb.Group{
		Id:                 g.ID,
		Name:               g.Name,
		Participants:       append([]string(nil), g.Participants...),
		Confirmed:          confirmed,
		PendingPassword:    pending,
		ConfirmedCount:     int32(len(confirmed)),
		Phase:              string(g.Phase()),
		Drawn:              g.Drawn,
		HasCreatorPassword: g.CreatorPasswordHash != "",
	}
}
