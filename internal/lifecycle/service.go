package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/secretsanta/internal/draw"
	"github.com/mmynk/secretsanta/internal/metrics"
	"github.com/mmynk/secretsanta/internal/models"
	"github.com/mmynk/secretsanta/internal/storage"
)

// Operation names used for logging and metrics.
const (
	OpCreateGroup            = "create_group"
	OpGetGroup               = "get_group"
	OpConfirm                = "confirm"
	OpDraw                   = "draw"
	OpReveal                 = "reveal"
	OpRenameGroup            = "rename_group"
	OpAddParticipant         = "add_participant"
	OpRemoveParticipant      = "remove_participant"
	OpRenameParticipant      = "rename_participant"
	OpClearConfirmation      = "clear_confirmation"
	OpResetDraw              = "reset_draw"
	OpRotateCreatorPassword  = "rotate_creator_password"
	OpIssueTemporaryPassword = "issue_temporary_password"
)

// Service runs lifecycle operations against a GroupStore.
//
// Each call loads the store once, applies one operation and, if it succeeded,
// saves once. Nothing is cached between calls. A failed save discards the
// mutation and is reported as ErrPersistence.
type Service struct {
	store   storage.GroupStore
	engine  *draw.Engine
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithEngine sets the draw engine. Defaults to draw.New() observed by the
// service metrics.
func WithEngine(e *draw.Engine) ServiceOption {
	return func(s *Service) {
		s.engine = e
	}
}

// WithMetrics records operation outcomes and draw attempts.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service over store.
func NewService(store storage.GroupStore, opts ...ServiceOption) *Service {
	s := &Service{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.engine == nil {
		s.engine = draw.New(draw.WithObserver(s.metrics.ObserveDraw))
	}
	return s
}

// CreateGroup validates the input and stores a new group.
func (s *Service) CreateGroup(ctx context.Context, name, creatorPassword string, participants []string) (g *models.Group, err error) {
	defer func() { s.record(OpCreateGroup, groupIDOf(g), err) }()

	g, err = NewGroup(name, creatorPassword, participants)
	if err != nil {
		return nil, err
	}

	groups, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for groups[g.ID] != nil {
		g.ID = NewGroupID()
	}
	groups[g.ID] = g

	if err := s.save(ctx, groups); err != nil {
		return nil, err
	}
	return g.Clone(), nil
}

// GetGroup returns a copy of the group.
func (s *Service) GetGroup(ctx context.Context, groupID string) (g *models.Group, err error) {
	defer func() { s.recordRead(OpGetGroup, groupID, err) }()

	groups, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	g, ok := groups[groupID]
	if !ok {
		return nil, ErrGroupNotFound
	}
	return g.Clone(), nil
}

// Confirm records a participant's confirmation.
func (s *Service) Confirm(ctx context.Context, groupID, name, password string) (*models.Group, error) {
	return s.mutate(ctx, OpConfirm, groupID, func(g *models.Group) error {
		return Confirm(g, name, password)
	})
}

// Draw computes the assignments. See the package-level Draw for authorization.
func (s *Service) Draw(ctx context.Context, groupID string, req DrawRequest) (*models.Group, error) {
	return s.mutate(ctx, OpDraw, groupID, func(g *models.Group) error {
		return Draw(g, s.engine, req)
	})
}

// Reveal returns the recipient assigned to name. It never writes.
func (s *Service) Reveal(ctx context.Context, groupID, name, password string) (recipient string, err error) {
	defer func() { s.recordRead(OpReveal, groupID, err) }()

	groups, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	g, ok := groups[groupID]
	if !ok {
		return "", ErrGroupNotFound
	}
	return Reveal(g, name, password)
}

// RenameGroup changes the group's display name.
func (s *Service) RenameGroup(ctx context.Context, groupID, creatorPassword, name string) (*models.Group, error) {
	return s.mutate(ctx, OpRenameGroup, groupID, func(g *models.Group) error {
		return RenameGroup(g, creatorPassword, name)
	})
}

// AddParticipant adds name to the roster.
func (s *Service) AddParticipant(ctx context.Context, groupID, creatorPassword, name string) (*models.Group, error) {
	return s.mutate(ctx, OpAddParticipant, groupID, func(g *models.Group) error {
		return AddParticipant(g, creatorPassword, name)
	})
}

// RemoveParticipant removes name from the roster.
func (s *Service) RemoveParticipant(ctx context.Context, groupID, creatorPassword, name string) (*models.Group, error) {
	return s.mutate(ctx, OpRemoveParticipant, groupID, func(g *models.Group) error {
		return RemoveParticipant(g, creatorPassword, name)
	})
}

// RenameParticipant renames a roster entry.
func (s *Service) RenameParticipant(ctx context.Context, groupID, creatorPassword, oldName, newName string) (*models.Group, error) {
	return s.mutate(ctx, OpRenameParticipant, groupID, func(g *models.Group) error {
		return RenameParticipant(g, creatorPassword, oldName, newName)
	})
}

// ClearConfirmation revokes a participant's confirmation.
func (s *Service) ClearConfirmation(ctx context.Context, groupID, creatorPassword, name string) (*models.Group, error) {
	return s.mutate(ctx, OpClearConfirmation, groupID, func(g *models.Group) error {
		return ClearConfirmation(g, creatorPassword, name)
	})
}

// ResetDraw discards the current draw.
func (s *Service) ResetDraw(ctx context.Context, groupID, creatorPassword string) (*models.Group, error) {
	return s.mutate(ctx, OpResetDraw, groupID, func(g *models.Group) error {
		return ResetDraw(g, creatorPassword)
	})
}

// RotateCreatorPassword replaces the creator password.
func (s *Service) RotateCreatorPassword(ctx context.Context, groupID, currentPassword, newPassword string) (*models.Group, error) {
	return s.mutate(ctx, OpRotateCreatorPassword, groupID, func(g *models.Group) error {
		return RotateCreatorPassword(g, currentPassword, newPassword)
	})
}

// IssueTemporaryPassword issues a one-time confirmation password for name.
// The token is returned only if it was persisted.
func (s *Service) IssueTemporaryPassword(ctx context.Context, groupID, creatorPassword, name string) (*models.Group, string, error) {
	var token string
	g, err := s.mutate(ctx, OpIssueTemporaryPassword, groupID, func(g *models.Group) error {
		var err error
		token, err = IssueTemporaryPassword(g, creatorPassword, name)
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return g, token, nil
}

// mutate loads the store, applies fn to the group and saves the whole store.
func (s *Service) mutate(ctx context.Context, op, groupID string, fn func(*models.Group) error) (result *models.Group, err error) {
	defer func() { s.record(op, groupID, err) }()

	groups, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	g, ok := groups[groupID]
	if !ok {
		return nil, ErrGroupNotFound
	}
	if err := fn(g); err != nil {
		return nil, err
	}
	if err := s.save(ctx, groups); err != nil {
		return nil, err
	}
	return g.Clone(), nil
}

func (s *Service) load(ctx context.Context) (models.Store, error) {
	groups, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if groups == nil {
		groups = models.Store{}
	}
	return groups, nil
}

func (s *Service) save(ctx context.Context, groups models.Store) error {
	if err := s.store.Save(ctx, groups); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *Service) record(op, groupID string, err error) {
	if err == nil {
		s.metrics.RecordOperation(op, "ok")
		s.logger.Info("Group updated", "operation", op, "group_id", groupID)
		return
	}
	kind := KindOf(err)
	s.metrics.RecordOperation(op, string(kind))
	if kind == KindPersistence || kind == KindInternal {
		s.logger.Error("Group operation failed", "operation", op, "group_id", groupID, "kind", kind, "error", err)
		return
	}
	s.logger.Warn("Group operation rejected", "operation", op, "group_id", groupID, "kind", kind, "error", err)
}

func (s *Service) recordRead(op, groupID string, err error) {
	if err == nil {
		s.metrics.RecordOperation(op, "ok")
		s.logger.Debug("Group read", "operation", op, "group_id", groupID)
		return
	}
	s.record(op, groupID, err)
}

func groupIDOf(g *models.Group) string {
	if g == nil {
		return ""
	}
	return g.ID
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
