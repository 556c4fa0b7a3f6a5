package service

import (
	"context"
	"strings"

	"github.com/hajzi/admin-console/internal/domain/model"
	apperrors "github.com/hajzi/admin-console/internal/errors"
)

// Broadcast audiences accepted by the backend.
const (
	TargetAll           = "all"
	TargetClients       = "clients"
	TargetPhotographers = "photographers"
)

// Notifications sends platform-wide announcements.
type Notifications struct {
	api API
}

// NewNotifications constructs the notifications service.
func NewNotifications(api API) *Notifications {
	return &Notifications{api: api}
}

// Broadcast pushes an announcement to the chosen audience. Title and body
// are validated locally so an empty form never reaches the backend.
func (s *Notifications) Broadcast(ctx context.Context, input model.BroadcastInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return apperrors.Validation("a notification title is required")
	}
	if strings.TrimSpace(input.Body) == "" {
		return apperrors.Validation("a notification body is required")
	}
	switch input.Target {
	case TargetAll, TargetClients, TargetPhotographers:
	case "":
		input.Target = TargetAll
	default:
		return apperrors.Validationf("unknown audience %q", input.Target)
	}
	_, err := s.api.Post(ctx, "/admin/notifications/broadcast", input)
	return err
}
