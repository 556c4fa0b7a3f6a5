package service

import (
	"context"
	"strings"

	"github.com/hajzi/admin-console/internal/domain/model"
	apperrors "github.com/hajzi/admin-console/internal/errors"
	"github.com/hajzi/admin-console/internal/listctl"
)

// Photographers manages provider profiles and their verification lifecycle.
type Photographers struct {
	api API
}

// NewPhotographers constructs the photographers service.
func NewPhotographers(api API) *Photographers {
	return &Photographers{api: api}
}

// List fetches one page of photographers. Shaped as a listctl fetcher.
func (s *Photographers) List(ctx context.Context, q listctl.Query) (listctl.Page[model.Photographer], error) {
	res, err := s.api.Get(ctx, listPath("/admin/photographers", q))
	if err != nil {
		return listctl.Page[model.Photographer]{}, err
	}
	return decodePage[model.Photographer](res, q)
}

// Pending fetches one page of profiles awaiting verification.
func (s *Photographers) Pending(ctx context.Context, q listctl.Query) (listctl.Page[model.Photographer], error) {
	res, err := s.api.Get(ctx, listPath("/admin/photographers/pending", q))
	if err != nil {
		return listctl.Page[model.Photographer]{}, err
	}
	return decodePage[model.Photographer](res, q)
}

// Approve verifies a pending profile.
func (s *Photographers) Approve(ctx context.Context, id string) error {
	_, err := s.api.Patch(ctx, "/admin/photographers/"+id+"/approve", nil)
	return err
}

// Reject declines a pending profile. The reason is required; it is shown to
// the photographer.
func (s *Photographers) Reject(ctx context.Context, id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.Validation("a rejection reason is required")
	}
	_, err := s.api.Patch(ctx, "/admin/photographers/"+id+"/reject", map[string]string{"reason": reason})
	return err
}

// Revoke withdraws verification from an approved profile.
func (s *Photographers) Revoke(ctx context.Context, id string) error {
	_, err := s.api.Patch(ctx, "/admin/photographers/"+id+"/revoke", nil)
	return err
}
