package service

import (
	"context"

	"github.com/hajzi/admin-console/internal/domain/model"
	"github.com/hajzi/admin-console/internal/listctl"
)

// Reviews moderates client ratings.
type Reviews struct {
	api API
}

// NewReviews constructs the reviews service.
func NewReviews(api API) *Reviews {
	return &Reviews{api: api}
}

// List fetches one page of reviews. Shaped as a listctl fetcher.
func (s *Reviews) List(ctx context.Context, q listctl.Query) (listctl.Page[model.Review], error) {
	res, err := s.api.Get(ctx, listPath("/admin/reviews", q))
	if err != nil {
		return listctl.Page[model.Review]{}, err
	}
	return decodePage[model.Review](res, q)
}

// Delete removes an abusive review.
func (s *Reviews) Delete(ctx context.Context, id string) error {
	_, err := s.api.Delete(ctx, "/admin/reviews/"+id)
	return err
}
