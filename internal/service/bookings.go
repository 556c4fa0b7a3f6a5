package service

import (
	"context"

	"github.com/hajzi/admin-console/internal/domain/model"
	"github.com/hajzi/admin-console/internal/listctl"
)

// Bookings exposes the read-only reservation screens.
type Bookings struct {
	api API
}

// NewBookings constructs the bookings service.
func NewBookings(api API) *Bookings {
	return &Bookings{api: api}
}

// List fetches one page of bookings. Shaped as a listctl fetcher.
func (s *Bookings) List(ctx context.Context, q listctl.Query) (listctl.Page[model.Booking], error) {
	res, err := s.api.Get(ctx, listPath("/admin/bookings", q))
	if err != nil {
		return listctl.Page[model.Booking]{}, err
	}
	return decodePage[model.Booking](res, q)
}

// Get fetches a single booking.
func (s *Bookings) Get(ctx context.Context, id string) (model.Booking, error) {
	res, err := s.api.Get(ctx, "/admin/bookings/"+id)
	if err != nil {
		return model.Booking{}, err
	}
	var booking model.Booking
	if err := res.Decode(&booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}
