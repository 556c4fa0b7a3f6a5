package service

import (
	"context"

	"github.com/hajzi/admin-console/internal/domain/model"
	"github.com/hajzi/admin-console/internal/listctl"
)

// Users manages marketplace accounts.
type Users struct {
	api API
}

// NewUsers constructs the users service.
func NewUsers(api API) *Users {
	return &Users{api: api}
}

// List fetches one page of users. Shaped as a listctl fetcher.
func (s *Users) List(ctx context.Context, q listctl.Query) (listctl.Page[model.User], error) {
	res, err := s.api.Get(ctx, listPath("/admin/users", q))
	if err != nil {
		return listctl.Page[model.User]{}, err
	}
	return decodePage[model.User](res, q)
}

// Get fetches a single user.
func (s *Users) Get(ctx context.Context, id string) (model.User, error) {
	res, err := s.api.Get(ctx, "/admin/users/"+id)
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := res.Decode(&user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Create registers a new account.
func (s *Users) Create(ctx context.Context, input model.UserInput) (model.User, error) {
	res, err := s.api.Post(ctx, "/admin/users", input)
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := res.Decode(&user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Update replaces the writable fields of an account.
func (s *Users) Update(ctx context.Context, id string, input model.UserInput) (model.User, error) {
	res, err := s.api.Put(ctx, "/admin/users/"+id, input)
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := res.Decode(&user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Delete removes an account.
func (s *Users) Delete(ctx context.Context, id string) error {
	_, err := s.api.Delete(ctx, "/admin/users/"+id)
	return err
}

// SetBlocked flips the account's blocked flag.
func (s *Users) SetBlocked(ctx context.Context, id string, blocked bool) error {
	_, err := s.api.Patch(ctx, "/admin/users/"+id+"/block", map[string]bool{"isBlocked": blocked})
	return err
}
