package service

import (
	"context"

	"github.com/hajzi/admin-console/internal/domain/model"
	"github.com/hajzi/admin-console/internal/listctl"
)

// Admins manages console staff accounts. The backend restricts every call to
// superadmin; the client only surfaces the resulting permission errors.
type Admins struct {
	api API
}

// NewAdmins constructs the admins service.
func NewAdmins(api API) *Admins {
	return &Admins{api: api}
}

// List fetches one page of staff accounts. Shaped as a listctl fetcher.
func (s *Admins) List(ctx context.Context, q listctl.Query) (listctl.Page[model.AdminAccount], error) {
	res, err := s.api.Get(ctx, listPath("/admin/admins", q))
	if err != nil {
		return listctl.Page[model.AdminAccount]{}, err
	}
	return decodePage[model.AdminAccount](res, q)
}

// Create adds a staff account.
func (s *Admins) Create(ctx context.Context, input model.AdminAccountInput) (model.AdminAccount, error) {
	res, err := s.api.Post(ctx, "/admin/admins", input)
	if err != nil {
		return model.AdminAccount{}, err
	}
	var account model.AdminAccount
	if err := res.Decode(&account); err != nil {
		return model.AdminAccount{}, err
	}
	return account, nil
}

// Update replaces the writable fields of a staff account, permissions
// included.
func (s *Admins) Update(ctx context.Context, id string, input model.AdminAccountInput) (model.AdminAccount, error) {
	res, err := s.api.Put(ctx, "/admin/admins/"+id, input)
	if err != nil {
		return model.AdminAccount{}, err
	}
	var account model.AdminAccount
	if err := res.Decode(&account); err != nil {
		return model.AdminAccount{}, err
	}
	return account, nil
}

// Delete removes a staff account.
func (s *Admins) Delete(ctx context.Context, id string) error {
	_, err := s.api.Delete(ctx, "/admin/admins/"+id)
	return err
}
