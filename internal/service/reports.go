package service

import (
	"context"

	"github.com/hajzi/admin-console/internal/domain/model"
	apperrors "github.com/hajzi/admin-console/internal/errors"
	"github.com/hajzi/admin-console/internal/listctl"
)

// Report resolution outcomes accepted by the backend.
const (
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

// Reports moderates user-filed complaints.
type Reports struct {
	api API
}

// NewReports constructs the reports service.
func NewReports(api API) *Reports {
	return &Reports{api: api}
}

// List fetches one page of reports. Shaped as a listctl fetcher.
func (s *Reports) List(ctx context.Context, q listctl.Query) (listctl.Page[model.Report], error) {
	res, err := s.api.Get(ctx, listPath("/admin/reports", q))
	if err != nil {
		return listctl.Page[model.Report]{}, err
	}
	return decodePage[model.Report](res, q)
}

// Resolve closes a report with the given outcome.
func (s *Reports) Resolve(ctx context.Context, id, status string) error {
	if status != ReportResolved && status != ReportDismissed {
		return apperrors.Validationf("unknown report outcome %q", status)
	}
	_, err := s.api.Patch(ctx, "/admin/reports/"+id+"/resolve", map[string]string{"status": status})
	return err
}
