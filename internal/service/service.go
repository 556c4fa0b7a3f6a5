package service

// Package service exposes one typed facade per backend resource. Each list
// method matches the listctl fetcher shape so a screen can plug it straight
// into its controller; mutations return classified errors untouched.

import (
	"context"
	"net/url"
	"strconv"

	"github.com/hajzi/admin-console/internal/api"
	"github.com/hajzi/admin-console/internal/listctl"
)

// API is the slice of the HTTP client the services need.
type API interface {
	Get(ctx context.Context, path string) (*api.Result, error)
	Post(ctx context.Context, path string, body any) (*api.Result, error)
	Put(ctx context.Context, path string, body any) (*api.Result, error)
	Patch(ctx context.Context, path string, body any) (*api.Result, error)
	Delete(ctx context.Context, path string) (*api.Result, error)
}

// listPath renders a list query onto a base path.
func listPath(base string, q listctl.Query) string {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	return base + "?" + values.Encode()
}

// decodePage turns a list response into a controller page. When the backend
// omits the pagination block the query's own shape fills the gaps.
func decodePage[T any](res *api.Result, q listctl.Query) (listctl.Page[T], error) {
	var items []T
	if err := res.Decode(&items); err != nil {
		return listctl.Page[T]{}, err
	}

	page := listctl.Page[T]{
		Items: items,
		Page:  q.Page,
		Limit: q.Limit,
		Total: len(items),
	}
	if p := res.Pagination; p != nil {
		page.Page = p.Page
		page.Limit = p.Limit
		page.Total = p.Total
		page.PageCount = p.Pages
	}
	return page, nil
}
