package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hajzi/admin-console/internal/errors"
	"github.com/hajzi/admin-console/internal/listctl"
)

func TestReviews_List(t *testing.T) {
	svc := NewReviews(newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/reviews", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [{"_id": "rv1", "author": "Ali", "rating": 1, "comment": "no-show"}],
			"pagination": {"page": 1, "limit": 20, "total": 1, "pages": 1}
		}`))
	})))

	page, err := svc.List(context.Background(), listctl.Query{Page: 1, Limit: 20})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].Rating)
}

func TestReviews_Delete(t *testing.T) {
	svc := NewReviews(newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/admin/reviews/rv1", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	})))

	require.NoError(t, svc.Delete(context.Background(), "rv1"))
}

func TestReviews_DeleteForbidden(t *testing.T) {
	svc := NewReviews(newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"success":false,"message":"Access denied"}`))
	})))

	err := svc.Delete(context.Background(), "rv1")

	assert.True(t, apperrors.IsPermission(err), "a plain 403 stays a permission error")
}
