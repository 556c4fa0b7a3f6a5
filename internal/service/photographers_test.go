package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hajzi/admin-console/internal/errors"
	"github.com/hajzi/admin-console/internal/listctl"
)

func TestPhotographers_PendingUsesDedicatedPath(t *testing.T) {
	svc := NewPhotographers(newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/photographers/pending", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [{"_id": "p1", "name": "Omar", "status": "pending"}],
			"pagination": {"page": 1, "limit": 20, "total": 1, "pages": 1}
		}`))
	})))

	page, err := svc.Pending(context.Background(), listctl.Query{Page: 1, Limit: 20})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "pending", page.Items[0].Status)
}

func TestPhotographers_Approve(t *testing.T) {
	svc := NewPhotographers(newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/admin/photographers/p1/approve", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	})))

	require.NoError(t, svc.Approve(context.Background(), "p1"))
}

func TestPhotographers_RejectRequiresReason(t *testing.T) {
	called := false
	svc := NewPhotographers(newAPI(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	})))

	err := svc.Reject(context.Background(), "p1", "   ")

	assert.True(t, apperrors.IsValidation(err))
	assert.False(t, called, "an empty reason never reaches the backend")
}

func TestPhotographers_RejectSendsReason(t *testing.T) {
	svc := NewPhotographers(newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/photographers/p1/reject", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "portfolio incomplete", body["reason"])
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	})))

	require.NoError(t, svc.Reject(context.Background(), "p1", "portfolio incomplete"))
}

func TestPhotographers_Revoke(t *testing.T) {
	svc := NewPhotographers(newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/photographers/p1/revoke", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	})))

	require.NoError(t, svc.Revoke(context.Background(), "p1"))
}
