package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hajzi/admin-console/internal/api"
	"github.com/hajzi/admin-console/internal/mocks"
)

// newAPI spins up a backend stub and a real client against it.
func newAPI(t *testing.T, handler http.Handler) API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := api.New(api.Options{
		BaseURL: srv.URL,
		Tokens:  mocks.NewMemoryTokenStore("test-token"),
	})
	require.NoError(t, err)
	return client
}
