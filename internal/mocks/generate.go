// Package mocks provides test doubles for the client runtime's ports.
//
// Generated mocks use go.uber.org/mock (gomock). To regenerate after
// interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	store := mocks.NewMockTokenStore(ctrl)
//	store.EXPECT().Clear().Return(nil)
//
// Hand-written doubles for simple stateful fakes live in doubles.go.
package mocks

// Generate mocks for the TokenStore and Navigator ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ports_mock.go github.com/hajzi/admin-console/internal/ports TokenStore,Navigator
