// Package mocks provides gomock implementations of the auth ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	store := mocks.NewMockSessionStore(ctrl)
//	store.EXPECT().Load(gomock.Any(), "academicSuite_user:c1").Return(domainauth.Absent(), nil)
package mocks

// Generate mocks for the auth ports in internal/ports:
// IdentityDirectory (Resolve), SessionStore (Save, Load, Clear), SlotBackend (Get, Set, Delete).
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=identity_directory_mock.go github.com/target/academic-suite/internal/ports IdentityDirectory
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/target/academic-suite/internal/ports SessionStore
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=slot_backend_mock.go github.com/target/academic-suite/internal/ports SlotBackend
