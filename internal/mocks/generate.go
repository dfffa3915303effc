// Package mocks provides mock implementations of the core ports for tests.
//
// The mocks are generated with go.uber.org/mock (gomock). To regenerate them after
// an interface change, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	repo := mocks.NewMockJobConfigRepository(ctrl)
//	repo.EXPECT().Load(gomock.Any()).Return(doc, nil)
package mocks

// Generate mocks for the repository and hook ports in internal/core:
// JobConfigRepository (Load, Save), CatalogRepository (Load), UIConfigRepository (Load), HookRunner (Run).
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=core_mock.go github.com/jxcryptonotify/job-editor/internal/core JobConfigRepository,CatalogRepository,UIConfigRepository,HookRunner
