// Package core defines the ports between the job editor service and its storage and host adapters.
package core

import (
	"context"

	"github.com/jxcryptonotify/job-editor/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// The editor service depends on these interfaces; internal/data provides the file-backed
// implementations.

// JobConfigRepository reads and writes the job config file.
type JobConfigRepository interface {
	Load(ctx context.Context) (*model.JobDocument, error)
	Save(ctx context.Context, doc *model.JobDocument, jobs []model.Job) error
}

// CatalogRepository reads the ticker catalog.
type CatalogRepository interface {
	Load(ctx context.Context) ([]model.Ticker, error)
}

// UIConfigRepository reads the editor behavior config.
type UIConfigRepository interface {
	Load(ctx context.Context) (model.UIConfig, error)
}

// HookRunner executes an action hook command on behalf of the host application.
type HookRunner interface {
	Run(ctx context.Context, name model.ActionName, command string) error
}
