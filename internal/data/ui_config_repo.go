package data

import (
	"context"
	"encoding/json"
	"os"

	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
)

// UIConfigRepo reads the editor behavior config (configui.json).
type UIConfigRepo struct {
	path string
}

// NewUIConfigRepo creates a UIConfigRepo for the file at path.
func NewUIConfigRepo(path string) *UIConfigRepo {
	return &UIConfigRepo{path: path}
}

// Load parses the UI config. A missing or malformed file is a config load error.
func (r *UIConfigRepo) Load(ctx context.Context) (model.UIConfig, error) {
	if err := ctx.Err(); err != nil {
		return model.UIConfig{}, err
	}
	b, err := os.ReadFile(r.path)
	if err != nil {
		return model.UIConfig{}, apperrors.ConfigLoad(r.path, err)
	}
	var cfg model.UIConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return model.UIConfig{}, apperrors.ConfigLoad(r.path, err)
	}
	return cfg, nil
}
