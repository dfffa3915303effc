package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jxcryptonotify/job-editor/config"
	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
	"github.com/jxcryptonotify/job-editor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, withCatalog bool) config.AppConfig {
	t.Helper()
	jobs := testutil.NewJobConfig().
		WithRow(model.RawRow{"a@b.com", "1", "1027", "1", "2", ">", "0"}).
		Build()
	catalog := ""
	if withCatalog {
		catalog = testutil.DefaultCatalog()
	}
	files := testutil.WriteEditorFiles(t, jobs, `{"actions": {"enable": true, "push": "true"}}`, catalog)

	cfg := config.AppConfig{
		Files:   config.FilesConfig{JobsConfigPath: files.JobsPath, UIConfigPath: files.UIPath},
		Catalog: config.CatalogConfig{Path: files.CatalogPath},
	}
	cfg.Sanitize()
	return cfg
}

func TestBuildEditor(t *testing.T) {
	cfg := testConfig(t, true)

	ed, err := BuildEditor(context.Background(), EditorOptions{Config: cfg})
	require.NoError(t, err)
	require.NotNil(t, ed.Hooks)

	rows := ed.Service.Table().Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "1|BTC - Bitcoin", rows[0].Values.Get(model.FieldSourceCoin))
	assert.Equal(t, []model.ActionName{model.ActionPush}, ed.Service.EnabledActions())
	assert.Equal(t, model.DefaultComparisons, ed.Service.UIConfig().Comparisons())
}

func TestBuildEditor_DownloadsMissingCatalog(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(testutil.DefaultCatalog()))
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(t, false)
	cfg.Catalog.Endpoint = srv.URL

	ed, err := BuildEditor(context.Background(), EditorOptions{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
	assert.FileExists(t, cfg.Catalog.Path)
	assert.Equal(t, 3, ed.Service.Directory().Len())

	_, err = BuildEditor(context.Background(), EditorOptions{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, 1, hits, "existing catalog is not downloaded again")
}

func TestBuildEditor_MissingCatalog(t *testing.T) {
	cfg := testConfig(t, false)

	_, err := BuildEditor(context.Background(), EditorOptions{Config: cfg})
	require.Error(t, err)
	assert.True(t, apperrors.IsCatalogLoad(err))
}
