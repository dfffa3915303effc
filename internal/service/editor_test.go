package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jxcryptonotify/job-editor/internal/data"
	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	"github.com/jxcryptonotify/job-editor/internal/domain/rules"
	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
	"github.com/jxcryptonotify/job-editor/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"
)

var testTickers = []model.Ticker{
	{ID: "1", Name: "Bitcoin", Symbol: "BTC", MarketCapFlag: 1, VolumeFlag: 1},
	{ID: "1027", Name: "Ethereum", Symbol: "ETH", MarketCapFlag: 1, VolumeFlag: 1},
	{ID: "7", Name: "Delisted", Symbol: "DEL", MarketCapFlag: 0, VolumeFlag: 1},
}

type editorMocks struct {
	jobs    *mocks.MockJobConfigRepository
	catalog *mocks.MockCatalogRepository
	ui      *mocks.MockUIConfigRepository
}

func newTestEditor(t *testing.T) (*EditorService, editorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := editorMocks{
		jobs:    mocks.NewMockJobConfigRepository(ctrl),
		catalog: mocks.NewMockCatalogRepository(ctrl),
		ui:      mocks.NewMockUIConfigRepository(ctrl),
	}
	svc := MustNewEditorService(EditorServiceOptions{Jobs: m.jobs, Catalog: m.catalog, UI: m.ui})
	return svc, m
}

func expectLoad(m editorMocks, ui model.UIConfig, doc *model.JobDocument) {
	m.ui.EXPECT().Load(gomock.Any()).Return(ui, nil)
	m.catalog.EXPECT().Load(gomock.Any()).Return(testTickers, nil)
	m.jobs.EXPECT().Load(gomock.Any()).Return(doc, nil)
}

func validRow() model.RawRow {
	return model.RawRow{"a@b.com", "1|BTC - Bitcoin", "1027|ETH - Ethereum", "1.5", "2", "<", "0"}
}

func TestNewEditorService_RequiresRepositories(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	jobs := mocks.NewMockJobConfigRepository(ctrl)
	catalog := mocks.NewMockCatalogRepository(ctrl)
	ui := mocks.NewMockUIConfigRepository(ctrl)

	tests := []struct {
		name string
		opts EditorServiceOptions
	}{
		{name: "jobs", opts: EditorServiceOptions{Catalog: catalog, UI: ui}},
		{name: "catalog", opts: EditorServiceOptions{Jobs: jobs, UI: ui}},
		{name: "ui", opts: EditorServiceOptions{Jobs: jobs, Catalog: catalog}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEditorService(tt.opts)
			require.Error(t, err)
			assert.Panics(t, func() { MustNewEditorService(tt.opts) })
		})
	}
}

func TestEditorService_Load(t *testing.T) {
	svc, m := newTestEditor(t)
	doc := &model.JobDocument{Rows: []model.RawRow{
		{"a@b.com", "1", "1027", "1.5", "2", "<", "0"},
		{"c@d.com", "99", "7", "3", "4", ">", "1"},
	}}
	expectLoad(m, model.UIConfig{Comparison: []string{"<", ">"}}, doc)

	require.NoError(t, svc.Load(context.Background()))

	rows := svc.Table().Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "1|BTC - Bitcoin", rows[0].Values.Get(model.FieldSourceCoin))
	assert.Equal(t, "1027|ETH - Ethereum", rows[0].Values.Get(model.FieldTargetCoin))
	assert.Equal(t, "", rows[1].Values.Get(model.FieldSourceCoin), "unknown id renders blank")
	assert.Equal(t, "", rows[1].Values.Get(model.FieldTargetCoin), "inactive ticker renders blank")
	assert.Equal(t, "c@d.com", rows[1].Values.Get(model.FieldEmail))

	assert.Equal(t, 2, svc.Directory().Len())
	assert.Equal(t, []string{"<", ">"}, svc.UIConfig().Comparisons())
	assert.Equal(t, "1", doc.Rows[0].Get(model.FieldSourceCoin), "stored rows keep ids")
}

func TestEditorService_Load_CatalogFailureKeepsState(t *testing.T) {
	svc, m := newTestEditor(t)
	expectLoad(m, model.UIConfig{}, &model.JobDocument{Rows: []model.RawRow{validRowIDs()}})
	require.NoError(t, svc.Load(context.Background()))

	loadErr := apperrors.CatalogLoad("cryptos.json", errors.New("boom"))
	m.ui.EXPECT().Load(gomock.Any()).Return(model.UIConfig{}, nil)
	m.catalog.EXPECT().Load(gomock.Any()).Return(nil, loadErr)

	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCatalogLoad(err))
	assert.Equal(t, 1, svc.Table().Len())
	assert.Equal(t, 2, svc.Directory().Len())
}

func TestEditorService_Load_JobsFailureKeepsState(t *testing.T) {
	svc, m := newTestEditor(t)
	m.ui.EXPECT().Load(gomock.Any()).Return(model.UIConfig{}, nil)
	m.catalog.EXPECT().Load(gomock.Any()).Return(testTickers, nil)
	m.jobs.EXPECT().Load(gomock.Any()).Return(nil, apperrors.ConfigLoad("config.json", errors.New("missing jobs")))

	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsConfigLoad(err))
	assert.Equal(t, 0, svc.Directory().Len(), "directory not replaced on failure")
	assert.Equal(t, 0, svc.Table().Len())
}

func validRowIDs() model.RawRow {
	return model.RawRow{"a@b.com", "1", "1027", "1.5", "2", "<", "0"}
}

func TestEditorService_SaveJobs(t *testing.T) {
	svc, m := newTestEditor(t)
	doc := &model.JobDocument{}
	expectLoad(m, model.UIConfig{}, doc)
	require.NoError(t, svc.Load(context.Background()))

	var saved []model.Job
	m.jobs.EXPECT().Save(gomock.Any(), doc, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *model.JobDocument, jobs []model.Job) error {
			saved = jobs
			return nil
		})

	n, err := svc.SaveJobs(context.Background(), []model.RawRow{validRow(), {}, {" ", "", "", "", "", "", ""}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, saved, 1)
	assert.Equal(t, "1", saved[0].SourceCoin)
	assert.Equal(t, "1027", saved[0].TargetCoin)
	assert.Equal(t, "1.5", saved[0].SourceValue.String())
	assert.Equal(t, int64(0), saved[0].EmailSentCount)
}

func TestEditorService_SaveJobs_AbortsWithoutWriting(t *testing.T) {
	tests := []struct {
		name  string
		row   model.RawRow
		field model.Field
		rule  rules.RuleID
	}{
		{
			name:  "bad email",
			row:   validRow().With(model.FieldEmail, "not-an-email"),
			field: model.FieldEmail,
			rule:  rules.RuleEmailFormat,
		},
		{
			name:  "unknown ticker",
			row:   validRow().With(model.FieldSourceCoin, "99|XXX - Gone"),
			field: model.FieldSourceCoin,
			rule:  rules.RuleSourceCoinKnown,
		},
		{
			name:  "negative count",
			row:   validRow().With(model.FieldEmailSentCount, "-1"),
			field: model.FieldEmailSentCount,
			rule:  rules.RuleCountNonNegativeInteger,
		},
		{
			name:  "zero target value",
			row:   validRow().With(model.FieldTargetValue, "0"),
			field: model.FieldTargetValue,
			rule:  rules.RuleTargetValuePositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestEditor(t)
			expectLoad(m, model.UIConfig{}, &model.JobDocument{})
			require.NoError(t, svc.Load(context.Background()))
			// no Save expectation: gomock fails the test if the repository is written

			n, err := svc.SaveJobs(context.Background(), []model.RawRow{validRow(), tt.row})
			require.Error(t, err)
			assert.Zero(t, n)
			assert.True(t, apperrors.IsValidation(err))

			var fe *rules.FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, 1, fe.Row)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.rule, fe.Rule)
		})
	}
}

func TestEditorService_SaveJobs_BeforeLoad(t *testing.T) {
	svc, _ := newTestEditor(t)

	_, err := svc.SaveJobs(context.Background(), []model.RawRow{validRow()})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestEditorService_SaveJobs_RepositoryError(t *testing.T) {
	svc, m := newTestEditor(t)
	expectLoad(m, model.UIConfig{}, &model.JobDocument{})
	require.NoError(t, svc.Load(context.Background()))

	m.jobs.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.SaveJobs(context.Background(), []model.RawRow{validRow()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save jobs: disk full")
}

func TestEditorService_Save_CommitsActiveEdit(t *testing.T) {
	svc, m := newTestEditor(t)
	expectLoad(m, model.UIConfig{}, &model.JobDocument{Rows: []model.RawRow{validRowIDs()}})
	require.NoError(t, svc.Load(context.Background()))

	row := svc.Table().Rows()[0]
	ed, err := svc.Table().Session().Begin(row.ID, model.FieldTargetValue)
	require.NoError(t, err)
	ed.SetValue("42.00")

	var saved []model.Job
	m.jobs.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *model.JobDocument, jobs []model.Job) error {
			saved = jobs
			return nil
		})

	n, err := svc.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "42", saved[0].TargetValue.String())
	assert.Equal(t, "42.00", saved[0].TargetValue.StringFixed(2))
	_, editing := svc.Table().Session().Current()
	assert.False(t, editing)
}

func TestEditorService_ReloadJobs(t *testing.T) {
	svc, m := newTestEditor(t)
	expectLoad(m, model.UIConfig{}, &model.JobDocument{Rows: []model.RawRow{validRowIDs()}})
	require.NoError(t, svc.Load(context.Background()))

	_, err := svc.Table().AddRow()
	require.NoError(t, err)
	require.Equal(t, 2, svc.Table().Len())

	m.jobs.EXPECT().Load(gomock.Any()).Return(&model.JobDocument{Rows: []model.RawRow{validRowIDs()}}, nil)
	require.NoError(t, svc.ReloadJobs(context.Background()))
	assert.Equal(t, 1, svc.Table().Len(), "unsaved rows discarded")
	assert.Equal(t, "1|BTC - Bitcoin", svc.Table().Rows()[0].Values.Get(model.FieldSourceCoin))
}

func TestEditorService_Actions(t *testing.T) {
	tests := []struct {
		name    string
		actions model.ActionsConfig
		want    []model.ActionName
	}{
		{name: "disabled", actions: model.ActionsConfig{Push: "scp a b", Pull: "scp b a"}, want: []model.ActionName{}},
		{name: "both", actions: model.ActionsConfig{Enable: true, Push: "scp a b", Pull: "scp b a"}, want: []model.ActionName{model.ActionPush, model.ActionPull}},
		{name: "pull only", actions: model.ActionsConfig{Enable: true, Push: "  ", Pull: "scp b a"}, want: []model.ActionName{model.ActionPull}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestEditor(t)
			expectLoad(m, model.UIConfig{Actions: tt.actions}, &model.JobDocument{})
			require.NoError(t, svc.Load(context.Background()))

			assert.Equal(t, tt.want, svc.EnabledActions())
			_, ok := svc.ActionCommand(model.ActionPush)
			assert.Equal(t, svc.ActionEnabled(model.ActionPush), ok)
		})
	}
}

const fileJobConfig = `{
    "servers": {
        "delay": 10
    },
    "jobs": [
        {
            "email": "a@b.com",
            "source_coin": "1",
            "target_coin": "1027",
            "source_value": 1.50,
            "target_value": 2,
            "comparison": "<",
            "email_sent_count": 0
        }
    ],
    "notes": "keep"
}`

func writeEditorFiles(t *testing.T) (jobs, ui, catalog string) {
	t.Helper()
	dir := t.TempDir()
	jobs = filepath.Join(dir, "config.json")
	ui = filepath.Join(dir, "configui.json")
	catalog = filepath.Join(dir, "cryptos.json")
	require.NoError(t, os.WriteFile(jobs, []byte(fileJobConfig), 0o600))
	require.NoError(t, os.WriteFile(ui, []byte(`{"comparison": ["<", ">", "="], "actions": {"enable": false}}`), 0o600))
	require.NoError(t, os.WriteFile(catalog, []byte(`{"values": [
		[1, "Bitcoin", "BTC", "bitcoin", 1, 1],
		[1027, "Ethereum", "ETH", "ethereum", 1, 1],
		[52, "XRP", "XRP", "xrp", 1, 1]
	]}`), 0o600))
	return jobs, ui, catalog
}

func TestEditorService_FileRoundTrip(t *testing.T) {
	jobsPath, uiPath, catalogPath := writeEditorFiles(t)
	svc := MustNewEditorService(EditorServiceOptions{
		Jobs:    data.NewJobConfigRepo(jobsPath, 4),
		Catalog: data.NewCatalogRepo(catalogPath, data.DefaultCatalogValuesExpr),
		UI:      data.NewUIConfigRepo(uiPath),
	})
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	id, err := svc.Table().AddRow()
	require.NoError(t, err)
	sess := svc.Table().Session()
	for _, cell := range []struct {
		field model.Field
		value string
	}{
		{model.FieldEmail, "x@y.org"},
		{model.FieldSourceCoin, "52|XRP - XRP"},
		{model.FieldTargetCoin, "1|BTC - Bitcoin"},
		{model.FieldSourceValue, "0.5"},
		{model.FieldTargetValue, "0.000010"},
		{model.FieldComparison, ">"},
		{model.FieldEmailSentCount, "3"},
	} {
		_, err := sess.Begin(id, cell.field)
		require.NoError(t, err)
		require.NoError(t, sess.CommitValue(cell.value))
	}
	_, err = svc.Table().AddRow()
	require.NoError(t, err)

	n, err := svc.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "trailing blank row skipped")

	first, err := os.ReadFile(jobsPath)
	require.NoError(t, err)
	assert.Equal(t, int64(10), gjson.GetBytes(first, "servers.delay").Int())
	assert.Equal(t, "keep", gjson.GetBytes(first, "notes").String())
	assert.Equal(t, "1", gjson.GetBytes(first, "jobs.0.source_coin").String())
	assert.Equal(t, "52", gjson.GetBytes(first, "jobs.1.source_coin").String())
	assert.Equal(t, "1.50", gjson.GetBytes(first, "jobs.0.source_value").Raw)
	assert.Equal(t, "0.000010", gjson.GetBytes(first, "jobs.1.target_value").Raw)
	assert.Equal(t, int64(3), gjson.GetBytes(first, "jobs.1.email_sent_count").Int())

	// load and save again without edits: the file is unchanged
	require.NoError(t, svc.Load(ctx))
	assert.Equal(t, 2, svc.Table().Len())
	assert.Equal(t, "52|XRP - XRP", svc.Table().Rows()[1].Values.Get(model.FieldSourceCoin))
	_, err = svc.Save(ctx)
	require.NoError(t, err)

	second, err := os.ReadFile(jobsPath)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestEditorService_FileSave_InvalidRowLeavesFile(t *testing.T) {
	jobsPath, uiPath, catalogPath := writeEditorFiles(t)
	svc := MustNewEditorService(EditorServiceOptions{
		Jobs:    data.NewJobConfigRepo(jobsPath, 4),
		Catalog: data.NewCatalogRepo(catalogPath, ""),
		UI:      data.NewUIConfigRepo(uiPath),
	})
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	row := svc.Table().Rows()[0]
	_, err := svc.Table().Session().Begin(row.ID, model.FieldComparison)
	require.NoError(t, err)
	require.NoError(t, svc.Table().Session().CommitValue("<="))

	_, err = svc.Save(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	b, err := os.ReadFile(jobsPath)
	require.NoError(t, err)
	assert.Equal(t, fileJobConfig, string(b))
}
