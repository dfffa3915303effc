package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
)

// DefaultCatalogValuesExpr selects the tuple list of a CoinMarketCap-style cryptos.json.
const DefaultCatalogValuesExpr = "values"

// Catalog tuple positions: [id, name, symbol, _, marketCapFlag, volumeFlag, ...].
const (
	tupleID = iota
	tupleName
	tupleSymbol
	_
	tupleMarketCap
	tupleVolume

	minTupleLen
)

// CatalogRepo reads the ticker catalog file.
type CatalogRepo struct {
	path string
	expr string
}

// NewCatalogRepo creates a CatalogRepo. valuesExpr is a JMESPath expression that
// selects the array of tuples; empty means DefaultCatalogValuesExpr.
func NewCatalogRepo(path, valuesExpr string) *CatalogRepo {
	if strings.TrimSpace(valuesExpr) == "" {
		valuesExpr = DefaultCatalogValuesExpr
	}
	return &CatalogRepo{path: path, expr: valuesExpr}
}

// Path returns the catalog file location.
func (r *CatalogRepo) Path() string {
	return r.path
}

// Load returns every catalog entry, inactive ones included. Filtering is the
// ticker directory's job.
func (r *CatalogRepo) Load(ctx context.Context) ([]model.Ticker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(r.path)
	if err != nil {
		return nil, apperrors.CatalogLoad(r.path, err)
	}
	tickers, err := parseCatalog(b, r.expr)
	if err != nil {
		return nil, apperrors.CatalogLoad(r.path, err)
	}
	return tickers, nil
}

func parseCatalog(b []byte, expr string) ([]model.Ticker, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	selected, err := jmespath.Search(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("select %q: %w", expr, err)
	}
	values, ok := selected.([]any)
	if !ok {
		return nil, fmt.Errorf("select %q: not an array", expr)
	}

	tickers := make([]model.Ticker, 0, len(values))
	for i, v := range values {
		t, err := tickerFromTuple(v)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		tickers = append(tickers, t)
	}
	return tickers, nil
}

func tickerFromTuple(v any) (model.Ticker, error) {
	tuple, ok := v.([]any)
	if !ok {
		return model.Ticker{}, errors.New("not an array")
	}
	if len(tuple) < minTupleLen {
		return model.Ticker{}, fmt.Errorf("expected at least %d elements, got %d", minTupleLen, len(tuple))
	}

	id, err := idText(tuple[tupleID])
	if err != nil {
		return model.Ticker{}, err
	}
	name, _ := tuple[tupleName].(string)
	symbol, _ := tuple[tupleSymbol].(string)

	return model.Ticker{
		ID:            id,
		Name:          name,
		Symbol:        symbol,
		MarketCapFlag: flagValue(tuple[tupleMarketCap]),
		VolumeFlag:    flagValue(tuple[tupleVolume]),
	}, nil
}

func idText(v any) (string, error) {
	switch id := v.(type) {
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	case string:
		if s := strings.TrimSpace(id); s != "" {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid id %v", v)
}

// flagValue reads a market-data flag. Anything that is not a non-zero number
// counts as zero.
func flagValue(v any) float64 {
	switch f := v.(type) {
	case float64:
		return f
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return 0
		}
		return n
	case bool:
		if f {
			return 1
		}
	}
	return 0
}
