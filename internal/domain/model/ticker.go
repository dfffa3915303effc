package model

import "fmt"

// Ticker is one entry of the market-data catalog.
type Ticker struct {
	ID            string
	Name          string
	Symbol        string
	MarketCapFlag float64
	VolumeFlag    float64
}

// Active reports whether the ticker trades: both market-cap and volume are non-zero.
func (t Ticker) Active() bool {
	return t.MarketCapFlag != 0 && t.VolumeFlag != 0
}

// Display renders the ticker as shown in coin cells, "{id}|{symbol} - {name}".
func (t Ticker) Display() string {
	return fmt.Sprintf("%s|%s - %s", t.ID, t.Symbol, t.Name)
}
