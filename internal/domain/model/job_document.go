package model

// JobDocument is a loaded job config file.
type JobDocument struct {
	// Raw is the whole file as read; keys other than "jobs" are written back from it.
	Raw []byte
	// Rows are the stored jobs as cell text, coin cells holding ticker ids.
	Rows []RawRow
	// NumericCoinIDs is true when the file stores coin ids as JSON numbers.
	NumericCoinIDs bool
}
