package miner

// Reporter receives the result of every mined batch. Close flushes and
// releases whatever the reporter holds, including reporters it wraps.
type Reporter interface {
	Report(*Result) error
	Close() error
}

// EmptyBatch is returned by Mine for a batch without transactions.
type EmptyBatch struct{}

func (e *EmptyBatch) Error() string {
	return "batch has no transactions"
}

// BadOption is returned when a configuration value is out of range.
type BadOption struct {
	Name  string
	Value interface{}
}

func (b *BadOption) Error() string {
	return "bad option " + b.Name + ": " + formatValue(b.Value)
}
