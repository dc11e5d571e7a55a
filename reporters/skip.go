package reporters

import (
	"github.com/timtadh/incmax/miner"
)

// Skip forwards every Skip-th batch.
type Skip struct {
	Skip     int
	Reporter miner.Reporter
	count    int
}

func NewSkip(n int, rptr miner.Reporter) *Skip {
	if n < 1 {
		n = 1
	}
	return &Skip{
		Skip:     n,
		Reporter: rptr,
	}
}

func (r *Skip) Report(res *miner.Result) error {
	r.count++
	if r.count%r.Skip == 0 {
		return r.Reporter.Report(res)
	}
	return nil
}

func (r *Skip) Close() error {
	return r.Reporter.Close()
}
