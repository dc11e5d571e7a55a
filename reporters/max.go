package reporters

import (
	"github.com/timtadh/incmax/fptree"
	"github.com/timtadh/incmax/miner"
)

// Max forwards each result with its itemsets pruned to the maximal ones.
// Rules and novel itemsets are forwarded as they are.
type Max struct {
	Reporter miner.Reporter
}

func NewMax(reporter miner.Reporter) *Max {
	return &Max{
		Reporter: reporter,
	}
}

func (r *Max) Report(res *miner.Result) error {
	m := *res
	m.Itemsets = fptree.Maximal(res.Itemsets)
	return r.Reporter.Report(&m)
}

func (r *Max) Close() error {
	return r.Reporter.Close()
}
