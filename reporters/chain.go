package reporters

import (
	"github.com/timtadh/incmax/miner"
)

type Chain struct {
	Reporters []miner.Reporter
}

func (r *Chain) Report(res *miner.Result) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(res)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
