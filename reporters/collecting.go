package reporters

import (
	"github.com/timtadh/incmax/miner"
)

type Collector struct {
	Results []*miner.Result
	Closed  bool
}

func (c *Collector) Report(res *miner.Result) error {
	c.Results = append(c.Results, res)
	return nil
}

func (c *Collector) Close() error {
	c.Closed = true
	return nil
}
