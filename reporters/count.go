package reporters

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/incmax/config"
	"github.com/timtadh/incmax/miner"
)

// Count writes the number of batches, itemsets and rules it saw on Close.
type Count struct {
	config   *config.Config
	filename string
	Batches  int
	Itemsets int
	Rules    int
}

func NewCount(c *config.Config, filename string) (*Count, error) {
	r := &Count{
		config:   c,
		filename: filename,
	}
	return r, nil
}

func (r *Count) Report(res *miner.Result) error {
	r.Batches++
	r.Itemsets += len(res.Itemsets)
	r.Rules += len(res.Rules)
	return nil
}

func (r *Count) Close() error {
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	_, perr := fmt.Fprintf(f, "batches\t%d\nitemsets\t%d\nrules\t%d\n", r.Batches, r.Itemsets, r.Rules)
	err = f.Close()
	if perr != nil {
		return perr
	}
	if err != nil {
		return err
	}
	return nil
}
