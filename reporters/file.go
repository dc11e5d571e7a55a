package reporters

import (
	"io"
	"os"
)

import (
	"github.com/timtadh/incmax/config"
	"github.com/timtadh/incmax/miner"
	"github.com/timtadh/incmax/types/itemset"
)

// File appends the itemsets, rules and support table of every batch to
// <name>.items, <name>.rules and <name>.support in the output directory.
type File struct {
	config   *config.Config
	fmtr     *Formatter
	itemsets io.WriteCloser
	rules    io.WriteCloser
	support  io.WriteCloser
}

func NewFile(c *config.Config, fmtr *Formatter, name string) (*File, error) {
	itemsets, err := os.Create(c.OutputFile(name + itemset.Formatter{}.FileExt()))
	if err != nil {
		return nil, err
	}
	rules, err := os.Create(c.OutputFile(name + ".rules"))
	if err != nil {
		itemsets.Close()
		return nil, err
	}
	support, err := os.Create(c.OutputFile(name + ".support"))
	if err != nil {
		itemsets.Close()
		rules.Close()
		return nil, err
	}
	r := &File{
		config:   c,
		fmtr:     fmtr,
		itemsets: itemsets,
		rules:    rules,
		support:  support,
	}
	return r, nil
}

func (r *File) Report(res *miner.Result) error {
	err := r.fmtr.FormatItemsets(r.itemsets, res)
	if err != nil {
		return err
	}
	err = r.fmtr.FormatRules(r.rules, res)
	if err != nil {
		return err
	}
	return r.fmtr.FormatTable(r.support, res)
}

func (r *File) Close() error {
	err := r.itemsets.Close()
	if err != nil {
		return err
	}
	err = r.rules.Close()
	if err != nil {
		return err
	}
	return r.support.Close()
}
