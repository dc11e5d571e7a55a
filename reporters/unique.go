package reporters

import (
	"fmt"
	"io"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/incmax/config"
	"github.com/timtadh/incmax/miner"
	"github.com/timtadh/incmax/stores/bytes_int"
	"github.com/timtadh/incmax/types/itemset"
)

// Unique forwards each result with only the itemsets no earlier batch
// reported. It counts how many batches found each itemset and can write
// those counts as a csv histogram on Close.
type Unique struct {
	batches   int
	fmtr      *Formatter
	Seen      bytes_int.MultiMap
	Reporter  miner.Reporter
	histogram io.WriteCloser
}

func NewUnique(conf *config.Config, fmtr *Formatter, reporter miner.Reporter, histogramName string) (*Unique, error) {
	seen, err := conf.BytesIntMultiMap("unique-seen")
	if err != nil {
		return nil, err
	}
	var histogram io.WriteCloser = nil
	if histogramName != "" {
		histogram, err = os.Create(conf.OutputFile(histogramName + ".csv"))
		if err != nil {
			return nil, err
		}
	}
	u := &Unique{
		fmtr:      fmtr,
		Seen:      seen,
		Reporter:  reporter,
		histogram: histogram,
	}
	return u, nil
}

func (r *Unique) seen(s *itemset.Itemset) (bool, error) {
	label := s.Label()
	if has, err := r.Seen.Has(label); err != nil {
		return false, err
	} else if !has {
		return false, r.Seen.Add(label, 1)
	}
	var count int32
	err := r.Seen.DoFind(label, func(_ []byte, c int32) error {
		count = c
		return nil
	})
	if err != nil {
		return false, err
	}
	err = r.Seen.Remove(label, func(_ int32) bool { return true })
	if err != nil {
		return false, err
	}
	return true, r.Seen.Add(label, count+1)
}

func (r *Unique) Report(res *miner.Result) error {
	r.batches++
	fresh := make([]*itemset.Itemset, 0, len(res.Itemsets))
	for _, s := range res.Itemsets {
		if seen, err := r.seen(s); err != nil {
			return err
		} else if !seen {
			fresh = append(fresh, s)
		}
	}
	u := *res
	u.Itemsets = fresh
	return r.Reporter.Report(&u)
}

func (r *Unique) Close() error {
	if r.histogram != nil {
		err := bytes_int.Do(r.Seen.Iterate, func(k []byte, c int32) error {
			s, err := itemset.FromLabel(k)
			if err != nil {
				return err
			}
			fmt.Fprintf(r.histogram, "%d, %.5g, %v\n", c, float64(c)/float64(r.batches), r.fmtr.ItemsetName(s))
			return nil
		})
		if err != nil {
			errors.Logf("ERROR", "%v", err)
		}
		err = r.histogram.Close()
		if err != nil {
			errors.Logf("ERROR", "%v", err)
		}
	}
	err := r.Seen.Delete()
	if err != nil {
		errors.Logf("ERROR", "%v", err)
	}
	return r.Reporter.Close()
}
