package reporters

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/incmax/miner"
	"github.com/timtadh/incmax/stats"
)

// Log logs a summary of every batch followed by its itemsets and rules. With
// a positive limit at most limit randomly chosen itemsets are logged.
type Log struct {
	fmtr   *Formatter
	level  string
	prefix string
	limit  int
	count  int
}

func NewLog(fmtr *Formatter, level, prefix string, limit int) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{fmtr: fmtr, level: level, prefix: prefix, limit: limit}
}

func (lr *Log) logf(format string, args ...interface{}) {
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s "+format, append([]interface{}{lr.prefix}, args...)...)
	} else {
		errors.Logf(lr.level, format, args...)
	}
}

func (lr *Log) Report(res *miner.Result) error {
	lr.count++
	confidences := make([]float64, 0, len(res.Rules))
	for _, r := range res.Rules {
		confidences = append(confidences, r.Confidence)
	}
	lr.logf("batch %v: %d transactions, minsup %d, %d itemsets (%d novel), %d rules (mean confidence %v), %v, heap %d KB",
		res.Batch, res.Transactions, res.MinSupport, len(res.Itemsets), len(res.Novel), len(res.Rules),
		stats.Round(stats.Mean(confidences), lr.fmtr.Places), res.Elapsed, res.HeapAlloc/1024)

	idxs := stats.Srange(len(res.Itemsets))
	if lr.limit > 0 && lr.limit < len(res.Itemsets) {
		idxs = stats.Sample(lr.limit, len(res.Itemsets))
		sort.Ints(idxs)
	}
	for _, i := range idxs {
		s := res.Itemsets[i]
		lr.logf("%v itemset %v [count: %d]", lr.count, lr.fmtr.ItemsetName(s), s.Count)
	}
	for _, r := range res.Rules {
		lr.logf("%v rule %v (support %d, confidence %v)", lr.count, lr.fmtr.RuleName(r), r.Support, lr.fmtr.Confidence(r))
	}
	if arg, max := stats.Max(stats.Srange(len(res.Rules)), func(i int) float64 { return res.Rules[i].Confidence }); arg >= 0 {
		lr.logf("%v strongest rule %v (confidence %v)", lr.count, lr.fmtr.RuleName(res.Rules[arg]), stats.Round(max, lr.fmtr.Places))
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
