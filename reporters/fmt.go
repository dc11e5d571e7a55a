package reporters

import (
	"fmt"
	"io"
	"strings"
)

import (
	"github.com/timtadh/incmax/miner"
	"github.com/timtadh/incmax/rules"
	"github.com/timtadh/incmax/stats"
	"github.com/timtadh/incmax/support"
	"github.com/timtadh/incmax/types/itemset"
)

// Formatter writes the text forms of results. Every line starts with the
// batch number so the files of several batches can be appended together.
type Formatter struct {
	Places int
}

func NewFormatter() *Formatter {
	return &Formatter{Places: 4}
}

func (f *Formatter) ItemsetName(s *itemset.Itemset) string {
	return itemset.Formatter{}.PatternName(s)
}

func (f *Formatter) RuleName(r *rules.Rule) string {
	return fmt.Sprintf("%v => %v",
		strings.Join(r.Antecedent, " "), strings.Join(r.Consequent, " "))
}

func (f *Formatter) Confidence(r *rules.Rule) float64 {
	return stats.Round(r.Confidence, f.Places)
}

func (f *Formatter) FormatItemsets(w io.Writer, res *miner.Result) error {
	for _, s := range res.Itemsets {
		if _, err := fmt.Fprintf(w, "%d\t", res.Batch); err != nil {
			return err
		}
		if err := (itemset.Formatter{}).FormatPattern(w, s); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) FormatRules(w io.Writer, res *miner.Result) error {
	for _, r := range res.Rules {
		_, err := fmt.Fprintf(w, "%d\t%v\t%v\t%d\t%v\n",
			res.Batch,
			strings.Join(r.Antecedent, " "),
			strings.Join(r.Consequent, " "),
			r.Support,
			f.Confidence(r))
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) FormatRecord(w io.Writer, batch int, r *support.Record) error {
	_, err := fmt.Fprintf(w, "%d\t%v\t%d\t%d\t%d\t%d\n",
		batch, r.Item, r.Cumulative, r.Batch, r.MinSupport, len(r.Retained))
	return err
}

func (f *Formatter) FormatTable(w io.Writer, res *miner.Result) error {
	for _, r := range res.Table.Records() {
		if err := f.FormatRecord(w, res.Batch, r); err != nil {
			return err
		}
	}
	return nil
}
