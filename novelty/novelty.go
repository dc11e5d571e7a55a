// Package novelty scores how new an itemset is and gates which itemsets are
// kept as seeds for the next batch.
//
// Coverage is the fraction of the batch vocabulary an itemset covers. It is a
// coverage ratio, not a statistical novelty measure. Distance is the
// symmetric difference ratio between two itemsets, used to compare a new
// itemset against the seeds already retained.
package novelty

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/incmax/types/itemset"
)

// Scorer rates itemsets found in one batch.
type Scorer interface {
	Score(s *itemset.Itemset) float64
}

// Vocabulary is the set of distinct non empty items of batch.
func Vocabulary(batch [][]string) *set.SortedSet {
	vocab := set.NewSortedSet(10)
	for _, tx := range batch {
		for _, item := range tx {
			if item != "" {
				vocab.Add(types.String(item))
			}
		}
	}
	return vocab
}

// Coverage is |s| / |vocabulary(batch)|, 0 for an empty vocabulary.
func Coverage(s *itemset.Itemset, batch [][]string) float64 {
	return coverage(s, Vocabulary(batch).Size())
}

func coverage(s *itemset.Itemset, vocab int) float64 {
	if vocab == 0 {
		return 0
	}
	return float64(s.Size()) / float64(vocab)
}

// Distance is (|a| + |b| - 2|a ∩ b|) / (|a| + |b|). It is 0 for equal sets
// and 1 for disjoint ones.
func Distance(a, b *itemset.Itemset) float64 {
	total := a.Size() + b.Size()
	if total == 0 {
		return 0
	}
	return float64(total-2*a.Common(b)) / float64(total)
}

func Gate(score, minNovelty float64) bool {
	return score >= minNovelty
}

type CoverageScorer struct {
	vocab int
}

func NewCoverageScorer(batch [][]string) *CoverageScorer {
	return &CoverageScorer{vocab: Vocabulary(batch).Size()}
}

func (c *CoverageScorer) Score(s *itemset.Itemset) float64 {
	return coverage(s, c.vocab)
}

// DistanceScorer scores an itemset by its distance to the closest retained
// itemset. With nothing retained every itemset scores 1.
type DistanceScorer struct {
	Retained []*itemset.Itemset
}

func (d *DistanceScorer) Score(s *itemset.Itemset) float64 {
	min := 1.0
	for _, r := range d.Retained {
		if dist := Distance(s, r); dist < min {
			min = dist
		}
	}
	return min
}

var Scorers = []string{"coverage", "distance"}

// NewScorer builds the named scorer for batch. The distance scorer compares
// against retained.
func NewScorer(name string, batch [][]string, retained []*itemset.Itemset) (Scorer, error) {
	switch name {
	case "", "coverage":
		return NewCoverageScorer(batch), nil
	case "distance":
		return &DistanceScorer{Retained: retained}, nil
	default:
		return nil, errors.Errorf("unknown novelty metric '%v' (valid: %v)", name, Scorers)
	}
}
