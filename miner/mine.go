package miner

import (
	"math"
	"runtime"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/incmax/fptree"
	"github.com/timtadh/incmax/novelty"
	"github.com/timtadh/incmax/rules"
	"github.com/timtadh/incmax/support"
	"github.com/timtadh/incmax/types/itemset"
)

// Result is everything one batch produced. Table is the prior table of the
// next batch.
type Result struct {
	Batch        int
	Table        *support.Table
	Tree         *fptree.Tree
	MFITree      *fptree.Tree
	Itemsets     []*itemset.Itemset
	Novel        []*itemset.Itemset
	Rules        []*rules.Rule
	MinSupport   int
	Transactions int
	Elapsed      time.Duration
	HeapAlloc    uint64
}

// Mine runs one batch against the prior support table. prior may be nil for
// the first batch and is never modified.
func Mine(batch [][]string, prior *support.Table, opts *Options) (*Result, error) {
	return mine(0, batch, prior, opts)
}

func mine(n int, batch [][]string, prior *support.Table, opts *Options) (*Result, error) {
	if len(batch) == 0 {
		return nil, &EmptyBatch{}
	}
	start := time.Now()

	table := support.Update(batch, prior, opts.MinSupport)
	minSup := int(math.Floor(opts.MinSupport * float64(len(batch))))
	retained := retainedIn(table)

	tree := fptree.New()
	seeds := table.Seeds(minSup)
	for _, seed := range seeds {
		tree.Insert(seed, 1)
	}
	for _, tx := range batch {
		tree.Insert(table.Filter(tx, minSup), 1)
	}
	tree.MinSupport = minSup

	mfiTree, _ := fptree.FPMax(tree)
	mfiTree.MinSupport = minSup

	found := fptree.Extract(mfiTree, max(minSup, 1))
	if opts.Maximal {
		found = fptree.Maximal(found)
	}

	var novel []*itemset.Itemset
	if opts.UseNovelty {
		scorer, err := novelty.NewScorer(opts.Novelty, batch, retained)
		if err != nil {
			return nil, err
		}
		novel = make([]*itemset.Itemset, 0, len(found))
		for _, s := range found {
			score := scorer.Score(s)
			if !novelty.Gate(score, opts.MinNovelty) {
				continue
			}
			errors.Logf("DEBUG", "novel %v (%v = %.3g)", s, opts.Novelty, score)
			novel = append(novel, s)
			table.Retain(s.Copy())
		}
	}

	rs := rules.Generate(found, opts.MinConfidence, batch, opts.Formula)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	errors.Logf("DEBUG", "batch %d: %d transactions, %d seeds, minsup %d, %d itemsets, %d novel, %d rules",
		n, len(batch), len(seeds), minSup, len(found), len(novel), len(rs))
	return &Result{
		Batch:        n,
		Table:        table,
		Tree:         tree,
		MFITree:      mfiTree,
		Itemsets:     found,
		Novel:        novel,
		Rules:        rs,
		MinSupport:   minSup,
		Transactions: len(batch),
		Elapsed:      time.Since(start),
		HeapAlloc:    mem.HeapAlloc,
	}, nil
}

// retainedIn lists the seeds carried into this batch before they are
// consumed.
func retainedIn(t *support.Table) []*itemset.Itemset {
	retained := make([]*itemset.Itemset, 0, 10)
	for _, r := range t.Records() {
		retained = append(retained, r.Retained...)
	}
	return retained
}

// Miner threads the support table from one batch into the next.
type Miner struct {
	opts    *Options
	table   *support.Table
	batches int
}

func NewMiner(opts *Options) *Miner {
	return &Miner{
		opts:  opts,
		table: support.NewTable(),
	}
}

// Mine processes the next batch. A failed batch leaves the table as it was.
func (m *Miner) Mine(batch [][]string) (*Result, error) {
	res, err := mine(m.batches+1, batch, m.table, m.opts)
	if err != nil {
		return nil, err
	}
	m.batches++
	m.table = res.Table
	return res, nil
}

func (m *Miner) Table() *support.Table {
	return m.table
}

func (m *Miner) Batches() int {
	return m.batches
}
