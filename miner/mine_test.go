package miner

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"sync"
)

import (
	"github.com/timtadh/incmax/config"
	"github.com/timtadh/incmax/rules"
	"github.com/timtadh/incmax/types/itemset"
)

var abc = [][]string{
	{"a", "b", "c"},
	{"a", "b"},
	{"a", "c"},
	{"b", "c"},
}

var xy = [][]string{
	{"x", "y"},
	{"x", "y"},
	{"x"},
}

func opts() *Options {
	return &Options{
		UseNovelty:    true,
		MinNovelty:    .5,
		MinSupport:    .5,
		MinConfidence: .5,
		Formula:       rules.Consequent,
	}
}

func keys(sets []*itemset.Itemset) map[string]int {
	m := make(map[string]int, len(sets))
	for _, s := range sets {
		m[itemset.Formatter{}.PatternName(s)] = s.Count
	}
	return m
}

func TestMineNoTriple(x *testing.T) {
	t := assert.New(x)
	res, err := Mine(abc, nil, opts())
	t.Nil(err)
	t.Equal(2, res.MinSupport)
	t.Equal(4, res.Transactions)
	for _, item := range []string{"a", "b", "c"} {
		t.Equal(3, res.Table.Get(item).Batch)
		t.True(res.Table.Admitted(item, res.MinSupport))
	}
	t.Equal(map[string]int{"a": 3, "a b": 2}, keys(res.Itemsets))
	for _, s := range res.Itemsets {
		t.False(s.Equals(itemset.New("a", "b", "c")))
	}
	t.Equal(map[string]int{"a b": 2}, keys(res.Novel))

	t.Equal(1, len(res.Rules))
	t.Equal([]string{"a"}, res.Rules[0].Antecedent)
	t.Equal([]string{"b"}, res.Rules[0].Consequent)
	t.InDelta(2.0/3.0, res.Rules[0].Confidence, 1e-9)
}

func TestMineRuleConfidence(x *testing.T) {
	t := assert.New(x)
	o := opts()
	o.MinConfidence = 1
	res, err := Mine(xy, nil, o)
	t.Nil(err)
	t.Equal(1, res.MinSupport)
	t.Equal(map[string]int{"x": 3, "x y": 2}, keys(res.Itemsets))
	t.Equal(1, len(res.Rules))
	t.Equal(2, res.Rules[0].Support)
	t.Equal(1.0, res.Rules[0].Confidence)
}

func TestMineConfidenceBounds(x *testing.T) {
	t := assert.New(x)
	batch := [][]string{{"a", "b", "c"}, {"b", "c"}, {"a", "c", "d"}, {"c", "d"}, {"a", "b", "c", "d"}}
	for _, f := range []rules.Formula{rules.Consequent, rules.Antecedent} {
		o := opts()
		o.MinSupport = .2
		o.MinConfidence = 0
		o.Formula = f
		res, err := Mine(batch, nil, o)
		t.Nil(err)
		t.True(len(res.Rules) > 0)
		for _, r := range res.Rules {
			t.True(r.Confidence >= 0 && r.Confidence <= 1, "%v %v", f, r)
		}
	}
}

func TestMineEmptyBatch(x *testing.T) {
	t := assert.New(x)
	_, err := Mine(nil, nil, opts())
	_, ok := err.(*EmptyBatch)
	t.True(ok)

	m := NewMiner(opts())
	_, err = m.Mine(abc)
	t.Nil(err)
	table := m.Table()
	_, err = m.Mine([][]string{})
	_, ok = err.(*EmptyBatch)
	t.True(ok)
	t.True(table == m.Table())
	t.Equal(1, m.Batches())
}

func TestMinePriorUntouched(x *testing.T) {
	t := assert.New(x)
	first, err := Mine(abc, nil, opts())
	t.Nil(err)
	prior := first.Table
	t.Equal(1, len(prior.Get("a").Retained))

	_, err = Mine([][]string{{"a", "b"}, {"c"}}, prior, opts())
	t.Nil(err)
	t.Equal(1, len(prior.Get("a").Retained))
	t.Equal(3, prior.Get("a").Batch)
	t.Equal(3, prior.Get("a").Cumulative)
}

func TestMinerThreadsSeeds(x *testing.T) {
	t := assert.New(x)
	next := [][]string{{"a", "b"}, {"c"}}

	m := NewMiner(opts())
	_, err := m.Mine(abc)
	t.Nil(err)
	res, err := m.Mine(next)
	t.Nil(err)
	t.Equal(2, res.Batch)
	t.Equal(2, m.Batches())
	t.Equal(1, res.MinSupport)
	t.Equal(3, res.Tree.Transactions)
	count, has := res.Tree.Find("a", "b")
	t.True(has)
	t.Equal(2, count)
	t.Equal(map[string]int{"a": 2, "a b": 2, "c": 1}, keys(res.Itemsets))
	t.Equal(4, m.Table().Get("a").Cumulative)
	t.Equal(1, len(m.Table().Get("a").Retained))

	fresh, err := Mine(next, nil, opts())
	t.Nil(err)
	count, _ = fresh.Tree.Find("a", "b")
	t.Equal(1, count)
}

func TestMineWithoutNovelty(x *testing.T) {
	t := assert.New(x)
	o := opts()
	o.UseNovelty = false
	res, err := Mine(abc, nil, o)
	t.Nil(err)
	t.Nil(res.Novel)
	for _, r := range res.Table.Records() {
		t.Equal(0, len(r.Retained))
	}
}

func TestMineMaximal(x *testing.T) {
	t := assert.New(x)
	o := opts()
	o.Maximal = true
	res, err := Mine(abc, nil, o)
	t.Nil(err)
	t.Equal(map[string]int{"a b": 2}, keys(res.Itemsets))
}

func TestMineDistanceNovelty(x *testing.T) {
	t := assert.New(x)
	o := opts()
	o.Novelty = "distance"
	m := NewMiner(o)
	res, err := m.Mine(abc)
	t.Nil(err)
	// nothing is retained yet so everything is novel
	t.Equal(len(res.Itemsets), len(res.Novel))
	res, err = m.Mine(abc)
	t.Nil(err)
	t.Equal(0, len(res.Novel))
}

func TestParallelPipelines(x *testing.T) {
	t := assert.New(x)
	batches := [][][]string{abc, {{"a", "b"}, {"c"}}, xy, abc}
	expected := make([]map[string]int, 0, len(batches))
	m := NewMiner(opts())
	for _, b := range batches {
		res, err := m.Mine(b)
		t.Nil(err)
		expected = append(expected, keys(res.Itemsets))
	}

	const pipelines = 4
	var wg sync.WaitGroup
	results := make([][]map[string]int, pipelines)
	errs := make([]error, pipelines)
	for i := 0; i < pipelines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m := NewMiner(opts())
			for _, b := range batches {
				res, err := m.Mine(b)
				if err != nil {
					errs[i] = err
					return
				}
				results[i] = append(results[i], keys(res.Itemsets))
			}
		}(i)
	}
	wg.Wait()
	for i := 0; i < pipelines; i++ {
		t.Nil(errs[i])
		t.Equal(expected, results[i])
	}
}

func TestNewOptions(x *testing.T) {
	t := assert.New(x)
	o, err := NewOptions(config.Default())
	t.Nil(err)
	t.True(o.UseNovelty)
	t.Equal(.2, o.MinSupport)
	t.Equal(rules.Consequent, o.Formula)

	c := config.Default()
	c.MinSupport = 1.5
	_, err = NewOptions(c)
	bad, ok := err.(*BadOption)
	t.True(ok)
	t.Equal("support", bad.Name)

	c = config.Default()
	c.MinConfidence = -.1
	_, err = NewOptions(c)
	bad, ok = err.(*BadOption)
	t.True(ok)
	t.Equal("confidence", bad.Name)

	c = config.Default()
	c.Formula = "lift"
	_, err = NewOptions(c)
	bad, ok = err.(*BadOption)
	t.True(ok)
	t.Equal("bad option confidence-formula: 'lift'", bad.Error())

	c = config.Default()
	c.Novelty = "jaccard"
	_, err = NewOptions(c)
	_, ok = err.(*BadOption)
	t.True(ok)
}
