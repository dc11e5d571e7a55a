package support

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/incmax/types/itemset"
)

var abc = [][]string{
	{"a", "b", "c"},
	{"a", "b"},
	{"a", "c"},
	{"b", "c"},
}

var skewed = [][]string{
	{"z", "y"},
	{"x", "y"},
	{"y"},
	{"x", "y", "x"},
}

func items(t *Table) []string {
	list := make([]string, 0, t.Len())
	for _, r := range t.Records() {
		list = append(list, r.Item)
	}
	return list
}

func TestUpdateCountsOccurrences(x *testing.T) {
	t := assert.New(x)
	table := Update(skewed, nil, .5)
	t.Equal(3, table.Len())
	t.Equal(4, table.Get("y").Batch)
	t.Equal(3, table.Get("x").Batch)
	t.Equal(1, table.Get("z").Batch)
	t.Equal(2, table.Get("y").MinSupport)
	t.Equal(1, table.Get("x").MinSupport)
	t.Equal(0, table.Get("z").MinSupport)
	t.Equal([]string{"y", "x", "z"}, items(table))
	for _, r := range table.Records() {
		t.Equal(r.Batch, r.Cumulative)
	}
}

func TestUpdateBatchSupportIsTxCount(x *testing.T) {
	t := assert.New(x)
	table := Update(abc, NewTable(), .5)
	for _, item := range []string{"a", "b", "c"} {
		count := 0
		for _, tx := range abc {
			for _, i := range tx {
				if i == item {
					count++
					break
				}
			}
		}
		t.Equal(count, table.Get(item).Batch, item)
	}
}

func TestUpdateTiesKeepInsertionOrder(x *testing.T) {
	t := assert.New(x)
	table := Update(abc, nil, .5)
	t.Equal([]string{"a", "b", "c"}, items(table))
	for i, item := range []string{"a", "b", "c"} {
		t.Equal(i, table.Rank(item))
	}
	t.Equal(3, table.Rank("missing"))
}

func TestUpdateCarriesPrior(x *testing.T) {
	t := assert.New(x)
	prior := Update(abc, nil, .5)
	prior.Get("a").Retained = []*itemset.Itemset{itemset.New("a", "b")}
	next := Update([][]string{{"c", "d"}, {"c"}}, prior, .5)
	t.Equal([]string{"c", "d", "a", "b"}, items(next))
	t.Equal(5, next.Get("c").Cumulative)
	t.Equal(2, next.Get("c").Batch)
	t.Equal(3, next.Get("a").Cumulative)
	t.Equal(0, next.Get("a").Batch)
	t.Equal(1, len(next.Get("a").Retained))
	for _, r := range next.Records() {
		t.True(r.Batch <= r.Cumulative)
	}
	// prior is untouched
	t.Equal(3, prior.Get("a").Batch)
	t.Equal(3, prior.Get("c").Cumulative)
	t.False(prior.Has("d"))
	next.Get("a").Retained = nil
	t.Equal(1, len(prior.Get("a").Retained))
}

func TestUpdateEmptyBatch(x *testing.T) {
	t := assert.New(x)
	prior := Update(abc, nil, .5)
	for _, empty := range [][][]string{nil, {}} {
		next := Update(empty, prior, .5)
		t.Equal(items(prior), items(next))
		for _, r := range next.Records() {
			t.Equal(prior.Get(r.Item).Cumulative, r.Cumulative)
			t.Equal(0, r.Batch)
			t.Equal(0, r.MinSupport)
		}
	}
}

func TestUpdateSkipsEmptyTokens(x *testing.T) {
	t := assert.New(x)
	table := Update([][]string{{"a", ""}, {""}}, nil, 1)
	t.Equal([]string{"a"}, items(table))
	t.False(table.Has(""))
}

func TestFilter(x *testing.T) {
	t := assert.New(x)
	prior := NewTable()
	prior.add(&Record{Item: "old", Cumulative: 10})
	table := Update(skewed, prior, 1)
	t.Equal([]string{"y", "x", "z", "old"}, items(table))
	// every item in the batch meets its own threshold when the ratio is <= 1
	t.Equal([]string{"y", "x", "z"}, table.Filter([]string{"z", "x", "y", "x"}, 100))
	t.True(table.Admitted("old", 10))
	// no batch support means a zero threshold, which is always met
	t.True(table.Admitted("old", 11))
	t.False(table.Admitted("nope", 0))
	t.Equal([]string{"y", "old"}, table.Filter([]string{"old", "", "nope", "y"}, 5))
}

func TestFilterThreshold(x *testing.T) {
	t := assert.New(x)
	table := NewTable()
	table.add(&Record{Item: "a", Cumulative: 5, Batch: 1, MinSupport: 2})
	table.add(&Record{Item: "b", Cumulative: 1, Batch: 1, MinSupport: 2})
	table.add(&Record{Item: "c", Cumulative: 3, Batch: 3, MinSupport: 1})
	t.Equal([]string{"a", "c"}, table.Filter([]string{"c", "b", "a"}, 4))
	t.Equal([]string{"c"}, table.Filter([]string{"c", "b", "a"}, 6))
}

func TestOrder(x *testing.T) {
	t := assert.New(x)
	table := Update(skewed, nil, .5)
	t.Equal([]string{"y", "x", "z", "m", "q"}, table.Order([]string{"q", "z", "m", "x", "y"}))
}

func TestRetainAndSeeds(x *testing.T) {
	t := assert.New(x)
	table := Update(skewed, nil, .5)
	t.True(table.Retain(itemset.New("z", "x")))
	t.True(table.Retain(itemset.New("z")))
	t.False(table.Retain(itemset.New("nope")))
	t.False(table.Retain(itemset.New()))
	t.Equal(1, len(table.Get("x").Retained))
	t.Equal(1, len(table.Get("z").Retained))
	seeds := table.Seeds(0)
	t.Equal([][]string{{"x", "z"}, {"z"}}, seeds)
	t.Nil(table.Get("x").Retained)
	t.Nil(table.Get("z").Retained)
	t.Equal(0, len(table.Seeds(0)))
}

func TestCopy(x *testing.T) {
	t := assert.New(x)
	table := Update(abc, nil, .5)
	c := table.Copy()
	c.Get("a").Cumulative = 100
	t.Equal(3, table.Get("a").Cumulative)
	t.Equal(items(table), items(c))
	t.Equal(0, (*Table)(nil).Len())
	t.Nil((*Table)(nil).Get("a"))
}
