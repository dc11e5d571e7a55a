package fptree

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"strings"
)

import (
	"github.com/timtadh/incmax/types/itemset"
)

var abc = [][]string{
	{"a", "b", "c"},
	{"a", "b"},
	{"a", "c"},
	{"b", "c"},
}

var shared = [][]string{
	{"p", "q", "r"},
	{"p", "q"},
	{"p", "q", "s"},
	{"p", "t"},
	{"u"},
}

func keys(sets []*itemset.Itemset) map[string]int {
	m := make(map[string]int, len(sets))
	for _, s := range sets {
		m[itemset.Formatter{}.PatternName(s)] = s.Count
	}
	return m
}

func TestInsertCounts(x *testing.T) {
	t := assert.New(x)
	tree := Build(shared)
	t.Equal(5, tree.Transactions)
	count, has := tree.Find("p")
	t.True(has)
	t.Equal(4, count)
	count, has = tree.Find("p", "q")
	t.True(has)
	t.Equal(3, count)
	count, _ = tree.Find("p", "q", "r")
	t.Equal(1, count)
	count, _ = tree.Find("u")
	t.Equal(1, count)
	_, has = tree.Find("q")
	t.False(has)
	t.Equal(6, tree.Size())
	count, has = tree.Find()
	t.True(has)
	t.Equal(0, count)
}

func TestInsertSkipsEmpty(x *testing.T) {
	t := assert.New(x)
	tree := New()
	tree.Insert([]string{"", "a", "", "b"}, 2)
	tree.Insert([]string{""}, 1)
	count, has := tree.Find("a", "b")
	t.True(has)
	t.Equal(2, count)
	t.Equal(2, tree.Size())
	t.Equal(3, tree.Transactions)
}

func TestInsertNegativePanics(x *testing.T) {
	t := assert.New(x)
	t.Panics(func() {
		New().Insert([]string{"a"}, -1)
	})
	t.Panics(func() {
		New().Graft([]string{"a"}, -1)
	})
}

func TestGraftKeepsExisting(x *testing.T) {
	t := assert.New(x)
	tree := New()
	tree.Graft([]string{"a"}, 5)
	tree.Graft([]string{"a", "b"}, 2)
	tree.Graft([]string{"a"}, 9)
	count, _ := tree.Find("a")
	t.Equal(5, count)
	count, _ = tree.Find("a", "b")
	t.Equal(2, count)
	t.Equal(0, tree.Transactions)
}

func TestWalkOrder(x *testing.T) {
	t := assert.New(x)
	tree := Build(shared)
	paths := make([]string, 0, tree.Size())
	err := tree.Walk(func(path []string, count int) error {
		paths = append(paths, strings.Join(path, ""))
		return nil
	})
	t.Nil(err)
	t.Equal([]string{"p", "pq", "pqr", "pqs", "pt", "u"}, paths)
}

func TestString(x *testing.T) {
	t := assert.New(x)
	tree := Build([][]string{{"a", "b"}, {"a"}})
	t.Equal("├── a [count: 2]\n│   ├── b [count: 1]\n", tree.String())
	t.Equal("", New().String())
}

func TestExtractIsPaths(x *testing.T) {
	t := assert.New(x)
	tree := Build(shared)
	found := Extract(tree, 1)
	t.Equal(tree.Size(), len(found))
	for _, s := range found {
		count, has := tree.Find(s.Items()...)
		t.True(has, "%v is not a path", s)
		t.Equal(count, s.Count)
	}
}

func TestExtractMinSupport(x *testing.T) {
	t := assert.New(x)
	tree := Build(shared)
	t.Equal(map[string]int{"p": 4, "p q": 3}, keys(Extract(tree, 2)))
	t.Equal(0, len(Extract(tree, 5)))
	// the root is never emitted
	for _, s := range Extract(tree, 0) {
		t.True(s.Size() > 0)
	}
}

func TestExtractNoTripleAtTwo(x *testing.T) {
	t := assert.New(x)
	tree := Build(abc)
	found := keys(Extract(tree, 2))
	_, has := found["a b c"]
	t.False(has)
	for _, s := range Extract(tree, 2) {
		t.True(s.Size() <= 2)
		t.True(s.Count >= 2)
	}
	t.Equal(map[string]int{"a": 3, "a b": 2}, found)
}

func TestExtractCollapsesEqualSets(x *testing.T) {
	t := assert.New(x)
	tree := Build([][]string{{"a", "b"}, {"b", "a"}, {"b", "a"}})
	found := Extract(tree, 1)
	ab := 0
	for _, s := range found {
		if s.Equals(itemset.New("a", "b")) {
			ab++
			t.Equal(2, s.Count)
		}
	}
	t.Equal(1, ab)
}

func TestFPMaxClosure(x *testing.T) {
	t := assert.New(x)
	tree := Build(shared)
	tree.MinSupport = 2
	mfi, candidates := FPMax(tree)
	t.Equal(keys(Extract(tree, 1)), keys(candidates))
	t.Equal(keys(candidates), keys(Extract(mfi, 1)))
	for sup := 1; sup <= 5; sup++ {
		t.Equal(keys(Extract(tree, sup)), keys(Extract(mfi, sup)), "support %d", sup)
	}
	t.Equal(2, mfi.MinSupport)
	t.Equal(tree.Size(), mfi.Size())

	again := New()
	for _, s := range Extract(tree, 1) {
		again.Graft(s.Items(), s.Count)
	}
	t.Equal(keys(Extract(tree, 1)), keys(Extract(again, 1)))
}

func TestMaximal(x *testing.T) {
	t := assert.New(x)
	tree := Build(shared)
	max := keys(Maximal(Extract(tree, 1)))
	t.Equal(map[string]int{"p q r": 1, "p q s": 1, "p t": 1, "u": 1}, max)
	t.Equal(0, len(Maximal(nil)))
}
