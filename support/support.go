package support

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/incmax/types/itemset"
)

// Record tracks one item across batches.
type Record struct {
	Item       string
	Cumulative int
	Batch      int
	MinSupport int
	Retained   []*itemset.Itemset
}

func (r *Record) copy() *Record {
	c := &Record{
		Item:       r.Item,
		Cumulative: r.Cumulative,
		Batch:      r.Batch,
		MinSupport: r.MinSupport,
	}
	if len(r.Retained) > 0 {
		c.Retained = make([]*itemset.Itemset, len(r.Retained))
		copy(c.Retained, r.Retained)
	}
	return c
}

func (r *Record) String() string {
	return fmt.Sprintf("<Record %v cur=%d incr=%d minsup=%d retained=%v>",
		r.Item, r.Cumulative, r.Batch, r.MinSupport, r.Retained)
}

// Table is the per item support table. Its order is the canonical item
// order: descending batch support, ties in insertion order.
type Table struct {
	records []*Record
	index   map[string]int
}

func NewTable() *Table {
	return &Table{
		records: make([]*Record, 0, 10),
		index:   make(map[string]int),
	}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records in canonical order. The slice belongs to the table.
func (t *Table) Records() []*Record {
	if t == nil {
		return nil
	}
	return t.records
}

func (t *Table) Get(item string) *Record {
	if t == nil {
		return nil
	}
	if i, has := t.index[item]; has {
		return t.records[i]
	}
	return nil
}

func (t *Table) Has(item string) bool {
	return t.Get(item) != nil
}

// Rank is the canonical position of item. Unknown items rank after every
// known item.
func (t *Table) Rank(item string) int {
	if t != nil {
		if i, has := t.index[item]; has {
			return i
		}
	}
	return t.Len()
}

func (t *Table) Copy() *Table {
	c := NewTable()
	for _, r := range t.Records() {
		c.add(r.copy())
	}
	return c
}

func (t *Table) add(r *Record) {
	t.index[r.Item] = len(t.records)
	t.records = append(t.records, r)
}

func (t *Table) reindex() {
	for i, r := range t.records {
		t.index[r.Item] = i
	}
}

// Admitted reports whether item may enter the prefix tree: either its
// cumulative support reaches the batch cutoff or its batch support reaches its
// own threshold.
func (t *Table) Admitted(item string, itemMinSupport int) bool {
	r := t.Get(item)
	if r == nil {
		return false
	}
	return r.Cumulative >= itemMinSupport || r.Batch >= r.MinSupport
}

// Filter reduces a transaction to its admitted items in canonical order.
// Repeated items are kept once.
func (t *Table) Filter(tx []string, itemMinSupport int) []string {
	items := make([]string, 0, len(tx))
	seen := make(map[string]bool, len(tx))
	for _, item := range tx {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		if t.Admitted(item, itemMinSupport) {
			items = append(items, item)
		}
	}
	return t.sort(items)
}

// Order returns a copy of items in canonical order. Unknown items go last,
// sorted by token.
func (t *Table) Order(items []string) []string {
	ordered := make([]string, len(items))
	copy(ordered, items)
	return t.sort(ordered)
}

func (t *Table) sort(items []string) []string {
	unknown := t.Len()
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := t.Rank(items[i]), t.Rank(items[j])
		if ri == unknown && rj == unknown {
			return items[i] < items[j]
		}
		return ri < rj
	})
	return items
}

// Retain attaches s as a seed for the next batch to the record of its
// highest ranked item. It returns false when no item of s is in the table.
func (t *Table) Retain(s *itemset.Itemset) bool {
	if s.Size() == 0 {
		return false
	}
	head := t.Order(s.Items())[0]
	r := t.Get(head)
	if r == nil {
		return false
	}
	r.Retained = append(r.Retained, s)
	return true
}

// Seeds consumes the retained itemsets of every admitted record and returns
// them as canonically ordered item lists.
func (t *Table) Seeds(itemMinSupport int) [][]string {
	seeds := make([][]string, 0, 10)
	for _, r := range t.Records() {
		if len(r.Retained) == 0 || !t.Admitted(r.Item, itemMinSupport) {
			continue
		}
		for _, s := range r.Retained {
			seeds = append(seeds, t.Order(s.Items()))
		}
		r.Retained = nil
	}
	return seeds
}

func (t *Table) String() string {
	lines := make([]string, 0, t.Len())
	for _, r := range t.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}

// Update merges batch into a copy of prior. Prior records keep their
// cumulative support and retained itemsets and get a zero batch support.
// Items new in this batch are appended in order of first appearance. Every
// occurrence of an item counts, so a repeated token counts twice. The
// returned table is sorted by descending batch support.
func Update(batch [][]string, prior *Table, ratio float64) *Table {
	t := NewTable()
	for _, r := range prior.Records() {
		c := r.copy()
		c.Batch = 0
		t.add(c)
	}
	for _, tx := range batch {
		for _, item := range tx {
			if item == "" || t.Has(item) {
				continue
			}
			t.add(&Record{Item: item})
		}
	}
	for _, tx := range batch {
		for _, item := range tx {
			if item == "" {
				continue
			}
			r := t.Get(item)
			r.Cumulative++
			r.Batch++
		}
	}
	for _, r := range t.records {
		r.MinSupport = int(math.Floor(ratio * float64(r.Batch)))
	}
	sort.SliceStable(t.records, func(i, j int) bool {
		return t.records[i].Batch > t.records[j].Batch
	})
	t.reindex()
	return t
}
