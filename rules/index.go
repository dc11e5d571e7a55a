package rules

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// Index maps every item of a batch to the transactions containing it.
type Index struct {
	Transactions int
	txs          map[string]*set.SortedSet
}

func NewIndex(batch [][]string) *Index {
	i := &Index{
		Transactions: len(batch),
		txs:          make(map[string]*set.SortedSet),
	}
	for tx, items := range batch {
		for _, item := range items {
			if item == "" {
				continue
			}
			s, has := i.txs[item]
			if !has {
				s = set.NewSortedSet(10)
				i.txs[item] = s
			}
			s.Add(types.Int(tx))
		}
	}
	return i
}

// Support counts the transactions which contain every one of items. An empty
// item list is contained in no transaction.
func (i *Index) Support(items []string) int {
	if len(items) == 0 {
		return 0
	}
	var common *set.SortedSet
	for _, item := range items {
		s, has := i.txs[item]
		if !has {
			return 0
		}
		if common == nil {
			common = s
			continue
		}
		x, err := common.Intersect(s)
		if err != nil {
			panic(err)
		}
		common = x.(*set.SortedSet)
		if common.Size() == 0 {
			return 0
		}
	}
	return common.Size()
}
