package fptree

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/incmax/types/itemset"
)

// Extract emits the path to every node whose count is at least minSupport.
// It does not check whether an emitted itemset is contained in another one,
// see Maximal for that. Equal itemsets are reported once with the highest
// count seen.
func Extract(t *Tree, minSupport int) []*itemset.Itemset {
	found := make([]*itemset.Itemset, 0, 10)
	seen := hashtable.NewLinearHash() // label ==> index in found
	err := t.Walk(func(path []string, count int) error {
		if count < minSupport {
			return nil
		}
		s := itemset.New(path...)
		if s.Size() == 0 {
			return nil
		}
		s.Count = count
		label := types.ByteSlice(s.Label())
		if seen.Has(label) {
			i, err := seen.Get(label)
			if err != nil {
				return err
			}
			if prev := found[i.(int)]; count > prev.Count {
				prev.Count = count
			}
			return nil
		}
		if err := seen.Put(label, len(found)); err != nil {
			return err
		}
		found = append(found, s)
		return nil
	})
	if err != nil {
		panic(err)
	}
	return found
}

// FPMax extracts every observed path of t and grafts them into a new tree,
// which can be re-extracted at any support without the transactions.
func FPMax(t *Tree) (*Tree, []*itemset.Itemset) {
	candidates := Extract(t, 1)
	mfi := New()
	for _, s := range candidates {
		mfi.Graft(s.Items(), s.Count)
	}
	mfi.MinSupport = t.MinSupport
	mfi.Transactions = t.Transactions
	errors.Logf("DEBUG", "fp-max: tree %d nodes, mfi tree %d nodes, %d candidates",
		t.Size(), mfi.Size(), len(candidates))
	return mfi, candidates
}

// Maximal drops every itemset which is a proper subset of another itemset in
// sets.
func Maximal(sets []*itemset.Itemset) []*itemset.Itemset {
	max := make([]*itemset.Itemset, 0, len(sets))
	for i, s := range sets {
		contained := false
		for j, o := range sets {
			if i != j && s.ProperSubsetOf(o) {
				contained = true
				break
			}
		}
		if !contained {
			max = append(max, s)
		}
	}
	return max
}
