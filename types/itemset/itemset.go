package itemset

import (
	"encoding/binary"
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// Itemset is a set of item tokens which also remembers the order the items
// were given in. Membership, equality and hashing ignore the order. The order
// is what the rule generator splits on.
type Itemset struct {
	items []string
	set   *set.SortedSet
	Count int
}

// New builds an itemset from items. Empty tokens and repeated tokens are
// dropped, the first occurrence fixes the position of an item.
func New(items ...string) *Itemset {
	s := &Itemset{
		items: make([]string, 0, len(items)),
		set:   set.NewSortedSet(len(items)),
	}
	for _, item := range items {
		if item == "" || s.set.Has(types.String(item)) {
			continue
		}
		s.set.Add(types.String(item))
		s.items = append(s.items, item)
	}
	return s
}

func (s *Itemset) Copy() *Itemset {
	c := New(s.items...)
	c.Count = s.Count
	return c
}

func (s *Itemset) Items() []string {
	items := make([]string, len(s.items))
	copy(items, s.items)
	return items
}

// Sorted gives the items in token order.
func (s *Itemset) Sorted() []string {
	items := make([]string, 0, s.set.Size())
	for i, next := s.set.Items()(); next != nil; i, next = next() {
		items = append(items, string(i.(types.String)))
	}
	return items
}

func (s *Itemset) Set() *set.SortedSet {
	return s.set
}

func (s *Itemset) Size() int {
	return len(s.items)
}

func (s *Itemset) Has(item string) bool {
	return s.set.Has(types.String(item))
}

func (s *Itemset) Equals(o *Itemset) bool {
	return s.set.Equals(o.set)
}

func (s *Itemset) SubsetOf(o *Itemset) bool {
	if s.Size() > o.Size() {
		return false
	}
	for _, item := range s.items {
		if !o.Has(item) {
			return false
		}
	}
	return true
}

func (s *Itemset) ProperSubsetOf(o *Itemset) bool {
	return s.Size() < o.Size() && s.SubsetOf(o)
}

// Common counts the items s shares with o.
func (s *Itemset) Common(o *Itemset) int {
	if s.Size() == 0 || o.Size() == 0 {
		return 0
	}
	x, err := s.set.Intersect(o.set)
	if err != nil {
		panic(err)
	}
	return x.Size()
}

// Label is an order independent binary encoding of the set. It is length
// prefixed so tokens containing separators can not collide.
func (s *Itemset) Label() []byte {
	sorted := s.Sorted()
	size := 4
	for _, item := range sorted {
		size += 4 + len(item)
	}
	bytes := make([]byte, size)
	binary.BigEndian.PutUint32(bytes[0:4], uint32(len(sorted)))
	off := 4
	for _, item := range sorted {
		binary.BigEndian.PutUint32(bytes[off:off+4], uint32(len(item)))
		off += 4
		off += copy(bytes[off:], item)
	}
	return bytes
}

// FromLabel decodes a Label. The items come back in sorted order.
func FromLabel(label []byte) (*Itemset, error) {
	if len(label) < 4 {
		return nil, errors.Errorf("label too short (%d bytes)", len(label))
	}
	n := int(binary.BigEndian.Uint32(label[0:4]))
	items := make([]string, 0, n)
	off := 4
	for i := 0; i < n; i++ {
		if off+4 > len(label) {
			return nil, errors.Errorf("label truncated at item %d", i)
		}
		size := int(binary.BigEndian.Uint32(label[off : off+4]))
		off += 4
		if off+size > len(label) {
			return nil, errors.Errorf("label truncated at item %d", i)
		}
		items = append(items, string(label[off:off+size]))
		off += size
	}
	return New(items...), nil
}

func (s *Itemset) Key() string {
	return string(s.Label())
}

func (s *Itemset) String() string {
	return fmt.Sprintf("{%v}", strings.Join(s.items, ", "))
}
