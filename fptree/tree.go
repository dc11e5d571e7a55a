package fptree

import (
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

type node struct {
	label    string
	count    int
	parent   int
	children map[string]int
}

// Tree is a prefix tree of item lists annotated with counts. Nodes live in an
// arena and refer to each other by index. The root is always at index 0, has
// an empty label and a zero count.
type Tree struct {
	nodes        []node
	MinSupport   int
	Transactions int
}

func New() *Tree {
	t := &Tree{
		nodes: make([]node, 0, 64),
	}
	t.nodes = append(t.nodes, node{parent: -1, children: make(map[string]int)})
	return t
}

// Build inserts every transaction with weight 1. The transactions must already
// be in the order their items should appear on the paths.
func Build(txs [][]string) *Tree {
	t := New()
	for _, tx := range txs {
		t.Insert(tx, 1)
	}
	return t
}

// Size is the number of nodes not counting the root.
func (t *Tree) Size() int {
	return len(t.nodes) - 1
}

func (t *Tree) child(n int, label string) (int, bool) {
	kid, has := t.nodes[n].children[label]
	if has {
		return kid, false
	}
	kid = len(t.nodes)
	t.nodes = append(t.nodes, node{
		label:    label,
		parent:   n,
		children: make(map[string]int),
	})
	t.nodes[n].children[label] = kid
	return kid, true
}

// Insert adds items as a path from the root, adding weight to the count of
// every node on the path. Empty items are skipped.
func (t *Tree) Insert(items []string, weight int) {
	if weight < 0 {
		panic(errors.Errorf("negative weight %d inserting %v", weight, items))
	}
	t.Transactions += weight
	cur := 0
	for _, item := range items {
		if item == "" {
			continue
		}
		cur, _ = t.child(cur, item)
		t.nodes[cur].count += weight
	}
}

// Graft adds items as a path from the root. Nodes which already exist keep
// their count, nodes created by the graft get count.
func (t *Tree) Graft(items []string, count int) {
	if count < 0 {
		panic(errors.Errorf("negative count %d grafting %v", count, items))
	}
	cur := 0
	for _, item := range items {
		if item == "" {
			continue
		}
		var created bool
		cur, created = t.child(cur, item)
		if created {
			t.nodes[cur].count = count
		}
	}
}

// Find gives the count of the node at the end of the path items.
func (t *Tree) Find(items ...string) (count int, has bool) {
	cur := 0
	for _, item := range items {
		cur, has = t.nodes[cur].children[item]
		if !has {
			return 0, false
		}
	}
	return t.nodes[cur].count, true
}

func (t *Tree) path(n int) []string {
	depth := 0
	for p := n; p > 0; p = t.nodes[p].parent {
		depth++
	}
	path := make([]string, depth)
	for p := n; p > 0; p = t.nodes[p].parent {
		depth--
		path[depth] = t.nodes[p].label
	}
	return path
}

// kids orders the children of n by descending count then label.
func (t *Tree) kids(n int) []int {
	kids := make([]int, 0, len(t.nodes[n].children))
	for _, kid := range t.nodes[n].children {
		kids = append(kids, kid)
	}
	sort.Slice(kids, func(i, j int) bool {
		a, b := &t.nodes[kids[i]], &t.nodes[kids[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		return a.label < b.label
	})
	return kids
}

// Walk visits every node but the root depth first, in pre-order, children by
// descending count then label. The path given to do is owned by do.
func (t *Tree) Walk(do func(path []string, count int) error) error {
	stack := make([]int, 0, 32)
	root := t.kids(0)
	for i := len(root) - 1; i >= 0; i-- {
		stack = append(stack, root[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.nodes[n].count < 0 {
			panic(errors.Errorf("node %v has negative count %d", t.path(n), t.nodes[n].count))
		}
		if err := do(t.path(n), t.nodes[n].count); err != nil {
			return err
		}
		kids := t.kids(n)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return nil
}

func (t *Tree) String() string {
	var b strings.Builder
	t.format(&b, 0, "")
	return b.String()
}

func (t *Tree) format(b *strings.Builder, n int, indent string) {
	if n != 0 {
		fmt.Fprintf(b, "%v├── %v [count: %d]\n", indent, t.nodes[n].label, t.nodes[n].count)
		indent += "│   "
	}
	for _, kid := range t.kids(n) {
		t.format(b, kid, indent)
	}
}
