package reporters

import (
	"fmt"
	"io"
	"os"
)

import (
	"github.com/timtadh/incmax/config"
	"github.com/timtadh/incmax/miner"
)

// Tree dumps the prefix tree and the mfi tree of every batch.
type Tree struct {
	f io.WriteCloser
}

func NewTree(c *config.Config, name string) (*Tree, error) {
	f, err := os.Create(c.OutputFile(name + ".tree"))
	if err != nil {
		return nil, err
	}
	return &Tree{f: f}, nil
}

func (r *Tree) Report(res *miner.Result) error {
	_, err := fmt.Fprintf(r.f, "batch %d tree (%d nodes, minsup %d)\n%v",
		res.Batch, res.Tree.Size(), res.MinSupport, res.Tree)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.f, "batch %d mfi tree (%d nodes)\n%v",
		res.Batch, res.MFITree.Size(), res.MFITree)
	return err
}

func (r *Tree) Close() error {
	return r.f.Close()
}
