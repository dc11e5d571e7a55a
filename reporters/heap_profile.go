package reporters

import (
	"io"
	"os"
	"runtime/pprof"
)

import (
	"github.com/timtadh/incmax/miner"
)

type HeapProfile struct {
	f io.WriteCloser
}

func NewHeapProfile(path string) (*HeapProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	hp := &HeapProfile{f: f}
	return hp, nil
}

func (hp *HeapProfile) Report(res *miner.Result) error {
	return pprof.WriteHeapProfile(hp.f)
}

func (hp *HeapProfile) Close() error {
	return hp.f.Close()
}
