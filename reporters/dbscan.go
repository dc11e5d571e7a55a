package reporters

import (
	"encoding/json"
	"os"
)

import (
	"github.com/timtadh/data-structures/exc"
)

import (
	"github.com/timtadh/incmax/config"
	"github.com/timtadh/incmax/miner"
	"github.com/timtadh/incmax/types/itemset"
)

type clusterNode struct {
	batch int
	items *itemset.Itemset
}

// distance is the jaccard distance of the two itemsets.
func (a *clusterNode) distance(b *clusterNode) float64 {
	i, err := a.items.Set().Intersect(b.items.Set())
	exc.ThrowOnError(err)
	inter := float64(i.Size())
	union := float64(a.items.Size()) + float64(b.items.Size()) - inter
	if union == 0 {
		return 0
	}
	return 1.0 - (inter / union)
}

type cluster []*clusterNode

// DbScan groups the itemsets of every batch into clusters. An itemset joins
// the first cluster holding an itemset within epsilon of it. The clusters
// are written as json lines on Close.
type DbScan struct {
	clusters []cluster
	config   *config.Config
	fmtr     *Formatter
	filename string
	epsilon  float64
}

func NewDbScan(c *config.Config, fmtr *Formatter, filename string, epsilon float64) (*DbScan, error) {
	r := &DbScan{
		config:   c,
		fmtr:     fmtr,
		filename: filename,
		epsilon:  epsilon,
	}
	return r, nil
}

func (r *DbScan) Report(res *miner.Result) error {
	return exc.Try(func() {
		for _, s := range res.Itemsets {
			r.add(&clusterNode{batch: res.Batch, items: s})
		}
	}).Error()
}

func (r *DbScan) add(cn *clusterNode) {
	for i := range r.clusters {
		for _, b := range r.clusters[i] {
			if cn.distance(b) <= r.epsilon {
				r.clusters[i] = append(r.clusters[i], cn)
				return
			}
		}
	}
	r.clusters = append(r.clusters, cluster{cn})
}

func (r *DbScan) Close() error {
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "")
	for i, cluster := range r.clusters {
		for _, cn := range cluster {
			x := map[string]interface{}{
				"cluster": i,
				"batch":   cn.batch,
				"name":    r.fmtr.ItemsetName(cn.items),
				"items":   cn.items.Items(),
				"count":   cn.items.Count,
			}
			err := enc.Encode(x)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
