package itemset

import (
	"encoding/csv"
	"io"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Loader reads delimited transaction files. Each line is a transaction and
// each field an item. Fields may be wrapped in double quotes.
type Loader struct {
	Delimiter rune
}

func NewLoader(delimiter rune) *Loader {
	if delimiter == 0 {
		delimiter = '\t'
	}
	return &Loader{Delimiter: delimiter}
}

func (l *Loader) reader(input io.Reader) *csv.Reader {
	r := csv.NewReader(input)
	r.Comma = l.Delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.ReuseRecord = false
	return r
}

func (l *Loader) Load(input io.Reader) ([][]string, error) {
	txs := make([][]string, 0, 100)
	err := l.Batches(input, 0, func(batch [][]string) error {
		txs = append(txs, batch...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// Batches calls do with every size transactions read from input. A size <= 0
// puts the whole input into one batch. The last batch may be short.
func (l *Loader) Batches(input io.Reader, size int, do func(batch [][]string) error) error {
	r := l.reader(input)
	capacity := size
	if capacity <= 0 {
		capacity = 100
	}
	batch := make([][]string, 0, capacity)
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return errors.Errorf("could not read transaction %d: %v", line, err)
		}
		line++
		tx := make([]string, 0, len(record))
		for _, col := range record {
			item := strings.Trim(strings.TrimSpace(col), "'")
			if item == "" {
				errors.Logf("DEBUG", "transaction %d contained an empty item", line)
				continue
			}
			tx = append(tx, item)
		}
		batch = append(batch, tx)
		if size > 0 && len(batch) >= size {
			if err := do(batch); err != nil {
				return err
			}
			batch = make([][]string, 0, capacity)
		}
	}
	if len(batch) > 0 {
		return do(batch)
	}
	return nil
}
