package itemset

import (
	"fmt"
	"io"
	"strings"
)

type Formatter struct{}

func (f Formatter) FileExt() string {
	return ".items"
}

// PatternName is the same for every ordering of the same items.
func (f Formatter) PatternName(s *Itemset) string {
	return strings.Join(s.Sorted(), " ")
}

func (f Formatter) FormatPattern(w io.Writer, s *Itemset) error {
	_, err := fmt.Fprintf(w, "%d\t%v\n", s.Count, strings.Join(s.Items(), "\t"))
	return err
}
