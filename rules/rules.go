package rules

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/incmax/types/itemset"
)

// Formula picks the denominator of the confidence of a rule A => C. The
// numerator is always support(A ∪ C).
type Formula int

const (
	// Consequent divides by support(C).
	Consequent Formula = iota
	// Antecedent divides by support(A).
	Antecedent
)

func ParseFormula(name string) (Formula, error) {
	switch name {
	case "", "consequent":
		return Consequent, nil
	case "antecedent":
		return Antecedent, nil
	default:
		return 0, errors.Errorf("unknown confidence formula '%v' (valid: consequent, antecedent)", name)
	}
}

func (f Formula) String() string {
	switch f {
	case Consequent:
		return "consequent"
	case Antecedent:
		return "antecedent"
	default:
		return fmt.Sprintf("formula-[%d]", int(f))
	}
}

type Rule struct {
	Antecedent []string
	Consequent []string
	Support    int
	Confidence float64
}

func (r *Rule) String() string {
	return fmt.Sprintf("[%v] => [%v] (support %d, confidence %.4g)",
		strings.Join(r.Antecedent, ", "), strings.Join(r.Consequent, ", "), r.Support, r.Confidence)
}

// Confidence of antecedent => consequent. ok is false when the denominator
// has no support, the rule is then untestable.
func Confidence(idx *Index, antecedent, consequent []string, f Formula) (confidence float64, support int, ok bool) {
	both := make([]string, 0, len(antecedent)+len(consequent))
	both = append(both, antecedent...)
	both = append(both, consequent...)
	support = idx.Support(both)
	var denominator int
	switch f {
	case Antecedent:
		denominator = idx.Support(antecedent)
	default:
		denominator = idx.Support(consequent)
	}
	if denominator == 0 {
		return 0, support, false
	}
	return float64(support) / float64(denominator), support, true
}

// Generate splits every itemset with more than one item at each position of
// its item order and keeps the rules with confidence of at least
// minConfidence.
func Generate(sets []*itemset.Itemset, minConfidence float64, batch [][]string, f Formula) []*Rule {
	return GenerateIndexed(sets, minConfidence, NewIndex(batch), f)
}

func GenerateIndexed(sets []*itemset.Itemset, minConfidence float64, idx *Index, f Formula) []*Rule {
	rules := make([]*Rule, 0, len(sets))
	for _, s := range sets {
		if s.Size() <= 1 {
			continue
		}
		items := s.Items()
		for i := 1; i < len(items); i++ {
			antecedent := items[:i:i]
			consequent := items[i:]
			confidence, support, ok := Confidence(idx, antecedent, consequent, f)
			if !ok {
				errors.Logf("DEBUG", "skipping %v => %v, no support for the %v", antecedent, consequent, f)
				continue
			}
			if confidence >= minConfidence {
				rules = append(rules, &Rule{
					Antecedent: antecedent,
					Consequent: consequent,
					Support:    support,
					Confidence: confidence,
				})
			}
		}
	}
	return rules
}
