package rewrite

import "regexp"

// Rule swaps a formal word or phrase for a plainer one.
// Matching is case-insensitive and limited to whole words.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

func wordRule(word, replacement string) Rule {
	return Rule{
		Pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`),
		Replacement: replacement,
	}
}

// lexicon is applied in order, once per rule. A replacement may be matched
// again by a later rule; there is no fixed-point iteration.
var lexicon = []Rule{
	wordRule("approximately", "about"),
	wordRule("utilize", "use"),
	wordRule("commence", "start"),
	wordRule("terminate", "end"),
	wordRule("purchase", "buy"),
	wordRule("assist", "help"),
	wordRule("individuals", "people"),
	wordRule("objective", "goal"),
	wordRule("sufficient", "enough"),
	wordRule("consequently", "so"),
	wordRule("nevertheless", "but"),
	wordRule("therefore", "so"),
	wordRule("in order to", "to"),
	wordRule("prior to", "before"),
	wordRule("demonstrate", "show"),
	wordRule("impact", "effect"),
	wordRule("implement", "do"),
	wordRule("regarding", "about"),
}

// intermediateRules is how many leading lexicon entries the intermediate
// level applies.
const intermediateRules = 7

// Lexicon returns a copy of the substitution rules in application order.
func Lexicon() []Rule {
	return append([]Rule(nil), lexicon...)
}

func applyRules(s string, rules []Rule) string {
	for _, r := range rules {
		s = r.Pattern.ReplaceAllLiteralString(s, r.Replacement)
	}
	return s
}
