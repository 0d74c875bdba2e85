package episode

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// Rule pairs a name with a pattern whose first capture group holds the digits.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// DefaultRules is the ordered rule list used by Extract.
var DefaultRules = []Rule{
	{Name: "season_episode", Pattern: regexp.MustCompile(`(?i)(?:S\d{1,2}E|E)(\d{1,2})`)},
	{Name: "leading_number", Pattern: regexp.MustCompile(`(?i)^(\d{1,2})\.`)},
	{Name: "ep_prefix", Pattern: regexp.MustCompile(`(?i)(?:EP|E)(\d{1,2})`)},
	{Name: "cjk_episode", Pattern: regexp.MustCompile(`(?i)第(\d{1,2})話`)},
	{Name: "number_before_bracket", Pattern: regexp.MustCompile(`(\d{1,2})\s*\[`)},
	{Name: "bracketed_number", Pattern: regexp.MustCompile(`(?i)\[.*?\]\[(\d{1,2})\]`)},
	{Name: "tagged_ep", Pattern: regexp.MustCompile(`(?i)\[x_x\].*?\[Ep(\d{1,2})\]`)},
}

// Match describes a successful extraction.
type Match struct {
	Number uint32
	Rule   string
	Digits string
}

// Extractor applies an ordered rule list.
type Extractor struct {
	rules []Rule
}

// NewExtractor returns an extractor over rules. An empty list falls back to
// DefaultRules.
func NewExtractor(rules []Rule) *Extractor {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Extractor{rules: rules}
}

var defaultExtractor = NewExtractor(nil)

// Extract returns the episode number inferred from filename using DefaultRules.
func Extract(filename string) (uint32, bool) {
	return defaultExtractor.Extract(filename)
}

// Explain is Extract with the winning rule attached.
func Explain(filename string) (Match, bool) {
	return defaultExtractor.Explain(filename)
}

// Extract returns the episode number inferred from filename.
func (e *Extractor) Extract(filename string) (uint32, bool) {
	m, ok := e.Explain(filename)
	return m.Number, ok
}

// Explain returns the first surviving match of the first rule that has one.
func (e *Extractor) Explain(filename string) (Match, bool) {
	name := fold(filename)
	for _, rule := range e.rules {
		for _, groups := range rule.Pattern.FindAllStringSubmatch(name, -1) {
			if len(groups) < 2 || groups[1] == "" {
				continue
			}
			digits := groups[1]
			if isResolutionTag(name, digits) {
				continue
			}
			n, err := strconv.ParseUint(digits, 10, 32)
			if err != nil {
				continue
			}
			return Match{Number: uint32(n), Rule: rule.Name, Digits: digits}, true
		}
	}
	return Match{}, false
}

// isResolutionTag reports whether digits+"P" appears in name. The check is
// case-sensitive: "1080p" does not exclude "08".
func isResolutionTag(name, digits string) bool {
	return strings.Contains(name, digits+"P")
}

// fold maps full-width digits, letters and brackets to their ASCII forms so
// names such as "第０７話" or "［０３］" match the ASCII-only patterns.
func fold(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] >= 0x80 {
			return width.Fold.String(name)
		}
	}
	return name
}
