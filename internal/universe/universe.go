// Package universe enumerates the symbols a scan covers.
package universe

import "strings"

// Nasdaq100 returns the Nasdaq-100 list.
func Nasdaq100() []string { return append([]string(nil), nasdaq100...) }

// SP500 returns the S&P 500 list. It may contain duplicates.
func SP500() []string { return append([]string(nil), sp500...) }

// Others returns the watch list of ETFs, commodities and extra names.
func Others() []string { return append([]string(nil), others...) }

// Options selects which lists make up the universe.
type Options struct {
	Nasdaq100 bool
	SP500     bool
	Others    bool
	Extra     []string
	Exclude   []string
}

// Build merges the selected lists, normalizes symbols to upper case and
// removes duplicates and exclusions, keeping first-seen order.
func Build(opts Options) []string {
	var lists [][]string
	if opts.Nasdaq100 {
		lists = append(lists, nasdaq100)
	}
	if opts.SP500 {
		lists = append(lists, sp500)
	}
	if opts.Others {
		lists = append(lists, others)
	}
	lists = append(lists, opts.Extra)

	seen := make(map[string]struct{})
	for _, s := range opts.Exclude {
		seen[normalize(s)] = struct{}{}
	}
	var out []string
	for _, l := range lists {
		for _, s := range l {
			s = normalize(s)
			if s == "" {
				continue
			}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
