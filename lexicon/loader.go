/*
Package lexicon loads a frequency-weighted word list into a trie.Trie.

The file format is one entry per line, "<key>,<score>", where <key> must
be non-empty and <score> must parse as a non-negative 32-bit integer.
Malformed lines are silently skipped; an absent, unreadable, or
non-regular-file dictionary path degrades to an empty trie with a logged
warning, never an error returned to the caller — matching spec.md §7's
"no error is surfaced to the library caller" rule.
*/
package lexicon

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/Chopinsky/auto-correct/internal/logging"
	"github.com/Chopinsky/auto-correct/trie"
)

// Delim is the single ASCII comma separating a lexicon line's key from
// its score.
const Delim = ","

// Load reads path and inserts every well-formed "key,score" line into a
// freshly built trie.Trie. On any failure to open or stat path, it logs
// a warning and returns an empty trie: callers never need to branch on
// an error here.
func Load(path string) *trie.Trie {
	t := trie.New()

	if path == "" {
		logging.Warnf("no dictionary path configured; starting with an empty dictionary")
		return t
	}

	info, err := os.Stat(path)
	if err != nil {
		logging.Warnf("dictionary %q is not accessible: %v", path, err)
		return t
	}
	if !info.Mode().IsRegular() {
		logging.Warnf("dictionary %q is not a regular file", path)
		return t
	}

	f, err := os.Open(path)
	if err != nil {
		logging.Warnf("dictionary %q could not be opened: %v", path, err)
		return t
	}
	defer f.Close()

	LoadLines(bufio.NewScanner(f), t)
	return t
}

// LoadLines reads lexicon lines from s and inserts each well-formed one
// into t. It is split out from Load so tests can feed the parser without
// a filesystem dependency.
func LoadLines(s *bufio.Scanner, t *trie.Trie) {
	for s.Scan() {
		key, score, ok := parseLine(s.Text())
		if !ok {
			continue
		}
		t.Insert(key, score)
	}
}

func parseLine(line string) (key string, score uint32, ok bool) {
	key, rest, found := strings.Cut(line, Delim)
	if !found || key == "" {
		return "", 0, false
	}

	parsed, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return "", 0, false
	}

	return key, uint32(parsed), true
}
