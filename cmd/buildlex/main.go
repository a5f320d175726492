/*
Command buildlex preprocesses a raw frequency word list into the
sorted, deduplicated "key,score" wire format package lexicon consumes.

Grounded on original_source/build.rs, which ran as a build-time step
to emit a preprocessed dictionary variant alongside the primary one;
here it's a standalone tool instead of a build script, since Go has no
build.rs equivalent to hang it off.

Input lines are "<word><whitespace><count>"; malformed lines are
skipped with a warning. Output lines are "<word>,<score>" sorted by
descending score, one entry per distinct word (the highest count for
any duplicate word wins).
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/Chopinsky/auto-correct/internal/logging"
	"github.com/Chopinsky/auto-correct/lexicon"
)

func main() {
	in := flag.String("in", "", "path to the raw frequency word list (required)")
	out := flag.String("out", "", "path to write the preprocessed key,score file (required)")
	flag.Parse()

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: buildlex -in <raw-frequency-file> -out <preprocessed-file>")
		os.Exit(2)
	}

	entries, err := readRaw(*in)
	if err != nil {
		logging.Errorf("failed to read %q: %v", *in, err)
		os.Exit(1)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].word < entries[j].word
	})

	if err := writePreprocessed(*out, entries); err != nil {
		logging.Errorf("failed to write %q: %v", *out, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d entries to %s\n", len(entries), *out)
}

type entry struct {
	word  string
	score uint32
}

func readRaw(path string) ([]entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	best := make(map[string]uint32)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word, score, ok := parseRawLine(scanner.Text())
		if !ok {
			logging.Warnf("skipping malformed line %q", scanner.Text())
			continue
		}
		if existing, present := best[word]; !present || score > existing {
			best[word] = score
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(best))
	for word, score := range best {
		entries = append(entries, entry{word: word, score: score})
	}
	return entries, nil
}

func parseRawLine(line string) (word string, score uint32, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", 0, false
	}

	parsed, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return "", 0, false
	}

	return fields[0], uint32(parsed), true
}

func writePreprocessed(path string, entries []entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s%s%d\n", e.word, lexicon.Delim, e.score); err != nil {
			return err
		}
	}
	return w.Flush()
}
