/*
Command autocorrect is an interactive console for exercising the
autocorrect façade: it reads one word per line from stdin and prints
ranked suggestions, either computed synchronously or streamed as they're
discovered.

Grounded on original_source/examples/console.rs and
examples/console_async.rs: the same "type a word, get suggestions,
type OPT or EXIT to stop" loop, rebuilt around flag for configuration
and charmbracelet/log for diagnostics instead of println!.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Chopinsky/auto-correct"
	"github.com/Chopinsky/auto-correct/alphabet"
	"github.com/Chopinsky/auto-correct/candidate"
	"github.com/Chopinsky/auto-correct/config"
	"github.com/Chopinsky/auto-correct/deque"
	"github.com/charmbracelet/log"
)

const (
	optCommand     = "OPT"
	exitCommand    = "EXIT"
	historyCommand = "HISTORY"
	dictCommand    = "DICT"
	historyLimit   = 10
	asyncLimit     = 5
)

func main() {
	maxEdit := flag.Int("max-edit", 1, "maximum edit distance to search (1-3)")
	dictPath := flag.String("dict", "", "override dictionary path (bypasses locale/run-mode resolution)")
	speedMode := flag.Bool("speed", false, "load the preprocessed, speed-sensitive dictionary variant")
	asyncMode := flag.Bool("async", false, "stream candidates as they're discovered instead of sorting them first")
	flag.Parse()

	cfg := config.New().WithMaxEdit(*maxEdit).WithLocale(alphabet.EnUS)
	if *dictPath != "" {
		cfg = cfg.WithOverrideDict(*dictPath)
	}
	if *speedMode {
		cfg = cfg.WithRunMode(config.SpeedSensitive)
	}

	ac := autocorrect.NewWithConfig(cfg)
	defer ac.Close()

	log.Infof("dictionary loaded: %d words", ac.DictionarySize())

	history := deque.NewDeque[string]()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("Enter a word: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		upper := strings.ToUpper(input)
		if upper == optCommand || upper == exitCommand {
			break
		}
		if upper == historyCommand {
			printHistory(history)
			continue
		}
		if upper == dictCommand {
			printDictSample(ac)
			continue
		}
		if input == "" {
			continue
		}

		recordHistory(history, input)

		start := time.Now()
		if *asyncMode {
			runAsync(ac, input)
		} else {
			runSync(ac, input)
		}
		fmt.Printf("\ntime elapsed: %s\n============================\n", time.Since(start))
	}
}

func runSync(ac *autocorrect.AutoCorrect, word string) {
	results := ac.Candidates(word)
	fmt.Println("\nresults:")
	for i, c := range results {
		fmt.Printf("  #%d: %s (score %d, edit %d)\n", i, c.Word, c.Score, c.Edit)
	}
}

func runAsync(ac *autocorrect.AutoCorrect, word string) {
	fmt.Println("\nresults (streamed, first 5):")
	remaining := asyncLimit
	ac.CandidatesAsync(word, func(c candidate.Candidate) bool {
		fmt.Printf("  %s (score %d, edit %d)\n", c.Word, c.Score, c.Edit)
		remaining--
		return remaining > 0
	})
}

// recordHistory keeps the most recent historyLimit queries, evicting the
// oldest once full.
func recordHistory(h *deque.Deque[string], word string) {
	if h.Size() >= historyLimit {
		_, _ = h.PollFirst()
	}
	_, _ = h.OfferLast(word)
}

const dictSampleSize = 10

// printDictSample reports the loaded word count and a small sample of
// entries, useful for confirming which dictionary variant got loaded.
func printDictSample(ac *autocorrect.AutoCorrect) {
	words := ac.Words()
	fmt.Printf("\n%d words loaded; sample:\n", len(words))
	for i, e := range words {
		if i >= dictSampleSize {
			break
		}
		fmt.Printf("  %s (score %d)\n", e.Word, e.Score)
	}
}

func printHistory(h *deque.Deque[string]) {
	if h.IsEmpty() {
		fmt.Println("\n(no queries yet)")
		return
	}

	fmt.Println("\nrecent queries:")
	seen := 0
	for {
		word, err := h.PollFirst()
		if err != nil {
			break
		}
		fmt.Printf("  %s\n", word)
		_, _ = h.OfferLast(word)
		seen++
		if seen >= h.Size() {
			break
		}
	}
}
