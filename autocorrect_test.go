package autocorrect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Chopinsky/auto-correct/candidate"
	"github.com/Chopinsky/auto-correct/config"
)

func writeTestDict(t *testing.T, entries string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.txt")
	if err := os.WriteFile(path, []byte(entries), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewWithConfigLoadsOverrideDictionary(t *testing.T) {
	path := writeTestDict(t, "cat,100\ncast,80\ncot,60\n")
	ac := NewWithConfig(config.New().WithOverrideDict(path))
	defer ac.Close()

	if got := ac.DictionarySize(); got != 3 {
		t.Fatalf("DictionarySize() = %d; want 3", got)
	}
}

func TestCandidatesReturnsExactMatchFirst(t *testing.T) {
	path := writeTestDict(t, "cat,100\ncast,10\n")
	ac := NewWithConfig(config.New().WithOverrideDict(path))
	defer ac.Close()

	got := ac.Candidates("cat")
	if len(got) == 0 || got[0].Word != "cat" || got[0].Edit != 0 {
		t.Fatalf("Candidates(cat) = %+v; want exact match first", got)
	}
}

func TestSetMaxEditDoesNotReloadDictionary(t *testing.T) {
	path := writeTestDict(t, "cat,100\n")
	ac := NewWithConfig(config.New().WithOverrideDict(path))
	defer ac.Close()

	before := ac.DictionarySize()
	ac.SetMaxEdit(2)
	if got := ac.DictionarySize(); got != before {
		t.Fatalf("SetMaxEdit triggered a reload: size went from %d to %d", before, got)
	}
	if ac.Config().MaxEdit() != 2 {
		t.Fatalf("Config().MaxEdit() = %d; want 2", ac.Config().MaxEdit())
	}
}

func TestSetOverrideDictReloadsDictionary(t *testing.T) {
	first := writeTestDict(t, "cat,100\n")
	second := writeTestDict(t, "cat,100\ncast,80\ncot,60\n")

	ac := NewWithConfig(config.New().WithOverrideDict(first))
	defer ac.Close()

	if got := ac.DictionarySize(); got != 1 {
		t.Fatalf("DictionarySize() = %d; want 1 before override change", got)
	}

	ac.SetOverrideDict(second)
	if got := ac.DictionarySize(); got != 3 {
		t.Fatalf("DictionarySize() = %d; want 3 after override change", got)
	}
}

func TestWordsReturnsEveryLoadedEntry(t *testing.T) {
	path := writeTestDict(t, "cat,100\ncast,80\ncot,60\n")
	ac := NewWithConfig(config.New().WithOverrideDict(path))
	defer ac.Close()

	got := make(map[string]uint32)
	for _, e := range ac.Words() {
		got[e.Word] = e.Score
	}

	want := map[string]uint32{"cat": 100, "cast": 80, "cot": 60}
	if len(got) != len(want) {
		t.Fatalf("Words() = %+v; want %+v", got, want)
	}
}

func TestCandidatesTopKLimitsResultCount(t *testing.T) {
	path := writeTestDict(t, "cat,100\ncast,90\ncot,80\ncut,70\n")
	ac := NewWithConfig(config.New().WithOverrideDict(path).WithMaxEdit(2))
	defer ac.Close()

	got := ac.CandidatesTopK("cat", 2)
	if len(got) > 2 {
		t.Fatalf("CandidatesTopK(2) returned %d candidates; want at most 2", len(got))
	}
}

func TestCandidatesAsyncStreamsResults(t *testing.T) {
	path := writeTestDict(t, "cat,100\ncast,80\n")
	ac := NewWithConfig(config.New().WithOverrideDict(path))
	defer ac.Close()

	var got []candidate.Candidate
	ac.CandidatesAsync("cst", func(c candidate.Candidate) bool {
		got = append(got, c)
		return true
	})
	if len(got) == 0 {
		t.Fatalf("CandidatesAsync(cst) forwarded nothing")
	}
}

func TestNewLoadsFromDefaultResourcePath(t *testing.T) {
	// go test's working directory for this package is the module root,
	// where resources/en-us/freq_50k.txt ships a sample dictionary.
	ac := New()
	defer ac.Close()

	if ac.DictionarySize() == 0 {
		t.Fatalf("DictionarySize() = 0; want the sample resources/en-us dictionary loaded")
	}

	got := ac.Candidates("the")
	if len(got) == 0 || got[0].Word != "the" || got[0].Edit != 0 {
		t.Fatalf("Candidates(the) = %+v; want exact match first", got)
	}
}
