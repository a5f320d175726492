/*
Package config holds the surface-level configuration AutoCorrect is
built from: the maximum edit distance to search, the active locale, an
optional dictionary-path override, and which of two dictionary files to
load. None of this package does any searching itself; it only resolves
which dictionary file the lexicon loader should read.

Grounded directly on original_source/src/config.rs: the same
default (max_edit=1), the same clamp range ([1,3]) with a logged warning
on out-of-range input, and the same override-dict precedence rule.
*/
package config

import (
	"fmt"

	"github.com/Chopinsky/auto-correct/alphabet"
	"github.com/Chopinsky/auto-correct/internal/logging"
)

// RunMode selects which of the two dictionary files a Config resolves
// to. Per spec.md §9, the two modes share the same search engine; the
// mode only changes which file gets loaded.
type RunMode int

const (
	// SpaceSensitive loads the primary, unprocessed frequency file.
	SpaceSensitive RunMode = iota
	// SpeedSensitive loads a preprocessed variant meant to load faster
	// at the cost of disk space.
	SpeedSensitive
)

const (
	defaultMaxEdit   = 1
	minMaxEdit       = 1
	maxMaxEditBound  = 3
	primaryFilename  = "freq_50k.txt"
	preprocFilename  = "freq_50k_preproc.txt"
	resourceRootPath = "./resources"
)

// Config is AutoCorrect's surface-level configuration.
type Config struct {
	maxEdit      uint8
	locale       alphabet.Locale
	overrideDict string
	runMode      RunMode
}

// New returns the default configuration: max_edit=1, EnUS locale,
// SpaceSensitive run mode, no dictionary override.
func New() Config {
	return Config{
		maxEdit: defaultMaxEdit,
		locale:  alphabet.EnUS,
		runMode: SpaceSensitive,
	}
}

// WithMaxEdit returns a copy of c with MaxEdit set, clamped to [1,3]
// with a logged warning if out of range.
func (c Config) WithMaxEdit(maxEdit int) Config {
	c.maxEdit = clampMaxEdit(maxEdit)
	return c
}

// WithLocale returns a copy of c with Locale set.
func (c Config) WithLocale(locale alphabet.Locale) Config {
	c.locale = locale
	return c
}

// WithOverrideDict returns a copy of c with an explicit dictionary path,
// bypassing the locale/run-mode derived resource path.
func (c Config) WithOverrideDict(path string) Config {
	c.overrideDict = path
	return c
}

// WithRunMode returns a copy of c with RunMode set.
func (c Config) WithRunMode(mode RunMode) Config {
	c.runMode = mode
	return c
}

func clampMaxEdit(maxEdit int) uint8 {
	if maxEdit > maxMaxEditBound {
		logging.Warnf("max_edit %d exceeds the supported maximum of %d; clamping", maxEdit, maxMaxEditBound)
		return maxMaxEditBound
	}
	if maxEdit < minMaxEdit {
		logging.Warnf("max_edit %d is below the supported minimum of %d; clamping", maxEdit, minMaxEdit)
		return minMaxEdit
	}
	return uint8(maxEdit)
}

// MaxEdit returns the configured maximum edit distance, always in [1,3].
func (c Config) MaxEdit() uint8 {
	return c.maxEdit
}

// Locale returns the configured locale.
func (c Config) Locale() alphabet.Locale {
	return c.locale
}

// RunMode returns the configured run mode.
func (c Config) RunMode() RunMode {
	return c.runMode
}

// OverrideDict returns the explicit dictionary path override, or the
// empty string if none was set.
func (c Config) OverrideDict() string {
	return c.overrideDict
}

// DictPath resolves the dictionary file this configuration should load:
// the override path if one is set, otherwise a path derived from locale
// and run mode.
func (c Config) DictPath() string {
	if c.overrideDict != "" {
		return c.overrideDict
	}

	filename := primaryFilename
	if c.runMode == SpeedSensitive {
		filename = preprocFilename
	}

	return fmt.Sprintf("%s/%s/%s", resourceRootPath, c.locale, filename)
}
