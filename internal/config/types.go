// Package config loads and validates the YAML search configuration:
// keywords, which fields to search and how to combine them, runtime
// thread/power settings, and where to save a found key pair.
package config

import (
	"runtime"

	"github.com/shgen/vanityssh/internal/matcher"
)

const (
	// MaxKeywords mirrors matcher.MaxKeywords so the all-keywords
	// bitset check always fits a uint64.
	MaxKeywords = matcher.MaxKeywords
	MinThreads  = 1
	MaxThreads  = 192

	defaultSaveTo = "found-keys"
)

// Config is the resolved, fully-defaulted configuration the rest of
// the program consumes.
type Config struct {
	Keywords []string
	Search   SearchConfig
	Runtime  RuntimeConfig
	Output   OutputConfig
}

// SearchConfig is the resolved "search:" section.
type SearchConfig struct {
	Fields      []matcher.SearchField
	AllKeywords bool
	AllFields   bool
}

// RuntimeConfig is the resolved "runtime:" section.
type RuntimeConfig struct {
	Threads    int
	KeepAwake  bool
	PinThreads bool
}

// OutputConfig is the resolved "output:" section.
type OutputConfig struct {
	SaveTo string
}

// Policy adapts SearchConfig to the shape matcher.New expects.
func (s SearchConfig) Policy() matcher.Policy {
	return matcher.Policy{
		Fields:      s.Fields,
		AllKeywords: s.AllKeywords,
		AllFields:   s.AllFields,
	}
}

// rawDocument is the literal YAML shape. Fields with a non-zero
// default use a pointer so an omitted key (nil) can be told apart
// from an explicit zero value ("keep-awake: false" must stick, not
// get silently overwritten by the true default).
type rawDocument struct {
	Keywords []string    `yaml:"keywords"`
	Search   *rawSearch  `yaml:"search"`
	Runtime  *rawRuntime `yaml:"runtime"`
	Output   *rawOutput  `yaml:"output"`
}

type rawSearch struct {
	Fields   []matcher.SearchField `yaml:"fields"`
	Matching *rawMatching          `yaml:"matching"`
}

type rawMatching struct {
	AllKeywords *bool `yaml:"all-keywords"`
	AllFields   *bool `yaml:"all-fields"`
}

type rawRuntime struct {
	Threads    *int  `yaml:"threads"`
	KeepAwake  *bool `yaml:"keep-awake"`
	PinThreads *bool `yaml:"pin-threads"`
}

type rawOutput struct {
	SaveTo *string `yaml:"save-to"`
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// intOr defaults only an absent key. An explicit 0 in the document is
// kept so Validate can reject it, instead of being silently coerced to
// the default.
func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

// resolve fills in every field the document left unset and produces a
// Config ready for validation.
func (r *rawDocument) resolve() Config {
	cfg := Config{Keywords: r.Keywords}

	if r.Search != nil {
		cfg.Search.Fields = r.Search.Fields
		if r.Search.Matching != nil {
			cfg.Search.AllKeywords = boolOr(r.Search.Matching.AllKeywords, false)
			cfg.Search.AllFields = boolOr(r.Search.Matching.AllFields, true)
		} else {
			cfg.Search.AllKeywords = false
			cfg.Search.AllFields = true
		}
	} else {
		cfg.Search.AllKeywords = false
		cfg.Search.AllFields = true
	}
	if len(cfg.Search.Fields) == 0 {
		cfg.Search.Fields = defaultFields()
	}

	if r.Runtime != nil {
		cfg.Runtime.Threads = intOr(r.Runtime.Threads, defaultThreads())
		cfg.Runtime.KeepAwake = boolOr(r.Runtime.KeepAwake, true)
		cfg.Runtime.PinThreads = boolOr(r.Runtime.PinThreads, true)
	} else {
		cfg.Runtime = RuntimeConfig{Threads: defaultThreads(), KeepAwake: true, PinThreads: true}
	}

	if r.Output != nil {
		cfg.Output.SaveTo = stringOr(r.Output.SaveTo, defaultSaveTo)
	} else {
		cfg.Output.SaveTo = defaultSaveTo
	}

	return cfg
}

// defaultFields is used when search.fields is omitted: public key
// plus its SHA-256 fingerprint.
func defaultFields() []matcher.SearchField {
	return []matcher.SearchField{matcher.FieldPublicKey, matcher.FieldSha256Fingerprint}
}

func defaultThreads() int {
	return runtime.NumCPU()
}
