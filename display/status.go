package display

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/TylerBrock/colorjson"

	"github.com/shgen/vanityssh/internal/config"
	"github.com/shgen/vanityssh/internal/search"
)

// FormatElapsed renders a duration as HH:MM:SS, truncating any
// sub-second remainder.
func FormatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int64(d.Hours())
	m := int64(d.Minutes()) % 60
	s := int64(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// StatusLine renders one status-reporter sample: elapsed time, total
// keys, overall rate and instant rate, the way the search driver's
// 2-second ticker expects to overwrite its line with.
func StatusLine(s search.Stats) string {
	return fmt.Sprintf("%s | Keys: %s | Rate: %s/s | Instant: %s/s",
		FormatElapsed(s.Elapsed),
		FormatCount(s.KeysGenerated),
		FormatCount(s.OverallRate),
		FormatCount(s.InstantRate),
	)
}

// configSummary is the shape printed once before the status loop
// starts: the effective, fully-defaulted search configuration.
type configSummary struct {
	Keywords    []string `json:"keywords"`
	Fields      []string `json:"fields"`
	AllKeywords bool     `json:"all_keywords"`
	AllFields   bool     `json:"all_fields"`
	Threads     int      `json:"threads"`
	KeepAwake   bool     `json:"keep_awake"`
	PinThreads  bool     `json:"pin_threads"`
	SaveTo      string   `json:"save_to"`
}

// ConfigSummary renders the effective configuration as a single
// colorized JSON line; Indent 0 keeps it to one line.
func ConfigSummary(cfg *config.Config) string {
	fields := make([]string, len(cfg.Search.Fields))
	for i, f := range cfg.Search.Fields {
		fields[i] = f.String()
	}

	summary := configSummary{
		Keywords:    cfg.Keywords,
		Fields:      fields,
		AllKeywords: cfg.Search.AllKeywords,
		AllFields:   cfg.Search.AllFields,
		Threads:     cfg.Runtime.Threads,
		KeepAwake:   cfg.Runtime.KeepAwake,
		PinThreads:  cfg.Runtime.PinThreads,
		SaveTo:      cfg.Output.SaveTo,
	}
	return FormatJSON(summary)
}

// FormatJSON marshals v to JSON and re-renders it through colorjson
// for ad hoc structs (CPU info, periodic stats) instead of printing
// raw json.Marshal output.
func FormatJSON(v any) string {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &obj); err != nil {
		return string(jsonBytes)
	}

	formatter := colorjson.NewFormatter()
	formatter.Indent = 0
	colored, err := formatter.Marshal(obj)
	if err != nil {
		return string(jsonBytes)
	}
	return string(colored)
}
