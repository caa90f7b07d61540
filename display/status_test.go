package display

import (
	"strings"
	"testing"
	"time"

	"github.com/shgen/vanityssh/internal/config"
	"github.com/shgen/vanityssh/internal/matcher"
	"github.com/shgen/vanityssh/internal/search"
)

func TestFormatElapsed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "zero", d: 0, want: "00:00:00"},
		{name: "seconds", d: 45 * time.Second, want: "00:00:45"},
		{name: "minutes", d: 2*time.Minute + 3*time.Second, want: "00:02:03"},
		{name: "hours", d: 1*time.Hour + 1*time.Minute + 1*time.Second, want: "01:01:01"},
		{name: "sub-second truncated", d: 5*time.Second + 999*time.Millisecond, want: "00:00:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatElapsed(tt.d); got != tt.want {
				t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestStatusLineContainsAllFields(t *testing.T) {
	t.Parallel()

	line := StatusLine(search.Stats{
		KeysGenerated: 12345,
		Elapsed:       90 * time.Second,
		OverallRate:   500,
		InstantRate:   600,
	})

	for _, want := range []string{"00:01:30", "12,345", "500", "600"} {
		if !strings.Contains(line, want) {
			t.Errorf("StatusLine() = %q, missing %q", line, want)
		}
	}
}

func TestConfigSummaryIncludesKeywordsAndThreads(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Keywords: []string{"foo", "bar"},
		Search: config.SearchConfig{
			Fields:      []matcher.SearchField{matcher.FieldPublicKey},
			AllKeywords: true,
			AllFields:   false,
		},
		Runtime: config.RuntimeConfig{Threads: 8, KeepAwake: true, PinThreads: false},
		Output:  config.OutputConfig{SaveTo: "found-keys"},
	}

	summary := ConfigSummary(cfg)
	for _, want := range []string{"foo", "bar", "PublicKey", "8", "found-keys"} {
		if !strings.Contains(summary, want) {
			t.Errorf("ConfigSummary() = %q, missing %q", summary, want)
		}
	}
}

func TestFormatJSONFallsBackOnUnmarshalableInput(t *testing.T) {
	t.Parallel()

	// A channel can't be marshaled to JSON; FormatJSON must not panic
	// and should fall back to a %+v rendering instead.
	got := FormatJSON(make(chan int))
	if got == "" {
		t.Error("FormatJSON returned an empty string for an unmarshalable value")
	}
}
