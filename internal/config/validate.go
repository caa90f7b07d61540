package config

import "os"

// Validate checks the schema-level invariants: 1..=64 keywords,
// threads in [1,192], and save-to either absent or an existing
// directory.
func (c *Config) Validate() error {
	if len(c.Keywords) == 0 {
		return newError("keywords must list at least 1 keyword", nil)
	}
	if len(c.Keywords) > MaxKeywords {
		return newError("keywords lists too many entries (max 64)", nil)
	}
	if c.Runtime.Threads < MinThreads || c.Runtime.Threads > MaxThreads {
		return newError("runtime.threads must be between 1 and 192", nil)
	}
	if len(c.Search.Fields) == 0 {
		return newError("search.fields must list at least one field", nil)
	}

	info, err := os.Stat(c.Output.SaveTo)
	if err == nil && !info.IsDir() {
		return newError("output.save-to exists and is not a directory", nil)
	}
	if err != nil && !os.IsNotExist(err) {
		return newError("output.save-to could not be checked", err)
	}

	return nil
}
