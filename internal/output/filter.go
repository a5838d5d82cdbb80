package output

import (
	"strings"

	"github.com/akave-ai/msgdecode/internal/model"
)

// LevelFilter keeps messages whose level is in the set. An empty set keeps everything.
type LevelFilter map[string]bool

// ParseLevelFilter builds a filter from a comma-separated list such as "warn,error".
func ParseLevelFilter(list string) LevelFilter {
	set := make(LevelFilter)
	for _, l := range strings.Split(list, ",") {
		if l = model.NormalizeLevel(l); l != "" {
			set[l] = true
		}
	}
	return set
}

// Allow reports whether rec should be rendered. Failed records always pass.
func (f LevelFilter) Allow(rec Record) bool {
	if len(f) == 0 || rec.Err != nil || rec.Message == nil {
		return true
	}
	return f[model.NormalizeLevel(rec.Message.Level)]
}
