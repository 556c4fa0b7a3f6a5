package config

import "time"

// ListConfig holds defaults shared by every paginated list screen.
type ListConfig struct {
	// Limit is the default page size.
	Limit int `env:"LIST_LIMIT" envDefault:"20"`

	// SearchDebounce is the quiet period after the last keystroke before a
	// search fetch is issued.
	SearchDebounce time.Duration `env:"LIST_SEARCH_DEBOUNCE" envDefault:"500ms"`
}

// Sanitize applies guardrails to list configuration values.
func (l *ListConfig) Sanitize() {
	// Clamp page size to a sane range
	if l.Limit < 1 {
		l.Limit = 1
	}
	if l.Limit > 100 {
		l.Limit = 100
	}
	if l.SearchDebounce < 0 {
		l.SearchDebounce = 0
	}
}
