// Package content holds the structured scam-awareness material served by
// the site: scam categories with their warning signs and advice, the
// general warning-sign list, and help resources for residents. Content is
// authored as YAML and embedded into the binary; the Store gives read-only
// access by slug or as ordered lists.
package content

import (
	"time"
)

// Category describes one scam type.
type Category struct {
	Slug         string    `yaml:"slug" json:"slug"`
	Title        string    `yaml:"title" json:"title"`
	Summary      string    `yaml:"summary" json:"summary"`
	Description  string    `yaml:"description" json:"description"`
	WarningSigns []string  `yaml:"warning_signs" json:"warning_signs"`
	Advice       []string  `yaml:"advice" json:"advice"`
	Updated      time.Time `yaml:"updated" json:"-"`

	// UpdatedDisplay is derived from Updated when the category is served.
	UpdatedDisplay string `yaml:"-" json:"updated,omitempty"`
}

// WarningSign is a general red flag that applies across scam types.
type WarningSign struct {
	Title  string `yaml:"title" json:"title"`
	Detail string `yaml:"detail" json:"detail"`
}

// HelpResource points residents at somewhere to get help.
type HelpResource struct {
	Name        string `yaml:"name" json:"name"`
	Phone       string `yaml:"phone,omitempty" json:"phone,omitempty"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
	Description string `yaml:"description" json:"description"`
}

// FormatDate renders a timestamp the way the site displays dates, e.g.
// "14 June 2025". The zero time renders as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 January 2006")
}
