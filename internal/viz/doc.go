// Package viz renders run results for the terminal with lipgloss: a styled
// summary panel and a half-block colour preview of the field.
package viz
