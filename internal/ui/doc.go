// Package ui provides terminal output components for the plugscan CLI.
//
// It renders a live Bubble Tea progress display while a sweep runs and a
// lipgloss-styled result table afterwards. All components degrade to plain
// output when stdout is not a terminal; callers check IsTerminal before
// starting the interactive display.
package ui
