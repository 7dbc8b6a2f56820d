// Package tui provides the primary terminal user interface implementation.
package tui

type state int

const (
	searchState state = iota
	loadingState
	videosState
	audiosState
	errorState
)
