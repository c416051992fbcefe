package tui

import "github.com/MKhiriev/go-theatre-ai/models"

// viewMsg carries the outcome of one session request.
type viewMsg struct {
	view models.View
	err  error
}

type versionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	title string
	err   error
}

type clearStatusMsg struct{}
