package client

import (
	"resumelens/resume-optimizer/internal/models"
)

type View string

const (
	ViewUpload    View = "upload"
	ViewAnalyzing View = "analyzing"
	ViewResults   View = "results"
)

// PendingFile is a locally validated resume waiting to be submitted.
type PendingFile struct {
	Name string
	Size int64
	Data []byte
}

// State is the whole client view state as one immutable record. Every
// mutation goes through a transition method that returns the next state, so
// there are no ad hoc mutable fields to drift out of sync.
type State struct {
	View           View
	File           *PendingFile
	JobDescription string
	Result         *models.AnalysisResult
	ErrorMessage   string
}

func NewState() State {
	return State{View: ViewUpload}
}

// WithFile stores a validated file as the pending submission.
func (s State) WithFile(file PendingFile) State {
	s.File = &file
	s.ErrorMessage = ""
	return s
}

func (s State) WithJobDescription(text string) State {
	s.JobDescription = text
	return s
}

// Submitting enters the pending view while the one request is in flight.
func (s State) Submitting() State {
	s.View = ViewAnalyzing
	s.Result = nil
	s.ErrorMessage = ""
	return s
}

// Completed records a successful analysis and moves to the results view.
func (s State) Completed(result *models.AnalysisResult) State {
	s.View = ViewResults
	s.Result = result
	s.ErrorMessage = ""
	return s
}

// Failed surfaces an error and returns to the upload view so the user can
// resubmit.
func (s State) Failed(message string) State {
	s.View = ViewUpload
	s.Result = nil
	s.ErrorMessage = message
	return s
}

// Reset discards everything and starts over.
func (s State) Reset() State {
	return NewState()
}
