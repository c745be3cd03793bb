package csm

import "errors"

var (
	// ErrNoTemplate reports a node shape with no registered template. An
	// incomplete template set is a configuration defect: the error aborts
	// the whole render rather than dropping the subtree from the output.
	ErrNoTemplate = errors.New("no template registered")

	// ErrBadTemplate reports a malformed template caught when a builder
	// finalizes or a template is registered.
	ErrBadTemplate = errors.New("bad template")
)
