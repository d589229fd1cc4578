package pmap

import "errors"

const Namespace = "pmap"

var (
	ErrInvalidConfig     = errors.New(Namespace + ": invalid configuration")
	ErrTransformPanicked = errors.New(Namespace + ": transform panicked")
	ErrInputCopy         = errors.New(Namespace + ": cannot copy input")
	ErrRunAborted        = errors.New(Namespace + ": run aborted before all items completed")
	ErrIncompleteResults = errors.New(Namespace + ": result count does not match input count")
	ErrNilTransform      = errors.New(Namespace + ": transform is nil")
)
