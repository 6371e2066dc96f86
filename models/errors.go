package models

import "errors"

// Failure kinds, from the innermost layer (field) to the outermost (batch).
var (
	ErrFieldNotFound  = errors.New("field not found")
	ErrRecordAssembly = errors.New("record assembly failed")
	ErrFetch          = errors.New("fetch failed")
	ErrInputRead      = errors.New("input read failed")
	ErrFatalBatch     = errors.New("fatal batch failure")
)
