// Error types surfaced by the isomex pipeline

package main

import "fmt"

// InputNotFoundError is returned when a required input file does not exist
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// SchemaError is returned when a table lacks a required column or holds a
// value that cannot be interpreted
type SchemaError struct {
	Source string
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "missing required column"
	}
	if e.Source == "" {
		return fmt.Sprintf("%s %q", reason, e.Column)
	}
	return fmt.Sprintf("%s: %s %q", e.Source, reason, e.Column)
}

// IOError wraps failures while creating or compressing output files
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("error %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
