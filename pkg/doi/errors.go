// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package doi

import (
	"errors"
	"fmt"
)

// ErrNotSet is returned by operations that need a DOI value when the
// identifier is unset.
var ErrNotSet = errors.New("DOI is not set")

// ErrEmptyName is returned by Person.FullName when no name part is present.
var ErrEmptyName = errors.New("person has no name parts")

// TransportError reports a failed HTTP exchange with the resolver: either
// the request never completed (Err is set) or the service answered with a
// rejected status code (StatusCode is set).
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("requesting %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a metadata response body that was not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing metadata JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
