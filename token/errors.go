/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the token engine. Typed errors below wrap these so
// callers can match with errors.Is.
var (
	// ErrMalformedToken indicates an ambiguous or invalid tree shape.
	ErrMalformedToken = errors.New("malformed token")

	// ErrDuplicatePath indicates two leaves share the same path.
	ErrDuplicatePath = errors.New("duplicate token path")

	// ErrCircularReference indicates an alias reference cycle.
	ErrCircularReference = errors.New("circular token reference")

	// ErrUnresolvedReference indicates an alias points at no known token.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrConfiguration indicates an invalid platform, transform, or format
	// configuration, detected before any token is processed.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrTransform indicates a transform failed on a specific token.
	ErrTransform = errors.New("transform failed")

	// ErrFormat indicates a formatter could not render a token set.
	ErrFormat = errors.New("format failed")
)

// MalformedTokenError reports an invalid tree shape or token identity,
// with the offending path attached.
type MalformedTokenError struct {
	Path    []string
	Message string
	Err     error
}

// NewMalformedTokenError creates a MalformedTokenError wrapping ErrMalformedToken.
func NewMalformedTokenError(path []string, format string, args ...any) *MalformedTokenError {
	return &MalformedTokenError{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
		Err:     ErrMalformedToken,
	}
}

func (e *MalformedTokenError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("malformed token: %s", e.Message)
	}
	return fmt.Sprintf("malformed token at %s: %s", strings.Join(e.Path, "."), e.Message)
}

func (e *MalformedTokenError) Unwrap() error { return e.Err }

// ConfigurationError reports an invalid transform, format, or platform
// configuration. It is always raised before token processing starts.
type ConfigurationError struct {
	Message string
}

// NewConfigurationError creates a ConfigurationError.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Message
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// TransformError reports a transform failure on a specific token. The token
// path and transform name localize the fault deterministically.
type TransformError struct {
	TokenPath []string
	Transform string
	Err       error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform %q failed on token %s: %v",
		e.Transform, strings.Join(e.TokenPath, "."), e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// Is lets errors.Is match TransformError against ErrTransform.
func (e *TransformError) Is(target error) bool { return target == ErrTransform }

// FormatError reports a formatter failure for a token set.
type FormatError struct {
	Format  string
	Message string
	Err     error
}

// NewFormatError creates a FormatError.
func NewFormatError(format string, msg string, args ...any) *FormatError {
	return &FormatError{Format: format, Message: fmt.Sprintf(msg, args...)}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format %q: %s", e.Format, e.Message)
}

func (e *FormatError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrFormat
}

// Is lets errors.Is match FormatError against ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
