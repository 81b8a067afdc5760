// Package errors is what the service imports for error values. Constructors and
// wrappers come from pkg/errors so every error created here records a stack,
// which the development error renderer prints with %+v.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New creates a sentinel error. Sentinels are compared with Is and carry no stack.
func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap returns nil when err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
