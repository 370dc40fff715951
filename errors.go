// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

import (
	"errors"
	"fmt"
)

const packageName = "flatbush: "

// Kind classifies the precondition violation a flatbush error
// represents. The package never retries and never returns a
// transient error; every error it returns falls into exactly one of
// these kinds.
type Kind int

const (
	// KindConfig marks a bad New/Restore argument, such as a
	// non-positive numItems.
	KindConfig Kind = iota
	// KindProtocol marks a call made out of the required
	// New/Add/Finish/Search sequence: Add after Finish, Finish called
	// twice, Search before Finish, and so on.
	KindProtocol
	// KindBuffer marks a buffer whose length doesn't match what
	// numItems and nodeSize require.
	KindBuffer
	// KindIO marks a failure opening or mapping an underlying file;
	// it has no precondition-violation cause and is never returned by
	// the core Tree API, only by MapFile.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindProtocol:
		return "protocol"
	case KindBuffer:
		return "buffer"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// A treeError carries a Kind alongside the formatted message, so
// callers that need to distinguish a misconfiguration from a protocol
// violation can do so with ErrorKind instead of matching on message
// text.
type treeError struct {
	kind Kind
	err  error
}

func (e *treeError) Error() string { return e.err.Error() }
func (e *treeError) Unwrap() error { return e.err }

// ErrorKind reports the classification of err, if err (or something
// it wraps) originated from this package.
func ErrorKind(err error) (k Kind, ok bool) {
	var te *treeError
	if errors.As(err, &te) {
		return te.kind, true
	}
	return 0, false
}

func textErr(k Kind, text string) error {
	return &treeError{kind: k, err: errors.New(packageName + text)}
}

func fmtErr(k Kind, format string, a ...interface{}) error {
	return &treeError{kind: k, err: fmt.Errorf(packageName+format, a...)}
}

func wrapErr(k Kind, text string, err error, a ...interface{}) error {
	return &treeError{kind: k, err: fmt.Errorf(packageName+text+": %w", append(a, err)...)}
}
