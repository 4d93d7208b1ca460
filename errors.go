// errors.go: structured error handling for the xanthos concurrency core
//
// This file provides structured error types using the go-errors library,
// matching the numeric error-code surface of spec.md §6/§9: OK=0, NOMEM=-1,
// NOTFOUND=-2, NOTHREAD=-3, INVAL=-4, FULL=-5 (reserved).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for xanthos operations.
const (
	ErrCodeInvalidArgument errors.ErrorCode = "XANTHOS_INVALID_ARGUMENT"
	ErrCodeNoMemory        errors.ErrorCode = "XANTHOS_NO_MEMORY"
	ErrCodeNotFound        errors.ErrorCode = "XANTHOS_NOT_FOUND"
	ErrCodeNoThread        errors.ErrorCode = "XANTHOS_NO_THREAD"
	ErrCodeFull            errors.ErrorCode = "XANTHOS_FULL"
)

// Canonical numeric codes (spec.md §9 resolution: the present module
// canonizes the first ordering spec.md lists in §6).
const (
	CodeOK       = 0
	CodeNoMemory = -1
	CodeNotFound = -2
	CodeNoThread = -3
	CodeInvalid  = -4
	CodeFull     = -5
)

const (
	msgInvalidArgument = "invalid argument"
	msgNoMemory        = "allocation failed"
	msgNotFound        = "element not found"
	msgNoThread        = "calling goroutine is not registered with the required domain"
	msgFull            = "domain thread table is at its configured limit"
)

// NewErrInvalidArgument reports a null/invalid argument detected at entry.
func NewErrInvalidArgument(field string) error {
	return errors.NewWithField(ErrCodeInvalidArgument, msgInvalidArgument, "field", field)
}

// NewErrInvalidDomain reports a nil domain where one is required.
func NewErrInvalidDomain() error {
	return errors.NewWithField(ErrCodeInvalidArgument, msgInvalidArgument, "field", "domain")
}

// NewErrNoMemory reports an allocation failure during node creation or
// domain growth. The commit counter is never bumped before this is
// returned, per spec.md §4.3/§7.
func NewErrNoMemory(operation string) error {
	return errors.NewWithField(ErrCodeNoMemory, msgNoMemory, "operation", operation).AsRetryable()
}

// NewErrNotFound reports that the element was not present (Remove) or
// that no visible element remained (RemoveFirst).
func NewErrNotFound() error {
	return errors.NewWithContext(ErrCodeNotFound, msgNotFound, nil)
}

// NewErrNoThread reports that the calling goroutine has no handle bound
// to the domain the operation requires.
func NewErrNoThread() error {
	return errors.NewWithContext(ErrCodeNoThread, msgNoThread, nil)
}

// NewErrFull reports that DomainConfig.MaxThreads was exhausted.
func NewErrFull(maxThreads int) error {
	return errors.NewWithContext(ErrCodeFull, msgFull, map[string]interface{}{
		"max_threads": maxThreads,
	})
}

// IsInvalidArgument reports whether err is an argument/precondition error.
func IsInvalidArgument(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidArgument)
}

// IsNoMemory reports whether err is an allocation-failure error.
func IsNoMemory(err error) bool {
	return errors.HasCode(err, ErrCodeNoMemory)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.HasCode(err, ErrCodeNotFound)
}

// IsNoThread reports whether err indicates a missing domain registration.
func IsNoThread(err error) bool {
	return errors.HasCode(err, ErrCodeNoThread)
}

// IsFull reports whether err indicates the domain's thread table is full.
func IsFull(err error) bool {
	return errors.HasCode(err, ErrCodeFull)
}

// IsRetryable reports whether the error may succeed if retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the structured error code from err, or "" if err
// does not carry one.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// NumericCode maps err to the canonical integer code listed above, or
// CodeOK if err is nil or its code is unrecognized.
func NumericCode(err error) int {
	switch GetErrorCode(err) {
	case ErrCodeNoMemory:
		return CodeNoMemory
	case ErrCodeNotFound:
		return CodeNotFound
	case ErrCodeNoThread:
		return CodeNoThread
	case ErrCodeInvalidArgument:
		return CodeInvalid
	case ErrCodeFull:
		return CodeFull
	default:
		return CodeOK
	}
}
