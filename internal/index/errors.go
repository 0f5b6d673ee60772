package index

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Failure tags why a synchronization did not complete.
type Failure string

// Failure kinds reported by FailureOf.
const (
	FailureNone    Failure = ""
	FailureRead    Failure = "read"
	FailureWrite   Failure = "write"
	FailureLock    Failure = "lock"
	FailureInvalid Failure = "invalid_submission"
	FailureOther   Failure = "other"
)

const (
	codeReadFailed        = "INDEX_READ_FAILED"
	codeWriteFailed       = "INDEX_WRITE_FAILED"
	codeLockFailed        = "INDEX_LOCK_FAILED"
	codeSubmissionInvalid = "SUBMISSION_INVALID"
)

var failureByCode = map[string]Failure{
	codeReadFailed:        FailureRead,
	codeWriteFailed:       FailureWrite,
	codeLockFailed:        FailureLock,
	codeSubmissionInvalid: FailureInvalid,
}

func wrapIOError(err error, code, message, path string) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryOperation, message).
		WithTextCode(code).
		WithMetadata(map[string]any{"path": path})
}

func wrapReadError(err error, path string) error {
	return wrapIOError(err, codeReadFailed, "read index document", path)
}

func wrapWriteError(err error, path string) error {
	return wrapIOError(err, codeWriteFailed, "write index document", path)
}

func wrapLockError(err error, path string) error {
	return wrapIOError(err, codeLockFailed, "lock index document", path)
}

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid submission").
		WithTextCode(codeSubmissionInvalid)
}

// FailureOf maps an error returned by this package to its failure kind.
func FailureOf(err error) Failure {
	if err == nil {
		return FailureNone
	}
	var e *goerrors.Error
	if errors.As(err, &e) {
		if f, ok := failureByCode[e.TextCode]; ok {
			return f
		}
	}
	return FailureOther
}
