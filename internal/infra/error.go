package infra

import (
	"errors"
)

type RepositoryErrorKind string

// RepositoryError is returned by every store; callers branch on Kind through IsKind.
type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
}

func (e RepositoryError) Error() string {
	return string(e.Kind) + ": " + e.msg
}

func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
)
