package service

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/showerplanner/internal/auth"
	"github.com/mmynk/showerplanner/internal/storage"
)

var (
	errNotSignedIn       = errors.New("not signed in")
	errAccountGone       = errors.New("account no longer exists")
	errEventNotSetUp     = errors.New("event setup is not complete")
	errResetUnconfirmed  = errors.New("reset must be confirmed")
	errPasswordsMismatch = errors.New("passwords do not match")
)

// storeError maps a storage failure onto a Connect error. Anything that is
// not a rejected value means the backend let us down and the caller may
// retry later.
func storeError(op string, err error) *connect.Error {
	wrapped := fmt.Errorf("failed to %s: %w", op, err)
	switch {
	case errors.Is(err, storage.ErrInvalidValue):
		return connect.NewError(connect.CodeInvalidArgument, wrapped)
	case errors.Is(err, storage.ErrUserExists), errors.Is(err, auth.ErrUsernameTaken):
		return connect.NewError(connect.CodeAlreadyExists, wrapped)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, wrapped)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, wrapped)
	default:
		return connect.NewError(connect.CodeUnavailable, wrapped)
	}
}

func invalidArgument(format string, args ...any) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}
