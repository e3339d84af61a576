package server

import (
	"errors"

	"github.com/polartrek/polarstepsmcp/internal/errortypes"
	"github.com/polartrek/polarstepsmcp/internal/polarsteps"
	"github.com/polartrek/polarstepsmcp/internal/tools"
)

// classifyClientError converts an error surfaced by the polarsteps client
// into a typed AppError. Sentinel errors map to their own kinds; everything
// else is an upstream failure. No raw transport error leaves this boundary.
func classifyClientError(err error, message string) *errortypes.AppError {
	switch {
	case errors.Is(err, polarsteps.ErrNotFound):
		return errortypes.NotFoundError(err, message)
	case errors.Is(err, polarsteps.ErrUnauthorized):
		return errortypes.AuthenticationError(err, message)
	default:
		return errortypes.UpstreamError(err, message)
	}
}

// toolError converts an error into the structured envelope form. The kind is
// always one of the tools.ErrorKind constants and the message is always
// non-empty.
func toolError(err error) *tools.ToolError {
	var kind string
	switch errortypes.TypeOf(err) {
	case errortypes.ErrorTypeValidation:
		kind = tools.ErrorKindValidation
	case errortypes.ErrorTypeAuthentication:
		kind = tools.ErrorKindAuthentication
	case errortypes.ErrorTypeNotFound:
		kind = tools.ErrorKindNotFound
	case errortypes.ErrorTypeNotImplemented:
		kind = tools.ErrorKindNotImplemented
	default:
		kind = tools.ErrorKindUpstream
	}

	message := err.Error()
	if message == "" {
		message = "unknown error"
	}

	return &tools.ToolError{Kind: kind, Message: message}
}
