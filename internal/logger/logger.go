// Package logger provides a configured zerolog logger.
package logger

import (
	"io"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

// New returns a zerolog.Logger writing JSON to w with a service field. The
// developer CLI logs to stderr so fetched tables can own stdout. Call sites
// should use .Stack() on error events to include stacks.
func New(serviceName string, w io.Writer) zerolog.Logger {
	// Wire zerolog to github.com/pkg/errors: marshal carried stack traces,
	// and attach one to plain errors when .Stack() asks for it.
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}
	zerolog.ErrorMarshalFunc = func(err error) interface{} {
		type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
		if _, ok := err.(stackTracer); ok {
			return err
		}
		return pkgerrors.WithStack(err)
	}

	return zerolog.New(w).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
