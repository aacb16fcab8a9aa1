package domain

import "go.trai.ch/zerr"

var (
	// ErrNoBinarySpecified is returned when the CLI is invoked without
	// a binary to wrap and without --print-ld-library-path.
	ErrNoBinarySpecified = zerr.New("no binary specified")

	// ErrConflictingArguments is returned when --print-ld-library-path
	// is combined with a binary argument.
	ErrConflictingArguments = zerr.New("--print-ld-library-path and a binary argument are mutually exclusive")
)
