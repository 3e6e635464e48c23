package client

import "errors"

var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing required argument")

	// ErrNoStorage is returned by commands that need the users table when
	// the App was built without services.
	ErrNoStorage = errors.New("command requires a database connection")
)
