package parser

import "errors"

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a readable xlsx or csv table.
var ErrInvalidFormat = errors.New("invalid table format")

// ErrNoHeader indicates the table has no recognizable header row.
var ErrNoHeader = errors.New("no header row")
