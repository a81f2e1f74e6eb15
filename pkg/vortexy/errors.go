package vortexy

import (
	"errors"
	"fmt"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/analysis"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = parser.ErrFileNotFound

// ErrInvalidFormat indicates the input file is not a readable xlsx or csv table.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrNoHeader indicates the input table has no recognizable header.
var ErrNoHeader = parser.ErrNoHeader

// ErrUnavailable indicates no metric can be estimated for a fan.
var ErrUnavailable = analysis.ErrUnavailable

// ErrNoInputs indicates a batch job matched no input files.
var ErrNoInputs = errors.New("no input files")

// ErrOutputCollision indicates two inputs of a batch map to the same output
// file.
var ErrOutputCollision = errors.New("output already written by another input")

// FileError represents a failure while processing one file.
type FileError struct {
	Path  string
	Stage string // "read", "parse", "rank", "write"
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Stage, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(path, stage string, err error) *FileError {
	return &FileError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
