package vortexy

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Report collects the outcome of a batch run. A failed file does not stop
// the files after it.
type Report struct {
	// Processed lists files handled successfully, in processing order.
	Processed []string
	// Failed lists the per-file errors.
	Failed []*FileError
}

// Record adds the outcome of processing path. A non-nil err that is not a
// *FileError is wrapped with the given stage.
func (r *Report) Record(path, stage string, err error) {
	if err == nil {
		r.Processed = append(r.Processed, path)
		return
	}

	var fileErr *FileError
	if !errors.As(err, &fileErr) {
		fileErr = NewFileError(path, stage, err)
	}
	r.Failed = append(r.Failed, fileErr)
}

// Merge appends the outcomes of other.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Processed = append(r.Processed, other.Processed...)
	r.Failed = append(r.Failed, other.Failed...)
}

// Err joins the per-file errors, or returns nil if every file succeeded.
func (r *Report) Err() error {
	errs := make([]error, len(r.Failed))
	for i, err := range r.Failed {
		errs[i] = err
	}
	return errors.Join(errs...)
}

// Log writes a summary of the report.
func (r *Report) Log(log logrus.FieldLogger) {
	for _, err := range r.Failed {
		log.WithError(err.Err).WithField("file", err.Path).Errorf("Failed to %s file", err.Stage)
	}
	log.WithFields(logrus.Fields{
		"processed": len(r.Processed),
		"failed":    len(r.Failed),
	}).Info("Batch complete")
}
