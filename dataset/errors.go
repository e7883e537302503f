package dataset

import "errors"

var (
	ErrUnsupportedDatasetType = errors.New("dataset: no loader implemented for dataset type")
	ErrMalformedPoseFile      = errors.New("dataset: pose metadata does not have shape (N, 17)")
	ErrFrameCountMismatch     = errors.New("dataset: image count does not match pose count")
	ErrDegeneratePoses        = errors.New("dataset: camera poses are degenerate")
)
