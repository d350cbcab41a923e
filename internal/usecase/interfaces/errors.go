package interfaces

import "errors"

// ErrVersionConflict is returned by repositories when a conditional write loses
// the optimistic-concurrency race: the document changed (or disappeared) between
// the caller's read and its write. Callers re-read and retry.
var ErrVersionConflict = errors.New("document version conflict")
