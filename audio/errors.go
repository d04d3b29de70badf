// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for caller mistakes such as a non-positive
	// sample count.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoAudioTrack indicates that an asset has no decodable audio track.
	ErrNoAudioTrack = errors.New("no audio track")

	// ErrReaderFailure matches every *ReaderError.
	ErrReaderFailure = errors.New("reader failure")

	// ErrExtraction is the catch-all for unexpected internal states.
	ErrExtraction = errors.New("extraction failed")
)

// ReaderError reports a reader that stopped with a status other than
// StatusCompleted.
type ReaderError struct {
	Status Status
	Err    error
}

func (e *ReaderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reader stopped with status %s: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("reader stopped with status %s", e.Status)
}

func (e *ReaderError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrReaderFailure) hold for any ReaderError.
func (e *ReaderError) Is(target error) bool {
	return target == ErrReaderFailure
}
