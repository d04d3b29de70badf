// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrInvalidStream is returned for Vorbis headers without channels or
// sample rate.
var ErrInvalidStream = errors.New("invalid vorbis stream")
