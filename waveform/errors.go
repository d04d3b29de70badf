// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	ErrInvalidDamping         = errors.New("damping percentage must be within (0, 0.5]")
	ErrInvalidScalingFactor   = errors.New("vertical scaling factor must be greater than 0")
	ErrInvalidScale           = errors.New("scale must be greater than 0")
	ErrInvalidSize            = errors.New("size must not be negative")
	ErrInvalidStyle           = errors.New("invalid style")
	ErrInvalidStripe          = errors.New("stripe width plus spacing must cover at least one pixel")
	ErrSampleCountMismatch    = errors.New("sample count does not match the configured width")
	ErrEmptyCanvas            = errors.New("configured size has no pixels")
	ErrMissingBackgroundColor = errors.New("background color is nil")
)
