// SPDX-License-Identifier: MIT

package arm

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewLinks indicates fewer than NumConstraints links; the end
	// effector could not be placed freely in the plane.
	ErrTooFewLinks = errors.New("arm: at least two links required")

	// ErrBadLength indicates a non-positive or non-finite link length.
	ErrBadLength = errors.New("arm: link lengths must be finite and positive")

	// ErrAngleCount indicates an angle vector whose length differs from the link count.
	ErrAngleCount = errors.New("arm: angle count does not match link count")
)

func armErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
