// SPDX-License-Identifier: MIT

// Package matrix - centralized shape validators.
//
// Every validator returns a bare sentinel from errors.go; call sites that need
// context wrap it (fmt.Errorf("<tag>: %w", err)).
package matrix

// ValidateNotNil rejects a nil interface value or a typed-nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare requires a non-nil matrix with Rows()==Cols().
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}
