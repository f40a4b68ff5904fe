package ostree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("ostree: invalid configuration")
	// ErrOrderViolation signals that an in-order walk saw keys out of order.
	ErrOrderViolation = errors.New("ostree: key order violation")
	// ErrSizeMismatch signals that a node's subtree-size counter disagrees
	// with the sizes of its children.
	ErrSizeMismatch = errors.New("ostree: subtree size mismatch")
	// ErrFillViolation signals a non-root node below minimum fill.
	ErrFillViolation = errors.New("ostree: node below minimum fill")
	// ErrStructureCorrupt signals broken node linkage (child counts, parent
	// back-references, leaf depths, backing storage).
	ErrStructureCorrupt = errors.New("ostree: tree structure corrupt")
)
