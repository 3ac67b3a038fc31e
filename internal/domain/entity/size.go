// Package entity contains the core business objects of the project.
package entity

import "slices"

// Size is the garment size of a cart or order line.
type Size string

const (
	// SizeM is a medium fit.
	SizeM Size = "M"
	// SizeL is a large fit.
	SizeL Size = "L"
	// SizeXL is an extra-large fit.
	SizeXL Size = "XL"
	// SizeXXL is a double-extra-large fit.
	SizeXXL Size = "XXL"
)

// allSizes is the canonical ordering used for listings.
var allSizes = []Size{SizeM, SizeL, SizeXL, SizeXXL}

// String returns the string representation of the Size.
func (s Size) String() string {
	return string(s)
}

// IsValid checks if the Size is a valid canonical value.
func (s Size) IsValid() bool {
	return slices.Contains(allSizes, s)
}

// ParseSize normalizes a raw size string to its canonical value.
// "2XL" is accepted as an alias for XXL. The boolean reports success.
func ParseSize(raw string) (Size, bool) {
	if raw == "2XL" {
		return SizeXXL, true
	}

	size := Size(raw)
	if size.IsValid() {
		return size, true
	}

	return "", false
}

// Sizes returns the canonical size set in display order.
func Sizes() []Size {
	return slices.Clone(allSizes)
}
