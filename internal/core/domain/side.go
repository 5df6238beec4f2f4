package domain

// Side names one of the two frameworks being compared.
type Side string

// Comparison sides.
const (
	SidePrimary   Side = "primary"
	SideSecondary Side = "secondary"
)

// IsValid returns true if the side is recognised.
func (s Side) IsValid() bool {
	return s == SidePrimary || s == SideSecondary
}

// String returns the string representation.
func (s Side) String() string {
	return string(s)
}
