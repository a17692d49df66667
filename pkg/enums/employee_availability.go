package enums

import "fmt"

// EmployeeAvailability tracks whether a field employee currently holds an
// open assignment. It is bookkeeping derived from report assignments and is
// only mutated inside the same transaction that moves the assignment pointer.
type EmployeeAvailability string

const (
	EmployeeAvailable EmployeeAvailability = "Available"
	EmployeeBusy      EmployeeAvailability = "Busy"
)

var validAvailabilities = []EmployeeAvailability{
	EmployeeAvailable,
	EmployeeBusy,
}

// String implements fmt.Stringer.
func (a EmployeeAvailability) String() string {
	return string(a)
}

// IsValid reports whether the value is a known EmployeeAvailability.
func (a EmployeeAvailability) IsValid() bool {
	for _, candidate := range validAvailabilities {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseEmployeeAvailability converts raw input into an EmployeeAvailability.
func ParseEmployeeAvailability(value string) (EmployeeAvailability, error) {
	for _, candidate := range validAvailabilities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid availability %q", value)
}
