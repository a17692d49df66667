package enums

import "fmt"

// ReportStatus is the lifecycle state of a grievance report. Transitions are
// intentionally permissive: an admin may move a report to any of the three
// states directly, including backwards.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "Pending"
	ReportStatusInProgress ReportStatus = "In Progress"
	ReportStatusResolved   ReportStatus = "Resolved"
)

var validReportStatuses = []ReportStatus{
	ReportStatusPending,
	ReportStatusInProgress,
	ReportStatusResolved,
}

// String implements fmt.Stringer.
func (s ReportStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ReportStatus.
func (s ReportStatus) IsValid() bool {
	for _, candidate := range validReportStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseReportStatus converts raw input into a ReportStatus.
func ParseReportStatus(value string) (ReportStatus, error) {
	for _, candidate := range validReportStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report status %q", value)
}
