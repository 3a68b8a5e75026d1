package models

import "strings"

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

// ParseRequestStatus maps free-form input onto the closed status set.
// Same aliasing rule as ParseRole: Spanish spellings stay valid.
func ParseRequestStatus(s string) (RequestStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "pendiente":
		return StatusPending, true
	case "approved", "aprobada":
		return StatusApproved, true
	case "rejected", "rechazada":
		return StatusRejected, true
	}
	return "", false
}

func (s RequestStatus) String() string { return string(s) }
