package models

import "strings"

type Role string

const (
	RoleRequester Role = "Requester"
	RoleApprover  Role = "Approver"
)

// ParseRole maps free-form input onto the closed role set. The legacy
// Spanish spellings are still accepted on the wire.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "requester", "solicitante":
		return RoleRequester, true
	case "approver", "aprobador":
		return RoleApprover, true
	}
	return "", false
}

func (r Role) String() string { return string(r) }
