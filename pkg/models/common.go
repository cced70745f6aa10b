// Package models contains request/response types shared between the API
// layer and the service layer.
package models

// Role is a team membership role. Ordering: viewer < member < admin.
type Role string

// Membership roles.
const (
	RoleViewer Role = "viewer"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// roleRank orders roles for threshold checks.
var roleRank = map[Role]int{
	RoleViewer: 0,
	RoleMember: 1,
	RoleAdmin:  2,
}

// AtLeast reports whether r meets or exceeds the threshold role.
// Unknown roles never satisfy any threshold.
func (r Role) AtLeast(threshold Role) bool {
	rr, ok := roleRank[r]
	if !ok {
		return false
	}
	tr, ok := roleRank[threshold]
	if !ok {
		return false
	}
	return rr >= tr
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Identity is the authenticated caller extracted from a verified JWT.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// TeamContext is the tenant binding attached to a request after the
// X-Team-Id membership check.
type TeamContext struct {
	TeamID          string `json:"team_id"`
	Role            Role   `json:"role"`
	HasSubscription bool   `json:"has_subscription"`
	CreditsBalance  int    `json:"credits_balance"`
}

// ListParams is cursor pagination input shared by list endpoints.
type ListParams struct {
	Limit  int `json:"limit"`
	Before int `json:"before,omitempty"`
}
