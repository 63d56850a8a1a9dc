// Package models contains the client-side data model: the user profile as
// served by the identity service and the locally persisted session.
package models

// UserProfile mirrors the identity service's user object. It is immutable
// once fetched except through explicit profile-changing operations.
type UserProfile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      int    `json:"role"`
	CreatedAt string `json:"created_at"`
}
