package models

// Session is the persisted authentication state. A session exists iff
// AccessToken is non-empty; RefreshToken and User are best-effort companions
// and their absence does not mean "not logged in".
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *UserProfile
}

// Username returns the display username if the profile companion is present.
func (s *Session) Username() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Username
}
