// Package models defines the client-side representations of LearnTrack
// resources: the user profile, subjects, goals, tasks, and reports.
package models

// UserProfile is the denormalized snapshot of user attributes the client
// caches alongside the bearer token.
type UserProfile struct {
	Username   string `json:"username"`
	Nickname   string `json:"nickname,omitempty"`
	AvatarURL  string `json:"avatar,omitempty"`
	Bio        string `json:"bio,omitempty"`
	Birthday   string `json:"birthday,omitempty"`
	Location   string `json:"location,omitempty"`
	Education  string `json:"education,omitempty"`
	Profession string `json:"profession,omitempty"`
}

// ProfilePatch is a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	Nickname   *string `json:"nickname,omitempty"`
	AvatarURL  *string `json:"avatar,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Birthday   *string `json:"birthday,omitempty"`
	Location   *string `json:"location,omitempty"`
	Education  *string `json:"education,omitempty"`
	Profession *string `json:"profession,omitempty"`
}

// Apply merges the patch into a copy of p and returns it. The username is
// immutable and cannot be patched.
func (patch ProfilePatch) Apply(p UserProfile) UserProfile {
	if patch.Nickname != nil {
		p.Nickname = *patch.Nickname
	}
	if patch.AvatarURL != nil {
		p.AvatarURL = *patch.AvatarURL
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Birthday != nil {
		p.Birthday = *patch.Birthday
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Education != nil {
		p.Education = *patch.Education
	}
	if patch.Profession != nil {
		p.Profession = *patch.Profession
	}
	return p
}
