// Package types provides type definitions for structured data used throughout the career-pilot system.
package types

// UserProfile is the session profile the content orchestrator works from.
// It is assembled once per session from the profile API response and treated
// as immutable until re-fetched. List fields are always non-nil.
type UserProfile struct {
	Name          string   `json:"name"`
	Qualification string   `json:"qualification"`
	DateOfBirth   string   `json:"date_of_birth,omitempty"`
	Address       string   `json:"address,omitempty"`
	MobileNumber  string   `json:"mobile_number"`
	Email         string   `json:"email,omitempty"`
	Skills        []string `json:"skills"`
	Industries    []string `json:"industries"`

	Experience []ExperienceEntry `json:"experience,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
}

// ExperienceEntry is one employment history item on a profile.
type ExperienceEntry struct {
	Company   string `json:"company"`
	RoleTitle string `json:"role_title"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

// EducationEntry is one education history item on a profile.
type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Normalize ensures list fields are non-nil so downstream code can range
// and count without nil checks.
func (p *UserProfile) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Industries == nil {
		p.Industries = []string{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
}

// ProfileEnvelope is the wire shape of GET /api/auth/profile.
type ProfileEnvelope struct {
	User    ProfileUser    `json:"user"`
	Profile ProfileDetails `json:"profile"`
}

// ProfileUser is the account portion of the profile response.
type ProfileUser struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// ProfileDetails is the career portion of the profile response.
type ProfileDetails struct {
	Qualification string            `json:"qualification"`
	DateOfBirth   string            `json:"date_of_birth"`
	Address       string            `json:"address"`
	Skills        []string          `json:"skills"`
	Industries    []string          `json:"industries"`
	Experience    []ExperienceEntry `json:"experience,omitempty"`
	Education     []EducationEntry  `json:"education,omitempty"`
}

// ToUserProfile flattens the wire envelope into the session profile,
// defaulting missing list fields to empty slices.
func (e *ProfileEnvelope) ToUserProfile() *UserProfile {
	name := e.User.FirstName
	if e.User.LastName != "" {
		if name != "" {
			name += " "
		}
		name += e.User.LastName
	}

	p := &UserProfile{
		Name:          name,
		Qualification: e.Profile.Qualification,
		DateOfBirth:   e.Profile.DateOfBirth,
		Address:       e.Profile.Address,
		MobileNumber:  e.User.PhoneNumber,
		Email:         e.User.Email,
		Skills:        e.Profile.Skills,
		Industries:    e.Profile.Industries,
		Experience:    e.Profile.Experience,
		Education:     e.Profile.Education,
	}
	p.Normalize()
	return p
}
