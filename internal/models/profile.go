package models

type AlumniProfile struct {
	BaseModel
	UserID         string `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName      string `gorm:"size:100" json:"first_name"`
	LastName       string `gorm:"size:100" json:"last_name"`
	GraduationYear int    `gorm:"index" json:"graduation_year"`
	Major          string `gorm:"size:120" json:"major"`
	Industry       string `gorm:"size:120" json:"industry"`
	Employer       string `gorm:"size:120" json:"employer"`
	Location       string `gorm:"size:120" json:"location"`
	Bio            string `gorm:"type:text" json:"bio"`
	AvatarURL      string `json:"avatar_url"`
	PhoneNumber    string `gorm:"size:40" json:"phone_number"`
	IsVerified     bool   `gorm:"default:false" json:"is_verified"`

	// Relations
	Tags         []ProfileTag  `gorm:"foreignKey:ProfileID" json:"tags"`
	Achievements []Achievement `gorm:"foreignKey:ProfileID" json:"achievements,omitempty"`
}

// ProfileTag is one searchable tag. Tags live in their own table so the
// search engine can match them with a plain parameterized join instead
// of querying into a JSON blob.
type ProfileTag struct {
	BaseModel
	ProfileID string `gorm:"not null;index:idx_profile_tag,unique" json:"-"`
	Tag       string `gorm:"size:60;not null;index:idx_profile_tag,unique;index" json:"tag"`
}

type Achievement struct {
	BaseModel
	ProfileID   string `gorm:"not null;index" json:"profile_id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Year        int    `json:"year"`
}

// TagStrings flattens the tag relation for responses.
func (p *AlumniProfile) TagStrings() []string {
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, t.Tag)
	}
	return tags
}
