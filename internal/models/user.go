package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"not null;index" json:"role"`

	// Free-form profile fields
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`

	ProfileCompleted bool `gorm:"default:false" json:"profile_completed"`
}

// HasCompleteProfile reports whether the mandatory profile fields are filled.
func (u *User) HasCompleteProfile() bool {
	return u.Name != "" && u.Phone != "" && u.Location != ""
}
