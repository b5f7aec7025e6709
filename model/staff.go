package model

// StaffCreate is the payload for registering a web user.
type StaffCreate struct {
	FullName   string   `json:"fullName"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Role       Role     `json:"role"`
	Phone      string   `json:"phone,omitempty"`
	StationIDs []string `json:"stationIds,omitempty"`
}

// StaffUpdate carries a partial staff edit.
type StaffUpdate struct {
	FullName   string   `json:"fullName,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	StationIDs []string `json:"stationIds,omitempty"`
}

// Profile is the current user's own account view.
type Profile struct {
	Email      string   `json:"email"`
	FullName   string   `json:"fullName"`
	Phone      string   `json:"phone"`
	Role       string   `json:"role,omitempty"`
	StationIDs []string `json:"stationIds,omitempty"`
}

// ProfileUpdate is the body for editing the current user's profile.
type ProfileUpdate struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// PasswordChange is the body for the password change flow. FullName and
// Phone ride along on the combined profile endpoint so they are not wiped.
type PasswordChange struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	FullName        string `json:"fullName,omitempty"`
	Phone           string `json:"phone,omitempty"`
}
