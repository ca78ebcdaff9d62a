package dto

// FacultyProfileRequest replaces the singleton faculty profile.
type FacultyProfileRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Designation  string `json:"designation"`
	Department   string `json:"department"`
	University   string `json:"university"`
	Email        string `json:"email" binding:"omitempty,email"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}
