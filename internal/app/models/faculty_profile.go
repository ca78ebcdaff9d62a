package models

// FacultyProfile is the singleton profile of the faculty member.
type FacultyProfile struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Designation  string `json:"designation"`
	Department   string `json:"department"`
	University   string `json:"university"`
	Email        string `json:"email"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}
