package resumes

// Profile is the structured data extracted from an uploaded resume.
type Profile struct {
	Skills            []string `json:"skills"`
	Certifications    []string `json:"certifications"`
	YearsOfExperience string   `json:"years_of_experience"`
	Education         string   `json:"education"`
}
