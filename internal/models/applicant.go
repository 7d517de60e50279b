package models

// ApplicantRecord is the fixed-shape JSON contract produced by structured
// resume extraction. Every field defaults to an empty string, empty slice or
// zero when the source text does not mention it, never null and never omitted.
type ApplicantRecord struct {
	ApplicantName    string            `json:"applicant_name"`
	EmailID          string            `json:"email_id"`
	PhoneNumber      string            `json:"phone_number"`
	Country          string            `json:"country"`
	JobTitle         string            `json:"job_title"`
	ResumeAttachment string            `json:"resume_attachment"`
	CustomExperience []ExperienceEntry `json:"custom_experience"`
	CustomEducation  []EducationEntry  `json:"custom_education"`
}

type ExperienceEntry struct {
	CompanyName    string `json:"company_name"`
	Designation    string `json:"designation"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	CurrentCompany int    `json:"current_company"`
}

type EducationEntry struct {
	Degree         string `json:"degree"`
	Specialization string `json:"specialization"`
	Institution    string `json:"institution"`
	YearOfPassing  int    `json:"year_of_passing"`
	Score          string `json:"score"`
}

// EnsureDefaults replaces nil slices so the record always serializes with
// arrays, matching the contract even when the model drops a key.
func (r *ApplicantRecord) EnsureDefaults() {
	if r.CustomExperience == nil {
		r.CustomExperience = []ExperienceEntry{}
	}
	if r.CustomEducation == nil {
		r.CustomEducation = []EducationEntry{}
	}
}
