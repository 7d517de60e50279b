package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildApplicantExtractionPrompt instructs the model to return only a JSON
// object matching the applicant record contract.
func (pb *PromptBuilder) BuildApplicantExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are a recruitment assistant extracting structured applicant data from a resume.

RESUME TEXT:
%s

Extract the applicant's details and return ONLY a JSON object with exactly this shape:
{
  "applicant_name": "<full name>",
  "email_id": "<email address>",
  "phone_number": "<phone number>",
  "country": "<country>",
  "job_title": "<current or most recent job title>",
  "resume_attachment": "",
  "custom_experience": [
    {
      "company_name": "<company>",
      "designation": "<role title>",
      "start_date": "<YYYY-MM-DD>",
      "end_date": "<YYYY-MM-DD>",
      "current_company": <1 if this is the current employer, else 0>
    }
  ],
  "custom_education": [
    {
      "degree": "<degree>",
      "specialization": "<field of study>",
      "institution": "<school or university>",
      "year_of_passing": <4-digit year as a number>,
      "score": "<GPA or percentage as written>"
    }
  ]
}

Rules:
- All dates must be in YYYY-MM-DD format. If only a year is given, use YYYY-01-01.
- If a role is ongoing ("Present", "Current", or no end date), set current_company to 1 and end_date to "".
- List experience entries in the order they appear in the resume. Same for education.
- If a field is not found in the resume, use "" for strings, 0 for numbers and [] for arrays. Never use null and never omit a key.
- Return ONLY the JSON object. No markdown, no commentary.`, resumeText)
}

// BuildDescriptionSummaryPrompt instructs the model to return a short
// plain-text bullet digest of a job description.
func (pb *PromptBuilder) BuildDescriptionSummaryPrompt(descriptionText string) string {
	return fmt.Sprintf(`You are a recruitment assistant summarizing a job description for a hiring dashboard.

JOB DESCRIPTION TEXT:
%s

Summarize the posting as plain-text bullet points:
- 6 to 8 bullets maximum, each 15 words or fewer.
- Start each bullet with "- ".
- Cover: the role and seniority level, 2-3 key responsibilities, 2-3 required qualifications, years of experience expected, and any standout detail (compensation, location, benefits).

Return ONLY the bullet list. No markdown headings, no HTML, no commentary.`, descriptionText)
}
