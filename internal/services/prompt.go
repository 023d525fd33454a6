package services

import (
	"fmt"
	"strings"

	"github.com/dhvanil3103/ats-resume/internal/models"
)

const (
	MarkerMissingKeywords = "MISSING KEYWORDS:"
	MarkerSuggestions     = "SUGGESTIONS:"
)

const expertFields = "Data Science, Data Analytics, Software Engineering and Electrical Engineering"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSummaryPrompt creates prompt for a short resume summary
func (pb *PromptBuilder) BuildSummaryPrompt(resume string) string {
	return fmt.Sprintf(`You are an expert at summarizing resumes in the fields of %s.
Write a concise 2-3 sentence summary of the resume below, highlighting:
- Overall professional profile and experience level
- Key skills and qualifications
- Career trajectory and achievements

RESUME:
%s`, expertFields, resume)
}

// BuildSimilarityPrompt creates prompt for an ATS-style match score
func (pb *PromptBuilder) BuildSimilarityPrompt(jobDescription, resume string) string {
	return fmt.Sprintf(`You are an expert ATS (applicant tracking system) analyst in the fields of %s.
Analyze carefully how well the resume matches the job description.

Return your response in the following JSON format:
{
  "similarityScore": "<match percentage out of 100, e.g. 82%%>",
  "similarityExplanation": "<brief explanation of the weaknesses in the match>"
}

JOB DESCRIPTION:
%s

RESUME:
%s`, expertFields, jobDescription, resume)
}

// BuildKeywordsPrompt creates prompt for missing keyword analysis
func (pb *PromptBuilder) BuildKeywordsPrompt(jobDescription, resume string) string {
	return fmt.Sprintf(`You are an expert ATS resume analyst in the fields of %s.
Analyze the job description and the resume to:
1. Identify important keywords from the job description that are missing from the resume
2. Suggest where to naturally add these keywords

IMPORTANT: Return your response as plain text in exactly this format:

%s
- keyword1
- keyword2
- keyword3

%s
Detailed suggestions for where and how to integrate these keywords into the resume. Put each suggestion on its own line.

JOB DESCRIPTION:
%s

RESUME:
%s`, expertFields, MarkerMissingKeywords, MarkerSuggestions, jobDescription, resume)
}

// BuildCoverLetterPrompt creates prompt for a tailored cover letter. Optional
// personal and company fields are only included when set.
func (pb *PromptBuilder) BuildCoverLetterPrompt(personal models.PersonalInfo, company models.CompanyInfo, jobDescription, resume string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are an expert cover letter writer in the fields of %s. Write a professional cover letter with:\n", expertFields)
	sb.WriteString("- The personal information at the top left\n")
	sb.WriteString("- The company information below the personal information\n")
	sb.WriteString("- 3-4 paragraphs highlighting relevant experience and skills\n")
	sb.WriteString("- The key job requirements addressed\n")
	sb.WriteString("- A natural, personalized tone\n")
	sb.WriteString("- \"Sincerely,\" followed by the applicant's name as the closing\n\n")

	sb.WriteString("PERSONAL INFORMATION:\n")
	fmt.Fprintf(&sb, "Full Name: %s\n", personal.FullName)
	writeOptional(&sb, "Email", personal.Email)
	writeOptional(&sb, "Phone", personal.Phone)
	writeOptional(&sb, "Address", personal.Address)

	sb.WriteString("\nCOMPANY INFORMATION:\n")
	fmt.Fprintf(&sb, "Company Name: %s\n", company.CompanyName)
	writeOptional(&sb, "Hiring Manager", company.HiringManager)
	writeOptional(&sb, "Company Address", company.CompanyAddress)

	sb.WriteString("\nJOB DESCRIPTION:\n")
	sb.WriteString(jobDescription)
	sb.WriteString("\n\nRESUME:\n")
	sb.WriteString(resume)
	sb.WriteString("\n\nFormat the letter with the personal information at the top left, the company information below it, then a greeting, the body paragraphs and the closing.")

	return sb.String()
}

func writeOptional(sb *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(sb, "%s: %s\n", label, value)
}
