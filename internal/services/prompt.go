package services

import (
	"fmt"

	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/models"
)

// ChatHistoryWindow caps how many transcript messages are replayed into a
// chat prompt, newest last. The window includes the user turn being answered.
const ChatHistoryWindow = 5

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSummaryPrompt asks for a short recruiter-style summary of the resume.
func (pb *PromptBuilder) BuildSummaryPrompt(resumeText string) string {
	return fmt.Sprintf(`Provide a concise summary (2-3 sentences) highlighting the key qualifications and experience from the following resume text:

Resume Text:
---
%s
---`, resumeText)
}

// BuildImprovementsPrompt asks for actionable suggestions on the resume.
func (pb *PromptBuilder) BuildImprovementsPrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze the following resume text and provide 3-5 specific, actionable suggestions for improvement. Format the suggestions clearly using bullet points. Focus on areas like skills presentation, quantifying achievements, clarity, and structure. Mention how these improvements could better align with typical job requirements.

Resume Text:
---
%s
---`, resumeText)
}

// BuildMissingKeywordsPrompt compares the resume against the job description
// and asks for skills the resume lacks.
func (pb *PromptBuilder) BuildMissingKeywordsPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`Compare the following resume text against the job description. Identify and list key skills, technologies, or qualifications mentioned in the job description that are either missing or significantly underrepresented in the resume. Format as a list.

Job Description:
---
%s
---

Resume Text:
---
%s
---`, jobDescription, resumeText)
}

// BuildMatchScorePrompt asks for a 0-100 match percentage. The instructed
// "Score: [percentage]" first line is the contract ParseATSScore depends on;
// changing this wording breaks score parsing.
func (pb *PromptBuilder) BuildMatchScorePrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`Analyze the alignment between the resume and job description. Consider keywords, skills, experience relevance. Provide an estimated percentage match score (integer 0-100).
**Output Format:** Start the response *only* with "Score: [percentage]" on the first line, followed by a brief explanation on subsequent lines. Example:
Score: 75
The resume shows good alignment...

Job Description:
---
%s
---

Resume Text:
---
%s
---`, jobDescription, resumeText)
}

// BuildChatPrompt assembles a free-form chat turn: job description (or N/A),
// the full resume, the tail of the transcript, and the new user query.
func (pb *PromptBuilder) BuildChatPrompt(session *models.Session, query string) string {
	jobDescription := session.JobDescription
	if jobDescription == "" {
		jobDescription = "N/A"
	}

	historyContext := session.RecentChatContext(ChatHistoryWindow)

	return fmt.Sprintf(`You are a helpful AI assistant analyzing a resume against a job description.
Current Job Description Context:
---
%s
---
Full Resume Text:
---
%s
---
Previous Conversation (last few messages):
%s
User Query: %s

Provide a helpful and relevant response based on the resume and the conversation context, using Markdown formatting where appropriate (like lists or bold text).`,
		jobDescription, session.ResumeText, historyContext, query)
}
