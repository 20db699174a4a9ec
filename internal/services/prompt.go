package services

import (
	"fmt"
	"strings"
)

// SystemInstruction reinforces the JSON-only output contract on every call.
const SystemInstruction = "You are an expert resume reviewer. Always respond with valid JSON only, no markdown."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt creates the scoring prompt. The job description
// block is included only when one was supplied.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText, jobDescription string) string {
	jobBlock := ""
	if strings.TrimSpace(jobDescription) != "" {
		jobBlock = fmt.Sprintf("Job Description: %s\n", jobDescription)
	}

	return fmt.Sprintf(`Analyze this resume and provide feedback.

Resume:
%s

%s
Return ONLY valid JSON with these keys:
{
    "overall_score": <0-100>,
    "summary": {"score": <0-100>, "status": "good/needs_work/critical", "feedback": "<feedback>"},
    "experience": {"score": <0-100>, "status": "good/needs_work/critical", "feedback": "<feedback>"},
    "skills": {"score": <0-100>, "status": "good/needs_work/critical", "feedback": "<feedback>"},
    "education": {"score": <0-100>, "status": "good/needs_work/critical", "feedback": "<feedback>"},
    "ats_score": <0-100>,
    "key_improvements": ["improvement 1", "improvement 2", "improvement 3"]
}

Do not include explanations, markdown, or text before or after the JSON.`,
		resumeText, jobBlock)
}
