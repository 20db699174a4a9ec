package models

type SectionStatus string

const (
	StatusGood      SectionStatus = "good"
	StatusNeedsWork SectionStatus = "needs_work"
	StatusCritical  SectionStatus = "critical"
)

// SectionFeedback is one scored subsection of the analysis.
type SectionFeedback struct {
	Score    int           `json:"score" validate:"min=0,max=100"`
	Status   SectionStatus `json:"status" validate:"oneof=good needs_work critical"`
	Feedback string        `json:"feedback"`
}

// AnalysisResult is the structured critique returned to the client. The
// scored fields come from the AI; JobMatch and Keywords are computed locally
// from the extracted text and are present only when the service chose to
// compute them.
type AnalysisResult struct {
	OverallScore    int             `json:"overall_score" validate:"min=0,max=100"`
	Summary         SectionFeedback `json:"summary"`
	Experience      SectionFeedback `json:"experience"`
	Skills          SectionFeedback `json:"skills"`
	Education       SectionFeedback `json:"education"`
	ATSScore        int             `json:"ats_score" validate:"min=0,max=100"`
	KeyImprovements []string        `json:"key_improvements"`
	JobMatch        *JobMatch       `json:"job_match,omitempty"`
	Keywords        *Keywords       `json:"keywords,omitempty"`
}

// JobMatch compares resume keywords against the supplied job description.
type JobMatch struct {
	MatchPercentage  int      `json:"match_percentage"`
	TotalKeywords    int      `json:"total_keywords"`
	MatchedKeywords  int      `json:"matched_keywords"`
	MatchingKeywords []string `json:"matching_keywords"`
	MissingKeywords  []string `json:"missing_keywords"`
}

// Keywords summarizes notable terms found in the resume itself.
type Keywords struct {
	TechnicalSkills []string `json:"technical_skills"`
	ActionVerbs     []string `json:"action_verbs"`
	TotalCount      int      `json:"total_count"`
}

type UploadResponse struct {
	Message  string          `json:"message"`
	Filename string          `json:"filename"`
	Analysis *AnalysisResult `json:"analysis"`
}

type HistoryResponse struct {
	Analyses []AnalysisResult `json:"analyses"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
