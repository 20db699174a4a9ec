package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"resumelens/resume-optimizer/internal/models"
)

// Analyzer runs the full scoring pipeline for one extracted resume: prompt
// the model, parse and validate its completion, then attach the locally
// computed keyword sections.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText, jobDescription string) (*models.AnalysisResult, error)
}

type analyzer struct {
	scoring  ScoringService
	keywords *KeywordAnalyzer
	validate *validator.Validate
}

func NewAnalyzer(scoring ScoringService) Analyzer {
	return &analyzer{
		scoring:  scoring,
		keywords: NewKeywordAnalyzer(),
		validate: validator.New(),
	}
}

// Analyze implements Analyzer.
func (a *analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) (*models.AnalysisResult, error) {
	raw, err := a.scoring.ScoreResume(ctx, resumeText, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("scoring failed: %w", err)
	}

	result, err := a.parse(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed completion: %w", err)
	}

	result.Keywords = a.keywords.ExtractKeywords(resumeText)
	if strings.TrimSpace(jobDescription) != "" {
		result.JobMatch = a.keywords.MatchJob(resumeText, jobDescription)
	}

	return result, nil
}

func (a *analyzer) parse(raw string) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	if err := a.validate.Struct(&result); err != nil {
		return nil, fmt.Errorf("analysis failed validation: %w", err)
	}

	return &result, nil
}

// CleanJSON strips the markdown code fences some models wrap around JSON
// output despite being told not to.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
