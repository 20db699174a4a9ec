package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/resume-optimizer/internal/models"
)

const validCompletion = `{
	"overall_score": 78,
	"summary": {"score": 85, "status": "good", "feedback": "Clear and concise."},
	"experience": {"score": 72, "status": "needs_work", "feedback": "Add metrics."},
	"skills": {"score": 65, "status": "critical", "feedback": "List more tools."},
	"education": {"score": 80, "status": "good", "feedback": "Well presented."},
	"ats_score": 70,
	"key_improvements": ["Add metrics", "Use action verbs", "Tailor to the role"]
}`

type fakeScoringService struct {
	completion string
	err        error
	calls      int
	lastResume string
	lastJob    string
}

func (f *fakeScoringService) ScoreResume(_ context.Context, resumeText, jobDescription string) (string, error) {
	f.calls++
	f.lastResume = resumeText
	f.lastJob = jobDescription
	if f.err != nil {
		return "", f.err
	}
	return f.completion, nil
}

func TestAnalyze_ValidCompletion(t *testing.T) {
	fake := &fakeScoringService{completion: validCompletion}
	a := NewAnalyzer(fake)

	result, err := a.Analyze(context.Background(), sampleResume, "")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, sampleResume, fake.lastResume)

	assert.Equal(t, 78, result.OverallScore)
	assert.Equal(t, 70, result.ATSScore)
	assert.Equal(t, models.StatusGood, result.Summary.Status)
	assert.Equal(t, models.StatusNeedsWork, result.Experience.Status)
	assert.Equal(t, models.StatusCritical, result.Skills.Status)
	assert.Len(t, result.KeyImprovements, 3)

	// Keywords are always attached; job match only with a job description.
	require.NotNil(t, result.Keywords)
	assert.Contains(t, result.Keywords.TechnicalSkills, "python")
	assert.Nil(t, result.JobMatch)
}

func TestAnalyze_FencedCompletion(t *testing.T) {
	fake := &fakeScoringService{completion: "```json\n" + validCompletion + "\n```"}
	a := NewAnalyzer(fake)

	result, err := a.Analyze(context.Background(), sampleResume, "")
	require.NoError(t, err)
	assert.Equal(t, 78, result.OverallScore)
}

func TestAnalyze_JobDescriptionAddsJobMatch(t *testing.T) {
	fake := &fakeScoringService{completion: validCompletion}
	a := NewAnalyzer(fake)

	result, err := a.Analyze(context.Background(), sampleResume, "Looking for Python and Terraform experience")
	require.NoError(t, err)
	require.NotNil(t, result.JobMatch)

	assert.Contains(t, result.JobMatch.MatchingKeywords, "python")
	assert.Contains(t, result.JobMatch.MissingKeywords, "terraform")
}

func TestAnalyze_ScoringFailure(t *testing.T) {
	fake := &fakeScoringService{err: errors.New("network down")}
	a := NewAnalyzer(fake)

	result, err := a.Analyze(context.Background(), sampleResume, "")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "scoring failed")
}

func TestAnalyze_MalformedCompletion(t *testing.T) {
	fake := &fakeScoringService{completion: "I am sorry, I cannot help with that."}
	a := NewAnalyzer(fake)

	result, err := a.Analyze(context.Background(), sampleResume, "")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "malformed completion")
}

func TestAnalyze_OutOfRangeScoreRejected(t *testing.T) {
	fake := &fakeScoringService{completion: `{
		"overall_score": 150,
		"summary": {"score": 85, "status": "good", "feedback": ""},
		"experience": {"score": 72, "status": "needs_work", "feedback": ""},
		"skills": {"score": 65, "status": "critical", "feedback": ""},
		"education": {"score": 80, "status": "good", "feedback": ""},
		"ats_score": 70,
		"key_improvements": []
	}`}
	a := NewAnalyzer(fake)

	_, err := a.Analyze(context.Background(), sampleResume, "")
	require.Error(t, err)
}

func TestAnalyze_UnknownStatusRejected(t *testing.T) {
	fake := &fakeScoringService{completion: `{
		"overall_score": 50,
		"summary": {"score": 85, "status": "excellent", "feedback": ""},
		"experience": {"score": 72, "status": "needs_work", "feedback": ""},
		"skills": {"score": 65, "status": "critical", "feedback": ""},
		"education": {"score": 80, "status": "good", "feedback": ""},
		"ats_score": 70,
		"key_improvements": []
	}`}
	a := NewAnalyzer(fake)

	_, err := a.Analyze(context.Background(), sampleResume, "")
	require.Error(t, err)
}

func TestCleanJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSON("  {\"a\":1}  "))
}
