package services

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// ScoringService is the model interface: resume text in, raw completion out.
// The completion is expected to be the analysis JSON, but parsing it is the
// caller's concern so the model can be faked in tests.
type ScoringService interface {
	ScoreResume(ctx context.Context, resumeText, jobDescription string) (string, error)
}

type geminiScoringService struct {
	client        *genai.Client
	modelName     string
	timeout       time.Duration
	maxAttempts   int
	promptBuilder *PromptBuilder
}

// NewGeminiScoringService creates the Gemini-backed scorer. A missing API key
// does not fail construction; every ScoreResume call will instead return an
// error, so the server can start without credentials.
func NewGeminiScoringService(apiKey, modelName string, timeout time.Duration, maxAttempts int) (ScoringService, error) {
	svc := &geminiScoringService{
		modelName:     modelName,
		timeout:       timeout,
		maxAttempts:   maxAttempts,
		promptBuilder: NewPromptBuilder(),
	}

	if maxAttempts < 1 {
		svc.maxAttempts = 1
	}

	if apiKey == "" {
		return svc, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	svc.client = client

	return svc, nil
}

// ScoreResume implements ScoringService.
func (g *geminiScoringService) ScoreResume(ctx context.Context, resumeText, jobDescription string) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("gemini API key is not configured")
	}

	prompt := g.promptBuilder.BuildResumeAnalysisPrompt(resumeText, jobDescription)

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		text, err := g.generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < g.maxAttempts {
			fmt.Printf("⚠️ Attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", g.maxAttempts, lastErr)
}

func (g *geminiScoringService) generate(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	temperature := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   1500,
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(callCtx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate analysis: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
