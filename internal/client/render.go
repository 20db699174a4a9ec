package client

import (
	"fmt"
	"io"
	"strings"

	"resumelens/resume-optimizer/internal/models"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
)

// StatusColor maps a section status to its display color. Anything
// unrecognized renders red so a bad status is never mistaken for a good one.
func StatusColor(status models.SectionStatus) string {
	switch status {
	case models.StatusGood:
		return ansiGreen
	case models.StatusNeedsWork:
		return ansiYellow
	default:
		return ansiRed
	}
}

// RenderAnalysis writes the scored critique: overall score first, the four
// sections colored by status, the improvement list, and the optional keyword
// sections only when the service produced them.
func RenderAnalysis(w io.Writer, result *models.AnalysisResult) {
	fmt.Fprintf(w, "%sOverall Score: %d/100%s\n", ansiBold, result.OverallScore, ansiReset)
	fmt.Fprintf(w, "ATS Compatibility: %d/100\n\n", result.ATSScore)

	renderSection(w, "Summary", result.Summary)
	renderSection(w, "Experience", result.Experience)
	renderSection(w, "Skills", result.Skills)
	renderSection(w, "Education", result.Education)

	if len(result.KeyImprovements) > 0 {
		fmt.Fprintf(w, "%sKey Improvements%s\n", ansiBold, ansiReset)
		for i, item := range result.KeyImprovements {
			fmt.Fprintf(w, "  %d. %s\n", i+1, item)
		}
		fmt.Fprintln(w)
	}

	if result.JobMatch != nil {
		renderJobMatch(w, result.JobMatch)
	}

	if result.Keywords != nil {
		renderKeywords(w, result.Keywords)
	}
}

func renderSection(w io.Writer, title string, section models.SectionFeedback) {
	color := StatusColor(section.Status)
	fmt.Fprintf(w, "%s%s%s: %s%d/100 (%s)%s\n", ansiBold, title, ansiReset,
		color, section.Score, section.Status, ansiReset)
	if section.Feedback != "" {
		fmt.Fprintf(w, "  %s\n", section.Feedback)
	}
	fmt.Fprintln(w)
}

func renderJobMatch(w io.Writer, match *models.JobMatch) {
	fmt.Fprintf(w, "%sJob Match%s: %d%% (%d of %d keywords)\n", ansiBold, ansiReset,
		match.MatchPercentage, match.MatchedKeywords, match.TotalKeywords)
	if len(match.MatchingKeywords) > 0 {
		fmt.Fprintf(w, "  Matching: %s\n", strings.Join(match.MatchingKeywords, ", "))
	}
	if len(match.MissingKeywords) > 0 {
		fmt.Fprintf(w, "  Missing:  %s\n", strings.Join(match.MissingKeywords, ", "))
	}
	fmt.Fprintln(w)
}

func renderKeywords(w io.Writer, keywords *models.Keywords) {
	fmt.Fprintf(w, "%sKeywords%s (%d distinct terms)\n", ansiBold, ansiReset, keywords.TotalCount)
	if len(keywords.TechnicalSkills) > 0 {
		fmt.Fprintf(w, "  Technical skills: %s\n", strings.Join(keywords.TechnicalSkills, ", "))
	}
	if len(keywords.ActionVerbs) > 0 {
		fmt.Fprintf(w, "  Action verbs:     %s\n", strings.Join(keywords.ActionVerbs, ", "))
	}
	fmt.Fprintln(w)
}
