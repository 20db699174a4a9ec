package services

import (
	"math"
	"strings"
	"unicode"

	"resumelens/resume-optimizer/internal/models"
)

const (
	maxSkillKeywords = 15
	maxMatchKeywords = 20
)

// technicalSkills is the vocabulary matched against resume tokens. Single
// tokens only; multi-word skills surface through their component terms.
var technicalSkills = []string{
	"python", "java", "javascript", "typescript", "go", "golang", "c++", "c#",
	"php", "ruby", "rails", "swift", "kotlin", "scala", "rust", "sql",
	"react", "angular", "vue", "node.js", "django", "flask", "spring",
	"express", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "linux",
	"git", "jenkins", "graphql", "rest", "kafka", "rabbitmq", "html", "css",
	"pandas", "numpy", "tensorflow", "pytorch", "spark", "hadoop", "tableau",
	"excel", "jira", "figma", "agile", "scrum", "devops", "microservices",
}

var actionVerbs = []string{
	"led", "managed", "developed", "built", "created", "designed",
	"implemented", "launched", "improved", "increased", "reduced",
	"delivered", "achieved", "optimized", "automated", "mentored",
	"coordinated", "analyzed", "architected", "migrated", "streamlined",
	"spearheaded", "established", "collaborated", "maintained",
}

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"are": true, "our": true, "will": true, "your": true, "that": true,
	"this": true, "have": true, "has": true, "not": true, "from": true,
	"who": true, "what": true, "can": true, "all": true, "but": true,
	"about": true, "their": true, "they": true, "them": true, "was": true,
	"were": true, "been": true, "being": true, "more": true, "must": true,
	"should": true, "would": true, "could": true, "into": true, "such": true,
	"other": true, "than": true, "when": true, "where": true, "while": true,
	"also": true, "able": true, "work": true, "working": true, "role": true,
	"team": true, "years": true, "year": true, "experience": true,
	"looking": true, "required": true, "requirements": true, "preferred": true,
	"candidate": true, "candidates": true, "skills": true, "strong": true,
	"plus": true, "including": true, "using": true, "within": true,
}

// KeywordAnalyzer computes the optional job_match and keywords sections of an
// analysis deterministically from text, without calling the AI.
type KeywordAnalyzer struct {
	skillSet map[string]bool
	verbSet  map[string]bool
}

func NewKeywordAnalyzer() *KeywordAnalyzer {
	ka := &KeywordAnalyzer{
		skillSet: make(map[string]bool, len(technicalSkills)),
		verbSet:  make(map[string]bool, len(actionVerbs)),
	}
	for _, s := range technicalSkills {
		ka.skillSet[s] = true
	}
	for _, v := range actionVerbs {
		ka.verbSet[v] = true
	}
	return ka
}

// ExtractKeywords summarizes notable terms found in the resume text.
func (ka *KeywordAnalyzer) ExtractKeywords(resumeText string) *models.Keywords {
	tokens := tokenize(resumeText)

	seen := make(map[string]bool, len(tokens))
	var distinct []string
	for _, tok := range tokens {
		if !seen[tok] {
			seen[tok] = true
			distinct = append(distinct, tok)
		}
	}

	var skills, verbs []string
	for _, tok := range distinct {
		if ka.skillSet[tok] && len(skills) < maxSkillKeywords {
			skills = append(skills, tok)
		}
		if ka.verbSet[tok] && len(verbs) < maxSkillKeywords {
			verbs = append(verbs, tok)
		}
	}

	return &models.Keywords{
		TechnicalSkills: skills,
		ActionVerbs:     verbs,
		TotalCount:      len(distinct),
	}
}

// MatchJob compares the job description's significant keywords against the
// resume tokens.
func (ka *KeywordAnalyzer) MatchJob(resumeText, jobDescription string) *models.JobMatch {
	resumeSet := make(map[string]bool)
	for _, tok := range tokenize(resumeText) {
		resumeSet[tok] = true
	}

	seen := make(map[string]bool)
	var matching, missing []string
	total, matched := 0, 0

	for _, tok := range tokenize(jobDescription) {
		if seen[tok] || !ka.significant(tok) {
			continue
		}
		seen[tok] = true
		total++

		if resumeSet[tok] {
			matched++
			if len(matching) < maxMatchKeywords {
				matching = append(matching, tok)
			}
		} else if len(missing) < maxMatchKeywords {
			missing = append(missing, tok)
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(100 * float64(matched) / float64(total)))
	}

	return &models.JobMatch{
		MatchPercentage:  percentage,
		TotalKeywords:    total,
		MatchedKeywords:  matched,
		MatchingKeywords: matching,
		MissingKeywords:  missing,
	}
}

// significant filters out noise tokens from a job description. Known skill
// names are always significant: the length cutoff alone would drop short ones
// like "go" and "c#".
func (ka *KeywordAnalyzer) significant(token string) bool {
	if ka.skillSet[token] {
		return true
	}
	return len(token) > 2 && !stopwords[token] && !allDigits(token)
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// tokenize lowercases and splits on anything that cannot appear inside a
// skill token. "+", "#" and "." are kept so terms like c++, c# and node.js
// survive.
func tokenize(text string) []string {
	text = strings.ToLower(text)

	isSep := func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) &&
			r != '+' && r != '#' && r != '.'
	}

	var tokens []string
	for _, tok := range strings.FieldsFunc(text, isSep) {
		tok = strings.Trim(tok, ".")
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
