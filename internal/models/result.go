package models

import (
	"fmt"
	"strings"
)

// QualityLevel is the coarse quality tier derived from the overall score.
type QualityLevel string

const (
	QualityHigh   QualityLevel = "Alta"
	QualityMedium QualityLevel = "Média"
	QualityLow    QualityLevel = "Baixa"
)

func (q QualityLevel) String() string {
	return string(q)
}

// ParseQualityLevel converts a string (as found in result files or flags) to a
// QualityLevel.
func ParseQualityLevel(s string) (QualityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alta", "high":
		return QualityHigh, nil
	case "média", "media", "medium":
		return QualityMedium, nil
	case "baixa", "low":
		return QualityLow, nil
	default:
		return QualityLow, fmt.Errorf("invalid quality level %q: must be Alta, Média, or Baixa", s)
	}
}

// SkillType classifies a development objective as technical, behavioral, both,
// or undetermined.
type SkillType string

const (
	SkillHard    SkillType = "Hard Skill"
	SkillSoft    SkillType = "Soft Skill"
	SkillHybrid  SkillType = "Híbrida"
	SkillUnknown SkillType = "Indefinida"
)

func (s SkillType) String() string {
	return string(s)
}

// AnalysisInput holds the raw text fields of a single development-plan entry.
// Individual fields may be empty; validation happens downstream.
type AnalysisInput struct {
	Objective        string `json:"objective"`
	Actions          string `json:"actions"`
	LearningActivity string `json:"learning_activity,omitempty"`
}

// Field keys accepted by AnalysisInput.FromFields and the batch entry points.
const (
	FieldObjective        = "objective"
	FieldActions          = "actions"
	FieldLearningActivity = "learning_activity"
)

// InputFromFields builds an AnalysisInput from a record keyed by logical field
// names. Unknown keys are ignored; callers map source-specific column names
// onto the logical keys before analysis.
func InputFromFields(fields map[string]string) AnalysisInput {
	return AnalysisInput{
		Objective:        fields[FieldObjective],
		Actions:          fields[FieldActions],
		LearningActivity: fields[FieldLearningActivity],
	}
}

// Combined returns the concatenation of all non-empty fields, separated by a
// single space. This is the text the quality metrics run over.
func (in AnalysisInput) Combined() string {
	parts := make([]string, 0, 3)
	for _, f := range []string{in.Objective, in.Actions, in.LearningActivity} {
		if s := strings.TrimSpace(f); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// TextFeatures is the per-input derived view the metric calculators consume.
// Computed once per analysis and discarded afterwards.
type TextFeatures struct {
	Tokens            []string `json:"tokens"`
	WordCount         int      `json:"word_count"`
	SentenceCount     int      `json:"sentence_count"`
	AvgWordLength     float64  `json:"avg_word_length"`
	HasNumbers        bool     `json:"has_numbers"`
	NumberCount       int      `json:"number_count"`
	HasPunctuation    bool     `json:"has_punctuation"`
	StartsCapitalized bool     `json:"starts_capitalized"`
	TechnicalTerms    []string `json:"technical_terms"`
}

// MetricScores holds the five quality sub-scores, each in [0,1], plus the
// negative-language penalty in [0,0.5].
type MetricScores struct {
	Clarity        float64 `json:"clarity_score"`
	Specificity    float64 `json:"specificity_score"`
	Completeness   float64 `json:"completeness_score"`
	Structure      float64 `json:"structure_score"`
	SMARTCriteria  float64 `json:"smart_criteria_score"`
	NegativeImpact float64 `json:"negative_impact"`
}

// SkillResult is the outcome of hard/soft-skill classification.
type SkillResult struct {
	Type            SkillType `json:"skill_type"`
	Confidence      float64   `json:"confidence"`
	HardScore       float64   `json:"hard_score"`
	SoftScore       float64   `json:"soft_score"`
	MatchedKeywords []string  `json:"matched_keywords,omitempty"`
}

// OverallResult is the complete scoring output for a single record. It is
// immutable once returned; enhancers produce a new value rather than mutating.
type OverallResult struct {
	OverallScore   float64      `json:"overall_score"`
	QualityLevel   QualityLevel `json:"quality_level"`
	Metrics        MetricScores `json:"metrics"`
	Suggestions    []string     `json:"suggestions"`
	SuggestionText string       `json:"suggestion_text"`
	Skill          SkillResult  `json:"skill_classification"`
	Explanation    string       `json:"explanation"`
	Features       TextFeatures `json:"features"`
	Enhanced       bool         `json:"enhanced,omitempty"`

	// Failed marks a batch substitute emitted when a record's analysis
	// failed internally.
	Failed bool `json:"failed,omitempty"`
}

// BatchSummary aggregates a batch of results. It is a commutative reduction
// over counts and sums, so it is independent of completion order.
type BatchSummary struct {
	TotalRecords   int                      `json:"total_records"`
	FailedRecords  int                      `json:"failed_records"`
	TierCounts     map[QualityLevel]int     `json:"tier_counts"`
	TierPercent    map[QualityLevel]float64 `json:"tier_percent"`
	AverageScore   float64                  `json:"average_score"`
	AverageMetrics MetricScores             `json:"average_metrics"`
}
