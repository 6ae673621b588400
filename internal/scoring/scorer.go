// Package scoring turns a session's raw answers into a risk result. It is
// pure computation over catalog data: no storage, no HTTP, no clock. That
// keeps it trivially table-testable and safe to call from any handler.
package scoring

import (
	"errors"
	"fmt"

	"github.com/oncoscreen/oncoscreen-backend/internal/catalog"
)

// ─── CONSTANTS ────────────────────────────────────────────────────────────────

// maxOptionWeight is the assumed per-question maximum for percentage scoring.
// The denominator is always len(questions) * 5 even when a question's options
// top out below 5, so some quizzes cannot reach 100%. This matches the
// published calculator and must not be "fixed" to a per-question max.
const maxOptionWeight = 5

// Percentage thresholds for the three risk levels.
const (
	moderateFloor = 30 // score >= 30 → at least Moderate
	highFloor     = 60 // score >= 60 → High
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// RiskLevel is the three-bucket classification shown to the user. The string
// values are rendered verbatim in API responses.
type RiskLevel string

const (
	LevelLow      RiskLevel = "Low"
	LevelModerate RiskLevel = "Moderate"
	LevelHigh     RiskLevel = "High"
)

// Result is the fully computed outcome of one assessment. Score is only
// meaningful for weighted assessments (0–100); PositiveCount only for
// boolean checklists. Both are kept on one struct so handlers can render
// either kind without a type switch.
type Result struct {
	AssessmentID  string    `json:"assessment_id"`
	DisplayName   string    `json:"display_name"`
	Level         RiskLevel `json:"level"`
	Score         int       `json:"score"`
	PositiveCount int       `json:"positive_count"`
	TotalAnswered int       `json:"total_answered"`
	Narrative     string    `json:"narrative"`
}

// ErrInsufficientAnswers is returned by ScoreBoolean when a checklist's
// minimum-answer gate has not been met. Callers should surface it as a
// conflict rather than an internal failure.
var ErrInsufficientAnswers = errors.New("not enough answers to produce a result")

// ─── CORE FUNCTIONS ───────────────────────────────────────────────────────────

// LevelForScore classifies a 0–100 percentage score.
func LevelForScore(score int) RiskLevel {
	switch {
	case score < moderateFloor:
		return LevelLow
	case score < highFloor:
		return LevelModerate
	default:
		return LevelHigh
	}
}

// ScoreWeighted computes the percentage score for a weighted-choice
// assessment. answers maps question ID to the selected option's weight.
//
// Unanswered questions contribute 0 to the numerator but still count in the
// denominator, so a partially answered quiz reads as lower risk. Answers for
// question IDs the definition doesn't contain are ignored. An empty map is
// valid and scores 0 (Low).
//
// The raw percentage is rounded half-up, then clamped to [0, 100] so that a
// definition with option weights above maxOptionWeight can never push the
// score out of range.
func ScoreWeighted(def catalog.Definition, answers map[string]int) Result {
	sum := 0
	answered := 0
	for _, q := range def.Questions {
		w, ok := answers[q.ID]
		if !ok {
			continue
		}
		sum += w
		answered++
	}

	maxScore := len(def.Questions) * maxOptionWeight
	score := 0
	if maxScore > 0 {
		score = int(float64(sum)/float64(maxScore)*100 + 0.5)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	level := LevelForScore(score)
	return Result{
		AssessmentID:  def.ID,
		DisplayName:   def.DisplayName,
		Level:         level,
		Score:         score,
		TotalAnswered: answered,
		Narrative:     weightedNarrative(level),
	}
}

// ScoreBoolean computes the result for a yes/no symptom checklist. answers
// maps question ID to the given answer; both true and false count as
// "answered" for the minimum gate, but only true answers count toward risk.
//
// Returns ErrInsufficientAnswers when fewer than def.MinimumRequired
// questions have been answered. Unknown question IDs are ignored.
func ScoreBoolean(def catalog.Definition, answers map[string]bool) (Result, error) {
	positives := 0
	answered := 0
	for _, q := range def.Questions {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		answered++
		if v {
			positives++
		}
	}

	if answered < def.MinimumRequired {
		return Result{}, fmt.Errorf("%w: answered %d of %d required",
			ErrInsufficientAnswers, answered, def.MinimumRequired)
	}

	var level RiskLevel
	var narrative string
	if def.Composite {
		level, narrative = compositeOutcome(positives)
	} else {
		level, narrative = topicOutcome(def.DisplayName, positives)
	}

	return Result{
		AssessmentID:  def.ID,
		DisplayName:   def.DisplayName,
		Level:         level,
		PositiveCount: positives,
		TotalAnswered: answered,
		Narrative:     narrative,
	}, nil
}

// CanShowResult reports whether a session with the given answered count has
// cleared the definition's minimum gate. Weighted assessments have no gate.
func CanShowResult(def catalog.Definition, answered int) bool {
	return answered >= def.MinimumRequired
}

// ─── NARRATIVES ───────────────────────────────────────────────────────────────

func weightedNarrative(level RiskLevel) string {
	switch level {
	case LevelLow:
		return "Your risk appears to be in the lower range. Continue with recommended preventive measures and regular screening."
	case LevelModerate:
		return "Your risk is moderate. Consider discussing enhanced screening options with your healthcare provider."
	default:
		return "Your risk appears elevated. It's important to discuss these results with your healthcare provider for personalized recommendations."
	}
}

// compositeOutcome buckets positive counts for the 50-question general
// screening. The extra zero bucket gives symptom-free users a distinct
// message even though the level is Low either way.
func compositeOutcome(positives int) (RiskLevel, string) {
	switch {
	case positives == 0:
		return LevelLow, "No concerning symptoms reported. Continue regular health screenings as recommended."
	case positives <= 5:
		return LevelLow, "Few symptoms reported. Monitor these symptoms and discuss with your healthcare provider during routine visits."
	case positives <= 15:
		return LevelModerate, "Several symptoms reported. We recommend scheduling an appointment with your healthcare provider to discuss these symptoms."
	default:
		return LevelHigh, "Multiple concerning symptoms reported. Please contact your healthcare provider promptly for evaluation."
	}
}

// topicOutcome buckets positive counts for the ten-question single-topic
// checklists.
func topicOutcome(name string, positives int) (RiskLevel, string) {
	switch {
	case positives == 0:
		return LevelLow, fmt.Sprintf("No concerning symptoms reported for %s. Continue regular health screenings.", name)
	case positives <= 2:
		return LevelLow, fmt.Sprintf("Few symptoms reported for %s. Monitor and discuss with your healthcare provider.", name)
	case positives <= 4:
		return LevelModerate, fmt.Sprintf("Several symptoms reported for %s. Schedule an appointment with your healthcare provider.", name)
	default:
		return LevelHigh, fmt.Sprintf("Multiple concerning symptoms for %s. Please contact your healthcare provider promptly.", name)
	}
}
