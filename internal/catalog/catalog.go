// Package catalog holds the static registry of assessment definitions: the
// weighted risk quizzes and the yes/no symptom checklists. The registry is
// built once at package init from literal seed data and is read-only
// afterwards — callers must not mutate the returned values.
//
// Dependency rule: catalog imports nothing from this module. The scoring
// package depends on it, never the other way around.
package catalog

import "fmt"

// ─── TYPES ────────────────────────────────────────────────────────────────────

// AnswerKind says what shape of answer a question accepts.
type AnswerKind string

const (
	KindWeightedChoice AnswerKind = "weighted_choice" // pick one option, scored by its weight
	KindBoolean        AnswerKind = "boolean"         // yes / no
)

// Scheme selects which scoring engine applies to a definition.
type Scheme string

const (
	SchemeWeightedPercentage Scheme = "weighted_percentage"
	SchemeBooleanThreshold   Scheme = "boolean_threshold"
)

// Option is one selectable answer for a weighted-choice question. Weights are
// not required to be unique within a question — several labels can share one
// weight (e.g. breast density "Moderate density" and "Unknown" both carry 2).
// Scoring only ever reads the weight of the option the user picked, so
// duplicates are preserved exactly as authored.
type Option struct {
	Weight int    `json:"weight"`
	Label  string `json:"label"`
}

// Question is one evaluative item. Options is populated only for
// KindWeightedChoice questions.
type Question struct {
	ID      string     `json:"id"`
	Prompt  string     `json:"prompt"`
	Kind    AnswerKind `json:"kind"`
	Options []Option   `json:"options,omitempty"`
}

// Definition is one named assessment: an ordered question list plus the
// scoring scheme that interprets its answers.
type Definition struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Scheme      Scheme `json:"scheme"`

	// MinimumRequired is the number of answered questions needed before a
	// result may be computed. Only meaningful for SchemeBooleanThreshold;
	// zero for weighted definitions.
	MinimumRequired int `json:"minimum_required,omitempty"`

	// Composite marks the general screening checklist, which uses wider
	// count buckets than the single-topic checklists.
	Composite bool `json:"-"`

	Questions []Question `json:"questions"`
}

// ─── REGISTRY ─────────────────────────────────────────────────────────────────

var (
	registry []Definition
	byID     map[string]int
)

func init() {
	registry = append(registry, weightedDefinitions...)
	registry = append(registry, symptomDefinitions...)

	byID = make(map[string]int, len(registry))
	for idx, def := range registry {
		if err := validate(def); err != nil {
			panic(fmt.Sprintf("catalog: invalid definition %q: %v", def.ID, err))
		}
		if _, dup := byID[def.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate definition id %q", def.ID))
		}
		byID[def.ID] = idx
	}
}

// All returns every definition in catalog order. The returned slice is a
// copy; the Definition values share their underlying question slices with the
// registry and must be treated as read-only.
func All() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry)
	return out
}

// Get looks up a definition by id.
func Get(id string) (Definition, bool) {
	idx, ok := byID[id]
	if !ok {
		return Definition{}, false
	}
	return registry[idx], true
}

// ─── SEED VALIDATION ──────────────────────────────────────────────────────────

// validate enforces the invariants the scoring engines rely on. It runs once
// at init and panics the process on violation — bad seed data is a programmer
// error, not a runtime condition.
func validate(def Definition) error {
	if def.ID == "" || def.DisplayName == "" {
		return fmt.Errorf("id and display_name are required")
	}
	if len(def.Questions) == 0 {
		return fmt.Errorf("no questions")
	}

	switch def.Scheme {
	case SchemeWeightedPercentage:
		if def.MinimumRequired != 0 {
			return fmt.Errorf("minimum_required is only valid for boolean_threshold")
		}
	case SchemeBooleanThreshold:
		if def.MinimumRequired <= 0 {
			return fmt.Errorf("minimum_required must be positive")
		}
		if def.MinimumRequired > len(def.Questions) {
			return fmt.Errorf("minimum_required %d exceeds question count %d",
				def.MinimumRequired, len(def.Questions))
		}
	default:
		return fmt.Errorf("unknown scheme %q", def.Scheme)
	}

	seen := make(map[string]struct{}, len(def.Questions))
	for _, q := range def.Questions {
		if q.ID == "" {
			return fmt.Errorf("question with empty id")
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}

		switch q.Kind {
		case KindWeightedChoice:
			if def.Scheme != SchemeWeightedPercentage {
				return fmt.Errorf("question %q: weighted_choice under %s", q.ID, def.Scheme)
			}
			if len(q.Options) < 2 {
				return fmt.Errorf("question %q: needs at least 2 options", q.ID)
			}
			for _, opt := range q.Options {
				if opt.Weight < 0 {
					return fmt.Errorf("question %q: negative weight %d", q.ID, opt.Weight)
				}
			}
		case KindBoolean:
			if def.Scheme != SchemeBooleanThreshold {
				return fmt.Errorf("question %q: boolean under %s", q.ID, def.Scheme)
			}
			if len(q.Options) != 0 {
				return fmt.Errorf("question %q: boolean questions carry no options", q.ID)
			}
		default:
			return fmt.Errorf("question %q: unknown kind %q", q.ID, q.Kind)
		}
	}
	return nil
}
