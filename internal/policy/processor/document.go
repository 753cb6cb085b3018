package processor

import (
	"encoding/json"
	"fmt"

	"hunt-server/internal/store"

	"github.com/go-playground/validator/v10"
)

// Built-in values used when no policy sets a field.
const (
	DefaultMinLevel          = 0
	DefaultLevelCap          = 10
	DefaultTasksPerLevel     = 3
	DefaultPlansPerLevel     = 0
	DefaultRequireAllCrucial = false
)

// LevelMap maps a difficulty to a non-negative count
type LevelMap map[store.Difficulty]int

// Document is a progression policy document. Known fields are typed; any other
// top-level key is preserved in Extensions. A nil field means "not set".
type Document struct {
	MinLevels         LevelMap               `json:"minLevels,omitempty" validate:"omitempty,dive,keys,oneof=BEGINNER INTERMEDIATE ADVANCED,endkeys,gte=0"`
	LevelCaps         LevelMap               `json:"levelCaps,omitempty" validate:"omitempty,dive,keys,oneof=BEGINNER INTERMEDIATE ADVANCED,endkeys,gte=0"`
	TasksPerLevel     LevelMap               `json:"tasksPerLevel,omitempty" validate:"omitempty,dive,keys,oneof=BEGINNER INTERMEDIATE ADVANCED,endkeys,gte=0"`
	PlansPerLevel     LevelMap               `json:"plansPerLevel,omitempty" validate:"omitempty,dive,keys,oneof=BEGINNER INTERMEDIATE ADVANCED,endkeys,gte=0"`
	RequireAllCrucial *bool                  `json:"requireAllCrucial,omitempty"`
	InviteOverrides   LevelMap               `json:"inviteOverrides,omitempty" validate:"omitempty,dive,keys,oneof=BEGINNER INTERMEDIATE ADVANCED,endkeys,gte=0"`
	Extensions        map[string]interface{} `json:"extensions,omitempty"`
}

var knownFields = map[string]bool{
	"minLevels":         true,
	"levelCaps":         true,
	"tasksPerLevel":     true,
	"plansPerLevel":     true,
	"requireAllCrucial": true,
	"inviteOverrides":   true,
	"extensions":        true,
}

var validate = validator.New()

// ParseDocument decodes and validates a stored or submitted document.
func ParseDocument(raw store.JSONB) (Document, error) {
	var doc Document
	if len(raw) == 0 {
		return doc, nil
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	for key, value := range raw {
		if knownFields[key] {
			continue
		}
		if doc.Extensions == nil {
			doc.Extensions = make(map[string]interface{})
		}
		doc.Extensions[key] = value
	}

	if err := validate.Struct(doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, nil
}

// JSONB encodes the document for storage
func (d Document) JSONB() (store.JSONB, error) {
	encoded, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	out := store.JSONB{}
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// overlay applies every field set in top over d, field by field.
func (d Document) overlay(top Document) Document {
	if top.MinLevels != nil {
		d.MinLevels = top.MinLevels
	}
	if top.LevelCaps != nil {
		d.LevelCaps = top.LevelCaps
	}
	if top.TasksPerLevel != nil {
		d.TasksPerLevel = top.TasksPerLevel
	}
	if top.PlansPerLevel != nil {
		d.PlansPerLevel = top.PlansPerLevel
	}
	if top.RequireAllCrucial != nil {
		d.RequireAllCrucial = top.RequireAllCrucial
	}
	if top.InviteOverrides != nil {
		d.InviteOverrides = top.InviteOverrides
	}
	if len(top.Extensions) > 0 {
		merged := make(map[string]interface{}, len(d.Extensions)+len(top.Extensions))
		for k, v := range d.Extensions {
			merged[k] = v
		}
		for k, v := range top.Extensions {
			merged[k] = v
		}
		d.Extensions = merged
	}
	return d
}

// EffectivePolicy is the merged rule set for one user
type EffectivePolicy struct {
	Document Document `json:"document"`
	// Applied lists the policies merged into Document, lowest precedence first.
	Applied []AppliedPolicy `json:"applied"`
}

// AppliedPolicy identifies one policy that contributed to an EffectivePolicy
type AppliedPolicy struct {
	ID       string            `json:"id"`
	Scope    store.PolicyScope `json:"scope"`
	ScopeRef *string           `json:"scope_ref,omitempty"`
}

func lookup(m LevelMap, d store.Difficulty, fallback int) int {
	if v, ok := m[d]; ok {
		return v
	}
	return fallback
}

func (p EffectivePolicy) MinLevel(d store.Difficulty) int {
	return lookup(p.Document.MinLevels, d, DefaultMinLevel)
}

func (p EffectivePolicy) LevelCap(d store.Difficulty) int {
	return lookup(p.Document.LevelCaps, d, DefaultLevelCap)
}

func (p EffectivePolicy) TasksPerLevel(d store.Difficulty) int {
	return lookup(p.Document.TasksPerLevel, d, DefaultTasksPerLevel)
}

func (p EffectivePolicy) PlansPerLevel(d store.Difficulty) int {
	return lookup(p.Document.PlansPerLevel, d, DefaultPlansPerLevel)
}

func (p EffectivePolicy) InviteOverride(d store.Difficulty) int {
	return lookup(p.Document.InviteOverrides, d, 0)
}

func (p EffectivePolicy) RequireAllCrucial() bool {
	if p.Document.RequireAllCrucial == nil {
		return DefaultRequireAllCrucial
	}
	return *p.Document.RequireAllCrucial
}

// Floor is the lowest level a user holds regardless of progress
func (p EffectivePolicy) Floor(d store.Difficulty) int {
	return max(p.MinLevel(d), p.InviteOverride(d))
}
