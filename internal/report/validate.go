package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidReport is returned when provider content does not match the Report shape.
var ErrInvalidReport = errors.New("invalid report")

type valueKind int

const (
	kindString valueKind = iota
	kindInteger
	kindStringList
	kindObject
	kindObjectList
)

type field struct {
	name   string
	kind   valueKind
	fields []field
}

var phaseShape = []field{
	{name: "name", kind: kindString},
	{name: "duration", kind: kindString},
	{name: "description", kind: kindString},
}

var reportShape = []field{
	{name: "feasibility", kind: kindObject, fields: []field{
		{name: "score", kind: kindInteger},
		{name: "factors", kind: kindStringList},
		{name: "challenges", kind: kindStringList},
	}},
	{name: "techStack", kind: kindObject, fields: []field{
		{name: "frontend", kind: kindStringList},
		{name: "backend", kind: kindStringList},
		{name: "database", kind: kindStringList},
		{name: "additional", kind: kindStringList},
	}},
	{name: "timeline", kind: kindObject, fields: []field{
		{name: "mvp", kind: kindString},
		{name: "fullVersion", kind: kindString},
		{name: "phases", kind: kindObjectList, fields: phaseShape},
	}},
	{name: "targetUsers", kind: kindObject, fields: []field{
		{name: "primary", kind: kindString},
		{name: "secondary", kind: kindStringList},
		{name: "demographics", kind: kindStringList},
	}},
	{name: "monetization", kind: kindObject, fields: []field{
		{name: "primary", kind: kindString},
		{name: "alternatives", kind: kindStringList},
		{name: "revenueProjection", kind: kindString},
	}},
	{name: "competitors", kind: kindObject, fields: []field{
		{name: "direct", kind: kindStringList},
		{name: "indirect", kind: kindStringList},
		{name: "marketGap", kind: kindString},
		{name: "differentiation", kind: kindStringList},
	}},
}

// Parse decodes provider content into a Report after checking that every key of the
// Report shape is present with the expected JSON type. Extra keys are ignored.
func Parse(content []byte) (Report, error) {
	var generic any
	if err := json.Unmarshal(content, &generic); err != nil {
		return Report{}, fmt.Errorf("%w: not valid JSON: %v", ErrInvalidReport, err)
	}
	obj, ok := generic.(map[string]any)
	if !ok {
		return Report{}, fmt.Errorf("%w: top level is not an object", ErrInvalidReport)
	}
	if err := checkObject("", obj, reportShape); err != nil {
		return Report{}, err
	}

	var r Report
	if err := json.Unmarshal(content, &r); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}
	if err := r.Validate(); err != nil {
		return Report{}, err
	}
	return r, nil
}

// Validate checks value constraints that the JSON shape alone cannot express.
func (r Report) Validate() error {
	if r.Feasibility.Score < 0 || r.Feasibility.Score > 100 {
		return fmt.Errorf("%w: feasibility.score must be between 0 and 100, got %d", ErrInvalidReport, r.Feasibility.Score)
	}
	return nil
}

func checkObject(path string, obj map[string]any, shape []field) error {
	for _, f := range shape {
		p := joinPath(path, f.name)
		val, ok := obj[f.name]
		if !ok {
			return fmt.Errorf("%w: %s is required", ErrInvalidReport, p)
		}
		if err := checkValue(p, val, f); err != nil {
			return err
		}
	}
	return nil
}

func checkValue(path string, val any, f field) error {
	switch f.kind {
	case kindString:
		if _, ok := val.(string); !ok {
			return fmt.Errorf("%w: %s must be a string", ErrInvalidReport, path)
		}
	case kindInteger:
		n, ok := val.(float64)
		if !ok {
			return fmt.Errorf("%w: %s must be a number", ErrInvalidReport, path)
		}
		if math.Trunc(n) != n {
			return fmt.Errorf("%w: %s must be an integer", ErrInvalidReport, path)
		}
	case kindStringList:
		items, ok := val.([]any)
		if !ok {
			return fmt.Errorf("%w: %s must be an array", ErrInvalidReport, path)
		}
		for i, item := range items {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("%w: %s[%d] must be a string", ErrInvalidReport, path, i)
			}
		}
	case kindObject:
		obj, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s must be an object", ErrInvalidReport, path)
		}
		return checkObject(path, obj, f.fields)
	case kindObjectList:
		items, ok := val.([]any)
		if !ok {
			return fmt.Errorf("%w: %s must be an array", ErrInvalidReport, path)
		}
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return fmt.Errorf("%w: %s[%d] must be an object", ErrInvalidReport, path, i)
			}
			if err := checkObject(fmt.Sprintf("%s[%d]", path, i), obj, f.fields); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
