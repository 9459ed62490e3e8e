// Package classifier is the offline feasibility classifier used when the remote
// provider is unavailable. It is deterministic, performs no I/O and is safe for
// concurrent use; the category table and default template are never mutated.
package classifier

import (
	"strings"

	"idea-feasibility-backend/internal/report"
)

// Generic is reported by Detect when no category keyword matches.
const Generic = "generic"

var (
	aiMarkers         = []string{"ai", "machine learning"}
	complexityMarkers = []string{"ai", "machine learning", "blockchain", "ar", "vr", "realtime", "streaming"}
	socialMarkers     = []string{"social", "community", "sharing", "connect"}
	mobileMarkers     = []string{"mobile", "phone", "camera", "location", "gps"}
)

// Partial overrides whole field groups of a Report. A nil group is inherited from the
// base; a non-nil group replaces the base group entirely.
type Partial struct {
	Feasibility  *report.Feasibility
	TechStack    *report.TechStack
	Timeline     *report.Timeline
	TargetUsers  *report.TargetUsers
	Monetization *report.Monetization
	Competitors  *report.Competitors
}

// Merge returns a deep copy of base with every non-nil group of p substituted.
func Merge(base report.Report, p Partial) report.Report {
	out := base.Clone()
	if p.Feasibility != nil {
		out.Feasibility = p.Feasibility.Clone()
	}
	if p.TechStack != nil {
		out.TechStack = p.TechStack.Clone()
	}
	if p.Timeline != nil {
		out.Timeline = p.Timeline.Clone()
	}
	if p.TargetUsers != nil {
		out.TargetUsers = p.TargetUsers.Clone()
	}
	if p.Monetization != nil {
		out.Monetization = p.Monetization.Clone()
	}
	if p.Competitors != nil {
		out.Competitors = p.Competitors.Clone()
	}
	return out
}

// Default returns a copy of the default template.
func Default() report.Report {
	return defaultTemplate.Clone()
}

// Categories lists category names in match precedence order.
func Categories() []string {
	names := make([]string, 0, len(categoryTable))
	for _, c := range categoryTable {
		names = append(names, c.name)
	}
	return names
}

// Detect returns the first category whose keywords occur in idea, or Generic.
func Detect(idea string) string {
	if c, ok := match(strings.ToLower(idea)); ok {
		return c.name
	}
	return Generic
}

// Classify builds a complete Report for idea. It never fails.
func Classify(idea string) report.Report {
	lower := strings.ToLower(idea)
	c, ok := match(lower)
	if !ok {
		return customizeGeneric(Default(), lower)
	}
	return customizeCategory(Merge(defaultTemplate, c.override), c, lower)
}

func match(lower string) (categoryTemplate, bool) {
	for _, c := range categoryTable {
		if containsAny(lower, c.keywords) {
			return c, true
		}
	}
	return categoryTemplate{}, false
}

func customizeCategory(r report.Report, c categoryTemplate, lower string) report.Report {
	r.Competitors.Direct = append([]string(nil), c.direct...)
	r.Competitors.Indirect = append([]string(nil), c.indirect...)

	if containsAny(lower, aiMarkers) {
		r.Timeline.MVP = "4-6 months"
		r.Timeline.FullVersion = "10-15 months"
		r.TechStack.Backend = append(r.TechStack.Backend, "Python", "TensorFlow", "ML APIs")
		r.Feasibility.Challenges = append(r.Feasibility.Challenges, "AI model training and data requirements")
	}
	return r
}

// customizeGeneric applies the complexity, social and mobile heuristics. They are
// independent and may all apply to one idea.
func customizeGeneric(r report.Report, lower string) report.Report {
	if containsAny(lower, complexityMarkers) {
		r.Feasibility.Score -= 15
		r.Timeline.MVP = "4-6 months"
		r.Timeline.FullVersion = "12-18 months"
		r.Feasibility.Challenges = append(r.Feasibility.Challenges, "Complex technology implementation requires specialized expertise")
	}
	if containsAny(lower, socialMarkers) {
		r.Feasibility.Challenges = append(r.Feasibility.Challenges, "Network effects required for success")
		r.TargetUsers.Primary = "Social media users seeking new ways to connect and share"
	}
	if containsAny(lower, mobileMarkers) {
		r.TechStack.Frontend = []string{"React Native", "Flutter"}
		r.TechStack.Additional = append(r.TechStack.Additional, "Device APIs", "Camera integration")
	}
	return r
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
