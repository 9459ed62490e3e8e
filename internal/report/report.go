package report

// JSON shape:
// {
//   "feasibility":  { "score": 0, "factors": [], "challenges": [] },
//   "techStack":    { "frontend": [], "backend": [], "database": [], "additional": [] },
//   "timeline":     { "mvp": "", "fullVersion": "", "phases": [{ "name": "", "duration": "", "description": "" }] },
//   "targetUsers":  { "primary": "", "secondary": [], "demographics": [] },
//   "monetization": { "primary": "", "alternatives": [], "revenueProjection": "" },
//   "competitors":  { "direct": [], "indirect": [], "marketGap": "", "differentiation": [] }
// }

// Report is the feasibility analysis returned for an app idea.
type Report struct {
	Feasibility  Feasibility  `json:"feasibility"`
	TechStack    TechStack    `json:"techStack"`
	Timeline     Timeline     `json:"timeline"`
	TargetUsers  TargetUsers  `json:"targetUsers"`
	Monetization Monetization `json:"monetization"`
	Competitors  Competitors  `json:"competitors"`
}

// Feasibility scores the idea from 0 to 100 with supporting factors and challenges.
type Feasibility struct {
	Score      int      `json:"score"`
	Factors    []string `json:"factors"`
	Challenges []string `json:"challenges"`
}

// TechStack lists suggested technologies per layer.
type TechStack struct {
	Frontend   []string `json:"frontend"`
	Backend    []string `json:"backend"`
	Database   []string `json:"database"`
	Additional []string `json:"additional"`
}

// Timeline estimates time to MVP and to a full version, broken into phases.
type Timeline struct {
	MVP         string  `json:"mvp"`
	FullVersion string  `json:"fullVersion"`
	Phases      []Phase `json:"phases"`
}

// Phase is one named stage of the Timeline.
type Phase struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// TargetUsers describes the primary audience, secondary segments and demographics.
type TargetUsers struct {
	Primary      string   `json:"primary"`
	Secondary    []string `json:"secondary"`
	Demographics []string `json:"demographics"`
}

// Monetization names the main revenue model, alternatives and a projection.
type Monetization struct {
	Primary           string   `json:"primary"`
	Alternatives      []string `json:"alternatives"`
	RevenueProjection string   `json:"revenueProjection"`
}

// Competitors lists direct and indirect competitors, the market gap and differentiators.
type Competitors struct {
	Direct          []string `json:"direct"`
	Indirect        []string `json:"indirect"`
	MarketGap       string   `json:"marketGap"`
	Differentiation []string `json:"differentiation"`
}

// Clone returns a deep copy; no slice is shared with r.
func (r Report) Clone() Report {
	return Report{
		Feasibility:  r.Feasibility.Clone(),
		TechStack:    r.TechStack.Clone(),
		Timeline:     r.Timeline.Clone(),
		TargetUsers:  r.TargetUsers.Clone(),
		Monetization: r.Monetization.Clone(),
		Competitors:  r.Competitors.Clone(),
	}
}

// Clone returns a copy that shares no slices with f.
func (f Feasibility) Clone() Feasibility {
	f.Factors = cloneStrings(f.Factors)
	f.Challenges = cloneStrings(f.Challenges)
	return f
}

// Clone returns a copy that shares no slices with t.
func (t TechStack) Clone() TechStack {
	t.Frontend = cloneStrings(t.Frontend)
	t.Backend = cloneStrings(t.Backend)
	t.Database = cloneStrings(t.Database)
	t.Additional = cloneStrings(t.Additional)
	return t
}

// Clone returns a copy with its own Phases slice.
func (t Timeline) Clone() Timeline {
	if t.Phases != nil {
		t.Phases = append(make([]Phase, 0, len(t.Phases)), t.Phases...)
	}
	return t
}

// Clone returns a copy that shares no slices with t.
func (t TargetUsers) Clone() TargetUsers {
	t.Secondary = cloneStrings(t.Secondary)
	t.Demographics = cloneStrings(t.Demographics)
	return t
}

// Clone returns a copy that shares no slices with m.
func (m Monetization) Clone() Monetization {
	m.Alternatives = cloneStrings(m.Alternatives)
	return m
}

// Clone returns a copy that shares no slices with c.
func (c Competitors) Clone() Competitors {
	c.Direct = cloneStrings(c.Direct)
	c.Indirect = cloneStrings(c.Indirect)
	c.Differentiation = cloneStrings(c.Differentiation)
	return c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}

// ShapeExample returns a Report with empty placeholder values and one empty phase.
// Marshalled, it is the JSON shape the remote provider is asked to fill in.
func ShapeExample() Report {
	return Report{
		Feasibility: Feasibility{Factors: []string{}, Challenges: []string{}},
		TechStack: TechStack{
			Frontend:   []string{},
			Backend:    []string{},
			Database:   []string{},
			Additional: []string{},
		},
		Timeline:     Timeline{Phases: []Phase{{}}},
		TargetUsers:  TargetUsers{Secondary: []string{}, Demographics: []string{}},
		Monetization: Monetization{Alternatives: []string{}},
		Competitors: Competitors{
			Direct:          []string{},
			Indirect:        []string{},
			Differentiation: []string{},
		},
	}
}
