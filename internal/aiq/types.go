package aiq

import "fmt"

// Type is the archetype label assigned to a completed assessment.
type Type string

const (
	SpeedExecutor        Type = "speed_executor"
	PrecisionAnalyst     Type = "precision_analyst"
	CreativeInnovator    Type = "creative_innovator"
	MasterPrompter       Type = "master_prompter"
	QualityGuardian      Type = "quality_guardian"
	CollaborativeBuilder Type = "collaborative_builder"
	AIFundamentalist     Type = "ai_fundamentalist"
	BalancedPractitioner Type = "balanced_practitioner"
)

var typeOrder = [...]Type{
	SpeedExecutor, PrecisionAnalyst, CreativeInnovator, MasterPrompter,
	QualityGuardian, CollaborativeBuilder, AIFundamentalist, BalancedPractitioner,
}

// Types returns every type in enumeration order.
func Types() []Type {
	out := make([]Type, len(typeOrder))
	copy(out, typeOrder[:])
	return out
}

// Valid reports whether t is one of the eight enumerated types.
func (t Type) Valid() bool {
	for _, v := range typeOrder {
		if v == t {
			return true
		}
	}
	return false
}

// ParseType converts a wire name into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown aiq type %q", s)
	}
	return t, nil
}

type classificationRule struct {
	typ   Type
	match func(c Capabilities) bool
}

// classificationRules are evaluated in order and the first match wins.
// Rules 2 and 5 overlap (P>75,E>70 implies P>70,E>70); order resolves it.
var classificationRules = []classificationRule{
	{SpeedExecutor, func(c Capabilities) bool { return c.U > 70 && c.C > 65 }},
	{PrecisionAnalyst, func(c Capabilities) bool { return c.P > 75 && c.E > 70 }},
	{CreativeInnovator, func(c Capabilities) bool { return c.S > 70 && c.C > 60 }},
	{MasterPrompter, func(c Capabilities) bool { return c.R > 75 && c.F > 65 }},
	{QualityGuardian, func(c Capabilities) bool { return c.P > 70 && c.E > 70 }},
	{CollaborativeBuilder, func(c Capabilities) bool { return c.Co > 70 && c.U > 60 }},
	{AIFundamentalist, func(c Capabilities) bool { return c.F > 75 }},
}

// ClassifyType returns the type of the first matching rule, or
// BalancedPractitioner when none match.
func ClassifyType(c Capabilities) Type {
	for _, rule := range classificationRules {
		if rule.match(c) {
			return rule.typ
		}
	}
	return BalancedPractitioner
}

// TypeInfo is presentation metadata for a type.
type TypeInfo struct {
	Type            Type     `json:"type"`
	Name            string   `json:"name"`
	NameKo          string   `json:"name_ko"`
	Description     string   `json:"description"`
	Emoji           string   `json:"emoji"`
	Strengths       []string `json:"strengths"`
	Recommendations []string `json:"recommendations"`
}

// LookupTypeInfo returns a copy of the metadata for t.
func LookupTypeInfo(t Type) (TypeInfo, bool) {
	info, ok := typeInfo[t]
	if !ok {
		return TypeInfo{}, false
	}
	info.Strengths = append([]string(nil), info.Strengths...)
	info.Recommendations = append([]string(nil), info.Recommendations...)
	return info, true
}

var typeInfo = map[Type]TypeInfo{
	SpeedExecutor: {
		Type:        SpeedExecutor,
		Name:        "Speed Executor",
		NameKo:      "빠른 실행자",
		Description: "Uses AI to turn out results quickly.",
		Emoji:       "⚡",
		Strengths:   []string{"Fast prototyping", "High productivity", "Uses AI tools naturally"},
		Recommendations: []string{
			"Spend more time on code review",
			"Build a habit of writing tests",
			"Add checks for security vulnerabilities",
		},
	},
	PrecisionAnalyst: {
		Type:        PrecisionAnalyst,
		Name:        "Precision Analyst",
		NameKo:      "정밀 분석가",
		Description: "Reviews AI output thoroughly and puts quality first.",
		Emoji:       "🔬",
		Strengths:   []string{"High code quality", "Rigorous verification", "Stable deliverables"},
		Recommendations: []string{
			"Use AI more to improve speed",
			"It is fine to let go of some perfectionism",
			"Hand more repetitive work to AI",
		},
	},
	CreativeInnovator: {
		Type:        CreativeInnovator,
		Name:        "Creative Innovator",
		NameKo:      "창의적 혁신가",
		Description: "Explores new ideas and solutions with AI.",
		Emoji:       "💡",
		Strengths:   []string{"Innovative approach", "Problem solving", "Strategic use of AI"},
		Recommendations: []string{
			"Turn ideas into execution faster",
			"Invest time in strengthening fundamentals",
			"Share ideas with the team more often",
		},
	},
	MasterPrompter: {
		Type:        MasterPrompter,
		Name:        "Master Prompter",
		NameKo:      "프롬프트 마스터",
		Description: "Communicates fluently with AI and gives effective instructions.",
		Emoji:       "🎯",
		Strengths:   []string{"Clear communication", "Draws out the best AI responses", "Efficient AI usage"},
		Recommendations: []string{
			"Try a wider range of AI tools",
			"Build a prompt library",
			"Share your know-how with teammates",
		},
	},
	QualityGuardian: {
		Type:        QualityGuardian,
		Name:        "Quality Guardian",
		NameKo:      "품질 수호자",
		Description: "Uses AI responsibly while holding ethics and quality standards.",
		Emoji:       "🛡️",
		Strengths:   []string{"Security awareness", "Ethical judgement", "Long-term stability"},
		Recommendations: []string{
			"Use automation tools to raise efficiency",
			"Trust and use AI more",
			"Find a balance between speed and quality",
		},
	},
	CollaborativeBuilder: {
		Type:        CollaborativeBuilder,
		Name:        "Collaborative Builder",
		NameKo:      "협업형 빌더",
		Description: "Shares and grows AI know-how together with the team.",
		Emoji:       "🤝",
		Strengths:   []string{"Teamwork", "Knowledge sharing", "Quick adaptation"},
		Recommendations: []string{
			"Invest time in your own skill development",
			"Deepen expertise through advanced study",
			"Study more AI fundamentals",
		},
	},
	AIFundamentalist: {
		Type:        AIFundamentalist,
		Name:        "AI Fundamentalist",
		NameKo:      "AI 기본 전문가",
		Description: "Understands the principles and limits of AI deeply and applies them.",
		Emoji:       "🧠",
		Strengths:   []string{"Deep understanding", "Effective problem solving", "Optimisation skills"},
		Recommendations: []string{
			"Gain more hands-on project experience",
			"Practise applying theory to real work",
			"Take on a variety of domains",
		},
	},
	BalancedPractitioner: {
		Type:        BalancedPractitioner,
		Name:        "Balanced Practitioner",
		NameKo:      "균형잡힌 실무자",
		Description: "Has well-rounded AI skills across many areas.",
		Emoji:       "⚖️",
		Strengths:   []string{"All-round ability", "Adapts to situations", "Steady performance"},
		Recommendations: []string{
			"Develop a particular strength further",
			"Pick an area of interest and specialise",
			"Build a distinctive strength",
		},
	},
}
