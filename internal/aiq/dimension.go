package aiq

// Dimension is one of the eight capability axes scored by the assessment.
type Dimension string

const (
	Usage         Dimension = "U"
	Performance   Dimension = "P"
	Contribution  Dimension = "C"
	Prompting     Dimension = "R"
	Ethics        Dimension = "E"
	Strategic     Dimension = "S"
	Collaboration Dimension = "Co"
	Fundamentals  Dimension = "F"
)

const dimensionCount = 8

// dimensionOrder fixes iteration order for aggregation, display and tie breaking.
var dimensionOrder = [dimensionCount]Dimension{
	Usage, Performance, Contribution, Prompting,
	Ethics, Strategic, Collaboration, Fundamentals,
}

// Dimensions returns all dimensions in their canonical order.
func Dimensions() []Dimension {
	out := make([]Dimension, dimensionCount)
	copy(out, dimensionOrder[:])
	return out
}

// Valid reports whether d belongs to the closed dimension alphabet.
func (d Dimension) Valid() bool {
	return d.index() >= 0
}

func (d Dimension) index() int {
	for i, dim := range dimensionOrder {
		if dim == d {
			return i
		}
	}
	return -1
}

// DimensionInfo is display metadata for a dimension.
type DimensionInfo struct {
	Dimension   Dimension `json:"dimension"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	// DescriptionKo is the Korean description shown by the localized UI.
	DescriptionKo string `json:"description_ko"`
	Emoji         string `json:"emoji"`
}

var dimensionInfo = map[Dimension]DimensionInfo{
	Usage:         {Usage, "Usage & Productivity", "How efficiently AI tools are used to get work done", "AI 도구를 얼마나 효율적으로 사용하는가", "⚡"},
	Performance:   {Performance, "Performance & Quality", "How much weight is put on the quality and accuracy of results", "결과물의 품질과 정확성을 얼마나 중시하는가", "🎯"},
	Contribution:  {Contribution, "AI Contribution", "How much of the work AI contributes", "AI가 작업에 기여하는 정도", "🤖"},
	Prompting:     {Prompting, "Prompting & Communication", "How well instructions are communicated to AI", "AI와의 소통 능력", "💬"},
	Ethics:        {Ethics, "Ethical & Responsible", "Ethical and responsible use of AI output", "윤리적이고 책임감 있는 AI 사용", "🛡️"},
	Strategic:     {Strategic, "Strategic & Creative", "Strategic and creative application of AI", "전략적이고 창의적인 AI 활용", "💡"},
	Collaboration: {Collaboration, "Collaboration & Adaptability", "Sharing AI practice with a team and adapting to change", "협업과 적응력", "🤝"},
	Fundamentals:  {Fundamentals, "AI Fundamentals", "Understanding of how AI models work", "AI 기초 지식과 이해도", "🧠"},
}

// LookupDimensionInfo returns display metadata for d.
func LookupDimensionInfo(d Dimension) (DimensionInfo, bool) {
	info, ok := dimensionInfo[d]
	return info, ok
}

// Capabilities holds one integer score in [0,100] per dimension.
// It is a value type; every scoring call produces a fresh one.
type Capabilities struct {
	U  int `json:"U"`
	P  int `json:"P"`
	C  int `json:"C"`
	R  int `json:"R"`
	E  int `json:"E"`
	S  int `json:"S"`
	Co int `json:"Co"`
	F  int `json:"F"`
}

// Get returns the score for d, or 0 for an unknown dimension.
func (c Capabilities) Get(d Dimension) int {
	switch d {
	case Usage:
		return c.U
	case Performance:
		return c.P
	case Contribution:
		return c.C
	case Prompting:
		return c.R
	case Ethics:
		return c.E
	case Strategic:
		return c.S
	case Collaboration:
		return c.Co
	case Fundamentals:
		return c.F
	default:
		return 0
	}
}

func (c *Capabilities) set(d Dimension, v int) {
	switch d {
	case Usage:
		c.U = v
	case Performance:
		c.P = v
	case Contribution:
		c.C = v
	case Prompting:
		c.R = v
	case Ethics:
		c.E = v
	case Strategic:
		c.S = v
	case Collaboration:
		c.Co = v
	case Fundamentals:
		c.F = v
	}
}

// Scores returns the scores keyed by dimension tag.
func (c Capabilities) Scores() map[Dimension]int {
	out := make(map[Dimension]int, dimensionCount)
	for _, d := range dimensionOrder {
		out[d] = c.Get(d)
	}
	return out
}

// Dominant returns the n highest-scoring dimensions. Ties keep canonical order.
func (c Capabilities) Dominant(n int) []Dimension {
	if n <= 0 {
		return nil
	}
	if n > dimensionCount {
		n = dimensionCount
	}
	ranked := Dimensions()
	// insertion sort, stable on ties
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && c.Get(ranked[j]) > c.Get(ranked[j-1]); j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	return ranked[:n]
}
