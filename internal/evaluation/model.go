package evaluation

// StartupIdea is the pitch submitted for evaluation. All five parts must be
// present; their content is free-form and never judged here.
type StartupIdea struct {
	Title         string `json:"title" binding:"required"`
	Problem       string `json:"problem" binding:"required"`
	Solution      string `json:"solution" binding:"required"`
	Audience      string `json:"audience" binding:"required"`
	BusinessModel string `json:"businessModel" binding:"required"`
}

// Score holds the 0-100 ratings. The range is what the prompt asks for,
// nothing enforces it on the way back.
type Score struct {
	Overall              float64 `json:"overall"`
	MarketPotential      float64 `json:"marketPotential"`
	TechnicalFeasibility float64 `json:"technicalFeasibility"`
}

type SwotAnalysis struct {
	Strengths     []string `json:"strengths" validate:"required"`
	Weaknesses    []string `json:"weaknesses" validate:"required"`
	Opportunities []string `json:"opportunities" validate:"required"`
	Threats       []string `json:"threats" validate:"required"`
}

// MarketAnalysis keeps the market-size figures as free-form strings: "$50B"
// and "$50,000,000,000" are both acceptable.
type MarketAnalysis struct {
	TargetMarket    string   `json:"targetMarket"`
	TAM             string   `json:"tam"`
	SAM             string   `json:"sam"`
	SOM             string   `json:"som"`
	GrowthRate      string   `json:"growthRate"`
	Trends          []string `json:"trends" validate:"required"`
	Competitors     []string `json:"competitors" validate:"required"`
	CustomerNeeds   []string `json:"customerNeeds" validate:"required"`
	BarriersToEntry []string `json:"barriersToEntry" validate:"required"`
}

// StartupEvaluation is the complete response body. It lives for one
// request-response cycle and is never stored.
type StartupEvaluation struct {
	Score              Score          `json:"score"`
	SwotAnalysis       SwotAnalysis   `json:"swotAnalysis"`
	MVPSuggestions     []string       `json:"mvpSuggestions" validate:"required"`
	BusinessModelIdeas []string       `json:"businessModelIdeas" validate:"required"`
	MarketAnalysis     MarketAnalysis `json:"marketAnalysis"`
}
