package evaluation

// Fallback returns the canned evaluation served whenever the pipeline cannot
// produce a validated one. It is built fresh on every call so no request can
// mutate the copy another request is holding.
func Fallback() *StartupEvaluation {
	return &StartupEvaluation{
		Score: Score{
			Overall:              75,
			MarketPotential:      70,
			TechnicalFeasibility: 80,
		},
		SwotAnalysis: SwotAnalysis{
			Strengths:     []string{"Innovative", "Scalable", "Well-targeted"},
			Weaknesses:    []string{"High dev cost", "Low adoption risk", "Unclear pricing"},
			Opportunities: []string{"Growing market", "Tech trends", "Global reach"},
			Threats:       []string{"Regulations", "Competitors", "Economic instability"},
		},
		MVPSuggestions:     []string{"Build landing page", "Create waitlist", "Offer demo"},
		BusinessModelIdeas: []string{"Subscription", "Freemium", "Tiered pricing"},
		MarketAnalysis: MarketAnalysis{
			TargetMarket:    "Urban eco-conscious youth",
			TAM:             "$50000000000",
			SAM:             "$5000000000",
			SOM:             "$100000000",
			GrowthRate:      "15% CAGR due to rising demand for sustainable consumer products globally",
			Trends:          []string{"AI for sustainability", "Eco-lifestyle tracking"},
			Competitors:     []string{"Greenly", "Joro"},
			CustomerNeeds:   []string{"Actionable tips", "Progress tracking"},
			BarriersToEntry: []string{"Trust", "Accuracy", "Engagement"},
		},
	}
}
