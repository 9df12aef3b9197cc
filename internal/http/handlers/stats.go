package handlers

import (
	"net/http"

	"crowdfund/internal/funding"
)

// StatsSummary reports platform-wide counts and totals.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaigns, err := a.Campaigns.ListAll(ctx)
	if err != nil {
		a.fail(w, r, err, "load stats")
		return
	}
	contributions, err := a.Contributions.ListAll(ctx)
	if err != nil {
		a.fail(w, r, err, "load stats")
		return
	}
	summary := funding.SummarizeAll(contributions)
	portfolio := funding.PortfolioOf(campaigns, summary)
	a.json(w, http.StatusOK, map[string]any{
		"campaigns":        portfolio.Campaigns,
		"active_campaigns": portfolio.ActiveCampaigns,
		"funded_campaigns": portfolio.FundedCampaigns,
		"contributions":    len(contributions),
		"companies_funded": len(summary),
		"total_goal":       portfolio.TotalGoal,
		"total_raised":     portfolio.TotalRaised,
	})
}
