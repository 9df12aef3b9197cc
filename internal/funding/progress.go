package funding

import (
	"math"

	"crowdfund/internal/domain"
)

// ProgressPercent returns raised as a percentage of goal in [0, 100].
// Nothing raised is 0% whatever the goal; a non-positive goal with money
// raised counts as fully funded.
func ProgressPercent(raised, goal int64) float64 {
	if raised <= 0 {
		return 0
	}
	if goal <= 0 {
		return 100
	}
	return math.Min(100, 100*float64(raised)/float64(goal))
}

// CampaignProgress pairs a campaign with what it has raised.
type CampaignProgress struct {
	Campaign domain.Campaign `json:"campaign"`
	Raised   int64           `json:"raised"`
	Percent  float64         `json:"percent"`
}

// Progress computes progress for each campaign, keeping the input order.
func Progress(campaigns []domain.Campaign, summary Summary) []CampaignProgress {
	out := make([]CampaignProgress, 0, len(campaigns))
	for _, c := range campaigns {
		raised := summary.Raised(c.Company)
		out = append(out, CampaignProgress{
			Campaign: c,
			Raised:   raised,
			Percent:  ProgressPercent(raised, c.Goal),
		})
	}
	return out
}

// Portfolio holds dashboard-wide statistics for a set of campaigns.
type Portfolio struct {
	Campaigns       int   `json:"campaigns"`
	ActiveCampaigns int   `json:"active_campaigns"`
	FundedCampaigns int   `json:"funded_campaigns"`
	TotalGoal       int64 `json:"total_goal"`
	TotalRaised     int64 `json:"total_raised"`
}

// PortfolioOf aggregates campaigns against summary. TotalRaised is taken from
// the summary as a whole, so contributions to companies outside campaigns
// still count when an unscoped summary is passed.
func PortfolioOf(campaigns []domain.Campaign, summary Summary) Portfolio {
	p := Portfolio{
		Campaigns:   len(campaigns),
		TotalRaised: TotalRaised(summary),
	}
	for _, c := range campaigns {
		p.TotalGoal += c.Goal
		if c.Goal > 0 {
			p.ActiveCampaigns++
		}
		if ProgressPercent(summary.Raised(c.Company), c.Goal) >= 100 {
			p.FundedCampaigns++
		}
	}
	return p
}
