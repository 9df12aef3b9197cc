package domain

import "time"

// Contribution is a recorded investment toward a company name. CampaignID is
// set when the contribution could be attributed to exactly one campaign.
type Contribution struct {
	ID           string    `json:"id"`
	InvestorName string    `json:"investor_name"`
	Company      string    `json:"company"`
	CampaignID   *string   `json:"campaign_id"`
	Amount       int64     `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BackfillReport summarizes a campaign id backfill run.
type BackfillReport struct {
	Linked    int64
	Ambiguous int64
	Unmatched int64
}
