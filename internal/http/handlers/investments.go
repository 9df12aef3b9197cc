package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/message"

	"crowdfund/internal/domain"
	"crowdfund/internal/funding"
	"crowdfund/internal/middleware"
)

type campaignProgressDTO struct {
	domain.Campaign
	Raised         int64   `json:"raised"`
	Percent        float64 `json:"percent"`
	PercentDisplay string  `json:"percent_display"`
	RaisedDisplay  string  `json:"raised_display"`
	GoalDisplay    string  `json:"goal_display"`
}

type portfolioDTO struct {
	funding.Portfolio
	TotalGoalDisplay   string `json:"total_goal_display"`
	TotalRaisedDisplay string `json:"total_raised_display"`
}

type progressResponse struct {
	Locale    string                `json:"locale"`
	Currency  string                `json:"currency"`
	Campaigns []campaignProgressDTO `json:"campaigns"`
	Portfolio portfolioDTO          `json:"portfolio"`
}

// InvestmentsSummary returns the raised total of every company that has
// received contributions.
func (a *App) InvestmentsSummary(w http.ResponseWriter, r *http.Request) {
	contributions, err := a.Contributions.ListAll(r.Context())
	if err != nil {
		a.fail(w, r, err, "load investments")
		return
	}
	a.json(w, http.StatusOK, funding.SummarizeAll(contributions).Entries())
}

// InvestmentsForCreator scopes the summary to companies the user runs
// campaigns for.
func (a *App) InvestmentsForCreator(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaigns, err := a.Campaigns.ListByOwner(ctx, chi.URLParam(r, "userID"))
	if err != nil {
		a.fail(w, r, err, "load campaigns")
		return
	}
	if len(campaigns) == 0 {
		a.json(w, http.StatusOK, []funding.Entry{})
		return
	}
	contributions, err := a.Contributions.ListAll(ctx)
	if err != nil {
		a.fail(w, r, err, "load investments")
		return
	}
	summary := funding.SummarizeForOwner(contributions, funding.CompaniesOf(campaigns))
	a.json(w, http.StatusOK, summary.Entries())
}

// CreatorDashboard reports progress for the campaigns one user owns.
func (a *App) CreatorDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaigns, err := a.Campaigns.ListByOwner(ctx, chi.URLParam(r, "userID"))
	if err != nil {
		a.fail(w, r, err, "load campaigns")
		return
	}
	summary := funding.Summary{}
	if len(campaigns) > 0 {
		contributions, err := a.Contributions.ListAll(ctx)
		if err != nil {
			a.fail(w, r, err, "load investments")
			return
		}
		summary = funding.SummarizeForOwner(contributions, funding.CompaniesOf(campaigns))
	}
	a.json(w, http.StatusOK, a.progressResponse(r, campaigns, summary))
}

// Marketplace reports progress for every campaign.
func (a *App) Marketplace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaigns, err := a.Campaigns.ListAll(ctx)
	if err != nil {
		a.fail(w, r, err, "load campaigns")
		return
	}
	contributions, err := a.Contributions.ListAll(ctx)
	if err != nil {
		a.fail(w, r, err, "load investments")
		return
	}
	a.json(w, http.StatusOK, a.progressResponse(r, campaigns, funding.SummarizeAll(contributions)))
}

func (a *App) progressResponse(r *http.Request, campaigns []domain.Campaign, summary funding.Summary) progressResponse {
	locale := middleware.LocaleFromContext(r.Context())
	p := printerFor(locale)

	items := make([]campaignProgressDTO, 0, len(campaigns))
	for _, cp := range funding.Progress(campaigns, summary) {
		items = append(items, a.progressDTO(p, cp))
	}
	portfolio := funding.PortfolioOf(campaigns, summary)
	return progressResponse{
		Locale:    locale,
		Currency:  a.Currency.String(),
		Campaigns: items,
		Portfolio: portfolioDTO{
			Portfolio:          portfolio,
			TotalGoalDisplay:   formatMoney(p, a.Currency, portfolio.TotalGoal),
			TotalRaisedDisplay: formatMoney(p, a.Currency, portfolio.TotalRaised),
		},
	}
}

func (a *App) progressDTO(p *message.Printer, cp funding.CampaignProgress) campaignProgressDTO {
	return campaignProgressDTO{
		Campaign:       cp.Campaign,
		Raised:         cp.Raised,
		Percent:        cp.Percent,
		PercentDisplay: formatPercent(p, cp.Percent),
		RaisedDisplay:  formatMoney(p, a.Currency, cp.Raised),
		GoalDisplay:    formatMoney(p, a.Currency, cp.Campaign.Goal),
	}
}
