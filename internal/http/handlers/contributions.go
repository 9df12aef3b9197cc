package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/domain"
)

type contributionCreateRequest struct {
	CampaignID   string `json:"campaign_id" validate:"omitempty,uuid"`
	Company      string `json:"company" validate:"required_without=CampaignID,max=200"`
	InvestorName string `json:"investor_name" validate:"max=200"`
	Amount       *int64 `json:"amount" validate:"required,gte=0,lte=1000000000000"`
}

type contributionUpdateRequest struct {
	InvestorName *string `json:"investor_name" validate:"omitempty,min=1,max=200"`
	Company      *string `json:"company" validate:"omitempty,min=1,max=200"`
	Amount       *int64  `json:"amount" validate:"omitempty,gte=0,lte=1000000000000"`
}

func (a *App) ContributionsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Contributions.ListAll(r.Context())
	if err != nil {
		a.fail(w, r, err, "load contributions")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) ContributionsCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := a.currentUser(r)
	if !ok {
		a.fail(w, r, domain.ErrUnauthorized, "create contribution")
		return
	}
	var req contributionCreateRequest
	if !a.decode(w, r, &req) {
		return
	}
	ctx := r.Context()
	c := &domain.Contribution{
		InvestorName: req.InvestorName,
		Company:      req.Company,
		Amount:       *req.Amount,
	}
	if c.InvestorName == "" {
		c.InvestorName = p.Username
	}
	if req.CampaignID != "" {
		campaign, err := a.Campaigns.GetByID(ctx, req.CampaignID)
		if err != nil {
			a.fail(w, r, err, "load campaign")
			return
		}
		c.Company = campaign.Company
		c.CampaignID = &campaign.ID
	} else if err := a.linkCampaign(ctx, c); err != nil {
		a.fail(w, r, err, "resolve campaign")
		return
	}
	if err := a.Contributions.Create(ctx, c); err != nil {
		a.fail(w, r, err, "create contribution")
		return
	}
	a.json(w, http.StatusCreated, c)
}

func (a *App) ContributionsUpdate(w http.ResponseWriter, r *http.Request) {
	var req contributionUpdateRequest
	if !a.decode(w, r, &req) {
		return
	}
	ctx := r.Context()
	c, err := a.Contributions.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err, "load contribution")
		return
	}
	if req.InvestorName != nil {
		c.InvestorName = *req.InvestorName
	}
	if req.Amount != nil {
		c.Amount = *req.Amount
	}
	if req.Company != nil && *req.Company != c.Company {
		c.Company = *req.Company
		if err := a.linkCampaign(ctx, c); err != nil {
			a.fail(w, r, err, "resolve campaign")
			return
		}
	}
	if err := a.Contributions.Update(ctx, c); err != nil {
		a.fail(w, r, err, "update contribution")
		return
	}
	a.json(w, http.StatusOK, c)
}

func (a *App) ContributionsDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Contributions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.fail(w, r, err, "delete contribution")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// linkCampaign sets CampaignID when exactly one campaign carries the
// contribution's company name and clears it otherwise.
func (a *App) linkCampaign(ctx context.Context, c *domain.Contribution) error {
	matches, err := a.Campaigns.ListByCompany(ctx, c.Company)
	if err != nil {
		return err
	}
	c.CampaignID = nil
	if len(matches) == 1 {
		id := matches[0].ID
		c.CampaignID = &id
	}
	return nil
}
