package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/domain"
)

type campaignCreateRequest struct {
	Company     string `json:"company" validate:"required,max=200"`
	Pitch       string `json:"pitch" validate:"max=5000"`
	Goal        *int64 `json:"goal" validate:"required,gte=0,lte=1000000000000"`
	CreatorName string `json:"creator_name" validate:"max=200"`
}

type campaignUpdateRequest struct {
	Company *string `json:"company" validate:"omitempty,min=1,max=200"`
	Pitch   *string `json:"pitch" validate:"omitempty,max=5000"`
	Goal    *int64  `json:"goal" validate:"omitempty,gte=0,lte=1000000000000"`
}

func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Campaigns.ListAll(r.Context())
	if err != nil {
		a.fail(w, r, err, "load campaigns")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) CampaignsByOwner(w http.ResponseWriter, r *http.Request) {
	items, err := a.Campaigns.ListByOwner(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		a.fail(w, r, err, "load campaigns")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	c, err := a.Campaigns.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err, "load campaign")
		return
	}
	a.json(w, http.StatusOK, c)
}

func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := a.currentUser(r)
	if !ok {
		a.fail(w, r, domain.ErrUnauthorized, "create campaign")
		return
	}
	var req campaignCreateRequest
	if !a.decode(w, r, &req) {
		return
	}
	creatorName := req.CreatorName
	if creatorName == "" {
		creatorName = p.Username
	}
	c := &domain.Campaign{
		OwnerID:     p.UserID,
		CreatorName: creatorName,
		Company:     req.Company,
		Pitch:       req.Pitch,
		Goal:        *req.Goal,
	}
	if err := a.Campaigns.Create(r.Context(), c); err != nil {
		a.fail(w, r, err, "create campaign")
		return
	}
	a.json(w, http.StatusCreated, c)
}

func (a *App) CampaignsUpdate(w http.ResponseWriter, r *http.Request) {
	var req campaignUpdateRequest
	if !a.decode(w, r, &req) {
		return
	}
	c, ok := a.ownedCampaign(w, r)
	if !ok {
		return
	}
	if req.Company != nil {
		c.Company = *req.Company
	}
	if req.Pitch != nil {
		c.Pitch = *req.Pitch
	}
	if req.Goal != nil {
		c.Goal = *req.Goal
	}
	if err := a.Campaigns.Update(r.Context(), c); err != nil {
		a.fail(w, r, err, "update campaign")
		return
	}
	a.json(w, http.StatusOK, c)
}

func (a *App) CampaignsDelete(w http.ResponseWriter, r *http.Request) {
	c, ok := a.ownedCampaign(w, r)
	if !ok {
		return
	}
	if err := a.Campaigns.Delete(r.Context(), c.ID); err != nil {
		a.fail(w, r, err, "delete campaign")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownedCampaign loads the {id} campaign and checks the caller owns it.
func (a *App) ownedCampaign(w http.ResponseWriter, r *http.Request) (*domain.Campaign, bool) {
	c, err := a.Campaigns.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err, "load campaign")
		return nil, false
	}
	if !c.OwnedBy(a.currentUserID(r)) {
		a.fail(w, r, domain.ErrForbidden, "load campaign")
		return nil, false
	}
	return c, true
}
