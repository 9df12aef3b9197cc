package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"crowdfund/internal/domain"
	"crowdfund/internal/funding"
)

func TestContributionsCreateLinking(t *testing.T) {
	env := newTestEnv(t)
	owner := env.user(t, "asha", domain.UserRoleCreator)
	investor := env.user(t, "ravi", domain.UserRoleInvestor)
	acme := env.campaign(t, owner, "Acme", 1000)
	env.campaign(t, owner, "Twin", 10)
	env.campaign(t, owner, "Twin", 20)

	tests := []struct {
		name         string
		body         string
		wantCompany  string
		wantCampaign string
		wantInvestor string
	}{
		{"by unique company", `{"company":"Acme","amount":10}`, "Acme", acme.ID, "ravi"},
		{"by campaign id", `{"campaign_id":"` + acme.ID + `","company":"ignored","amount":10,"investor_name":"Ravi K"}`, "Acme", acme.ID, "Ravi K"},
		{"ambiguous company", `{"company":"Twin","amount":10}`, "Twin", "", "ravi"},
		{"unknown company", `{"company":"Nowhere","amount":0}`, "Nowhere", "", "ravi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			env.app.ContributionsCreate(rec, asUser(newRequest(http.MethodPost, "/v1/contributions", tt.body), investor))
			if rec.Code != http.StatusCreated {
				t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
			}
			got := decodeBody[domain.Contribution](t, rec)
			if got.Company != tt.wantCompany || got.InvestorName != tt.wantInvestor {
				t.Fatalf("got %+v", got)
			}
			campaignID := ""
			if got.CampaignID != nil {
				campaignID = *got.CampaignID
			}
			if campaignID != tt.wantCampaign {
				t.Fatalf("campaign_id = %q, want %q", campaignID, tt.wantCampaign)
			}
		})
	}
}

func TestContributionsCreateRejects(t *testing.T) {
	env := newTestEnv(t)
	investor := env.user(t, "ravi", domain.UserRoleInvestor)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"negative amount", `{"company":"Acme","amount":-1}`, http.StatusBadRequest},
		{"missing amount", `{"company":"Acme"}`, http.StatusBadRequest},
		{"amount above cap", `{"company":"Acme","amount":` + strconv.FormatInt(maxMoney+1, 10) + `}`, http.StatusBadRequest},
		{"max int64 amount", `{"company":"Acme","amount":9223372036854775807}`, http.StatusBadRequest},
		{"no company or campaign", `{"amount":5}`, http.StatusBadRequest},
		{"malformed campaign id", `{"campaign_id":"abc","amount":5}`, http.StatusBadRequest},
		{"unknown campaign id", `{"campaign_id":"7d1c1c6e-4a57-4f6b-9f0e-2f1f1b0a9c11","amount":5}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			env.app.ContributionsCreate(rec, asUser(newRequest(http.MethodPost, "/v1/contributions", tt.body), investor))
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (body=%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestContributionsUpdateRelinks(t *testing.T) {
	env := newTestEnv(t)
	owner := env.user(t, "asha", domain.UserRoleCreator)
	investor := env.user(t, "ravi", domain.UserRoleInvestor)
	beta := env.campaign(t, owner, "Beta", 100)

	rec := httptest.NewRecorder()
	env.app.ContributionsCreate(rec, asUser(newRequest(http.MethodPost, "/v1/contributions", `{"company":"Unknown","amount":10}`), investor))
	created := decodeBody[domain.Contribution](t, rec)
	if created.CampaignID != nil {
		t.Fatalf("expected unlinked contribution, got %v", *created.CampaignID)
	}

	rec = httptest.NewRecorder()
	req := withParam(asUser(newRequest(http.MethodPut, "/v1/contributions/"+created.ID, `{"company":"Beta","amount":40}`), investor), "id", created.ID)
	env.app.ContributionsUpdate(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d body=%s", rec.Code, rec.Body.String())
	}
	updated := decodeBody[domain.Contribution](t, rec)
	if updated.Amount != 40 || updated.CampaignID == nil || *updated.CampaignID != beta.ID {
		t.Fatalf("unexpected update %+v", updated)
	}

	rec = httptest.NewRecorder()
	env.app.ContributionsDelete(rec, withParam(newRequest(http.MethodDelete, "/v1/contributions/"+created.ID, ""), "id", created.ID))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	env.app.ContributionsDelete(rec, withParam(newRequest(http.MethodDelete, "/v1/contributions/"+created.ID, ""), "id", created.ID))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestContributionsAtCapKeepTotalsExact(t *testing.T) {
	env := newTestEnv(t)
	investor := env.user(t, "ravi", domain.UserRoleInvestor)
	body := `{"company":"Acme","amount":` + strconv.FormatInt(maxMoney, 10) + `}`
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		env.app.ContributionsCreate(rec, asUser(newRequest(http.MethodPost, "/v1/contributions", body), investor))
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
		}
	}

	rec := httptest.NewRecorder()
	env.app.InvestmentsSummary(rec, newRequest(http.MethodGet, "/v1/investments/summary", ""))
	got := decodeBody[[]funding.Entry](t, rec)
	if len(got) != 1 || got[0].Total != 3*maxMoney {
		t.Fatalf("summary = %+v, want %d", got, int64(3*maxMoney))
	}
}

func TestContributionsUpdateRejectsAmountAboveCap(t *testing.T) {
	env := newTestEnv(t)
	investor := env.user(t, "ravi", domain.UserRoleInvestor)
	env.contribute(t, "Acme", 10)
	all, _ := env.store.Contributions().ListAll(context.Background())
	id := all[0].ID

	rec := httptest.NewRecorder()
	req := withParam(asUser(newRequest(http.MethodPut, "/v1/contributions/"+id, `{"amount":9223372036854775807}`), investor), "id", id)
	env.app.ContributionsUpdate(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
