package memory

import (
	"context"

	"crowdfund/internal/domain"
)

// CampaignRepository implements domain.CampaignRepository.
type CampaignRepository struct{ s *Store }

func (r *CampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	campaign.ID = newID()
	campaign.CreatedAt = r.s.now()
	campaign.UpdatedAt = campaign.CreatedAt
	r.s.campaigns[campaign.ID] = *campaign
	r.s.track(campaign.ID)
	return nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.campaigns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, func(domain.Campaign) bool { return true })
}

func (r *CampaignRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	return r.list(ctx, func(c domain.Campaign) bool { return c.OwnerID == ownerID })
}

func (r *CampaignRepository) ListByCompany(ctx context.Context, company string) ([]domain.Campaign, error) {
	return r.list(ctx, func(c domain.Campaign) bool { return c.Company == company })
}

// Update writes company, pitch and goal. Contributions linked to the
// campaign take the new company name.
func (r *CampaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.campaigns[campaign.ID]
	if !ok {
		return domain.ErrNotFound
	}
	now := r.s.now()
	current.Company = campaign.Company
	current.Pitch = campaign.Pitch
	current.Goal = campaign.Goal
	current.UpdatedAt = now
	r.s.campaigns[current.ID] = current
	campaign.UpdatedAt = now

	for id, c := range r.s.contributions {
		if c.CampaignID != nil && *c.CampaignID == current.ID && c.Company != current.Company {
			c.Company = current.Company
			c.UpdatedAt = now
			r.s.contributions[id] = c
		}
	}
	return nil
}

// Delete removes the campaign and unlinks its contributions.
func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.campaigns[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.campaigns, id)
	delete(r.s.order, id)
	for cid, c := range r.s.contributions {
		if c.CampaignID != nil && *c.CampaignID == id {
			c.CampaignID = nil
			r.s.contributions[cid] = c
		}
	}
	return nil
}

func (r *CampaignRepository) list(ctx context.Context, keep func(domain.Campaign) bool) ([]domain.Campaign, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := make([]string, 0, len(r.s.campaigns))
	for id, c := range r.s.campaigns {
		if keep(c) {
			ids = append(ids, id)
		}
	}
	r.s.sortByInsertion(ids)
	items := make([]domain.Campaign, 0, len(ids))
	for _, id := range ids {
		items = append(items, r.s.campaigns[id])
	}
	return items, nil
}

var _ domain.CampaignRepository = (*CampaignRepository)(nil)
