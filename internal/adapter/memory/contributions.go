package memory

import (
	"context"

	"crowdfund/internal/domain"
)

// ContributionRepository implements domain.ContributionRepository.
type ContributionRepository struct{ s *Store }

func (r *ContributionRepository) Create(ctx context.Context, contribution *domain.Contribution) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	contribution.ID = newID()
	contribution.CreatedAt = r.s.now()
	contribution.UpdatedAt = contribution.CreatedAt
	r.s.contributions[contribution.ID] = cloneContribution(*contribution)
	r.s.track(contribution.ID)
	return nil
}

func (r *ContributionRepository) GetByID(ctx context.Context, id string) (*domain.Contribution, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.contributions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c = cloneContribution(c)
	return &c, nil
}

func (r *ContributionRepository) ListAll(ctx context.Context) ([]domain.Contribution, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := make([]string, 0, len(r.s.contributions))
	for id := range r.s.contributions {
		ids = append(ids, id)
	}
	r.s.sortByInsertion(ids)
	items := make([]domain.Contribution, 0, len(ids))
	for _, id := range ids {
		items = append(items, cloneContribution(r.s.contributions[id]))
	}
	return items, nil
}

func (r *ContributionRepository) Update(ctx context.Context, contribution *domain.Contribution) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.contributions[contribution.ID]
	if !ok {
		return domain.ErrNotFound
	}
	contribution.CreatedAt = current.CreatedAt
	contribution.UpdatedAt = r.s.now()
	r.s.contributions[contribution.ID] = cloneContribution(*contribution)
	return nil
}

func (r *ContributionRepository) Delete(ctx context.Context, id string) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contributions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.contributions, id)
	delete(r.s.order, id)
	return nil
}

func (r *ContributionRepository) BackfillCampaignIDs(ctx context.Context, dryRun bool) (domain.BackfillReport, error) {
	if err := checkContext(ctx); err != nil {
		return domain.BackfillReport{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	byCompany := map[string][]string{}
	for id, c := range r.s.campaigns {
		byCompany[c.Company] = append(byCompany[c.Company], id)
	}

	var report domain.BackfillReport
	now := r.s.now()
	for id, c := range r.s.contributions {
		if c.CampaignID != nil {
			continue
		}
		switch candidates := byCompany[c.Company]; len(candidates) {
		case 0:
			report.Unmatched++
		case 1:
			report.Linked++
			if !dryRun {
				campaignID := candidates[0]
				c.CampaignID = &campaignID
				c.UpdatedAt = now
				r.s.contributions[id] = c
			}
		default:
			report.Ambiguous++
		}
	}
	return report, nil
}

func cloneContribution(c domain.Contribution) domain.Contribution {
	if c.CampaignID != nil {
		id := *c.CampaignID
		c.CampaignID = &id
	}
	return c
}

var _ domain.ContributionRepository = (*ContributionRepository)(nil)
