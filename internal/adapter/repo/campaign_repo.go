package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"crowdfund/internal/domain"
	"crowdfund/internal/infra"
	"crowdfund/internal/sqlinline"
)

// CampaignRepositoryPG implements domain.CampaignRepository using PostgreSQL.
type CampaignRepositoryPG struct {
	db infra.SQLExecutor
}

// NewCampaignRepository creates a new campaign repo.
func NewCampaignRepository(db infra.SQLExecutor) *CampaignRepositoryPG {
	return &CampaignRepositoryPG{db: db}
}

// Create inserts campaign and fills in its id and timestamps.
func (r *CampaignRepositoryPG) Create(ctx context.Context, campaign *domain.Campaign) error {
	row := r.db.QueryRow(ctx, sqlinline.QInsertCampaign,
		campaign.OwnerID,
		campaign.CreatorName,
		campaign.Company,
		campaign.Pitch,
		campaign.Goal,
	)
	if err := row.Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt); err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	var c domain.Campaign
	if err := scanCampaign(r.db.QueryRow(ctx, sqlinline.QSelectCampaignByID, id), &c); err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *CampaignRepositoryPG) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, sqlinline.QListCampaigns)
}

// ListByOwner returns the campaigns created by ownerID. A malformed owner id
// owns nothing.
func (r *CampaignRepositoryPG) ListByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	items, err := r.list(ctx, sqlinline.QListCampaignsByOwner, ownerID)
	if errors.Is(mapError(err), domain.ErrNotFound) {
		return []domain.Campaign{}, nil
	}
	return items, err
}

func (r *CampaignRepositoryPG) ListByCompany(ctx context.Context, company string) ([]domain.Campaign, error) {
	return r.list(ctx, sqlinline.QListCampaignsByCompany, company)
}

// Update writes company, pitch and goal; linked contributions follow a rename.
func (r *CampaignRepositoryPG) Update(ctx context.Context, campaign *domain.Campaign) error {
	row := r.db.QueryRow(ctx, sqlinline.QUpdateCampaign, campaign.ID, campaign.Company, campaign.Pitch, campaign.Goal)
	if err := row.Scan(&campaign.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *CampaignRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, sqlinline.QDeleteCampaign, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CampaignRepositoryPG) list(ctx context.Context, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Campaign{}
	for rows.Next() {
		var c domain.Campaign
		if err := scanCampaign(rows, &c); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanCampaign(row pgx.Row, c *domain.Campaign) error {
	return row.Scan(&c.ID, &c.OwnerID, &c.CreatorName, &c.Company, &c.Pitch, &c.Goal, &c.CreatedAt, &c.UpdatedAt)
}
