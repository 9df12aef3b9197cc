package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"crowdfund/internal/domain"
	"crowdfund/internal/infra"
	"crowdfund/internal/sqlinline"
)

// ContributionRepositoryPG implements domain.ContributionRepository using PostgreSQL.
type ContributionRepositoryPG struct {
	db infra.SQLExecutor
}

// NewContributionRepository creates a new contribution repo.
func NewContributionRepository(db infra.SQLExecutor) *ContributionRepositoryPG {
	return &ContributionRepositoryPG{db: db}
}

// Create inserts contribution and fills in its id and timestamps.
func (r *ContributionRepositoryPG) Create(ctx context.Context, contribution *domain.Contribution) error {
	row := r.db.QueryRow(ctx, sqlinline.QInsertContribution,
		contribution.InvestorName,
		contribution.Company,
		campaignIDArg(contribution.CampaignID),
		contribution.Amount,
	)
	if err := row.Scan(&contribution.ID, &contribution.CreatedAt, &contribution.UpdatedAt); err != nil {
		return fmt.Errorf("insert contribution: %w", err)
	}
	return nil
}

func (r *ContributionRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Contribution, error) {
	var c domain.Contribution
	if err := scanContribution(r.db.QueryRow(ctx, sqlinline.QSelectContributionByID, id), &c); err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

// ListAll returns every contribution, the snapshot summaries are computed from.
func (r *ContributionRepositoryPG) ListAll(ctx context.Context) ([]domain.Contribution, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListContributions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Contribution{}
	for rows.Next() {
		var c domain.Contribution
		if err := scanContribution(rows, &c); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ContributionRepositoryPG) Update(ctx context.Context, contribution *domain.Contribution) error {
	row := r.db.QueryRow(ctx, sqlinline.QUpdateContribution,
		contribution.ID,
		contribution.InvestorName,
		contribution.Company,
		campaignIDArg(contribution.CampaignID),
		contribution.Amount,
	)
	if err := row.Scan(&contribution.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *ContributionRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, sqlinline.QDeleteContribution, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContributionRepositoryPG) BackfillCampaignIDs(ctx context.Context, dryRun bool) (domain.BackfillReport, error) {
	var report domain.BackfillReport
	row := r.db.QueryRow(ctx, sqlinline.QBackfillCampaignIDs, dryRun)
	if err := row.Scan(&report.Linked, &report.Ambiguous, &report.Unmatched); err != nil {
		return domain.BackfillReport{}, fmt.Errorf("backfill campaign ids: %w", err)
	}
	return report, nil
}

func campaignIDArg(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

func scanContribution(row pgx.Row, c *domain.Contribution) error {
	return row.Scan(&c.ID, &c.InvestorName, &c.Company, &c.CampaignID, &c.Amount, &c.CreatedAt, &c.UpdatedAt)
}
