package domain

import "context"

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
}

// CampaignRepository handles campaign persistence.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *Campaign) error
	GetByID(ctx context.Context, id string) (*Campaign, error)
	ListAll(ctx context.Context) ([]Campaign, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Campaign, error)
	ListByCompany(ctx context.Context, company string) ([]Campaign, error)
	// Update persists company, pitch and goal. Contributions linked by
	// campaign id follow a company rename.
	Update(ctx context.Context, campaign *Campaign) error
	Delete(ctx context.Context, id string) error
}

// ContributionRepository handles contribution persistence.
type ContributionRepository interface {
	Create(ctx context.Context, contribution *Contribution) error
	GetByID(ctx context.Context, id string) (*Contribution, error)
	ListAll(ctx context.Context) ([]Contribution, error)
	Update(ctx context.Context, contribution *Contribution) error
	Delete(ctx context.Context, id string) error
	// BackfillCampaignIDs links unlinked contributions to the single
	// campaign carrying their company name. With dryRun nothing is written.
	BackfillCampaignIDs(ctx context.Context, dryRun bool) (BackfillReport, error)
}
