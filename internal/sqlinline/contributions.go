package sqlinline

const QInsertContribution = `--sql 93450f72-bc9a-47ec-87f6-16b3376c2ed3
insert into contributions (id, investor_name, company, campaign_id, amount, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, nullif($3::text, '')::uuid, $4::bigint, now(), now())
returning id, created_at, updated_at;
`

const QSelectContributionByID = `--sql eba5852c-5b51-48b7-8914-99114027dd8d
select id, investor_name, company, campaign_id, amount, created_at, updated_at
from contributions
where id = $1::uuid
limit 1;
`

const QListContributions = `--sql a5f810da-b5ce-4de3-9c4c-d849c812c9e0
select id, investor_name, company, campaign_id, amount, created_at, updated_at
from contributions
order by created_at, id;
`

const QUpdateContribution = `--sql 57306d38-6e91-41b6-9c77-1680dbb889db
update contributions
set investor_name = $2::text,
    company = $3::text,
    campaign_id = nullif($4::text, '')::uuid,
    amount = $5::bigint,
    updated_at = now()
where id = $1::uuid
returning updated_at;
`

const QDeleteContribution = `--sql 9306199d-e0f1-40d8-a61e-5a892cba7f16
delete from contributions
where id = $1::uuid;
`

// QBackfillCampaignIDs links unlinked contributions whose company names
// exactly one campaign. $1 = dry run.
const QBackfillCampaignIDs = `--sql 6d6f89ae-6b46-46a7-8a92-bcc2e9e8297c
with matches as (
    select c.id,
           (select array_agg(p.id) from campaigns p where p.company = c.company) as candidates
    from contributions c
    where c.campaign_id is null
),
linked as (
    update contributions t
    set campaign_id = m.candidates[1],
        updated_at = now()
    from matches m
    where t.id = m.id
      and cardinality(m.candidates) = 1
      and not $1::bool
    returning t.id
)
select
    count(*) filter (where cardinality(candidates) = 1) as linkable,
    count(*) filter (where cardinality(candidates) > 1) as ambiguous,
    count(*) filter (where candidates is null) as unmatched
from matches;
`
