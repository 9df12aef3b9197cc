package sqlinline

const QInsertCampaign = `--sql 805d894c-c7b5-41f5-a3d6-f6cc63e91228
insert into campaigns (id, owner_id, creator_name, company, pitch, goal, created_at, updated_at)
values (gen_random_uuid(), $1::uuid, $2::text, $3::text, $4::text, $5::bigint, now(), now())
returning id, created_at, updated_at;
`

const QSelectCampaignByID = `--sql a23121ba-6887-480c-8690-4a6b1206c511
select id, owner_id, creator_name, company, pitch, goal, created_at, updated_at
from campaigns
where id = $1::uuid
limit 1;
`

const QListCampaigns = `--sql a136f059-e0ff-4170-8ece-c48cf76a2db8
select id, owner_id, creator_name, company, pitch, goal, created_at, updated_at
from campaigns
order by created_at, id;
`

const QListCampaignsByOwner = `--sql 3821feb4-3723-462a-992a-45a899df7184
select id, owner_id, creator_name, company, pitch, goal, created_at, updated_at
from campaigns
where owner_id = $1::uuid
order by created_at, id;
`

const QListCampaignsByCompany = `--sql 0341e32c-7a2e-4d5c-9c82-2ae55566ed56
select id, owner_id, creator_name, company, pitch, goal, created_at, updated_at
from campaigns
where company = $1::text
order by created_at, id;
`

// QUpdateCampaign carries a company rename over to contributions linked by id.
const QUpdateCampaign = `--sql a94f00d8-b955-4abd-abe7-89351bd88fb6
with updated as (
    update campaigns
    set company = $2::text,
        pitch = $3::text,
        goal = $4::bigint,
        updated_at = now()
    where id = $1::uuid
    returning id, company, updated_at
),
renamed as (
    update contributions c
    set company = u.company,
        updated_at = now()
    from updated u
    where c.campaign_id = u.id
      and c.company <> u.company
    returning c.id
)
select updated_at from updated;
`

const QDeleteCampaign = `--sql ea3c2d53-0b6b-433d-be53-dda86b3231d3
delete from campaigns
where id = $1::uuid;
`
