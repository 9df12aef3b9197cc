package sqlinline

const QInsertUser = `--sql 9b5fad10-0894-488b-b43f-34bfa3ce8e40
insert into users (id, username, email, password_hash, role, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::text, now())
returning id, created_at;
`

const QSelectUserByID = `--sql 4e208e60-6261-402b-890d-ffec6302a35d
select id, username, email, password_hash, role, created_at
from users
where id = $1::uuid
limit 1;
`

const QSelectUserByUsername = `--sql 97eaa118-5d56-4407-a72c-80e657097168
select id, username, email, password_hash, role, created_at
from users
where username = $1::text
limit 1;
`

const QUsernameExists = `--sql 48a9c354-f020-4aea-bfed-38c2ff4da9f5
select exists(select 1 from users where username = $1::text);
`

const QEmailExists = `--sql eff2ccd9-16c5-42a1-9a6f-d46ee47dec0c
select exists(select 1 from users where email = $1::text);
`

// Constraint names raised on duplicate signups.
const (
	ConstraintUsersUsername = "users_username_key"
	ConstraintUsersEmail    = "users_email_key"
)
