package app

import "context"

// InitSchema creates the tables on startup. Idempotent, so every
// instance can run it unconditionally.
func (a *App) InitSchema(ctx context.Context) error {
	schema := `
    CREATE TABLE IF NOT EXISTS workers (
        id UUID PRIMARY KEY,
        email TEXT NOT NULL UNIQUE,
        password_hash TEXT NOT NULL,
        first_name TEXT NOT NULL,
        last_name TEXT NOT NULL,
        phone TEXT NOT NULL DEFAULT '',
        gender TEXT NOT NULL DEFAULT 'UNKNOWN',
        location TEXT NOT NULL DEFAULT '',
        avatar TEXT NOT NULL DEFAULT '',
        education TEXT NOT NULL DEFAULT '',
        skills JSONB NOT NULL DEFAULT '[]'::jsonb,
        is_open_to_offer BOOLEAN NOT NULL DEFAULT FALSE,
        date_of_birth TIMESTAMPTZ,
        description TEXT NOT NULL DEFAULT '',
        career_orientation TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    );

    CREATE TABLE IF NOT EXISTS recruiters (
        id UUID PRIMARY KEY,
        email TEXT NOT NULL UNIQUE,
        password_hash TEXT NOT NULL,
        first_name TEXT NOT NULL,
        last_name TEXT NOT NULL,
        phone TEXT NOT NULL DEFAULT '',
        gender TEXT NOT NULL DEFAULT 'UNKNOWN',
        location TEXT NOT NULL DEFAULT '',
        avatar TEXT NOT NULL DEFAULT '',
        company_id UUID,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    );

    CREATE TABLE IF NOT EXISTS jobs (
        id UUID PRIMARY KEY,
        title TEXT NOT NULL,
        description TEXT NOT NULL,
        location JSONB NOT NULL DEFAULT '{}'::jsonb,
        salary_min BIGINT NOT NULL DEFAULT 0,
        salary_max BIGINT NOT NULL DEFAULT 0,
        job_type TEXT NOT NULL,
        skills_required JSONB NOT NULL DEFAULT '[]'::jsonb,
        responsibilities TEXT[] NOT NULL DEFAULT '{}',
        requirements TEXT[] NOT NULL DEFAULT '{}',
        benefits TEXT[] NOT NULL DEFAULT '{}',
        recruiter_id UUID NOT NULL REFERENCES recruiters(id),
        company_id UUID,
        status TEXT NOT NULL DEFAULT 'DRAFT',
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    );
    CREATE INDEX IF NOT EXISTS idx_jobs_recruiter ON jobs (recruiter_id);
    CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs (status);

    CREATE TABLE IF NOT EXISTS recruitings (
        id UUID PRIMARY KEY,
        job_id UUID NOT NULL REFERENCES jobs(id),
        worker_id UUID NOT NULL REFERENCES workers(id),
        progress TEXT NOT NULL DEFAULT 'APPLIED',
        messages JSONB NOT NULL DEFAULT '[]'::jsonb,
        last_message JSONB,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        UNIQUE (job_id, worker_id)
    );
    CREATE INDEX IF NOT EXISTS idx_recruitings_worker ON recruitings (worker_id);

    CREATE TABLE IF NOT EXISTS bookmarks (
        id UUID PRIMARY KEY,
        job_id UUID NOT NULL REFERENCES jobs(id),
        worker_id UUID NOT NULL REFERENCES workers(id),
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        UNIQUE (job_id, worker_id)
    );

    CREATE TABLE IF NOT EXISTS refresh_tokens (
        id UUID PRIMARY KEY,
        user_id UUID NOT NULL,
        role TEXT NOT NULL,
        token_hash TEXT NOT NULL,
        expires_at TIMESTAMPTZ NOT NULL,
        revoked BOOLEAN NOT NULL DEFAULT FALSE,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    );
    CREATE INDEX IF NOT EXISTS idx_refresh_tokens_hash ON refresh_tokens (token_hash);

    CREATE TABLE IF NOT EXISTS verify_tokens (
        id UUID PRIMARY KEY,
        email TEXT NOT NULL,
        role TEXT NOT NULL,
        token TEXT NOT NULL,
        expires_at TIMESTAMPTZ NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        UNIQUE (email, role)
    );
    `
	_, err := a.DB.Exec(ctx, schema)
	return err
}
