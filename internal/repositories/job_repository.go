package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/tuan204-dev/ttcs-be/internal/models"
)

// JobFilter narrows the recruiter-facing listing. Title matches as a
// case-insensitive substring; slices act as IN-sets.
type JobFilter struct {
	RecruiterID *uuid.UUID
	CompanyID   *uuid.UUID
	Title       string
	JobTypes    []models.JobTypeType
	Statuses    []models.JobStatusType
}

// PublicJobFilter narrows the public listing; status PUBLIC is implied.
type PublicJobFilter struct {
	Title     string
	MinSalary *int64
	MaxSalary *int64
	JobTypes  []models.JobTypeType
}

type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Job, error)
	Update(ctx context.Context, j *models.Job) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatusType) (*models.Job, error)
	List(ctx context.Context, f JobFilter) ([]*models.Job, error)
	ListPublic(ctx context.Context, f PublicJobFilter) ([]*models.Job, error)
}

type jobRepo struct {
	db DB
}

func NewJobRepository(db DB) JobRepository {
	return &jobRepo{db: db}
}

const baseSelectJob = `
    SELECT id, title, description, location, salary_min, salary_max,
           job_type, skills_required, responsibilities, requirements,
           benefits, recruiter_id, company_id, status,
           created_at, updated_at
    FROM jobs
`

func (r *jobRepo) Create(ctx context.Context, j *models.Job) error {
	location, skills, err := marshalJobJSON(j)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO jobs (
            id, title, description, location, salary_min, salary_max,
            job_type, skills_required, responsibilities, requirements,
            benefits, recruiter_id, company_id, status
        ) VALUES (
            $1,$2,$3,$4,$5,$6,
            $7,$8,$9,$10,
            $11,$12,$13,$14
        )
    `,
		j.ID, j.Title, j.Description, location, j.SalaryRange.Min, j.SalaryRange.Max,
		j.JobType, skills, j.Responsibilities, j.Requirements,
		j.Benefits, j.RecruiterID, j.CompanyID, j.Status,
	)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	row := r.db.QueryRow(ctx, baseSelectJob+" WHERE id=$1", id)
	return scanJob(row)
}

func (r *jobRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Job, error) {
	rows, err := r.db.Query(ctx, baseSelectJob+" WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *jobRepo) Update(ctx context.Context, j *models.Job) error {
	location, skills, err := marshalJobJSON(j)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
        UPDATE jobs
        SET title=$2, description=$3, location=$4, salary_min=$5,
            salary_max=$6, job_type=$7, skills_required=$8,
            responsibilities=$9, requirements=$10, benefits=$11,
            updated_at=NOW()
        WHERE id=$1
    `,
		j.ID, j.Title, j.Description, location, j.SalaryRange.Min,
		j.SalaryRange.Max, j.JobType, skills,
		j.Responsibilities, j.Requirements, j.Benefits,
	)
	return err
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatusType) (*models.Job, error) {
	row := r.db.QueryRow(ctx, `
        UPDATE jobs SET status=$2, updated_at=NOW()
        WHERE id=$1
        RETURNING id, title, description, location, salary_min, salary_max,
                  job_type, skills_required, responsibilities, requirements,
                  benefits, recruiter_id, company_id, status,
                  created_at, updated_at
    `, id, status)
	return scanJob(row)
}

func (r *jobRepo) List(ctx context.Context, f JobFilter) ([]*models.Job, error) {
	var (
		where []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.RecruiterID != nil {
		where = append(where, "recruiter_id = "+arg(*f.RecruiterID))
	}
	if f.CompanyID != nil {
		where = append(where, "company_id = "+arg(*f.CompanyID))
	}
	if f.Title != "" {
		where = append(where, "title ILIKE "+arg("%"+f.Title+"%"))
	}
	if len(f.JobTypes) > 0 {
		where = append(where, "job_type = ANY("+arg(f.JobTypes)+")")
	}
	if len(f.Statuses) > 0 {
		where = append(where, "status = ANY("+arg(f.Statuses)+")")
	}

	q := baseSelectJob
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *jobRepo) ListPublic(ctx context.Context, f PublicJobFilter) ([]*models.Job, error) {
	where := []string{"status = $1"}
	args := []interface{}{models.JobStatusPublic}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Title != "" {
		where = append(where, "title ILIKE "+arg("%"+f.Title+"%"))
	}
	if f.MinSalary != nil {
		where = append(where, "salary_min >= "+arg(*f.MinSalary))
	}
	if f.MaxSalary != nil {
		where = append(where, "salary_max <= "+arg(*f.MaxSalary))
	}
	if len(f.JobTypes) > 0 {
		where = append(where, "job_type = ANY("+arg(f.JobTypes)+")")
	}

	q := baseSelectJob + " WHERE " + strings.Join(where, " AND ") + " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func marshalJobJSON(j *models.Job) (location, skills []byte, err error) {
	location, err = json.Marshal(j.Location)
	if err != nil {
		return nil, nil, err
	}
	skills, err = json.Marshal(j.SkillsRequired)
	if err != nil {
		return nil, nil, err
	}
	return location, skills, nil
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	var location, skills []byte
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &location, &j.SalaryRange.Min, &j.SalaryRange.Max,
		&j.JobType, &skills, &j.Responsibilities, &j.Requirements,
		&j.Benefits, &j.RecruiterID, &j.CompanyID, &j.Status,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(location) > 0 {
		if err := json.Unmarshal(location, &j.Location); err != nil {
			return nil, err
		}
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &j.SkillsRequired); err != nil {
			return nil, err
		}
	}
	return &j, nil
}

func collectJobs(rows pgx.Rows) ([]*models.Job, error) {
	var out []*models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
