package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/tuan204-dev/ttcs-be/internal/models"
	"github.com/tuan204-dev/ttcs-be/internal/repositories"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

// In-memory repository fakes. They honor the same contracts as the
// pgx-backed implementations: nil on missing rows, utils.ErrConflict
// on unique violations.

type fakeWorkerRepo struct {
	mu      sync.Mutex
	workers map[uuid.UUID]*models.Worker
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[uuid.UUID]*models.Worker)}
}

func (f *fakeWorkerRepo) Create(_ context.Context, w *models.Worker) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.workers {
		if existing.Email == w.Email {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	cp := *w
	f.workers[w.ID] = &cp
	return nil
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.workers[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWorkerRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*models.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Worker
	for _, id := range ids {
		if w, ok := f.workers[id]; ok {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeWorkerRepo) GetByEmail(_ context.Context, email string) (*models.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.workers {
		if w.Email == email {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkerRepo) Update(_ context.Context, w *models.Worker) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *w
	f.workers[w.ID] = &cp
	return nil
}

type fakeRecruiterRepo struct {
	mu         sync.Mutex
	recruiters map[uuid.UUID]*models.Recruiter
}

func newFakeRecruiterRepo() *fakeRecruiterRepo {
	return &fakeRecruiterRepo{recruiters: make(map[uuid.UUID]*models.Recruiter)}
}

func (f *fakeRecruiterRepo) Create(_ context.Context, rec *models.Recruiter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.recruiters {
		if existing.Email == rec.Email {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	cp := *rec
	f.recruiters[rec.ID] = &cp
	return nil
}

func (f *fakeRecruiterRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Recruiter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recruiters[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeRecruiterRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*models.Recruiter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Recruiter
	for _, id := range ids {
		if rec, ok := f.recruiters[id]; ok {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRecruiterRepo) GetByEmail(_ context.Context, email string) (*models.Recruiter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.recruiters {
		if rec.Email == email {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*models.Job)}
}

func (f *fakeJobRepo) Create(_ context.Context, j *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *j
	f.jobs[j.ID] = &cp
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Job
	for _, id := range ids {
		if j, ok := f.jobs[id]; ok {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Update(_ context.Context, j *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[j.ID]; !ok {
		return utils.ErrNotFound
	}
	cp := *j
	f.jobs[j.ID] = &cp
	return nil
}

func (f *fakeJobRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.JobStatusType) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	j.Status = status
	cp := *j
	return &cp, nil
}

func (f *fakeJobRepo) List(_ context.Context, filter repositories.JobFilter) ([]*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Job
	for _, j := range f.jobs {
		if filter.RecruiterID != nil && j.RecruiterID != *filter.RecruiterID {
			continue
		}
		if filter.CompanyID != nil && (j.CompanyID == nil || *j.CompanyID != *filter.CompanyID) {
			continue
		}
		cp := *j
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeJobRepo) ListPublic(_ context.Context, _ repositories.PublicJobFilter) ([]*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Job
	for _, j := range f.jobs {
		if j.Status != models.JobStatusPublic {
			continue
		}
		cp := *j
		out = append(out, &cp)
	}
	return out, nil
}

type fakeRecruitingRepo struct {
	mu          sync.Mutex
	recruitings map[uuid.UUID]*models.Recruiting
}

func newFakeRecruitingRepo() *fakeRecruitingRepo {
	return &fakeRecruitingRepo{recruitings: make(map[uuid.UUID]*models.Recruiting)}
}

func copyRecruiting(rec *models.Recruiting) *models.Recruiting {
	cp := *rec
	cp.Messages = append([]models.Message(nil), rec.Messages...)
	if rec.LastMessage != nil {
		m := *rec.LastMessage
		cp.LastMessage = &m
	}
	return &cp
}

func (f *fakeRecruitingRepo) Create(_ context.Context, rec *models.Recruiting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.recruitings {
		if existing.JobID == rec.JobID && existing.WorkerID == rec.WorkerID {
			return utils.ErrConflict
		}
	}
	f.recruitings[rec.ID] = copyRecruiting(rec)
	return nil
}

func (f *fakeRecruitingRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Recruiting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recruitings[id]
	if !ok {
		return nil, nil
	}
	return copyRecruiting(rec), nil
}

func (f *fakeRecruitingRepo) ListByWorkerID(_ context.Context, workerID uuid.UUID) ([]*models.Recruiting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Recruiting
	for _, rec := range f.recruitings {
		if rec.WorkerID == workerID {
			cp := copyRecruiting(rec)
			cp.Messages = nil
			out = append(out, cp)
		}
	}
	return out, nil
}

func (f *fakeRecruitingRepo) ListByJobID(_ context.Context, jobID uuid.UUID) ([]*models.Recruiting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Recruiting
	for _, rec := range f.recruitings {
		if rec.JobID == jobID {
			cp := copyRecruiting(rec)
			cp.Messages = nil
			out = append(out, cp)
		}
	}
	return out, nil
}

func (f *fakeRecruitingRepo) UpdateProgress(_ context.Context, id uuid.UUID, progress models.RecruitingProgress) (*models.Recruiting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recruitings[id]
	if !ok {
		return nil, nil
	}
	rec.Progress = progress
	return copyRecruiting(rec), nil
}

func (f *fakeRecruitingRepo) AppendMessage(_ context.Context, id uuid.UUID, msg models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recruitings[id]
	if !ok {
		return utils.ErrNotFound
	}
	rec.Messages = append(rec.Messages, msg)
	m := msg
	rec.LastMessage = &m
	return nil
}

type fakeBookmarkRepo struct {
	mu        sync.Mutex
	bookmarks []*models.Bookmark
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{}
}

func (f *fakeBookmarkRepo) Create(_ context.Context, b *models.Bookmark) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.bookmarks {
		if existing.JobID == b.JobID && existing.WorkerID == b.WorkerID {
			return utils.ErrConflict
		}
	}
	cp := *b
	f.bookmarks = append(f.bookmarks, &cp)
	return nil
}

func (f *fakeBookmarkRepo) DeleteByJobAndWorker(_ context.Context, jobID, workerID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.bookmarks {
		if b.JobID == jobID && b.WorkerID == workerID {
			f.bookmarks = append(f.bookmarks[:i], f.bookmarks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookmarkRepo) ListByWorkerID(_ context.Context, workerID uuid.UUID) ([]*models.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Bookmark
	for _, b := range f.bookmarks {
		if b.WorkerID == workerID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (f *fakeRefreshTokenRepo) Create(_ context.Context, rt *models.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rt
	f.tokens[rt.Token] = &cp
	return nil
}

func (f *fakeRefreshTokenRepo) GetByToken(_ context.Context, raw string, role models.RoleType) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rt, ok := f.tokens[raw]
	if !ok || rt.Role != role {
		return nil, nil
	}
	cp := *rt
	return &cp, nil
}

func (f *fakeRefreshTokenRepo) Revoke(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rt := range f.tokens {
		if rt.ID == id {
			rt.Revoked = true
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeRefreshTokenRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for raw, rt := range f.tokens {
		if rt.ID == id {
			delete(f.tokens, raw)
			return nil
		}
	}
	return nil
}

type fakeVerifyTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.VerifyToken
}

func newFakeVerifyTokenRepo() *fakeVerifyTokenRepo {
	return &fakeVerifyTokenRepo{tokens: make(map[string]*models.VerifyToken)}
}

func (f *fakeVerifyTokenRepo) Upsert(_ context.Context, vt *models.VerifyToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, existing := range f.tokens {
		if existing.Email == vt.Email && existing.Role == vt.Role {
			delete(f.tokens, token)
		}
	}
	cp := *vt
	f.tokens[vt.Token] = &cp
	return nil
}

func (f *fakeVerifyTokenRepo) GetByToken(_ context.Context, token string, role models.RoleType) (*models.VerifyToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vt, ok := f.tokens[token]
	if !ok || vt.Role != role {
		return nil, nil
	}
	cp := *vt
	return &cp, nil
}

func (f *fakeVerifyTokenRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, vt := range f.tokens {
		if vt.ID == id {
			delete(f.tokens, token)
			return nil
		}
	}
	return nil
}

type fakeMailService struct {
	mu    sync.Mutex
	sent  []string
	links []string
}

func (f *fakeMailService) SendVerifyEmail(_ context.Context, toEmail, registerLink string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, toEmail)
	f.links = append(f.links, registerLink)
	return nil
}
