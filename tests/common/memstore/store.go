//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for use-case tests.
// It follows the SQL in internal/infra/sqlc/queries closely enough for the
// command, dispatcher and sweeper code to observe the same outcomes.
package memstore

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"recipe-scheduler/internal/domain/schedule"
	"recipe-scheduler/internal/infra"
	sqlc "recipe-scheduler/internal/infra/sqlc/generated"
	"recipe-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type Job struct {
	shared.ReminderJob
	SentAt    *time.Time
	UpdatedAt time.Time
}

type device struct {
	userID    uuid.UUID
	platform  shared.DevicePlatform
	updatedAt time.Time
}

type state struct {
	schedules map[uuid.UUID]shared.ScheduleSnapshot
	jobs      map[uuid.UUID]Job
	devices   map[string]device
}

func (s state) clone() state {
	c := state{
		schedules: make(map[uuid.UUID]shared.ScheduleSnapshot, len(s.schedules)),
		jobs:      make(map[uuid.UUID]Job, len(s.jobs)),
		devices:   make(map[string]device, len(s.devices)),
	}
	for k, v := range s.schedules {
		c.schedules[k] = v
	}
	for k, v := range s.jobs {
		c.jobs[k] = v
	}
	for k, v := range s.devices {
		c.devices[k] = v
	}
	return c
}

// Store serializes every transaction; a failing fn rolls the whole state back.
type Store struct {
	mu    sync.Mutex
	state state

	// Injected failures, returned by the next matching call.
	FailScheduleWrite error
	FailReminderWrite error
	FailEnqueue       error
	FailRead          error
	Commits           int
}

func New() *Store {
	return &Store{state: state{}.clone()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.state.clone()
	if err := fn(ctx, &memTx{store: s}); err != nil {
		s.state = backup
		return err
	}
	s.Commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{store: s}
}

// Seed inserts a schedule row directly, bypassing validation.
func (s *Store) Seed(snap shared.ScheduleSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.schedules[snap.ID] = snap
}

func (s *Store) Schedule(id uuid.UUID) (shared.ScheduleSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.state.schedules[id]
	return snap, ok
}

// Jobs returns the reminder jobs of one schedule ordered by fires_at.
func (s *Store) Jobs(scheduleID uuid.UUID) []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Job
	for _, j := range s.state.jobs {
		if j.ScheduleID == scheduleID {
			out = append(out, j)
		}
	}
	sortJobs(out)
	return out
}

func (s *Store) JobsWithStatus(scheduleID uuid.UUID, statuses ...shared.ReminderJobStatus) []Job {
	var out []Job
	for _, j := range s.Jobs(scheduleID) {
		if slices.Contains(statuses, j.Status) {
			out = append(out, j)
		}
	}
	return out
}

func (s *Store) DeviceTokens(userID uuid.UUID) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.tokensOf(userID)
}

func (st state) tokensOf(userID uuid.UUID) []string {
	type entry struct {
		token string
		at    time.Time
	}
	var entries []entry
	for token, d := range st.devices {
		if d.userID == userID {
			entries = append(entries, entry{token, d.updatedAt})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].at.Equal(entries[j].at) {
			return entries[i].token < entries[j].token
		}
		return entries[i].at.After(entries[j].at)
	})
	tokens := make([]string, len(entries))
	for i, e := range entries {
		tokens[i] = e.token
	}
	return tokens
}

func sortJobs(jobs []Job) {
	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].FiresAt.Equal(jobs[j].FiresAt) {
			return jobs[i].ID.String() < jobs[j].ID.String()
		}
		return jobs[i].FiresAt.Before(jobs[j].FiresAt)
	})
}

func takeErr(slot *error) error {
	err := *slot
	*slot = nil
	return err
}

type memTx struct {
	store *Store
}

func (t *memTx) Schedules() shared.ScheduleRepository { return scheduleRepo{t.store} }
func (t *memTx) Reminders() shared.ReminderJobRepository { return reminderRepo{t.store} }
func (t *memTx) Devices() shared.DeviceTokenRepository { return deviceRepo{t.store} }
func (t *memTx) Reads() shared.CommandReads { return reads{t.store} }
func (t *memTx) DB() sqlc.DBTX { return nil }

// reads runs inside Within and relies on the caller already holding the lock.
type reads struct {
	store *Store
}

func (r reads) ScheduleByID(_ context.Context, id uuid.UUID) (*shared.ScheduleSnapshot, error) {
	if err := takeErr(&r.store.FailRead); err != nil {
		return nil, infra.WrapRepoErr("failed to find schedule", err)
	}
	snap, ok := r.store.state.schedules[id]
	if !ok {
		return nil, infra.NotFound("schedule not found")
	}
	return &snap, nil
}

func (r reads) ScheduleByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.ScheduleSnapshot, error) {
	return r.ScheduleByID(ctx, id)
}

func (r reads) DeviceTokensByUser(_ context.Context, userID uuid.UUID) ([]string, error) {
	return r.store.state.tokensOf(userID), nil
}

type lockedReads struct {
	store *Store
}

func (r *lockedReads) ScheduleByID(ctx context.Context, id uuid.UUID) (*shared.ScheduleSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return reads(*r).ScheduleByID(ctx, id)
}

func (r *lockedReads) ScheduleByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.ScheduleSnapshot, error) {
	return r.ScheduleByID(ctx, id)
}

func (r *lockedReads) DeviceTokensByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return reads(*r).DeviceTokensByUser(ctx, userID)
}

type scheduleRepo struct {
	store *Store
}

func (r scheduleRepo) Create(_ context.Context, _ sqlc.DBTX, s *schedule.ScheduledRecipe) (uuid.UUID, error) {
	if err := takeErr(&r.store.FailScheduleWrite); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create scheduled recipe", err)
	}
	if _, exists := r.store.state.schedules[s.ID()]; exists {
		return uuid.Nil, infra.WrapRepoErr("failed to create scheduled recipe", nil, infra.KindDuplicateKey)
	}
	r.store.state.schedules[s.ID()] = shared.ScheduleSnapshot{
		ID:            s.ID(),
		UserID:        s.UserID(),
		Recipe:        s.Recipe().Input(),
		ScheduledDate: s.ScheduledDate(),
		IsCompleted:   s.IsCompleted(),
		CompletedAt:   s.CompletedAt(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
	return s.ID(), nil
}

func (r scheduleRepo) UpdateDate(_ context.Context, _ sqlc.DBTX, s *schedule.ScheduledRecipe) error {
	if err := takeErr(&r.store.FailScheduleWrite); err != nil {
		return infra.WrapRepoErr("failed to update scheduled date", err)
	}
	row, ok := r.store.state.schedules[s.ID()]
	if !ok || row.IsCompleted {
		return infra.NotFound("active schedule not found")
	}
	row.ScheduledDate = s.ScheduledDate()
	row.UpdatedAt = s.UpdatedAt()
	r.store.state.schedules[s.ID()] = row
	return nil
}

func (r scheduleRepo) MarkCompleted(_ context.Context, _ sqlc.DBTX, s *schedule.ScheduledRecipe) error {
	if err := takeErr(&r.store.FailScheduleWrite); err != nil {
		return infra.WrapRepoErr("failed to mark schedule completed", err)
	}
	row, ok := r.store.state.schedules[s.ID()]
	if !ok || row.IsCompleted {
		return infra.NotFound("active schedule not found")
	}
	row.IsCompleted = true
	row.CompletedAt = s.CompletedAt()
	row.UpdatedAt = s.UpdatedAt()
	r.store.state.schedules[s.ID()] = row
	return nil
}

func (r scheduleRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if err := takeErr(&r.store.FailScheduleWrite); err != nil {
		return infra.WrapRepoErr("failed to delete scheduled recipe", err)
	}
	if _, ok := r.store.state.schedules[id]; !ok {
		return infra.NotFound("schedule not found")
	}
	delete(r.store.state.schedules, id)
	for jobID, j := range r.store.state.jobs {
		if j.ScheduleID == id {
			delete(r.store.state.jobs, jobID)
		}
	}
	return nil
}

type reminderRepo struct {
	store *Store
}

func pending(status shared.ReminderJobStatus) bool {
	return status == shared.ReminderQueued || status == shared.ReminderSending
}

func (r reminderRepo) Enqueue(_ context.Context, _ sqlc.DBTX, plan shared.ReminderPlan, now time.Time) error {
	if err := takeErr(&r.store.FailEnqueue); err != nil {
		return infra.WrapRepoErr("failed to enqueue reminder job", err)
	}
	if _, ok := r.store.state.schedules[plan.ScheduleID]; !ok {
		return infra.WrapRepoErr("failed to enqueue reminder job", nil, infra.KindForeignKeyViolated)
	}
	for _, rem := range plan.Reminders {
		for _, j := range r.store.state.jobs {
			if j.ScheduleID == plan.ScheduleID && j.OffsetDays == rem.OffsetDays && pending(j.Status) {
				return infra.WrapRepoErr("failed to enqueue reminder job", nil, infra.KindDuplicateKey)
			}
		}
		id := uuid.New()
		r.store.state.jobs[id] = Job{
			ReminderJob: shared.ReminderJob{
				ID:           id,
				ScheduleID:   plan.ScheduleID,
				UserID:       plan.UserID,
				OffsetDays:   rem.OffsetDays,
				Title:        rem.Title,
				Body:         rem.Body,
				FiresAt:      rem.FiresAt,
				ScheduledFor: plan.ScheduledFor,
				Status:       shared.ReminderQueued,
			},
			UpdatedAt: now,
		}
	}
	return nil
}

func (r reminderRepo) CancelPending(_ context.Context, _ sqlc.DBTX, scheduleID uuid.UUID, now time.Time) (int64, error) {
	if err := takeErr(&r.store.FailReminderWrite); err != nil {
		return 0, infra.WrapRepoErr("failed to cancel reminder jobs", err)
	}
	var n int64
	for id, j := range r.store.state.jobs {
		if j.ScheduleID == scheduleID && pending(j.Status) {
			j.Status = shared.ReminderCanceled
			j.UpdatedAt = now
			r.store.state.jobs[id] = j
			n++
		}
	}
	return n, nil
}

func (r reminderRepo) ListPending(_ context.Context, _ sqlc.DBTX, scheduleID uuid.UUID) ([]shared.ReminderJob, error) {
	var jobs []Job
	for _, j := range r.store.state.jobs {
		if j.ScheduleID == scheduleID && pending(j.Status) {
			jobs = append(jobs, j)
		}
	}
	sortJobs(jobs)
	out := make([]shared.ReminderJob, len(jobs))
	for i, j := range jobs {
		out[i] = j.ReminderJob
	}
	return out, nil
}

func (r reminderRepo) ClaimDue(_ context.Context, _ sqlc.DBTX, now time.Time, limit int32) ([]shared.ReminderJob, error) {
	var due []Job
	for _, j := range r.store.state.jobs {
		if j.Status == shared.ReminderQueued && !j.FiresAt.After(now) {
			due = append(due, j)
		}
	}
	sortJobs(due)
	if len(due) > int(limit) {
		due = due[:limit]
	}
	out := make([]shared.ReminderJob, len(due))
	for i, j := range due {
		j.Status = shared.ReminderSending
		j.Attempts++
		j.UpdatedAt = now
		r.store.state.jobs[j.ID] = j
		out[i] = j.ReminderJob
	}
	return out, nil
}

func (r reminderRepo) RequeueStuck(_ context.Context, _ sqlc.DBTX, now, stuckBefore time.Time) (int64, error) {
	var n int64
	for id, j := range r.store.state.jobs {
		if j.Status == shared.ReminderSending && j.UpdatedAt.Before(stuckBefore) {
			j.Status = shared.ReminderQueued
			j.UpdatedAt = now
			r.store.state.jobs[id] = j
			n++
		}
	}
	return n, nil
}

func (r reminderRepo) MarkSent(_ context.Context, _ sqlc.DBTX, id uuid.UUID, sentAt time.Time) error {
	j, ok := r.store.state.jobs[id]
	if !ok || j.Status != shared.ReminderSending {
		return nil
	}
	j.Status = shared.ReminderSent
	j.SentAt = &sentAt
	j.LastError = nil
	j.UpdatedAt = sentAt
	r.store.state.jobs[id] = j
	return nil
}

func (r reminderRepo) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, reason string, maxAttempts int32, now time.Time) (shared.ReminderJobStatus, error) {
	j, ok := r.store.state.jobs[id]
	if !ok || j.Status != shared.ReminderSending {
		return "", infra.NotFound("reminder job is no longer claimed")
	}
	if j.Attempts >= maxAttempts {
		j.Status = shared.ReminderFailed
	} else {
		j.Status = shared.ReminderQueued
	}
	j.LastError = &reason
	j.UpdatedAt = now
	r.store.state.jobs[id] = j
	return j.Status, nil
}

func (r reminderRepo) MarkCanceled(_ context.Context, _ sqlc.DBTX, id uuid.UUID, now time.Time) error {
	j, ok := r.store.state.jobs[id]
	if !ok || !pending(j.Status) {
		return nil
	}
	j.Status = shared.ReminderCanceled
	j.UpdatedAt = now
	r.store.state.jobs[id] = j
	return nil
}

type deviceRepo struct {
	store *Store
}

func (r deviceRepo) Upsert(_ context.Context, _ sqlc.DBTX, d shared.DeviceToken, now time.Time) error {
	r.store.state.devices[d.Token] = device{userID: d.UserID, platform: d.Platform, updatedAt: now}
	return nil
}

func (r deviceRepo) Delete(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, token string) error {
	if d, ok := r.store.state.devices[token]; ok && d.userID == userID {
		delete(r.store.state.devices, token)
	}
	return nil
}

func (r deviceRepo) DeleteTokens(_ context.Context, _ sqlc.DBTX, tokens []string) (int64, error) {
	var n int64
	for _, token := range tokens {
		if _, ok := r.store.state.devices[token]; ok {
			delete(r.store.state.devices, token)
			n++
		}
	}
	return n, nil
}
