package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/PremjitDas/Task-Management-App/internal/apperror"
	dom "github.com/PremjitDas/Task-Management-App/internal/domain"
	"github.com/PremjitDas/Task-Management-App/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// ListCache is the slice of the task-list cache the service uses.
// cache.TaskCache is the Redis implementation.
type ListCache interface {
	GetList(ctx context.Context, userID int64) ([]dom.Task, error)
	SetList(ctx context.Context, userID int64, list []dom.Task) error
	Invalidate(ctx context.Context, userID int64) error
}

// TaskService implements the task operations, each scoped to the calling
// user's id. Ownership is enforced in the queries themselves, except for
// Toggle which probes existence first so it can answer 403 instead of 404.
type TaskService struct {
	repo  repo.TaskRepo
	cache ListCache
	sf    singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, c ListCache) *TaskService {
	return &TaskService{repo: r, cache: c}
}

// Add creates a task owned by userID. Title is required; description
// defaults to empty; new tasks start incomplete.
func (s *TaskService) Add(ctx context.Context, userID int64, title, description string) (dom.Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return dom.Task{}, apperror.NewValidation("title is required")
	}

	t, err := s.repo.Create(ctx, dom.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return dom.Task{}, apperror.NewUnexpected("failed to create task", err)
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// List returns the caller's tasks, newest-created-first.
func (s *TaskService) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListByOwner(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, apperror.NewUnexpected("failed to retrieve tasks", err)
		}
		return v.([]dom.Task), nil
	}
	list, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperror.NewUnexpected("failed to retrieve tasks", err)
	}
	return list, nil
}

// Update replaces title and description of the caller's task. The lookup is
// owner-scoped, so a foreign task id is indistinguishable from a missing one.
func (s *TaskService) Update(ctx context.Context, userID, id int64, title, description string) (dom.Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return dom.Task{}, apperror.NewValidation("all fields are required")
	}
	t, err := s.repo.UpdateOwned(ctx, userID, id, title, description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, apperror.NewNotFound("task not found")
		}
		return dom.Task{}, apperror.NewUnexpected("failed to update task", err)
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// Toggle flips the completion flag. Missing task and foreign task answer
// differently here: 404 when the id does not exist at all, 403 when it
// exists under another owner.
func (s *TaskService) Toggle(ctx context.Context, userID, id int64) (dom.Task, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, apperror.NewNotFound("task not found")
		}
		return dom.Task{}, apperror.NewUnexpected("failed to toggle task", err)
	}
	if existing.UserID != userID {
		return dom.Task{}, apperror.NewAuthorization("you do not own this task")
	}
	t, err := s.repo.SetComplete(ctx, id, !existing.IsComplete)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, apperror.NewNotFound("task not found")
		}
		return dom.Task{}, apperror.NewUnexpected("failed to toggle task", err)
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// Delete removes the caller's task outright and returns its prior state.
func (s *TaskService) Delete(ctx context.Context, userID, id int64) (dom.Task, error) {
	t, err := s.repo.DeleteOwned(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, apperror.NewNotFound("task not found")
		}
		return dom.Task{}, apperror.NewUnexpected("failed to delete task", err)
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

func (s *TaskService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
