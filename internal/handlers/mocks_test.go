package handlers

import (
	"context"

	"github.com/PremjitDas/Task-Management-App/internal/apperror"
	dom "github.com/PremjitDas/Task-Management-App/internal/domain"
)

// MockUserService implements UserService for testing.
type MockUserService struct {
	RegisterFunc func(ctx context.Context, username, email, password string) (dom.User, error)
	LoginFunc    func(ctx context.Context, email, password string) (dom.User, string, error)
}

func (m *MockUserService) Register(ctx context.Context, username, email, password string) (dom.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password)
	}
	return dom.User{ID: 1, Username: username, Email: email}, nil
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (dom.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return dom.User{ID: 1, Email: email}, "signed-token", nil
}

// MockTaskService implements TaskService for testing.
type MockTaskService struct {
	AddFunc    func(ctx context.Context, userID int64, title, description string) (dom.Task, error)
	ListFunc   func(ctx context.Context, userID int64) ([]dom.Task, error)
	UpdateFunc func(ctx context.Context, userID, id int64, title, description string) (dom.Task, error)
	ToggleFunc func(ctx context.Context, userID, id int64) (dom.Task, error)
	DeleteFunc func(ctx context.Context, userID, id int64) (dom.Task, error)
}

func (m *MockTaskService) Add(ctx context.Context, userID int64, title, description string) (dom.Task, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, title, description)
	}
	return dom.Task{ID: 1, UserID: userID, Title: title, Description: description}, nil
}

func (m *MockTaskService) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTaskService) Update(ctx context.Context, userID, id int64, title, description string) (dom.Task, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, title, description)
	}
	return dom.Task{}, apperror.NewNotFound("task not found")
}

func (m *MockTaskService) Toggle(ctx context.Context, userID, id int64) (dom.Task, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, userID, id)
	}
	return dom.Task{}, apperror.NewNotFound("task not found")
}

func (m *MockTaskService) Delete(ctx context.Context, userID, id int64) (dom.Task, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return dom.Task{}, apperror.NewNotFound("task not found")
}
