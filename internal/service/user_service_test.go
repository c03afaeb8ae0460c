package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name string
		req  *domain.CreateUserRequest
	}{
		{
			name: "valid timezone",
			req:  &domain.CreateUserRequest{Timezone: "Europe/Prague"},
		},
		{
			name: "UTC timezone",
			req:  &domain.CreateUserRequest{Timezone: "UTC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockUserRepository()
			svc := NewUserService(repo)

			user, err := svc.Create(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if user.ID == uuid.Nil {
				t.Error("Create() returned nil user ID")
			}
			if user.Timezone != tt.req.Timezone {
				t.Errorf("Timezone = %q, want %q", user.Timezone, tt.req.Timezone)
			}
		})
	}
}

func TestUserService_Create_RepoError(t *testing.T) {
	repo := NewMockUserRepository()
	repo.err = errors.New("db down")
	svc := NewUserService(repo)

	if _, err := svc.Create(context.Background(), &domain.CreateUserRequest{Timezone: "UTC"}); err == nil {
		t.Fatal("Create() expected error")
	}
}

func TestUserService_GetByID(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)
	userID := seedUser(repo, "Europe/Prague")

	user, err := svc.GetByID(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if user.ID != userID {
		t.Errorf("GetByID() ID = %v, want %v", user.ID, userID)
	}

	if _, err := svc.GetByID(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID() unknown user error = %v, want ErrNotFound", err)
	}
}
