package service

import (
	"context"
	"mime/multipart"

	"task-tracker-backend/internal/auth"
	"task-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SessionTokens issues and verifies session tokens
type SessionTokens interface {
	Issue(userID uuid.UUID, username string) (string, error)
	Verify(tokenString string) (*auth.AuthClaims, error)
}

// CaptchaVerifier checks a bot-check challenge response
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// FederatedVerifier verifies credentials issued by the federated identity provider
type FederatedVerifier interface {
	VerifyIDToken(ctx context.Context, rawToken string) (*auth.GoogleIdentity, error)
	ExchangeCode(ctx context.Context, code string) (*auth.GoogleIdentity, error)
}

// ImageStore persists uploaded profile images
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(publicPath string) error
}

// IdentityServiceInterface defines the interface for registration, login and profiles
type IdentityServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest, image *multipart.FileHeader) (*UserSummary, error)
	Login(ctx context.Context, req *LoginRequest, remoteIP string) (*SessionResponse, error)
	FederatedLogin(ctx context.Context, req *FederatedLoginRequest) (*SessionResponse, error)
	VerifySession(token string) (*auth.AuthClaims, error)
	GetProfile(username string) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest, image *multipart.FileHeader) (*ProfileResponse, error)
	ListUsers() ([]UserListItem, error)
}

// TeamServiceInterface defines the interface for team membership operations
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, creatorID uuid.UUID, req *CreateTeamRequest) (uuid.UUID, error)
	ListTeamsForUser(userID uuid.UUID) ([]models.TeamWithRole, error)
	AddMember(ctx context.Context, actorID, teamID uuid.UUID, req *AddMemberRequest) error
	RemoveMember(ctx context.Context, actorID, teamID, targetID uuid.UUID) error
	ListMembers(teamID uuid.UUID) ([]models.TeamMember, error)
	IsMember(teamID, userID uuid.UUID) (bool, error)
	IsAdmin(teamID, userID uuid.UUID) (bool, error)
}

// TodoServiceInterface defines the interface for personal todo operations
type TodoServiceInterface interface {
	Create(ownerID uuid.UUID, req *CreateTodoRequest) (*TodoResponse, error)
	List(ownerID uuid.UUID) ([]TodoResponse, error)
	Update(ownerID, todoID uuid.UUID, req *UpdateTodoRequest) (*TodoResponse, error)
	Delete(ownerID, todoID uuid.UUID) error
}

// TeamTaskServiceInterface defines the interface for team task operations
type TeamTaskServiceInterface interface {
	Create(ctx context.Context, actorID, teamID uuid.UUID, req *CreateTeamTaskRequest) (*TeamTaskResponse, error)
	List(actorID, teamID uuid.UUID) ([]TeamTaskResponse, error)
	Update(ctx context.Context, actorID, teamID, taskID uuid.UUID, req *UpdateTeamTaskRequest) (*TeamTaskResponse, error)
}
