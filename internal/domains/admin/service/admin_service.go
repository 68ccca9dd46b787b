package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/admin/model"
	"portfolio-backend/internal/domains/admin/repository"
	"portfolio-backend/pkg/jwt"
)

const bcryptCost = 12

// dummyHash dùng khi email không tồn tại để thời gian phản hồi tương đương
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portfolio-dummy-password"), bcrypt.MinCost)

type ServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Me(ctx context.Context, id string) (*model.AdminUser, error)
	EnsureAdmin(ctx context.Context, req model.SeedRequest) (*model.AdminUser, error)
}

type adminService struct {
	repo   repository.Repository
	tokens *jwt.Manager
	cost   int
}

func NewService(repo repository.Repository, tokens *jwt.Manager) ServiceInterface {
	return &adminService{repo: repo, tokens: tokens, cost: bcryptCost}
}

func (s *adminService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, model.ErrAdminNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("email", u.Email).Msg("[AUTH] Wrong password")
		return nil, model.ErrInvalidCredentials
	}

	name := ""
	if u.Name != nil {
		name = *u.Name
	}
	token, expiresAt, err := s.tokens.GenerateAccessToken(u.ID.String(), u.Email, name)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	log.Info().Str("admin_id", u.ID.String()).Msg("[AUTH] Admin logged in")
	return &model.LoginResponse{AccessToken: token, ExpiresAt: expiresAt, Admin: u}, nil
}

func (s *adminService) Me(ctx context.Context, id string) (*model.AdminUser, error) {
	return s.repo.GetByID(ctx, id)
}

// EnsureAdmin tạo admin hoặc đặt lại mật khẩu nếu email đã tồn tại
func (s *adminService) EnsureAdmin(ctx context.Context, req model.SeedRequest) (*model.AdminUser, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var name *string
	if n := strings.TrimSpace(req.Name); n != "" {
		name = &n
	}
	return s.repo.Upsert(ctx, req.Email, string(hash), name)
}
