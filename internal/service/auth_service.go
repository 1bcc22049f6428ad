package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/repository"
	"naminara/backend/pkg/jwt"
)

// ── 인증 모듈 업무 오류 ──

var (
	ErrUserNotFound = errors.New("존재하지 않는 사용자입니다")
)

// AuthService 인증 업무 인터페이스
//
// 설계 설명:
//   - 사내 전용 시스템이므로 비밀번호 없이 프로필 선택 방식으로 로그인한다.
//     로그인 화면이 전체 프로필 목록을 보여주고, 선택된 사용자로 토큰을 발급한다.
//   - 토큰은 액세스 토큰 단일 체계다(리프레시 미사용).
type AuthService interface {
	// Profiles 로그인 화면용 프로필 목록
	Profiles() ([]dto.ProfileResponse, error)
	// Login 프로필 선택 로그인 — 토큰 발급
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Me 토큰 소유자 정보 조회
	Me(userID string) (*dto.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService AuthService 인스턴스 생성
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, logger: logger}
}

func (s *authService) Profiles() ([]dto.ProfileResponse, error) {
	users, err := s.repo.User.List()
	if err != nil {
		s.logger.Error("프로필 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	profiles := make([]dto.ProfileResponse, 0, len(users))
	for i := range users {
		u := dto.ToUserResponse(&users[i])
		profiles = append(profiles, dto.ProfileResponse{
			UserID:    u.ID,
			Name:      u.Name,
			Role:      u.Role,
			RoleLabel: u.RoleLabel,
		})
	}
	return profiles, nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.User.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("로그인 사용자 조회 실패", zap.Error(err))
		return nil, err
	}

	token, err := s.jwtMgr.GenerateAccessToken(user.ID, user.Name, user.Role)
	if err != nil {
		s.logger.Error("토큰 발급 실패", zap.String("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("로그인 성공", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return &dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user),
	}, nil
}

func (s *authService) Me(userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}
