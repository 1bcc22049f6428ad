package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/model"
	"naminara/backend/internal/repository"
)

// ── 인력 모듈 업무 오류 ──

var (
	ErrInvalidRole = errors.New("허용되지 않는 역할입니다")
)

// UserService 인력 관리 업무 인터페이스
type UserService interface {
	Create(req *dto.SaveUserRequest) (*dto.UserResponse, error)
	List() ([]dto.UserResponse, error)
	Update(id string, req *dto.SaveUserRequest) (*dto.UserResponse, error)
	Delete(id string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService UserService 인스턴스 생성
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(req *dto.SaveUserRequest) (*dto.UserResponse, error) {
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	user := &model.User{
		Name:           req.Name,
		Contact:        req.Contact,
		Role:           req.Role,
		AssignedShip:   req.AssignedShip,
		JoinDate:       req.JoinDate,
		TelegramChatID: req.TelegramChatID,
	}
	if err := s.repo.User.Create(user); err != nil {
		s.logger.Error("직원 등록 실패", zap.Error(err))
		return nil, err
	}

	s.logger.Info("직원 등록", zap.String("user_id", user.ID), zap.String("role", user.Role))
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *userService) List() ([]dto.UserResponse, error) {
	users, err := s.repo.User.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.ToUserResponse(&users[i]))
	}
	return out, nil
}

func (s *userService) Update(id string, req *dto.SaveUserRequest) (*dto.UserResponse, error) {
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	user, err := s.repo.User.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Name = req.Name
	user.Contact = req.Contact
	user.Role = req.Role
	user.AssignedShip = req.AssignedShip
	user.JoinDate = req.JoinDate
	user.TelegramChatID = req.TelegramChatID

	if err := s.repo.User.Update(user); err != nil {
		s.logger.Error("직원 수정 실패", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *userService) Delete(id string) error {
	if _, err := s.repo.User.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.repo.User.Delete(id); err != nil {
		s.logger.Error("직원 삭제 실패", zap.String("user_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("직원 삭제", zap.String("user_id", id))
	return nil
}
