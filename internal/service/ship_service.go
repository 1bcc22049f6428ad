package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/model"
	"naminara/backend/internal/repository"
)

// ── 선박 모듈 업무 오류 ──

var (
	ErrShipNotFound  = errors.New("존재하지 않는 선박입니다")
	ErrShipNameTaken = errors.New("이미 등록된 선박명입니다")
)

// ShipService 선박 관리 업무 인터페이스
//
// 선박명 변경은 과거 운항일지에 소급 반영되지 않는다 —
// 일지는 작성 시점의 선박명 문자열을 그대로 보존한다.
type ShipService interface {
	Create(req *dto.SaveShipRequest) (*dto.ShipResponse, error)
	List() ([]dto.ShipResponse, error)
	Update(id string, req *dto.SaveShipRequest) (*dto.ShipResponse, error)
	Delete(id string) error
}

type shipService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShipService ShipService 인스턴스 생성
func NewShipService(repo *repository.Repository, logger *zap.Logger) ShipService {
	return &shipService{repo: repo, logger: logger}
}

func (s *shipService) Create(req *dto.SaveShipRequest) (*dto.ShipResponse, error) {
	ship := &model.Ship{
		Name:     strings.TrimSpace(req.Name),
		Capacity: req.Capacity,
		Type:     req.Type,
	}
	if err := s.repo.Ship.Create(ship); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrShipNameTaken
		}
		s.logger.Error("선박 등록 실패", zap.Error(err))
		return nil, err
	}

	s.logger.Info("선박 등록", zap.String("ship_id", ship.ID), zap.String("name", ship.Name))
	resp := dto.ToShipResponse(ship)
	return &resp, nil
}

func (s *shipService) List() ([]dto.ShipResponse, error) {
	ships, err := s.repo.Ship.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShipResponse, 0, len(ships))
	for i := range ships {
		out = append(out, dto.ToShipResponse(&ships[i]))
	}
	return out, nil
}

func (s *shipService) Update(id string, req *dto.SaveShipRequest) (*dto.ShipResponse, error) {
	ship, err := s.repo.Ship.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipNotFound
		}
		return nil, err
	}

	ship.Name = strings.TrimSpace(req.Name)
	ship.Capacity = req.Capacity
	ship.Type = req.Type

	if err := s.repo.Ship.Update(ship); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrShipNameTaken
		}
		s.logger.Error("선박 수정 실패", zap.String("ship_id", id), zap.Error(err))
		return nil, err
	}

	resp := dto.ToShipResponse(ship)
	return &resp, nil
}

// Delete 선박 삭제. 해당 선박명으로 작성된 과거 일지는 고아 레코드로 남되 삭제하지 않는다.
func (s *shipService) Delete(id string) error {
	if _, err := s.repo.Ship.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShipNotFound
		}
		return err
	}
	if err := s.repo.Ship.Delete(id); err != nil {
		s.logger.Error("선박 삭제 실패", zap.String("ship_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("선박 삭제", zap.String("ship_id", id))
	return nil
}

// isUniqueViolation Postgres 고유 제약 위반 여부를 드라이버 독립적으로 판별한다.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
