package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"naminara/backend/config"
	"naminara/backend/internal/dto"
	"naminara/backend/internal/model"
	"naminara/backend/internal/repository"
	"naminara/backend/pkg/ollama"
)

// ── AI 조언 모듈 업무 오류 ──

var (
	ErrAdviceDisabled = errors.New("AI 조언 기능이 비활성 상태입니다")
	ErrAdviceFailed   = errors.New("AI 조언 생성에 실패했습니다")
)

// AdviceService 선박·인력 현황 기반 AI 배치 제안 인터페이스
type AdviceService interface {
	// CrewAdvice 현재 선박/인력 데이터를 요약해 배치 개선안을 생성한다.
	CrewAdvice(ctx context.Context) (*dto.CrewAdviceResponse, error)
}

type adviceService struct {
	cfg    *config.Config
	repo   *repository.Repository
	ai     *ollama.Client
	logger *zap.Logger
}

// NewAdviceService AdviceService 인스턴스 생성. ai는 nil 허용(기능 비활성).
func NewAdviceService(cfg *config.Config, repo *repository.Repository, ai *ollama.Client, logger *zap.Logger) AdviceService {
	return &adviceService{cfg: cfg, repo: repo, ai: ai, logger: logger}
}

func (s *adviceService) CrewAdvice(ctx context.Context) (*dto.CrewAdviceResponse, error) {
	if s.ai == nil || !s.cfg.AI.Enabled {
		return nil, ErrAdviceDisabled
	}

	ships, err := s.repo.Ship.List()
	if err != nil {
		return nil, err
	}
	users, err := s.repo.User.List()
	if err != nil {
		return nil, err
	}

	prompt, err := buildAdvicePrompt(ships, users)
	if err != nil {
		return nil, err
	}

	advice, err := s.ai.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("AI 조언 생성 실패", zap.Error(err))
		return nil, ErrAdviceFailed
	}

	return &dto.CrewAdviceResponse{
		Advice: advice,
		Model:  s.ai.Model(),
	}, nil
}

// buildAdvicePrompt 선박 정원과 배속 현황을 JSON으로 요약한 한국어 프롬프트
func buildAdvicePrompt(ships []model.Ship, users []model.User) (string, error) {
	type shipBrief struct {
		Name     string `json:"name"`
		Capacity int    `json:"capacity"`
		Type     string `json:"type"`
	}
	type userBrief struct {
		Name         string  `json:"name"`
		Role         string  `json:"role"`
		AssignedShip *string `json:"assigned_ship"`
	}

	sb := make([]shipBrief, 0, len(ships))
	for _, s := range ships {
		sb = append(sb, shipBrief{Name: s.Name, Capacity: s.Capacity, Type: s.Type})
	}
	ub := make([]userBrief, 0, len(users))
	for _, u := range users {
		ub = append(ub, userBrief{Name: u.Name, Role: model.RoleLabels[u.Role], AssignedShip: u.AssignedShip})
	}

	shipJSON, err := json.Marshal(sb)
	if err != nil {
		return "", err
	}
	userJSON, err := json.Marshal(ub)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"당신은 소형 선박 운항 관리 전문가입니다. 아래는 현재 선박 현황과 인력 배속 현황입니다.\n\n"+
			"선박 목록:\n%s\n\n인력 목록:\n%s\n\n"+
			"선박별 정원 대비 배속 인원을 검토하고, 과승 위험이 있는 선박과 인력 재배치 제안을 "+
			"한국어로 간결하게 3가지 이내로 정리해 주세요.",
		shipJSON, userJSON), nil
}
