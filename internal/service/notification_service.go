package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/model"
	"naminara/backend/internal/repository"
	"naminara/backend/internal/voyage"
	"naminara/backend/pkg/telegram"
)

// ── 알림 모듈 업무 오류 ──

var (
	ErrBotNotConfigured = errors.New("텔레그램 봇 토큰이 설정되지 않았습니다")
	ErrBotVerifyFailed  = errors.New("봇 토큰 검증에 실패했습니다")
	ErrNoRecipients     = errors.New("알림을 받을 수신자가 없습니다")
)

// NotificationService 텔레그램 운항 알림 업무 인터페이스
//
// 설계 설명:
//   - 수신 대상은 텔레그램 chat ID가 등록된 사용자 중 관리자 전원 + 구독 명단에
//     포함된 사용자다.
//   - 운항 알림은 최선 노력(best-effort)이다: 개별 수신자 실패는 집계만 하고
//     일지 저장 흐름을 중단시키지 않는다.
type NotificationService interface {
	GetConfig() (*dto.NotificationConfigResponse, error)
	UpdateConfig(req *dto.SaveNotificationConfigRequest) (*dto.NotificationConfigResponse, error)
	// VerifyBot 저장된 토큰으로 getMe를 호출해 봇 이름을 확인한다.
	VerifyBot(ctx context.Context) (*dto.BotVerifyResponse, error)
	// SendTest 구성된 수신자 전원에게 테스트 메시지를 발송한다. message가 비면 기본 문구.
	SendTest(ctx context.Context, message string) (*dto.NotifyResult, error)
	// NotifyVoyage 운항 시작/종료 알림 발송. started=true면 등록, false면 종료 알림.
	NotifyVoyage(ctx context.Context, log *model.VoyageLog, started bool) (*dto.NotifyResult, error)
}

type notificationService struct {
	repo   *repository.Repository
	sender telegram.Sender
	logger *zap.Logger
}

// NewNotificationService NotificationService 인스턴스 생성
func NewNotificationService(repo *repository.Repository, sender telegram.Sender, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, sender: sender, logger: logger}
}

func (s *notificationService) GetConfig() (*dto.NotificationConfigResponse, error) {
	cfg, err := s.repo.NotificationConfig.Get()
	if err != nil {
		return nil, err
	}
	ids := cfg.SubscribedUserIDs
	if ids == nil {
		ids = []string{}
	}
	return &dto.NotificationConfigResponse{
		BotToken:          cfg.BotToken,
		SubscribedUserIDs: ids,
	}, nil
}

func (s *notificationService) UpdateConfig(req *dto.SaveNotificationConfigRequest) (*dto.NotificationConfigResponse, error) {
	cfg := &model.NotificationConfig{
		BotToken:          strings.TrimSpace(req.BotToken),
		SubscribedUserIDs: req.SubscribedUserIDs,
	}
	if err := s.repo.NotificationConfig.Save(cfg); err != nil {
		s.logger.Error("알림 설정 저장 실패", zap.Error(err))
		return nil, err
	}
	s.logger.Info("알림 설정 저장", zap.Int("subscribers", len(req.SubscribedUserIDs)))
	return s.GetConfig()
}

func (s *notificationService) VerifyBot(ctx context.Context) (*dto.BotVerifyResponse, error) {
	cfg, err := s.repo.NotificationConfig.Get()
	if err != nil {
		return nil, err
	}
	if cfg.BotToken == "" {
		return nil, ErrBotNotConfigured
	}

	name, err := s.sender.Verify(ctx, cfg.BotToken)
	if err != nil {
		s.logger.Warn("봇 토큰 검증 실패", zap.Error(err))
		return nil, ErrBotVerifyFailed
	}
	return &dto.BotVerifyResponse{BotName: name}, nil
}

func (s *notificationService) SendTest(ctx context.Context, message string) (*dto.NotifyResult, error) {
	body := strings.TrimSpace(message)
	if body == "" {
		body = "나미나라 MMS 알림 설정이 정상 동작합니다."
	}
	text := "🔔 <b>[테스트 알림]</b>\n\n" + body + "\n\n(나미나라 MMS 봇 자동 발송)"
	return s.broadcast(ctx, text)
}

func (s *notificationService) NotifyVoyage(ctx context.Context, log *model.VoyageLog, started bool) (*dto.NotifyResult, error) {
	return s.broadcast(ctx, buildVoyageMessage(log, started))
}

// broadcast 구성된 수신자 전원에게 HTML 메시지를 발송하고 성공/실패를 집계한다.
func (s *notificationService) broadcast(ctx context.Context, text string) (*dto.NotifyResult, error) {
	cfg, err := s.repo.NotificationConfig.Get()
	if err != nil {
		return nil, err
	}
	if cfg.BotToken == "" {
		return nil, ErrBotNotConfigured
	}

	recipients, err := s.recipients(cfg)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	result := &dto.NotifyResult{}
	for _, u := range recipients {
		if err := s.sender.SendHTML(ctx, cfg.BotToken, *u.TelegramChatID, text); err != nil {
			s.logger.Warn("텔레그램 발송 실패",
				zap.String("user_id", u.ID),
				zap.String("name", u.Name),
				zap.Error(err))
			result.Failed++
			continue
		}
		result.Sent++
	}

	s.logger.Info("텔레그램 알림 발송 완료",
		zap.Int("sent", result.Sent), zap.Int("failed", result.Failed))
	return result, nil
}

// recipients chat ID 보유자 중 관리자 전원 + 구독 명단 사용자
func (s *notificationService) recipients(cfg *model.NotificationConfig) ([]model.User, error) {
	users, err := s.repo.User.List()
	if err != nil {
		return nil, err
	}

	subscribed := make(map[string]bool, len(cfg.SubscribedUserIDs))
	for _, id := range cfg.SubscribedUserIDs {
		subscribed[id] = true
	}

	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.TelegramChatID == nil || *u.TelegramChatID == "" {
			continue
		}
		if u.Role == model.RoleAdmin || subscribed[u.ID] {
			out = append(out, u)
		}
	}
	return out, nil
}

// buildVoyageMessage 운항 등록/종료 알림 본문.
// 문구와 구성은 기존 운영 공지 양식과 호환되어야 하므로 임의로 바꾸지 않는다.
func buildVoyageMessage(log *model.VoyageLog, started bool) string {
	var b strings.Builder

	if started {
		b.WriteString("🚢 <b>[실시간 운항 등록 알림]</b>\n\n")
		b.WriteString("현 시각부로 실시간 운항 현황에 등록되었습니다.\n\n")
	} else {
		b.WriteString("🏁 <b>[실시간 운항 종료 알림]</b>\n\n")
		b.WriteString("운항이 종료되어 실시간 현황에서 해제되었습니다.\n\n")
	}

	crew := strings.Join(log.CrewMembers, ", ")
	if crew == "" {
		crew = "없음"
	}
	arrival := log.ArrivalTime
	if arrival == "" {
		arrival = "미정"
	}

	fmt.Fprintf(&b, "• <b>선박명</b>: %s\n", log.ShipName)
	fmt.Fprintf(&b, "• <b>선장</b>: %s\n", log.CaptainName)
	fmt.Fprintf(&b, "• <b>기관장</b>: %s\n", log.ChiefEngineer)
	fmt.Fprintf(&b, "• <b>승무원</b>: %s\n", crew)
	fmt.Fprintf(&b, "• <b>운항시간</b>: %s → %s\n", log.DepartureTime, arrival)

	if !started {
		elapsed := voyage.ElapsedLabel(log.DepartureTime, log.ArrivalTime)
		if elapsed == "" {
			elapsed = "-"
		}
		fmt.Fprintf(&b, "• <b>승객수</b>: %d명\n", log.PassengerCount)
		fmt.Fprintf(&b, "• <b>소요시간</b>: %s\n", elapsed)
	}

	b.WriteString("\n(나미나라 MMS 봇 자동 발송)")
	return b.String()
}
