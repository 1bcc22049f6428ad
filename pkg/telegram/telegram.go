// Package telegram 텔레그램 봇 발송 어댑터.
//
// 봇 토큰은 설정 파일이 아닌 DB의 알림 설정 행에 들어 있어 호출마다 함께 넘긴다.
// 발송은 전부 최선 노력(best-effort)이며, 재시도·큐잉은 하지 않는다.
package telegram

import (
	"context"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender 수신자 한 명에게 메시지를 보내는 최소 계약.
// 서비스 계층은 이 인터페이스에만 의존하므로 테스트에서 가짜 구현으로 대체한다.
type Sender interface {
	// SendHTML HTML 파싱 모드로 메시지 발송. 수신자 주소는 텔레그램 chat id 문자열.
	SendHTML(ctx context.Context, botToken, chatID, text string) error
	// Verify 토큰으로 봇 계정을 확인하고 봇 사용자명을 반환한다(연결 테스트용).
	Verify(ctx context.Context, botToken string) (string, error)
}

// BotSender go-telegram-bot-api 기반 Sender 구현.
// 토큰별 봇 핸들을 캐시한다 — NewBotAPI가 매번 getMe를 호출하기 때문.
type BotSender struct {
	mu   sync.Mutex
	bots map[string]*tgbotapi.BotAPI
}

// NewBotSender BotSender 생성
func NewBotSender() *BotSender {
	return &BotSender{bots: make(map[string]*tgbotapi.BotAPI)}
}

func (s *BotSender) bot(token string) (*tgbotapi.BotAPI, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bots[token]; ok {
		return b, nil
	}
	b, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	s.bots[token] = b
	return b, nil
}

// SendHTML HTML 메시지 발송
func (s *BotSender) SendHTML(_ context.Context, botToken, chatID, text string) error {
	bot, err := s.bot(botToken)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(id, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err = bot.Send(msg)
	return err
}

// Verify 봇 토큰 유효성 확인
func (s *BotSender) Verify(_ context.Context, botToken string) (string, error) {
	s.mu.Lock()
	delete(s.bots, botToken) // 토큰 검증은 항상 새로 getMe를 친다
	s.mu.Unlock()

	bot, err := s.bot(botToken)
	if err != nil {
		return "", err
	}
	return bot.Self.UserName, nil
}
