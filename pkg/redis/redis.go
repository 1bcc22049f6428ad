package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"naminara/backend/config"
)

// ErrNotFound 해당 키의 버퍼가 없음
var ErrNotFound = errors.New("저장된 임시 폼 버퍼가 없습니다")

// Client Redis 클라이언트 래퍼
// 선장이 작성 중인 운항 일지 폼의 임시 버퍼를 보관한다.
// 제출 전 브라우저를 떠나도 작성 내용이 유지되도록 하는 용도라 영속성 요구는 없다.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient Redis 연결 생성 후 Ping으로 헬스 체크한다.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	logger.Info("Redis 연결 성공", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 임시 폼 버퍼 ──

const draftBufferPrefix = "draft:form:"

// 작성 중 버퍼는 하루 운항 주기를 넘겨 남을 이유가 없다.
const draftBufferTTL = 48 * time.Hour

// SaveDraftBuffer 사용자별 작성 중 폼 버퍼(JSON)를 저장한다.
func (c *Client) SaveDraftBuffer(ctx context.Context, userID string, payload []byte) error {
	return c.rdb.Set(ctx, draftBufferPrefix+userID, payload, draftBufferTTL).Err()
}

// GetDraftBuffer 저장된 버퍼를 읽는다. 없으면 ErrNotFound.
func (c *Client) GetDraftBuffer(ctx context.Context, userID string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, draftBufferPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

// DeleteDraftBuffer 버퍼를 삭제한다. 없는 키 삭제는 오류가 아니다.
func (c *Client) DeleteDraftBuffer(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, draftBufferPrefix+userID).Err()
}

// Close 연결 종료
func (c *Client) Close() error {
	return c.rdb.Close()
}
