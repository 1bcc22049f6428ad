package repository

import (
	"errors"

	"naminara/backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationConfigRepository 알림 설정 데이터 접근 인터페이스.
// 설정은 단일 행(id=1)으로만 존재한다.
type NotificationConfigRepository interface {
	Get() (*model.NotificationConfig, error)
	Save(cfg *model.NotificationConfig) error
}

type notificationConfigRepo struct {
	db *gorm.DB
}

// NewNotificationConfigRepo 알림 설정 Repository 생성
func NewNotificationConfigRepo(db *gorm.DB) NotificationConfigRepository {
	return &notificationConfigRepo{db: db}
}

// Get 설정 행 조회. 없으면 빈 설정을 반환한다.
func (r *notificationConfigRepo) Get() (*model.NotificationConfig, error) {
	var cfg model.NotificationConfig
	if err := r.db.First(&cfg, "id = ?", model.NotificationConfigID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.NotificationConfig{ID: model.NotificationConfigID}, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// Save 설정 upsert
func (r *notificationConfigRepo) Save(cfg *model.NotificationConfig) error {
	cfg.ID = model.NotificationConfigID
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(cfg).Error
}
