package repository

import (
	"naminara/backend/internal/model"

	"gorm.io/gorm"
)

// VoyageLogRepository 운항일지 데이터 접근 인터페이스
type VoyageLogRepository interface {
	Create(log *model.VoyageLog) error
	GetByID(id string) (*model.VoyageLog, error)
	List() ([]model.VoyageLog, error)
	Update(log *model.VoyageLog) error
	Delete(id string) error
}

type voyageLogRepo struct {
	db *gorm.DB
}

// NewVoyageLogRepo 운항일지 Repository 생성
func NewVoyageLogRepo(db *gorm.DB) VoyageLogRepository {
	return &voyageLogRepo{db: db}
}

func (r *voyageLogRepo) Create(log *model.VoyageLog) error {
	return r.db.Create(log).Error
}

func (r *voyageLogRepo) GetByID(id string) (*model.VoyageLog, error) {
	var log model.VoyageLog
	if err := r.db.First(&log, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *voyageLogRepo) List() ([]model.VoyageLog, error) {
	var logs []model.VoyageLog
	if err := r.db.Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Update 전체 필드 갱신. created_at은 운항 날짜이므로 절대 갱신하지 않는다.
func (r *voyageLogRepo) Update(log *model.VoyageLog) error {
	return r.db.Model(log).Select("*").Omit("id", "created_at").Updates(log).Error
}

func (r *voyageLogRepo) Delete(id string) error {
	return r.db.Delete(&model.VoyageLog{}, "id = ?", id).Error
}
