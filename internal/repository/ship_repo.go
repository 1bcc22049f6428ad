package repository

import (
	"naminara/backend/internal/model"

	"gorm.io/gorm"
)

// ShipRepository 선박 데이터 접근 인터페이스
type ShipRepository interface {
	Create(ship *model.Ship) error
	GetByID(id string) (*model.Ship, error)
	List() ([]model.Ship, error)
	Update(ship *model.Ship) error
	Delete(id string) error
	Count() (int64, error)
}

type shipRepo struct {
	db *gorm.DB
}

// NewShipRepo 선박 Repository 생성
func NewShipRepo(db *gorm.DB) ShipRepository {
	return &shipRepo{db: db}
}

func (r *shipRepo) Create(ship *model.Ship) error {
	return r.db.Create(ship).Error
}

func (r *shipRepo) GetByID(id string) (*model.Ship, error) {
	var ship model.Ship
	if err := r.db.First(&ship, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ship, nil
}

func (r *shipRepo) List() ([]model.Ship, error) {
	var ships []model.Ship
	if err := r.db.Order("name ASC").Find(&ships).Error; err != nil {
		return nil, err
	}
	return ships, nil
}

func (r *shipRepo) Update(ship *model.Ship) error {
	return r.db.Model(ship).Select("*").Omit("id", "created_at").Updates(ship).Error
}

func (r *shipRepo) Delete(id string) error {
	return r.db.Delete(&model.Ship{}, "id = ?", id).Error
}

func (r *shipRepo) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&model.Ship{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
