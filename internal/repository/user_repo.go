package repository

import (
	"naminara/backend/internal/model"

	"gorm.io/gorm"
)

// UserRepository 직원 데이터 접근 인터페이스
type UserRepository interface {
	Create(user *model.User) error
	GetByID(id string) (*model.User, error)
	List() ([]model.User, error)
	Update(user *model.User) error
	Delete(id string) error
	Count() (int64, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 직원 Repository 생성
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) GetByID(id string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) Update(user *model.User) error {
	return r.db.Model(user).Select("*").Omit("id", "created_at").Updates(user).Error
}

func (r *userRepo) Delete(id string) error {
	return r.db.Delete(&model.User{}, "id = ?", id).Error
}

func (r *userRepo) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&model.User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
