package repository

import "gorm.io/gorm"

// Repository 모든 Repository의 집약 진입점
type Repository struct {
	VoyageLog          VoyageLogRepository
	Ship               ShipRepository
	User               UserRepository
	NotificationConfig NotificationConfigRepository
}

// NewRepository Repository 집약 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		VoyageLog:          NewVoyageLogRepo(db),
		Ship:               NewShipRepo(db),
		User:               NewUserRepo(db),
		NotificationConfig: NewNotificationConfigRepo(db),
	}
}
