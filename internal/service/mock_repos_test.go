package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"naminara/backend/internal/model"
)

// ── Mock VoyageLogRepository ──

type mockVoyageLogRepo struct {
	logs map[string]*model.VoyageLog
	seq  int
	// 보존된 입력 순서 — List는 created_at 내림차순이지만 동률은 삽입 역순으로 둔다
	order []string
}

func newMockVoyageLogRepo() *mockVoyageLogRepo {
	return &mockVoyageLogRepo{logs: make(map[string]*model.VoyageLog)}
}

func (m *mockVoyageLogRepo) Create(log *model.VoyageLog) error {
	if log.ID == "" {
		m.seq++
		log.ID = fmt.Sprintf("log-%d", m.seq)
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	log.UpdatedAt = time.Now()
	cp := *log
	m.logs[log.ID] = &cp
	m.order = append(m.order, log.ID)
	return nil
}

func (m *mockVoyageLogRepo) GetByID(id string) (*model.VoyageLog, error) {
	if l, ok := m.logs[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVoyageLogRepo) List() ([]model.VoyageLog, error) {
	result := make([]model.VoyageLog, 0, len(m.logs))
	for i := len(m.order) - 1; i >= 0; i-- {
		if l, ok := m.logs[m.order[i]]; ok {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockVoyageLogRepo) Update(log *model.VoyageLog) error {
	existing, ok := m.logs[log.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *log
	cp.CreatedAt = existing.CreatedAt // 운항 날짜 불변
	m.logs[log.ID] = &cp
	return nil
}

func (m *mockVoyageLogRepo) Delete(id string) error {
	delete(m.logs, id)
	return nil
}

// ── Mock ShipRepository ──

type mockShipRepo struct {
	ships map[string]*model.Ship
	seq   int
}

func newMockShipRepo() *mockShipRepo {
	return &mockShipRepo{ships: make(map[string]*model.Ship)}
}

func (m *mockShipRepo) Create(ship *model.Ship) error {
	for _, s := range m.ships {
		if s.Name == ship.Name {
			return fmt.Errorf("duplicate key value violates unique constraint")
		}
	}
	if ship.ID == "" {
		m.seq++
		ship.ID = fmt.Sprintf("ship-%d", m.seq)
	}
	cp := *ship
	m.ships[ship.ID] = &cp
	return nil
}

func (m *mockShipRepo) GetByID(id string) (*model.Ship, error) {
	if s, ok := m.ships[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShipRepo) List() ([]model.Ship, error) {
	result := make([]model.Ship, 0, len(m.ships))
	for _, s := range m.ships {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockShipRepo) Update(ship *model.Ship) error {
	if _, ok := m.ships[ship.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *ship
	m.ships[ship.ID] = &cp
	return nil
}

func (m *mockShipRepo) Delete(id string) error {
	delete(m.ships, id)
	return nil
}

func (m *mockShipRepo) Count() (int64, error) {
	return int64(len(m.ships)), nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(user *model.User) error {
	if user.ID == "" {
		m.seq++
		user.ID = fmt.Sprintf("user-%d", m.seq)
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List() ([]model.User, error) {
	result := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) Update(user *model.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) Delete(id string) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) Count() (int64, error) {
	return int64(len(m.users)), nil
}

// ── Mock NotificationConfigRepository ──

type mockNotificationConfigRepo struct {
	cfg *model.NotificationConfig
}

func newMockNotificationConfigRepo() *mockNotificationConfigRepo {
	return &mockNotificationConfigRepo{}
}

func (m *mockNotificationConfigRepo) Get() (*model.NotificationConfig, error) {
	if m.cfg == nil {
		return &model.NotificationConfig{ID: model.NotificationConfigID}, nil
	}
	cp := *m.cfg
	return &cp, nil
}

func (m *mockNotificationConfigRepo) Save(cfg *model.NotificationConfig) error {
	cfg.ID = model.NotificationConfigID
	cp := *cfg
	m.cfg = &cp
	return nil
}
