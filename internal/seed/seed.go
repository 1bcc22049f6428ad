// Package seed 초기 운영 데이터 적재.
// 선박/직원 테이블이 비어 있을 때만 기본 데이터를 넣는다 — 재실행해도 중복되지 않는다.
package seed

import (
	"go.uber.org/zap"

	"naminara/backend/internal/model"
	"naminara/backend/internal/repository"
)

func strPtr(s string) *string { return &s }

var initialShips = []model.Ship{
	{Name: "탐나라호", Capacity: 300, Type: "크루즈"},
	{Name: "아일래나호", Capacity: 200, Type: "여객선"},
	{Name: "가우디호", Capacity: 100, Type: "화물선"},
	{Name: "인어공주호", Capacity: 100, Type: "여객선"},
}

var initialUsers = []model.User{
	{Name: "이영희", Contact: "010-1111-0001", Role: model.RoleAdmin, JoinDate: "2019-03-01"},
	{Name: "홍길동", Contact: "010-1111-0002", Role: model.RoleCaptain, JoinDate: "2020-05-11", AssignedShip: strPtr("탐나라호"), TelegramChatID: strPtr("12345678")},
	{Name: "최지우", Contact: "010-1111-0003", Role: model.RoleCaptain, JoinDate: "2021-02-15", AssignedShip: strPtr("아일래나호")},
	{Name: "강하늘", Contact: "010-1111-0004", Role: model.RoleCaptain, JoinDate: "2022-07-01", AssignedShip: strPtr("가우디호")},
	{Name: "김철수", Contact: "010-2222-0001", Role: model.RoleChiefEngineer, JoinDate: "2020-08-20", AssignedShip: strPtr("탐나라호")},
	{Name: "정우성", Contact: "010-2222-0002", Role: model.RoleChiefEngineer, JoinDate: "2021-11-03", AssignedShip: strPtr("아일래나호"), TelegramChatID: strPtr("87654321")},
	{Name: "한효주", Contact: "010-2222-0003", Role: model.RoleChiefEngineer, JoinDate: "2023-01-09", AssignedShip: strPtr("가우디호")},
	{Name: "박민수", Contact: "010-3333-0001", Role: model.RoleWorker, JoinDate: "2022-04-18"},
	{Name: "이광수", Contact: "010-3333-0002", Role: model.RoleWorker, JoinDate: "2023-06-12"},
	{Name: "유재석", Contact: "010-3333-0003", Role: model.RoleWorker, JoinDate: "2024-02-26"},
}

// Run 비어 있는 테이블에 기본 데이터를 적재한다.
func Run(repo *repository.Repository, logger *zap.Logger) error {
	shipCount, err := repo.Ship.Count()
	if err != nil {
		return err
	}
	if shipCount == 0 {
		for i := range initialShips {
			ship := initialShips[i]
			if err := repo.Ship.Create(&ship); err != nil {
				return err
			}
		}
		logger.Info("기본 선박 데이터 적재", zap.Int("count", len(initialShips)))
	}

	userCount, err := repo.User.Count()
	if err != nil {
		return err
	}
	if userCount == 0 {
		for i := range initialUsers {
			user := initialUsers[i]
			if err := repo.User.Create(&user); err != nil {
				return err
			}
		}
		logger.Info("기본 직원 데이터 적재", zap.Int("count", len(initialUsers)))
	}

	return nil
}
