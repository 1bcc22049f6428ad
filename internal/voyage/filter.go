package voyage

import (
	"sort"
	"strings"
	"time"

	"naminara/backend/internal/model"
)

// 상태 탭 값
const (
	StatusAll       = "all"
	StatusCompleted = "completed"
	StatusDraft     = "draft"
)

// Filter 일지 목록 필터 명세. 모든 조건은 AND로 결합된다.
type Filter struct {
	ViewerName string // 조회자 이름 — 선장 가시성 판정에 사용
	ViewerRole string // 조회자 역할
	Search     string // 대소문자 무시 부분 일치 (선장/선박/코스/비고)
	Ship       string // 선박명 정확 일치, 빈 값이면 통과
	Date       string // YYYY-MM-DD, 빈 값이면 통과
	Status     string // all | completed | draft
}

// Apply 필터를 적용하고 createdAt 내림차순(최신 우선)으로 정렬한 새 슬라이스를 반환한다.
//
// 선장 역할은 자신의 일지만 볼 수 있다 — 이는 다른 모든 필터보다 먼저 적용되는
// 하드 가시성 경계다. 입력은 변경하지 않으며, 같은 입력에 같은 필터를 몇 번을
// 적용해도 동일한 결과가 나온다(동일 createdAt 타이는 안정 정렬로 입력 순서 유지).
func (f Filter) Apply(logs []model.VoyageLog, loc *time.Location) []model.VoyageLog {
	search := strings.ToLower(f.Search)

	out := make([]model.VoyageLog, 0, len(logs))
	for _, log := range logs {
		if f.ViewerRole == model.RoleCaptain && log.CaptainName != f.ViewerName {
			continue
		}
		if search != "" && !matchesSearch(log, search) {
			continue
		}
		if f.Ship != "" && log.ShipName != f.Ship {
			continue
		}
		if f.Date != "" && LocalDateKey(log.CreatedAt, loc) != f.Date {
			continue
		}
		switch f.Status {
		case StatusCompleted:
			if log.IsDraft {
				continue
			}
		case StatusDraft:
			if !log.IsDraft {
				continue
			}
		}
		out = append(out, log)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func matchesSearch(log model.VoyageLog, search string) bool {
	return strings.Contains(strings.ToLower(log.CaptainName), search) ||
		strings.Contains(strings.ToLower(log.ShipName), search) ||
		strings.Contains(strings.ToLower(log.OperationCourse), search) ||
		strings.Contains(strings.ToLower(log.Notes), search)
}
