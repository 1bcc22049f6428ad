package voyage

import (
	"strings"
	"time"

	"naminara/backend/internal/model"
)

// Live 전체 일지 중 "현재 운항 중"인 기록만 추려 입력 순서 그대로 반환한다.
//
// 운항 중 판정 조건(모두 충족):
//  1. 임시저장 상태 (IsDraft=true)
//  2. 오늘 생성된 기록 — 전날 버려진 임시저장이 계속 운항 중으로 노출되는 것을
//     막기 위한 하드 날짜 경계. 다른 조건과 무관하게 과거 날짜 기록은 제외한다.
//  3. 출발 시각이 입력되어 있고 현재 시각보다 이르거나 같음
//  4. 도착 시각 미입력(빈 문자열 또는 공백만)
//
// 순수 투영이므로 시각이나 일지 집합이 바뀔 때마다 다시 평가해야 한다.
// 도착 시각이 채워져 있어도 최종 제출(IsDraft=false) 전까지는 운항 중으로 본다는
// 규칙은 조건 4가 아닌 조건 1이 담당한다 — 도착만 적어 둔 임시저장은 조건 4에서
// 걸러지지만, 그 상태는 제출 대기 중인 일시적 상태일 뿐이다.
func Live(logs []model.VoyageLog, now time.Time, loc *time.Location) []model.VoyageLog {
	today := LocalDateKey(now, loc)
	clock := ClockHHMM(now, loc)

	live := make([]model.VoyageLog, 0, len(logs))
	for _, log := range logs {
		if !log.IsDraft {
			continue
		}
		if LocalDateKey(log.CreatedAt, loc) != today {
			continue
		}
		if log.DepartureTime == "" || log.DepartureTime > clock {
			continue
		}
		if strings.TrimSpace(log.ArrivalTime) != "" {
			continue
		}
		live = append(live, log)
	}
	return live
}
