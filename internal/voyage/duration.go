// Package voyage 운항 일지의 순수 파생 연산 모음.
//
// 이 패키지는 상태를 갖지 않는다: 모든 함수는 호출자가 넘긴 일지 스냅샷과
// 시각/타임존을 입력으로 받아 새 값을 돌려줄 뿐, 입력을 변경하지 않는다.
// "어느 날짜에 속하는가" 판단은 전부 LocalDateKey 하나로 수렴시킨다
// (UTC/로컬 불일치가 호출부마다 흩어지는 것을 막기 위함).
package voyage

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKeyLayout 로컬 날짜 키 포맷 (YYYY-MM-DD)
const DateKeyLayout = "2006-01-02"

// parseHHMM "HH:MM" 문자열을 자정 기준 분으로 변환한다.
// 포맷 검증은 하지 않는다 — 잘 맞지 않는 입력에 대한 결과는 무의미할 수 있으며,
// 올바른 "HH:MM"만 저장하는 책임은 폼 검증(호출자) 쪽에 있다.
func parseHHMM(s string) int {
	h, m, _ := strings.Cut(s, ":")
	hh, _ := strconv.Atoi(h)
	mm, _ := strconv.Atoi(m)
	return hh*60 + mm
}

// ElapsedMinutes 출발~도착 소요 시간을 분 단위로 계산한다.
// 둘 중 하나라도 비어 있으면 0. 도착이 출발보다 수치상 앞서면
// 자정을 한 번 넘긴 것으로 보고 1440분을 더한다(하루 초과 운항은 가정하지 않음).
func ElapsedMinutes(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	diff := parseHHMM(end) - parseHHMM(start)
	if diff < 0 {
		diff += 1440
	}
	return diff
}

// ElapsedLabel 소요 시간을 한글 라벨로 포맷한다. 둘 중 하나라도 비어 있으면 "".
//
// 기존 엑셀 추출/일계표와의 호환을 위해 포맷 규칙 자체가 계약이다:
//
//	시·분 모두 있으면 "2시간 30분", 분이 0이면 "2시간", 시가 0이면 "45분"
//	(0분짜리 운항도 "0분"으로 표기)
func ElapsedLabel(start, end string) string {
	if start == "" || end == "" {
		return ""
	}
	total := ElapsedMinutes(start, end)
	h := total / 60
	m := total % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%d시간 %d분", h, m)
	case h > 0:
		return fmt.Sprintf("%d시간", h)
	default:
		return fmt.Sprintf("%d분", m)
	}
}

// LocalDateKey 타임스탬프를 주어진 타임존의 달력 날짜 키(YYYY-MM-DD)로 변환한다.
// createdAt은 UTC로 저장되지만 "어느 날짜의 운항인가"는 보는 쪽의 로컬 달력을 따른다.
func LocalDateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateKeyLayout)
}

// ClockHHMM 현재 시각을 주어진 타임존의 "HH:MM" 문자열로 변환한다.
// 0 채움 24시간제이므로 출발 시각과의 사전식 비교가 시간 비교와 일치한다.
func ClockHHMM(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}
