package service

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"naminara/backend/internal/model"
	"naminara/backend/internal/repository"
	"naminara/backend/internal/voyage"
)

// ── 추출 모듈 업무 오류 ──

var (
	ErrExportGenerateFail = errors.New("엑셀 파일 생성에 실패했습니다")
)

// ExportService 운항일지 엑셀 추출 업무 인터페이스
//
// 설계 설명:
//   - 목록 화면에서 선택된 일지 ID들을 받아 주어진 순서 그대로 추출한다.
//     존재하지 않는 ID는 조용히 건너뛴다.
//   - 선택이 비어 있어도 머리글만 있는 파일을 정상 생성한다.
//   - bytes.Buffer로 반환하며 Handler가 응답 헤더를 설정한 뒤 기록한다.
type ExportService interface {
	// ExportLogs 지정된 일지들을 xlsx로 생성. buf, 권장 파일명, error 반환.
	ExportLogs(ids []string, now time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

// NewExportService ExportService 인스턴스 생성
func NewExportService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, loc: loc, logger: logger}
}

const exportSheetName = "운항일지 리포트"

func (s *exportService) ExportLogs(ids []string, now time.Time) (*bytes.Buffer, string, error) {
	logs, err := s.repo.VoyageLog.List()
	if err != nil {
		s.logger.Error("추출용 일지 조회 실패", zap.Error(err))
		return nil, "", err
	}

	byID := make(map[string]model.VoyageLog, len(logs))
	for _, log := range logs {
		byID[log.ID] = log
	}
	selected := make([]model.VoyageLog, 0, len(ids))
	for _, id := range ids {
		if log, ok := byID[id]; ok {
			selected = append(selected, log)
		}
	}
	rows := voyage.ExportRows(selected, s.loc)

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 열 너비
	for i, width := range voyage.ExportColumnWidths() {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(exportSheetName, col, col, width)
	}

	// 머리글
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1E40AF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	header := voyage.ExportHeader()
	for i, title := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheetName, cell, title)
	}
	firstCell, _ := excelize.CoordinatesToCellName(1, 1)
	lastCell, _ := excelize.CoordinatesToCellName(len(header), 1)
	f.SetCellStyle(exportSheetName, firstCell, lastCell, headerStyle)

	// 데이터 행
	for r, row := range rows {
		for c, v := range row.Values() {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(exportSheetName, cell, v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("엑셀 기록 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("운항일지_추출_%s.xlsx", now.In(s.loc).Format("20060102"))
	s.logger.Info("운항일지 추출", zap.Int("rows", len(rows)), zap.String("filename", filename))
	return buf, filename, nil
}
