package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/model"
	"naminara/backend/internal/repository"
	"naminara/backend/internal/voyage"
	"naminara/backend/pkg/redis"
)

// ── 운항일지 모듈 업무 오류 ──

var (
	ErrLogNotFound         = errors.New("존재하지 않는 운항일지입니다")
	ErrNotLogOwner         = errors.New("본인이 작성한 일지만 수정할 수 있습니다")
	ErrDraftBufferDisabled = errors.New("임시 폼 버퍼 저장소가 비활성 상태입니다")
	ErrDraftBufferNotFound = errors.New("저장된 임시 폼이 없습니다")
)

// VoyageLogService 운항일지 업무 인터페이스
//
// 설계 설명:
//   - 저장은 두 단계다: 임시저장(is_draft=true, 운항 시작)과 최종 저장
//     (is_draft=false, 운항 종료). 각 저장은 해당하는 텔레그램 알림을 발송한다.
//   - 알림 발송 실패는 저장을 실패시키지 않는다(최선 노력).
//   - CreatedAt은 운항 날짜의 기준이므로 수정 시에도 절대 바뀌지 않는다.
//   - 선장은 본인 작성 일지만 조회/수정할 수 있다.
//   - 작성 중 폼 상태는 Redis 버퍼에 따로 보관해 브라우저를 닫아도 복원된다.
type VoyageLogService interface {
	// List 필터·검색·상태 탭을 적용한 목록과 요약 집계
	List(viewerName, viewerRole string, req *dto.LogFilterRequest) (*dto.LogListResponse, error)
	GetByID(id string) (*dto.VoyageLogResponse, error)
	// Create 새 일지 작성. 작성자(선장)의 이름이 captain_name으로 고정된다.
	Create(ctx context.Context, captainName string, req *dto.SaveVoyageLogRequest) (*dto.VoyageLogResponse, error)
	// Update 일지 수정. 선장은 본인 일지만, 관리자는 전체를 수정할 수 있다.
	Update(ctx context.Context, id, viewerName, viewerRole string, req *dto.SaveVoyageLogRequest) (*dto.VoyageLogResponse, error)
	Delete(id string) error
	// Live 현재 시각 기준 실시간 운항 중인 일지 목록
	Live(now time.Time) ([]dto.VoyageLogResponse, error)

	// 작성 중 폼 버퍼 (Redis, 48시간 보존)
	SaveDraftBuffer(ctx context.Context, userID string, payload []byte) error
	GetDraftBuffer(ctx context.Context, userID string) ([]byte, error)
	ClearDraftBuffer(ctx context.Context, userID string) error
}

type voyageLogService struct {
	repo     *repository.Repository
	rdb      *redis.Client
	notifier NotificationService
	loc      *time.Location
	logger   *zap.Logger
}

// NewVoyageLogService VoyageLogService 인스턴스 생성. rdb는 nil 허용.
func NewVoyageLogService(
	repo *repository.Repository,
	rdb *redis.Client,
	notifier NotificationService,
	loc *time.Location,
	logger *zap.Logger,
) VoyageLogService {
	return &voyageLogService{repo: repo, rdb: rdb, notifier: notifier, loc: loc, logger: logger}
}

func (s *voyageLogService) List(viewerName, viewerRole string, req *dto.LogFilterRequest) (*dto.LogListResponse, error) {
	logs, err := s.repo.VoyageLog.List()
	if err != nil {
		s.logger.Error("일지 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	filter := voyage.Filter{
		ViewerName: viewerName,
		ViewerRole: viewerRole,
		Search:     req.Search,
		Ship:       req.Ship,
		Date:       req.Date,
		Status:     req.Status,
	}
	filtered := filter.Apply(logs, s.loc)
	summary := voyage.Summarize(filtered)

	return &dto.LogListResponse{
		Logs:            dto.ToVoyageLogResponses(filtered),
		TripCount:       summary.TripCount,
		TotalPassengers: summary.TotalPassengers,
		TotalMinutes:    summary.TotalMinutes,
		DurationLabel:   summary.DurationLabel(),
	}, nil
}

func (s *voyageLogService) GetByID(id string) (*dto.VoyageLogResponse, error) {
	log, err := s.repo.VoyageLog.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	resp := dto.ToVoyageLogResponse(log)
	return &resp, nil
}

func (s *voyageLogService) Create(ctx context.Context, captainName string, req *dto.SaveVoyageLogRequest) (*dto.VoyageLogResponse, error) {
	log := &model.VoyageLog{
		ShipName:         req.ShipName,
		CaptainName:      captainName,
		ChiefEngineer:    req.ChiefEngineer,
		CrewMembers:      req.CrewMembers,
		OperationCourse:  req.OperationCourse,
		DepartureTime:    req.DepartureTime,
		ArrivalTime:      req.ArrivalTime,
		PassengerCount:   req.PassengerCount,
		FuelStatus:       req.FuelStatus,
		Notes:            req.Notes,
		WeatherMorning:   weatherOrDefault(req.WeatherMorning),
		WeatherAfternoon: weatherOrDefault(req.WeatherAfternoon),
		IsDraft:          req.IsDraft,
	}
	if err := s.repo.VoyageLog.Create(log); err != nil {
		s.logger.Error("일지 등록 실패", zap.Error(err))
		return nil, err
	}

	s.logger.Info("운항일지 등록",
		zap.String("log_id", log.ID),
		zap.String("ship", log.ShipName),
		zap.Bool("is_draft", log.IsDraft))

	s.notifyVoyage(ctx, log)

	resp := dto.ToVoyageLogResponse(log)
	return &resp, nil
}

func (s *voyageLogService) Update(ctx context.Context, id, viewerName, viewerRole string, req *dto.SaveVoyageLogRequest) (*dto.VoyageLogResponse, error) {
	log, err := s.repo.VoyageLog.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	if viewerRole == model.RoleCaptain && log.CaptainName != viewerName {
		return nil, ErrNotLogOwner
	}

	log.ShipName = req.ShipName
	log.ChiefEngineer = req.ChiefEngineer
	log.CrewMembers = req.CrewMembers
	log.OperationCourse = req.OperationCourse
	log.DepartureTime = req.DepartureTime
	log.ArrivalTime = req.ArrivalTime
	log.PassengerCount = req.PassengerCount
	log.FuelStatus = req.FuelStatus
	log.Notes = req.Notes
	log.WeatherMorning = weatherOrDefault(req.WeatherMorning)
	log.WeatherAfternoon = weatherOrDefault(req.WeatherAfternoon)
	log.IsDraft = req.IsDraft

	if err := s.repo.VoyageLog.Update(log); err != nil {
		s.logger.Error("일지 수정 실패", zap.String("log_id", id), zap.Error(err))
		return nil, err
	}

	s.notifyVoyage(ctx, log)

	resp := dto.ToVoyageLogResponse(log)
	return &resp, nil
}

func (s *voyageLogService) Delete(id string) error {
	if _, err := s.repo.VoyageLog.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLogNotFound
		}
		return err
	}
	if err := s.repo.VoyageLog.Delete(id); err != nil {
		s.logger.Error("일지 삭제 실패", zap.String("log_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("운항일지 삭제", zap.String("log_id", id))
	return nil
}

func (s *voyageLogService) Live(now time.Time) ([]dto.VoyageLogResponse, error) {
	logs, err := s.repo.VoyageLog.List()
	if err != nil {
		return nil, err
	}
	return dto.ToVoyageLogResponses(voyage.Live(logs, now, s.loc)), nil
}

// notifyVoyage 저장 종류에 맞는 알림 발송. 실패는 로그만 남긴다.
func (s *voyageLogService) notifyVoyage(ctx context.Context, log *model.VoyageLog) {
	_, err := s.notifier.NotifyVoyage(ctx, log, log.IsDraft)
	if err != nil && !errors.Is(err, ErrBotNotConfigured) && !errors.Is(err, ErrNoRecipients) {
		s.logger.Warn("운항 알림 발송 실패", zap.String("log_id", log.ID), zap.Error(err))
	}
}

// ── 작성 중 폼 버퍼 ──

func (s *voyageLogService) SaveDraftBuffer(ctx context.Context, userID string, payload []byte) error {
	if s.rdb == nil {
		return ErrDraftBufferDisabled
	}
	return s.rdb.SaveDraftBuffer(ctx, userID, payload)
}

func (s *voyageLogService) GetDraftBuffer(ctx context.Context, userID string) ([]byte, error) {
	if s.rdb == nil {
		return nil, ErrDraftBufferDisabled
	}
	payload, err := s.rdb.GetDraftBuffer(ctx, userID)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return nil, ErrDraftBufferNotFound
		}
		return nil, err
	}
	return payload, nil
}

func (s *voyageLogService) ClearDraftBuffer(ctx context.Context, userID string) error {
	if s.rdb == nil {
		return ErrDraftBufferDisabled
	}
	return s.rdb.DeleteDraftBuffer(ctx, userID)
}

// weatherOrDefault 미입력 기상은 "좋음"으로 채운다.
func weatherOrDefault(w string) string {
	if w == "" {
		return model.DefaultWeather
	}
	return w
}
