package daydata

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/infra/cache"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-AgendaService/pkg/auth"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Service загружает приёмы и блокировки дня врача
type Service struct {
	client       ClinicClient
	cache        Cache
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
// dayCache может быть nil, тогда данные всегда берутся с бэкенда
func NewService(client ClinicClient, dayCache Cache, m Metrics, logger Logger) *Service {
	return &Service{
		client:       client,
		cache:        dayCache,
		metrics:      m,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Get возвращает данные дня из кэша, при промахе загружает с бэкенда
// Запись из кэша отдаётся только вызывающему с тем же токеном, что её загрузил.
// Ошибки кэша не прерывают запрос
func (s *Service) Get(ctx context.Context, doctorID string, date time.Time) (*cache.DayData, error) {
	key := types.DateKey(date)

	if scope := cacheScope(ctx); s.cache != nil && scope != "" {
		data, ok, err := s.cache.GetDay(ctx, scope, doctorID, key)
		switch {
		case err != nil:
			s.lookup("error")
			s.logger.Warn("Get: cache lookup failed for doctor=%s, date=%s: %v", doctorID, key, err)
		case ok:
			s.lookup("hit")
			return data, nil
		default:
			s.lookup("miss")
		}
	}

	return s.Fetch(ctx, doctorID, date)
}

// Fetch загружает данные дня с бэкенда и заменяет запись в кэше целиком
func (s *Service) Fetch(ctx context.Context, doctorID string, date time.Time) (*cache.DayData, error) {
	key := types.DateKey(date)

	// Поколение читается до загрузки: если день инвалидируют во время запроса,
	// сохранённая запись окажется устаревшей и не будет отдана
	scope := cacheScope(ctx)
	useCache := s.cache != nil && scope != ""
	var generation int64
	if useCache {
		gen, err := s.cache.Generation(ctx, doctorID, key)
		if err != nil {
			s.logger.Warn("Fetch: failed to read cache generation for doctor=%s, date=%s: %v", doctorID, key, err)
			useCache = false
		}
		generation = gen
	}

	// Приёмы и блокировки запрашиваются независимо
	var (
		wg                 sync.WaitGroup
		data               cache.DayData
		apptErr, blocksErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		data.Appointments, apptErr = s.client.ListAppointments(ctx, doctorID, date)
	}()
	go func() {
		defer wg.Done()
		data.Blocks, blocksErr = s.client.ListScheduleBlocks(ctx, doctorID, date)
	}()
	wg.Wait()

	if apptErr != nil {
		return nil, s.mapClientError("appointments", doctorID, key, apptErr)
	}
	if blocksErr != nil {
		return nil, s.mapClientError("schedule blocks", doctorID, key, blocksErr)
	}
	data.FetchedAt = s.timeProvider.Now()
	data.Generation = generation

	if useCache {
		if err := s.cache.SetDay(ctx, scope, doctorID, key, data); err != nil {
			s.logger.Warn("Fetch: failed to cache day for doctor=%s, date=%s: %v", doctorID, key, err)
		}
	}

	s.logger.Info("Fetch: loaded %d appointments and %d blocks for doctor=%s, date=%s",
		len(data.Appointments), len(data.Blocks), doctorID, key)
	return &data, nil
}

// Invalidate делает данные дня в кэше недействительными для всех вызывающих
func (s *Service) Invalidate(ctx context.Context, doctorID string, date time.Time) {
	if s.cache == nil {
		return
	}
	key := types.DateKey(date)
	if err := s.cache.InvalidateDay(ctx, doctorID, key); err != nil {
		s.logger.Warn("Invalidate: failed to invalidate day for doctor=%s, date=%s: %v", doctorID, key, err)
	}
}

// cacheScope область кэша вызывающего: хэш его токена
// Без токена данные не кэшируются
func cacheScope(ctx context.Context) string {
	token := auth.TokenFromContext(ctx)
	if token == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *Service) lookup(result string) {
	if s.metrics != nil {
		s.metrics.CacheLookup(result)
	}
}

func (s *Service) mapClientError(what, doctorID, date string, err error) error {
	switch {
	case errors.Is(err, clinicapi.ErrNotFound):
		s.logger.Warn("Fetch: doctor=%s not found while loading %s", doctorID, what)
		return fmt.Errorf("%w: %v", ErrDoctorNotFound, err)
	case errors.Is(err, clinicapi.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, clinicapi.ErrUnavailable):
		s.logger.Error("Fetch: backend unavailable while loading %s for doctor=%s, date=%s: %v", what, doctorID, date, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	default:
		s.logger.Error("Fetch: failed to load %s for doctor=%s, date=%s: %v", what, doctorID, date, err)
		return fmt.Errorf("%w: failed to load %s: %v", ErrInternal, what, err)
	}
}
