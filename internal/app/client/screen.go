package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"oficina/internal/domain/filter"
)

// State - состояние экрана списка
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Loader загружает полный список записей с сервера
type Loader[T any] func(ctx context.Context) ([]T, error)

// Screen держит полный список, текущие фильтры и отфильтрованный список.
//
// Focus перезагружает полный список и заново применяет текущие фильтры.
// Изменение фильтров пересчитывает список синхронно, без запроса к серверу.
// Ответ на запрос, выданный раньше последнего, отбрасывается.
type Screen[T any] struct {
	name string
	cfg  filter.Config[T]
	load Loader[T]
	log  *slog.Logger
	now  func() time.Time

	mu       sync.Mutex
	state    State
	complete []T
	filtered []T
	criteria filter.Criteria
	issued   uint64
	applied  uint64
	inflight int
	loadedAt time.Time
}

// View - снимок экрана для отображения
type View[T any] struct {
	Name     string          `json:"screen"`
	State    State           `json:"-"`
	Criteria filter.Criteria `json:"criteria"`
	Items    []T             `json:"items"`
	Summary  filter.Summary  `json:"summary"`
	Loaded   int             `json:"loaded"`
	LoadedAt time.Time       `json:"loaded_at"`
}

func NewScreen[T any](name string, cfg filter.Config[T], load Loader[T], log *slog.Logger, now func() time.Time) *Screen[T] {
	if now == nil {
		now = time.Now
	}

	return &Screen[T]{
		name:     name,
		cfg:      cfg,
		load:     load,
		log:      log.With(slog.String("screen", name)),
		now:      now,
		state:    StateIdle,
		filtered: []T{},
		criteria: filter.DefaultCriteria(now()),
	}
}

// Focus перезагружает полный список. Ошибка загрузки только логируется:
// экран остается на последнем успешно загруженном списке.
func (s *Screen[T]) Focus(ctx context.Context) {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.inflight++
	s.state = StateLoading
	s.mu.Unlock()

	items, err := s.load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight--
	if s.inflight == 0 {
		s.state = StateReady
	}

	if err != nil {
		s.log.Warn("Не удалось загрузить список", "error", err, "seq", seq)
		return
	}

	// применяется только ответ на последний выданный запрос
	if seq < s.issued || seq <= s.applied {
		s.log.Debug("Отброшен устаревший ответ", "seq", seq, "issued", s.issued, "applied", s.applied)
		return
	}

	s.applied = seq
	s.complete = items
	s.loadedAt = s.now()
	s.refilter()

	s.log.Debug("Список загружен",
		"seq", seq,
		"loaded", len(items),
		"filtered", len(s.filtered),
	)
}

// SetQuery меняет текстовый фильтр
func (s *Screen[T]) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria.Query = query
	s.refilter()
}

// SetMonth меняет фильтр месяца
func (s *Screen[T]) SetMonth(month filter.Month) error {
	if !month.Valid() {
		return fmt.Errorf("%w: %d", filter.ErrInvalidMonth, int(month))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria.Month = month
	s.refilter()
	return nil
}

// SetDay меняет фильтр дня. Значение хранится как введено.
func (s *Screen[T]) SetDay(day string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria.Day = day
	s.refilter()
}

// SetCriteria заменяет все фильтры сразу
func (s *Screen[T]) SetCriteria(crit filter.Criteria) error {
	if !crit.Month.Valid() {
		return fmt.Errorf("%w: %d", filter.ErrInvalidMonth, int(crit.Month))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = crit
	s.refilter()
	return nil
}

// Find ищет запись в полном списке
func (s *Screen[T]) Find(match func(T) bool) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.complete {
		if match(item) {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// State возвращает текущее состояние экрана
func (s *Screen[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Snapshot возвращает копию отфильтрованного списка и агрегаты
func (s *Screen[T]) Snapshot() View[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]T, len(s.filtered))
	copy(items, s.filtered)

	return View[T]{
		Name:     s.name,
		State:    s.state,
		Criteria: s.criteria,
		Items:    items,
		Summary:  filter.Summarize(s.cfg, items),
		Loaded:   len(s.complete),
		LoadedAt: s.loadedAt,
	}
}

// refilter вызывается под s.mu
func (s *Screen[T]) refilter() {
	s.filtered = filter.Apply(s.cfg, s.complete, s.criteria, s.now())
}
