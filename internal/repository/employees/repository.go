package employees

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

// StorageKey — ключ, под которым коллекция хранится целиком в виде JSON-массива.
const StorageKey = "employees"

type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Repository — упорядоченная коллекция сотрудников в памяти. Единственная
// операция записи — добавление; после каждого добавления коллекция
// перезаписывается в хранилище целиком, если оно задано.
type Repository struct {
	mu    sync.RWMutex
	items []dto.Employee
	ids   map[string]struct{}

	store KVStore
	newID func() string
	log   zerolog.Logger
}

// NewRepository создаёт пустой репозиторий. store может быть nil: тогда
// коллекция живёт только в памяти.
func NewRepository(store KVStore, log zerolog.Logger) *Repository {
	return &Repository{
		ids:   make(map[string]struct{}),
		store: store,
		newID: func() string { return uuid.New().String() },
		log:   log.With().Str("component", "EmployeesRepository").Logger(),
	}
}

// Load читает сохранённую коллекцию. Отсутствующие или повреждённые данные
// не являются ошибкой: коллекция остаётся пустой, событие логируется.
func (r *Repository) Load(ctx context.Context) {
	if r.store == nil {
		return
	}

	data, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			r.log.Info().Msg("no stored employees, starting empty")
			return
		}
		r.log.Warn().Err(err).Msg("read stored employees failed, starting empty")
		return
	}

	var items []dto.Employee
	if err := json.Unmarshal(data, &items); err != nil {
		r.log.Warn().Err(err).Int("bytes", len(data)).Msg("stored employees are corrupt, starting empty")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = r.items[:0]
	r.ids = make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := r.ids[it.ID]; dup || it.ID == "" {
			r.log.Warn().Str("employee_id", it.ID).Msg("skip stored employee with empty or duplicate id")
			continue
		}
		r.ids[it.ID] = struct{}{}
		r.items = append(r.items, it)
	}

	r.log.Info().Int("count", len(r.items)).Msg("stored employees loaded")
}

// Seed заменяет коллекцию заранее подготовленными записями без записи в хранилище.
func (r *Repository) Seed(items []dto.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]dto.Employee, 0, len(items))
	r.ids = make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := r.ids[it.ID]; dup {
			continue
		}
		r.ids[it.ID] = struct{}{}
		r.items = append(r.items, it)
	}
}

// Create присваивает черновику уникальный идентификатор и добавляет запись в
// конец коллекции. Ошибка записи в хранилище логируется и не отменяет добавление.
func (r *Repository) Create(ctx context.Context, d dto.EmployeeDraft) dto.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for {
		if _, taken := r.ids[id]; !taken {
			break
		}
		id = r.newID()
	}

	employee := d.WithID(id)
	r.ids[id] = struct{}{}
	r.items = append(r.items, employee)

	if err := r.persist(ctx); err != nil {
		r.log.Error().Err(err).Str("employee_id", id).Msg("persist employees failed")
	}

	return employee
}

func (r *Repository) persist(ctx context.Context) error {
	if r.store == nil {
		return nil
	}

	data, err := json.Marshal(r.items)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.store.Put(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("store.Put: %w", err)
	}
	return nil
}

// List возвращает копию коллекции в порядке добавления.
func (r *Repository) List() []dto.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dto.Employee, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Repository) Get(id string) (*dto.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.ids[id]; !ok {
		return nil, dto.ErrNotFound
	}

	for i := range r.items {
		if r.items[i].ID == id {
			e := r.items[i]
			return &e, nil
		}
	}
	return nil, dto.ErrNotFound
}

func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
