package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/recordsync/internal/models"
)

// FileStore - удаленная система записей, хранимая в JSON файле.
// Используется для локальных прогонов синхронизации и в тестах.
type FileStore struct {
	records map[string]*models.RemoteRecord // map[objectType + "/" + id]record
	now     func() time.Time
	path    string
	mu      sync.RWMutex
}

// fileContents - формат JSON файла FileStore
type fileContents struct {
	Records []*models.RemoteRecord `json:"records"`
}

// NewFileStore создает пустое хранилище, не связанное с файлом.
func NewFileStore(now func() time.Time) *FileStore {
	return &FileStore{
		records: make(map[string]*models.RemoteRecord),
		now:     now,
	}
}

// OpenFileStore загружает хранилище из файла.
// Отсутствующий файл означает пустое хранилище.
func OpenFileStore(path string) (*FileStore, error) {
	store := NewFileStore(time.Now)
	store.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("failed to read remote store: %w", err)
	}

	var contents fileContents
	if err := json.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal remote store: %w", err)
	}

	for _, record := range contents.Records {
		store.records[recordKey(record.ObjectType, record.ID)] = record
	}

	return store, nil
}

// Save записывает текущее состояние в файл, из которого хранилище было открыто
func (s *FileStore) Save() error {
	if s.path == "" {
		return nil
	}

	s.mu.RLock()
	contents := fileContents{Records: s.sortedRecords()}
	data, err := json.MarshalIndent(contents, "", "  ")
	s.mu.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal remote store: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write remote store: %w", err)
	}

	return nil
}

// FetchSince возвращает записи типа objectType, измененные после since
func (s *FileStore) FetchSince(ctx context.Context, objectType string, since time.Time) ([]*models.RemoteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.RemoteRecord, 0)
	for _, record := range s.sortedRecords() {
		if record.ObjectType == objectType && record.ModifiedAt.After(since) {
			result = append(result, record.Clone())
		}
	}

	return result, nil
}

// Get возвращает запись по ID
func (s *FileStore) Get(ctx context.Context, objectType, id string) (*models.RemoteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.records[recordKey(objectType, id)]
	if !exists {
		return nil, ErrRecordNotFound
	}

	return record.Clone(), nil
}

// Create создает запись с новым ID
func (s *FileStore) Create(ctx context.Context, objectType string, attributes models.Attributes) (*models.RemoteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &models.RemoteRecord{
		ID:         uuid.New().String(),
		ObjectType: objectType,
		Attributes: attributes.Clone(),
		ModifiedAt: s.now().UTC(),
	}
	s.records[recordKey(objectType, record.ID)] = record

	return record.Clone(), nil
}

// Update частично обновляет запись
func (s *FileStore) Update(ctx context.Context, objectType, id string, attributes models.Attributes) (*models.RemoteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.records[recordKey(objectType, id)]
	if !exists {
		return nil, ErrRecordNotFound
	}

	if record.Attributes == nil {
		record.Attributes = models.Attributes{}
	}
	maps.Copy(record.Attributes, attributes)
	record.ModifiedAt = s.now().UTC()

	return record.Clone(), nil
}

// Put сохраняет снимок как есть, включая ModifiedAt.
// Используется для заполнения хранилища внешними изменениями.
func (s *FileStore) Put(record *models.RemoteRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[recordKey(record.ObjectType, record.ID)] = record.Clone()
}

// sortedRecords возвращает записи, упорядоченные по ключу. Вызывается под блокировкой.
func (s *FileStore) sortedRecords() []*models.RemoteRecord {
	keys := slices.Sorted(maps.Keys(s.records))

	result := make([]*models.RemoteRecord, 0, len(keys))
	for _, key := range keys {
		result = append(result, s.records[key])
	}

	return result
}

func recordKey(objectType, id string) string {
	return objectType + "/" + id
}
