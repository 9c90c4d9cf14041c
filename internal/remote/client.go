package remote

import (
	"context"
	"errors"
	"time"

	"github.com/iudanet/recordsync/internal/models"
)

//go:generate moq -out client_mock.go . Client

// ErrRecordNotFound indicates that remote record was not found
var ErrRecordNotFound = errors.New("remote record not found")

// Client определяет доступ к удаленной системе записей
type Client interface {
	// FetchSince возвращает записи типа objectType, измененные после since
	FetchSince(ctx context.Context, objectType string, since time.Time) ([]*models.RemoteRecord, error)

	// Get возвращает запись по ID
	// Возвращает ErrRecordNotFound, если запись не найдена
	Get(ctx context.Context, objectType, id string) (*models.RemoteRecord, error)

	// Create создает запись и возвращает ее с присвоенным ID и ModifiedAt
	Create(ctx context.Context, objectType string, attributes models.Attributes) (*models.RemoteRecord, error)

	// Update частично обновляет запись и возвращает ее новое состояние
	// Возвращает ErrRecordNotFound, если запись не найдена
	Update(ctx context.Context, objectType, id string, attributes models.Attributes) (*models.RemoteRecord, error)
}
