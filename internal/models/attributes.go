package models

import (
	"maps"
	"slices"
	"time"
)

// Attributes представляет набор значений атрибутов записи по имени атрибута.
// Имена атрибутов зависят от контекста: локальная схема или удаленная.
type Attributes map[string]any

// Clone возвращает поверхностную копию набора атрибутов.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return Attributes{}
	}
	return maps.Clone(a)
}

// Keys возвращает отсортированный список имен атрибутов.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Changeset представляет частичное обновление записи,
// наблюдаемое в конкретный момент времени.
type Changeset struct {
	Timestamp time.Time  `json:"timestamp"`
	Changes   Attributes `json:"changes"`
}
