package crdt

import (
	"reflect"
	"time"

	"github.com/iudanet/recordsync/internal/models"
)

// entry хранит текущее значение атрибута и время его последнего обновления.
type entry struct {
	updatedAt time.Time
	value     any
}

// Accumulator накапливает частичные изменения одной логической записи,
// полученные из разных источников в разные моменты времени,
// и предоставляет объединенное представление по правилу LWW (Last-Write-Wins).
//
// Каждый атрибут разрешается независимо по своему timestamp.
// При равных timestamp побеждает последнее примененное изменение.
//
// Accumulator не потокобезопасен: один экземпляр принадлежит одной записи
// в рамках одного прохода синхронизации.
type Accumulator struct {
	entries map[string]entry
}

// NewAccumulator создает пустой Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		entries: make(map[string]entry),
	}
}

// Store применяет набор изменений, наблюдаемый в момент timestamp.
// Атрибут обновляется, если он еще не записан или записанное значение
// не новее timestamp. Атрибуты, отсутствующие в changes, не затрагиваются.
func (a *Accumulator) Store(timestamp time.Time, changes models.Attributes) {
	for name, value := range changes {
		existing, exists := a.entries[name]

		// Существующее значение новее - не обновляем
		if exists && existing.updatedAt.After(timestamp) {
			continue
		}

		a.entries[name] = entry{updatedAt: timestamp, value: value}
	}
}

// StoreChangeset применяет Changeset. Это алиас для Store.
func (a *Accumulator) StoreChangeset(changeset models.Changeset) {
	a.Store(changeset.Timestamp, changeset.Changes)
}

// Attributes возвращает текущие значения всех когда-либо записанных атрибутов.
func (a *Accumulator) Attributes() models.Attributes {
	result := make(models.Attributes, len(a.entries))
	for name, e := range a.entries {
		result[name] = e.value
	}

	return result
}

// Current возвращает текущие значения только для атрибутов из candidate.
// Значения candidate не используются. Атрибуты, которые никогда не
// записывались, в результат не попадают.
func (a *Accumulator) Current(candidate models.Attributes) models.Attributes {
	result := make(models.Attributes, len(candidate))
	for name := range candidate {
		if e, exists := a.entries[name]; exists {
			result[name] = e.value
		}
	}

	return result
}

// Changed сообщает, отличается ли хотя бы один атрибут, присутствующий
// и в candidate, и в Accumulator. Атрибуты, известные только одной стороне,
// изменением не считаются.
func (a *Accumulator) Changed(candidate models.Attributes) bool {
	for name, value := range candidate {
		e, exists := a.entries[name]
		if !exists {
			continue
		}

		if !reflect.DeepEqual(e.value, value) {
			return true
		}
	}

	return false
}

// UpToDateFor сообщает, что ни один атрибут не обновлялся позже timestamp.
// Пустой Accumulator актуален для любого timestamp.
func (a *Accumulator) UpToDateFor(timestamp time.Time) bool {
	for _, e := range a.entries {
		if e.updatedAt.After(timestamp) {
			return false
		}
	}

	return true
}

// Timestamp возвращает максимальный timestamp среди всех атрибутов.
// Возвращает false, если Accumulator пуст.
func (a *Accumulator) Timestamp() (time.Time, bool) {
	var latest time.Time
	found := false

	for _, e := range a.entries {
		if !found || e.updatedAt.After(latest) {
			latest = e.updatedAt
			found = true
		}
	}

	return latest, found
}

// Len возвращает количество записанных атрибутов.
func (a *Accumulator) Len() int {
	return len(a.entries)
}
