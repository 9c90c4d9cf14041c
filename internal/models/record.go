package models

import "time"

// LocalRecord представляет запись в локальной базе данных.
type LocalRecord struct {
	UpdatedAt  time.Time  `json:"updated_at"`  // UpdatedAt время последнего локального изменения
	SyncedAt   time.Time  `json:"synced_at"`   // SyncedAt отметка последней синхронизации (zero = никогда)
	Attributes Attributes `json:"attributes"`  // Attributes значения в локальной схеме
	ID         string     `json:"id"`          // ID локальный идентификатор записи (UUID)
	ObjectType string     `json:"object_type"` // ObjectType тип локальной модели
	RemoteID   string     `json:"remote_id"`   // RemoteID идентификатор связанной удаленной записи (пусто = не связана)
}

// Clone создает копию записи с независимым набором атрибутов
func (r *LocalRecord) Clone() *LocalRecord {
	clone := *r
	clone.Attributes = r.Attributes.Clone()
	return &clone
}

// IsLinked сообщает, связана ли запись с удаленной записью.
func (r *LocalRecord) IsLinked() bool {
	return r.RemoteID != ""
}

// RemoteRecord представляет снимок записи удаленной системы.
type RemoteRecord struct {
	ModifiedAt time.Time  `json:"modified_at"` // ModifiedAt время последнего изменения на удаленной стороне
	Attributes Attributes `json:"attributes"`  // Attributes значения в удаленной схеме
	ID         string     `json:"id"`          // ID идентификатор в удаленной системе
	ObjectType string     `json:"object_type"` // ObjectType тип удаленного объекта
}

// Clone создает копию снимка с независимым набором атрибутов
func (r *RemoteRecord) Clone() *RemoteRecord {
	clone := *r
	clone.Attributes = r.Attributes.Clone()
	return &clone
}

// SyncResult содержит результаты одного прохода синхронизации
type SyncResult struct {
	LocalRecords   int // количество собранных локальных записей
	RemoteRecords  int // количество собранных удаленных записей
	LocalUpdated   int // количество обновленных локальных записей
	RemoteUpdated  int // количество обновленных удаленных записей
	LocalCreated   int // количество созданных локальных записей
	RemoteCreated  int // количество созданных удаленных записей
	UpToDate       int // количество пар, уже отраженных предыдущим проходом
	SkippedRecords int // количество пропущенных записей (ошибки)
}

// Add суммирует результаты двух проходов.
func (r *SyncResult) Add(other *SyncResult) {
	r.LocalRecords += other.LocalRecords
	r.RemoteRecords += other.RemoteRecords
	r.LocalUpdated += other.LocalUpdated
	r.RemoteUpdated += other.RemoteUpdated
	r.LocalCreated += other.LocalCreated
	r.RemoteCreated += other.RemoteCreated
	r.UpToDate += other.UpToDate
	r.SkippedRecords += other.SkippedRecords
}
