package mapping

import "github.com/iudanet/recordsync/internal/models"

// AttributeReader читает значения именованных атрибутов с записи.
// Чтение должно быть синхронным и без побочных эффектов.
type AttributeReader[R any] interface {
	ReadAttributes(record R, names []string) models.Attributes
}

// ReaderFunc строит AttributeReader из функции чтения одного атрибута.
// Если атрибут отсутствует на записи, в результат попадает nil.
type ReaderFunc[R any] func(record R, name string) (any, bool)

// ReadAttributes реализует AttributeReader
func (f ReaderFunc[R]) ReadAttributes(record R, names []string) models.Attributes {
	result := make(models.Attributes, len(names))
	for _, name := range names {
		value, ok := f(record, name)
		if !ok {
			value = nil
		}
		result[name] = value
	}

	return result
}

// Adapter проецирует атрибуты между локальной и удаленной схемами
// по заданному Mapping.
type Adapter[R any] struct {
	mapping *Mapping
	reader  AttributeReader[R]
}

// NewAdapter создает Adapter для записей типа R.
func NewAdapter[R any](mapping *Mapping, reader AttributeReader[R]) *Adapter[R] {
	return &Adapter[R]{
		mapping: mapping,
		reader:  reader,
	}
}

// Mapping возвращает используемую таблицу соответствия.
func (a *Adapter[R]) Mapping() *Mapping {
	return a.mapping
}

// Attributes читает с записи значения всех локальных атрибутов из Mapping.
// Результат индексирован локальными именами.
func (a *Adapter[R]) Attributes(record R) models.Attributes {
	names := a.mapping.LocalNames()
	values := a.reader.ReadAttributes(record, names)

	result := make(models.Attributes, len(names))
	for _, name := range names {
		result[name] = values[name]
	}

	return result
}

// AttributesFrom переводит набор значений, индексированный удаленными
// именами, в локальные имена. Лишние ключи hash игнорируются,
// отсутствующие дают явное значение nil.
func (a *Adapter[R]) AttributesFrom(hash models.Attributes) models.Attributes {
	result := make(models.Attributes, a.mapping.Len())
	for local, remote := range a.mapping.toRemote {
		result[local] = hash[remote]
	}

	return result
}

// ToRemote переводит набор значений, индексированный локальными именами,
// в удаленные имена. Ключи без соответствия отбрасываются.
func (a *Adapter[R]) ToRemote(local models.Attributes) models.Attributes {
	result := make(models.Attributes, len(local))
	for name, value := range local {
		if remote, ok := a.mapping.toRemote[name]; ok {
			result[remote] = value
		}
	}

	return result
}
