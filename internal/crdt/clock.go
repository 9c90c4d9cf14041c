package crdt

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Clock выдает строго возрастающие отметки времени для локальных изменений.
// Отметки основаны на физическом времени, но никогда не убывают:
// если системное время отстает от последней выданной или наблюдаемой
// отметки, счетчик сдвигается на минимальный шаг.
type Clock struct {
	last   time.Time        // последняя выданная или наблюдаемая отметка
	now    func() time.Time // источник физического времени
	nodeID string           // уникальный идентификатор узла
	mu     sync.Mutex       // мьютекс для потокобезопасности
}

// NewClock создает часы на основе системного времени
// с уникальным идентификатором узла (UUID).
func NewClock() *Clock {
	return NewClockWithSource(uuid.New().String(), time.Now)
}

// NewClockWithSource создает часы с заданным идентификатором узла и источником времени.
// Используется для тестирования или восстановления состояния.
func NewClockWithSource(nodeID string, now func() time.Time) *Clock {
	return &Clock{
		now:    now,
		nodeID: nodeID,
	}
}

// Now возвращает новую отметку, строго большую всех предыдущих.
// Используется при фиксации нового локального изменения.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.now().UTC()
	if !current.After(c.last) {
		current = c.last.Add(time.Nanosecond)
	}
	c.last = current

	return current
}

// Observe учитывает отметку, полученную от другого источника
// (например, время изменения удаленной записи), чтобы последующие
// вызовы Now возвращали более поздние значения.
func (c *Clock) Observe(remote time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if remote.After(c.last) {
		c.last = remote.UTC()
	}
}

// Last возвращает последнюю выданную или наблюдаемую отметку без ее изменения.
func (c *Clock) Last() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}

// NodeID возвращает уникальный идентификатор узла.
func (c *Clock) NodeID() string {
	return c.nodeID
}
