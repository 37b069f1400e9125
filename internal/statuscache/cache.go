// Package statuscache хранит отображение кода статуса товара в читаемое имя.
package statuscache

import (
	"sync"
	"time"
)

// UnknownLabel возвращается для кода вне известного набора статусов
const UnknownLabel = "Unknown"

// DefaultTTL — скользящее время жизни словаря статусов
const DefaultTTL = 5 * time.Minute

// Cache — процессный кэш имён статусов, общий для всех запросов.
// Словарь перестраивается целиком, когда отсутствует или просрочен;
// каждый доступ продлевает срок жизни. Перестройка идемпотентна:
// источник данных фиксирован и не меняется во время работы процесса
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	labels  map[int]string
	expires time.Time
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl, now: time.Now}
}

// GetLabel возвращает имя статуса по коду; для неизвестного кода — UnknownLabel
func (c *Cache) GetLabel(status int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.labels == nil || !c.now().Before(c.expires) {
		c.labels = statusLabels()
	}
	// скользящее истечение: доступ продлевает срок жизни
	c.expires = c.now().Add(c.ttl)
	label, ok := c.labels[status]
	if !ok {
		return UnknownLabel
	}
	return label
}

// statusLabels — фиксированный источник данных словаря
func statusLabels() map[int]string {
	return map[int]string{
		1: "Active",
		0: "Inactive",
	}
}
