package repository

import (
	"context"
	"errors"

	"catalog/internal/domain"
)

// ErrNotFound возвращается, когда товар не найден
var ErrNotFound = errors.New("not found")

// ProductRepository — интерфейс хранилища товаров
type ProductRepository interface {
	GetByID(ctx context.Context, productID string) (*domain.Product, error)
	// GetView читает только сохраняемую часть проекции ProductView;
	// вычисляемые поля заполняет вызывающая сторона
	GetView(ctx context.Context, productID string) (*domain.ProductView, error)
	// Insert добавляет товар; уникальный идентификатор назначает вызывающая сторона
	Insert(ctx context.Context, p *domain.Product) error
	// Replace полностью заменяет запись по идентификатору. Версионирования нет:
	// при гонке двух обновлений выигрывает последний писатель
	Replace(ctx context.Context, p *domain.Product) error
}

// viewOf заполняет сохраняемую часть проекции из сущности
func viewOf(p domain.Product) domain.ProductView {
	return domain.ProductView{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Status:        p.Status,
		Stock:         p.Stock,
		Description:   p.Description,
		Price:         p.Price,
		CreatedBy:     p.CreatedBy,
		LastUpdatedBy: p.LastUpdatedBy,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}
