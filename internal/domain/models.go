package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// finalPrice сериализуется как число, а не строка
	decimal.MarshalJSONWithoutQuotes = true
}

// SystemActor — фиксированный идентификатор системного пользователя,
// проставляется в аудит-поля при создании и обновлении записей
const SystemActor = "system"

// Коды статуса товара
const (
	StatusInactive = 0
	StatusActive   = 1
)

// Product представляет товар в каталоге
type Product struct {
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	Status        int       `json:"status"`
	Stock         int       `json:"stock"`
	Description   string    `json:"description"`
	Price         int       `json:"price"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ProductView — проекция товара для ответа на чтение: сохраняемые поля
// плюс вычисляемые StatusName, Discount и FinalPrice. Никогда не сохраняется
type ProductView struct {
	ProductID     string          `json:"productId"`
	Name          string          `json:"name"`
	Status        int             `json:"status"`
	Stock         int             `json:"stock"`
	Description   string          `json:"description"`
	Price         int             `json:"price"`
	StatusName    string          `json:"statusName"`
	Discount      int             `json:"discount"`
	FinalPrice    decimal.Decimal `json:"finalPrice"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ProductRequest — входная модель создания и обновления товара.
// Правила валидации заданы тегами validate
type ProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Status      int    `json:"status" validate:"min=0,max=1"`
	Stock       int    `json:"stock" validate:"min=0"`
	Description string `json:"description" validate:"required"`
	Price       int    `json:"price" validate:"gt=0"`
}

// DiscountRecord — запись о скидке из внешнего сервиса скидок
type DiscountRecord struct {
	ProductID string `json:"productId"`
	Discount  string `json:"discount"`
}
