package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"catalog/internal/domain"
)

// productRecord — строка таблицы products
type productRecord struct {
	ProductID     string    `gorm:"column:product_id;primaryKey;type:varchar(36)"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Status        int       `gorm:"not null"`
	Stock         int       `gorm:"not null"`
	Description   string    `gorm:"type:text;not null"`
	Price         int       `gorm:"not null"`
	CreatedBy     string    `gorm:"type:varchar(100);not null"`
	LastUpdatedBy string    `gorm:"type:varchar(100);not null"`
	CreatedAt     time.Time `gorm:"index;not null"`
	LastUpdatedAt time.Time `gorm:"not null"`
}

func (productRecord) TableName() string { return "products" }

func recordOf(p domain.Product) productRecord {
	return productRecord{
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

func (r productRecord) toDomain() domain.Product {
	return domain.Product{
		ProductID:     r.ProductID,
		Name:          r.Name,
		Status:        r.Status,
		Stock:         r.Stock,
		Description:   r.Description,
		Price:         r.Price,
		CreatedBy:     r.CreatedBy,
		LastUpdatedBy: r.LastUpdatedBy,
		CreatedAt:     r.CreatedAt,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

// PostgresStore — хранилище товаров поверх PostgreSQL
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore открывает соединение и создаёт схему при необходимости
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&productRecord{}); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

var _ ProductRepository = (*PostgresStore)(nil)

func (s *PostgresStore) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	var rec productRecord
	err := s.db.WithContext(ctx).First(&rec, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p := rec.toDomain()
	return &p, nil
}

func (s *PostgresStore) GetView(ctx context.Context, productID string) (*domain.ProductView, error) {
	var rec productRecord
	err := s.db.WithContext(ctx).
		Select("product_id", "name", "status", "stock", "description", "price",
			"created_by", "last_updated_by", "created_at", "last_updated_at").
		First(&rec, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	v := viewOf(rec.toDomain())
	return &v, nil
}

func (s *PostgresStore) Insert(ctx context.Context, p *domain.Product) error {
	rec := recordOf(*p)
	return s.db.WithContext(ctx).Create(&rec).Error
}

func (s *PostgresStore) Replace(ctx context.Context, p *domain.Product) error {
	rec := recordOf(*p)
	res := s.db.WithContext(ctx).Model(&productRecord{}).
		Where("product_id = ?", rec.ProductID).
		Select("*").
		Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
