package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"catalog/internal/domain"
	"catalog/internal/repository"
	"catalog/internal/statuscache"
)

// ErrDiscountUnavailable — сервис скидок не ответил успехом; чтение
// считается неуспешным целиком, найденный товар не возвращается
var ErrDiscountUnavailable = errors.New("discount service unavailable")

// DiscountSource — источник скидок для товаров
type DiscountSource interface {
	Fetch(ctx context.Context) (bool, []domain.DiscountRecord)
}

// ProductService инкапсулирует чтение с обогащением и операции записи
type ProductService struct {
	repo      repository.ProductRepository
	statuses  *statuscache.Cache
	discounts DiscountSource
	log       *slog.Logger
	now       func() time.Time
}

func NewProductService(repo repository.ProductRepository, statuses *statuscache.Cache, discounts DiscountSource, log *slog.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		statuses:  statuses,
		discounts: discounts,
		log:       log,
		now:       time.Now,
	}
}

// GetProduct возвращает проекцию товара с именем статуса, скидкой и итоговой
// ценой. Шаги строго последовательны: при NotFound внешние вызовы не делаются
func (s *ProductService) GetProduct(ctx context.Context, productID string) (*domain.ProductView, error) {
	view, err := s.repo.GetView(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		s.log.Error("get product: store lookup", "productId", productID, "err", err)
		return nil, fmt.Errorf("get product %s: %w", productID, err)
	}

	statusName := s.statuses.GetLabel(view.Status)

	ok, records := s.discounts.Fetch(ctx)
	if !ok || len(records) == 0 {
		s.log.Error("get product: discount fetch failed", "productId", productID)
		return nil, ErrDiscountUnavailable
	}

	// скидка берётся из первого элемента списка, без сопоставления
	// с запрошенным товаром
	disc, err := strconv.Atoi(records[0].Discount)
	if err != nil {
		s.log.Error("get product: bad discount value", "productId", productID, "value", records[0].Discount, "err", err)
		return nil, fmt.Errorf("parse discount %q: %w", records[0].Discount, err)
	}

	view.StatusName = statusName
	view.Discount = disc
	// усечение в целых до перевода в decimal; порядок операций фиксирован
	// для совместимости округления
	view.FinalPrice = decimal.NewFromInt(int64(view.Price * (100 - disc) / 100))
	return view, nil
}

// CreatedProduct — результат создания: эхо запроса и назначенный идентификатор
type CreatedProduct struct {
	ProductID string
	Echo      domain.ProductRequest
}

// Create валидирует запрос, назначает идентификатор и сохраняет товар.
// В ответ уходит эхо запроса, а не сохранённая сущность
func (s *ProductService) Create(ctx context.Context, req domain.ProductRequest) (*CreatedProduct, error) {
	if verr := validateRequest(req); verr != nil {
		return nil, verr
	}
	now := s.now().UTC()
	p := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          req.Name,
		Status:        req.Status,
		Stock:         req.Stock,
		Description:   req.Description,
		Price:         req.Price,
		CreatedBy:     domain.SystemActor,
		LastUpdatedBy: domain.SystemActor,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, &p); err != nil {
		s.log.Error("create product: insert", "productId", p.ProductID, "err", err)
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &CreatedProduct{ProductID: p.ProductID, Echo: req}, nil
}

// Update валидирует запрос и полностью заменяет запись: поля запроса
// накладываются на существующую, ProductID и CreatedAt сохраняются
func (s *ProductService) Update(ctx context.Context, productID string, req domain.ProductRequest) error {
	if verr := validateRequest(req); verr != nil {
		return verr
	}
	existing, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		s.log.Error("update product: lookup", "productId", productID, "err", err)
		return fmt.Errorf("update product %s: %w", productID, err)
	}

	merged := *existing
	merged.Name = req.Name
	merged.Status = req.Status
	merged.Stock = req.Stock
	merged.Description = req.Description
	merged.Price = req.Price
	// TODO: CreatedBy должен оставаться неизменным после создания записи
	merged.CreatedBy = domain.SystemActor
	merged.LastUpdatedBy = domain.SystemActor
	merged.LastUpdatedAt = s.now().UTC()

	if err := s.repo.Replace(ctx, &merged); err != nil {
		s.log.Error("update product: replace", "productId", productID, "err", err)
		return fmt.Errorf("update product %s: %w", productID, err)
	}
	return nil
}
