package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/app/repositories"
	"github.com/shashiranjanraj/fooddash/pkg/collection"
	"github.com/shashiranjanraj/fooddash/pkg/event"
)

// OrderService records orders exactly as submitted. Product references are
// not resolved and totalAmount is not recomputed.
type OrderService struct {
	repo   repositories.OrderRepository
	now    func() time.Time
	events *event.Bus
}

func NewOrderService(repo repositories.OrderRepository) *OrderService {
	return &OrderService{repo: repo, now: time.Now}
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.repo.List(ctx)
}

func (s *OrderService) Create(ctx context.Context, in models.OrderInput) (models.Order, error) {
	if err := check(in); err != nil {
		return models.Order{}, err
	}

	userID, err := primitive.ObjectIDFromHex(in.UserID)
	if err != nil {
		return models.Order{}, repositories.NewValidationError("userId", "The userId must be a valid id.")
	}

	orderDate := s.now().UTC()
	if in.OrderDate != nil && !in.OrderDate.IsZero() {
		orderDate = in.OrderDate.UTC()
	}

	items := collection.Map(in.Items, func(it models.OrderItemInput) models.OrderItem {
		// ids were checked by the objectid rule above
		productID, _ := primitive.ObjectIDFromHex(it.ProductID)
		return models.OrderItem{ProductID: productID, Quantity: it.Quantity, Price: *it.Price}
	})

	o, err := s.repo.Create(ctx, models.Order{
		UserID:      userID,
		Items:       items,
		TotalAmount: *in.TotalAmount,
		OrderDate:   orderDate.Truncate(time.Millisecond),
	})
	return fired(ctx, s.events, OrderCreated, o, err)
}
