package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/pkg/collection"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNoUser          = errors.New("select a user for the order")
	ErrEmptyDraft      = errors.New("add at least one item to the order")
)

// Line is one draft order line. Price is the product's unit price when
// the line was last added to, not a live reference.
type Line struct {
	ProductID string
	Name      string
	Quantity  int
	Price     float64
}

func (l Line) Subtotal() float64 { return float64(l.Quantity) * l.Price }

// Draft is an order being assembled before a single create call.
type Draft struct {
	mu     sync.Mutex
	userID string
	lines  []Line
}

func NewDraft() *Draft {
	return &Draft{lines: []Line{}}
}

func (d *Draft) SetUser(userID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.userID = userID
}

func (d *Draft) UserID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.userID
}

// Add puts qty of p on the draft. An existing line grows and takes p's
// current price; otherwise a new line is appended with that price.
func (d *Draft) Add(p models.ProductView, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	id := p.ID.Hex()
	if i := d.index(id); i >= 0 {
		d.lines[i].Quantity += qty
		d.lines[i].Price = p.Price
		return nil
	}
	d.lines = append(d.lines, Line{ProductID: id, Name: p.Name, Quantity: qty, Price: p.Price})
	return nil
}

// Increment is Add(p, 1).
func (d *Draft) Increment(p models.ProductView) error {
	return d.Add(p, 1)
}

// Decrement lowers a line by one and drops it when it reaches zero.
func (d *Draft) Decrement(productID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.index(productID)
	if i < 0 {
		return
	}
	if d.lines[i].Quantity <= 1 {
		d.lines = append(d.lines[:i], d.lines[i+1:]...)
		return
	}
	d.lines[i].Quantity--
}

func (d *Draft) Remove(productID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = collection.Reject(d.lines, func(l Line) bool { return l.ProductID == productID })
}

// Lines returns a copy of the draft lines in the order they were added.
func (d *Draft) Lines() []Line {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Line{}, d.lines...)
}

// Total is the sum of quantity × price over all lines.
func (d *Draft) Total() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return collection.Sum(d.lines, Line.Subtotal)
}

func (d *Draft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.userID = ""
	d.lines = []Line{}
}

// Input builds the create payload with totalAmount set to Total.
func (d *Draft) Input() models.OrderInput {
	d.mu.Lock()
	defer d.mu.Unlock()

	total := collection.Sum(d.lines, Line.Subtotal)
	return models.OrderInput{
		UserID: d.userID,
		Items: collection.Map(d.lines, func(l Line) models.OrderItemInput {
			price := l.Price
			return models.OrderItemInput{ProductID: l.ProductID, Quantity: l.Quantity, Price: &price}
		}),
		TotalAmount: &total,
	}
}

// Submit sends the draft through create and clears it on success.
func (d *Draft) Submit(ctx context.Context, create func(context.Context, models.OrderInput) (models.Order, error)) (models.Order, error) {
	in := d.Input()
	switch {
	case in.UserID == "":
		return models.Order{}, ErrNoUser
	case len(in.Items) == 0:
		return models.Order{}, ErrEmptyDraft
	}

	order, err := create(ctx, in)
	if err != nil {
		return models.Order{}, err
	}
	d.Reset()
	return order, nil
}

func (d *Draft) index(productID string) int {
	return collection.IndexOf(d.lines, func(l Line) bool { return l.ProductID == productID })
}
