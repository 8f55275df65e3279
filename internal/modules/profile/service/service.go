// Package service implements account management, order history, and the
// checkout flow that bridges the cart and email modules.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gaborage/go-bricks/logger"
	"github.com/google/uuid"
	cartdomain "github.com/lnsc/storefront/internal/modules/cart/domain"
	emaildomain "github.com/lnsc/storefront/internal/modules/email/domain"
	emailservice "github.com/lnsc/storefront/internal/modules/email/service"
	"github.com/lnsc/storefront/internal/modules/profile/domain"
	"github.com/lnsc/storefront/internal/modules/profile/store"
)

const estimatedDeliveryLead = 5 * 24 * time.Hour

// Cart is the slice of the cart service checkout needs.
type Cart interface {
	Items() []*cartdomain.Item
	TotalPrice() float64
	Clear(ctx context.Context)
}

// Mailer sends the order-confirmation notification.
type Mailer interface {
	Send(ctx context.Context, input emailservice.SendInput) (*emaildomain.Notification, error)
}

// RegisterInput carries a new account request. The password lands in the
// mock credential table as-is.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// ProfileUpdate patches the logged-in user. Nil fields stay untouched.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	DateOfBirth *string
	Address     *domain.Address
	Preferences *domain.NotificationPrefs
}

// CheckoutInput finalizes the current cart into an order.
type CheckoutInput struct {
	ShippingAddress domain.Address
	PaymentMethod   string
}

// ProfileService coordinates accounts, sessions, and checkout.
type ProfileService struct {
	store  *store.ProfileStore
	cart   Cart
	mailer Mailer
	logger logger.Logger
	now    func() time.Time
}

// NewService creates a profile service.
func NewService(s *store.ProfileStore, cart Cart, mailer Mailer, l logger.Logger) *ProfileService {
	return &ProfileService{
		store:  s,
		cart:   cart,
		mailer: mailer,
		logger: l,
		now:    time.Now,
	}
}

// Register creates an account and logs it in. Duplicate emails are
// rejected.
func (s *ProfileService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	now := s.now().UTC()
	user := &domain.User{
		ID:          uuid.NewString(),
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Phone:       input.Phone,
		Preferences: domain.DefaultPreferences(),
		CreatedAt:   now,
		LastLogin:   now,
	}
	if err := s.store.CreateAccount(ctx, user, input.Password); err != nil {
		return nil, err
	}
	s.store.SetCurrent(ctx, user.ID)

	s.logger.Info().
		Str("userID", user.ID).
		Msg("Account registered")

	return s.store.Current()
}

// Login authenticates and opens a session. First-time logins get a demo
// order history so the orders screen is never empty.
func (s *ProfileService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.store.Authenticate(email, password)
	if err != nil {
		return nil, err
	}

	err = s.store.Mutate(ctx, user.ID, func(u *domain.User) error {
		u.LastLogin = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.store.SetCurrent(ctx, user.ID)

	if len(s.store.OrdersForUser(user.ID)) == 0 {
		s.store.InsertOrders(ctx, domain.DemoOrders(user.ID, s.now().UTC()))
	}

	s.logger.Info().
		Str("userID", user.ID).
		Msg("User logged in")

	return s.store.Current()
}

// Logout ends the session. Logging out while logged out is a no-op.
func (s *ProfileService) Logout(ctx context.Context) {
	s.store.ClearCurrent(ctx)
}

// CurrentUser returns the logged-in user.
func (s *ProfileService) CurrentUser() (*domain.User, error) {
	return s.store.Current()
}

// UpdateProfile patches the logged-in user.
func (s *ProfileService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*domain.User, error) {
	current, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	err = s.store.Mutate(ctx, current.ID, func(u *domain.User) error {
		if update.FirstName != nil {
			u.FirstName = *update.FirstName
		}
		if update.LastName != nil {
			u.LastName = *update.LastName
		}
		if update.Phone != nil {
			u.Phone = *update.Phone
		}
		if update.DateOfBirth != nil {
			u.DateOfBirth = *update.DateOfBirth
		}
		if update.Address != nil {
			addr := *update.Address
			u.Address = &addr
		}
		if update.Preferences != nil {
			u.Preferences = *update.Preferences
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.store.Current()
}

// OrderHistory returns the logged-in user's orders, newest first.
func (s *ProfileService) OrderHistory() ([]*domain.Order, error) {
	current, err := s.store.Current()
	if err != nil {
		return nil, err
	}
	return s.store.OrdersForUser(current.ID), nil
}

// OrderByID returns one order, scoped to the logged-in user.
func (s *ProfileService) OrderByID(orderID string) (*domain.Order, error) {
	current, err := s.store.Current()
	if err != nil {
		return nil, err
	}
	return s.store.OrderForUser(current.ID, orderID)
}

// Checkout turns the current cart into a pending order, clears the cart,
// and sends the confirmation email. Email failure is logged and never
// blocks order completion.
func (s *ProfileService) Checkout(ctx context.Context, input CheckoutInput) (*domain.Order, error) {
	current, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	lines := s.cart.Items()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	now := s.now().UTC()
	delivery := now.Add(estimatedDeliveryLead)
	order := &domain.Order{
		ID:                uuid.NewString(),
		UserID:            current.ID,
		Items:             make([]*domain.OrderItem, 0, len(lines)),
		Total:             s.cart.TotalPrice(),
		Status:            domain.OrderPending,
		ShippingAddress:   input.ShippingAddress,
		PaymentMethod:     input.PaymentMethod,
		OrderDate:         now,
		EstimatedDelivery: &delivery,
	}
	for _, line := range lines {
		order.Items = append(order.Items, &domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Image:     line.Image,
		})
	}

	s.store.InsertOrder(ctx, order)
	s.cart.Clear(ctx)

	s.logger.Info().
		Str("orderID", order.ID).
		Str("userID", current.ID).
		Interface("total", order.Total).
		Msg("Order placed")

	s.sendConfirmation(ctx, current, order)

	return order, nil
}

func (s *ProfileService) sendConfirmation(ctx context.Context, user *domain.User, order *domain.Order) {
	_, err := s.mailer.Send(ctx, emailservice.SendInput{
		To:       user.Email,
		Subject:  fmt.Sprintf("Order Confirmed - #%s", order.ID),
		Template: "order-confirmation",
		Type:     emaildomain.TypeOrder,
		Variables: map[string]any{
			"customerName":  fmt.Sprintf("%s %s", user.FirstName, user.LastName),
			"orderNumber":   order.ID,
			"orderDate":     order.OrderDate.Format("January 2, 2006"),
			"orderTotal":    fmt.Sprintf("%.2f", order.Total),
			"paymentMethod": order.PaymentMethod,
		},
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("orderID", order.ID).
			Msg("Failed to send order confirmation email")
	}
}
