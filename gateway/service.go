package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/alovak/paystack-gateway/gateway/models"
	"github.com/alovak/paystack-gateway/internal/amount"
	"github.com/alovak/paystack-gateway/internal/paystack"
)

var ErrInvalidInput = errors.New("invalid input")

// Upstream is the part of the payment API the gateway forwards to.
type Upstream interface {
	InitializeTransaction(ctx context.Context, req paystack.InitializeRequest) ([]byte, error)
	VerifyTransaction(ctx context.Context, reference string) ([]byte, error)
	CreateCustomer(ctx context.Context, req paystack.CustomerRequest) ([]byte, error)
	ListCustomers(ctx context.Context) ([]byte, error)
}

// Service maps gateway operations onto upstream calls. It keeps no state
// between requests.
type Service struct {
	catalog  *Catalog
	upstream Upstream
	email    string
}

func NewService(catalog *Catalog, upstream Upstream, cfg *Config) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Service{
		catalog:  catalog,
		upstream: upstream,
		email:    cfg.CustomerEmail,
	}
}

// InitializeTransaction charges quantity units of a product to the
// configured customer email and returns the upstream body.
func (s *Service) InitializeTransaction(ctx context.Context, req models.ChargeRequest) ([]byte, error) {
	product, err := s.catalog.GetProduct(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("finding product: %w", err)
	}

	total, err := amount.ToMinorUnits(product.Amount, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	body, err := s.upstream.InitializeTransaction(ctx, paystack.InitializeRequest{
		Email:  s.email,
		Amount: total,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing transaction: %w", err)
	}
	return body, nil
}

func (s *Service) VerifyTransaction(ctx context.Context, reference string) ([]byte, error) {
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	body, err := s.upstream.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("verifying transaction: %w", err)
	}
	return body, nil
}

func (s *Service) CreateCustomer(ctx context.Context, customer models.Customer) ([]byte, error) {
	body, err := s.upstream.CreateCustomer(ctx, paystack.CustomerRequest{
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	return body, nil
}

func (s *Service) ListCustomers(ctx context.Context) ([]byte, error) {
	body, err := s.upstream.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return body, nil
}
