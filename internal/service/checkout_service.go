package service

import (
	"context"

	"github.com/clickcart/backend/internal/config"
	"github.com/clickcart/backend/internal/logger"
	"github.com/clickcart/backend/internal/payment/stripe"
	"github.com/clickcart/backend/internal/repository"
)

// CheckoutService 结账服务
// 行项目价格一律从商品表重新取价计算，不信任客户端提交的价格
type CheckoutService struct {
	cfg         *config.Config
	productRepo repository.ProductRepository
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(cfg *config.Config, productRepo repository.ProductRepository) *CheckoutService {
	return &CheckoutService{
		cfg:         cfg,
		productRepo: productRepo,
	}
}

// CheckoutItemInput 结账行项目输入（仅商品ID与数量）
type CheckoutItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CheckoutResult 结账结果
type CheckoutResult struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// BuildLineItems 将购物车快照换算为托管收银台行项目
// 单价 = ceil(price * 100 * (1 - promoPercentage/100))，始终向上取整；
// 任一商品ID无法解析则整个请求失败
func (s *CheckoutService) BuildLineItems(items []CheckoutItemInput) ([]stripe.LineItem, error) {
	if len(items) == 0 {
		return nil, ErrInvalidInput
	}

	lineItems := make([]stripe.LineItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity < 1 {
			return nil, ErrInvalidInput
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		lineItems = append(lineItems, stripe.LineItem{
			Name:       product.Name,
			UnitAmount: product.PromoUnitCents(),
			Quantity:   item.Quantity,
		})
	}
	return lineItems, nil
}

// CreateSession 创建托管收银台会话并返回跳转地址
func (s *CheckoutService) CreateSession(ctx context.Context, userID uint, items []CheckoutItemInput) (*CheckoutResult, error) {
	lineItems, err := s.BuildLineItems(items)
	if err != nil {
		return nil, err
	}

	stripeCfg := &stripe.Config{
		SecretKey:     s.cfg.Stripe.SecretKey,
		WebhookSecret: s.cfg.Stripe.WebhookSecret,
		SuccessURL:    s.successURL(),
		CancelURL:     s.cancelURL(),
	}

	result, err := stripe.CreateCheckoutSession(ctx, stripeCfg, stripe.CreateInput{
		Currency:  s.currency(),
		LineItems: lineItems,
	})
	if err != nil {
		logger.Errorw("checkout_session_create_failed", "user_id", userID, "error", err)
		return nil, ErrCheckoutFailed
	}

	logger.Infow("checkout_session_created", "user_id", userID, "session_id", result.SessionID)
	return &CheckoutResult{
		SessionID: result.SessionID,
		URL:       result.URL,
	}, nil
}

func (s *CheckoutService) currency() string {
	if s.cfg != nil && s.cfg.Stripe.Currency != "" {
		return s.cfg.Stripe.Currency
	}
	return "usd"
}

func (s *CheckoutService) successURL() string {
	if s.cfg != nil && s.cfg.Stripe.SuccessURL != "" {
		return s.cfg.Stripe.SuccessURL
	}
	return s.frontendURL() + "/checkout/success"
}

func (s *CheckoutService) cancelURL() string {
	if s.cfg != nil && s.cfg.Stripe.CancelURL != "" {
		return s.cfg.Stripe.CancelURL
	}
	return s.frontendURL() + "/cart"
}

func (s *CheckoutService) frontendURL() string {
	if s.cfg != nil && s.cfg.Server.FrontendURL != "" {
		return s.cfg.Server.FrontendURL
	}
	return "http://localhost:3000"
}
