package provider

import (
	"github.com/clickcart/backend/internal/cache"
	"github.com/clickcart/backend/internal/config"
	"github.com/clickcart/backend/internal/logger"
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/queue"
	"github.com/clickcart/backend/internal/repository"
	"github.com/clickcart/backend/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo      repository.UserRepository
	ProductRepo   repository.ProductRepository
	CategoryRepo  repository.CategoryRepository
	CartRepo      repository.CartRepository
	CouponRepo    repository.CouponRepository
	OrderRepo     repository.OrderRepository
	CommentRepo   repository.CommentRepository
	MessageRepo   repository.MessageRepository
	AnalyticsRepo repository.AnalyticsRepository

	// Services
	AuthService      *service.AuthService
	UserService      *service.UserService
	ProductService   *service.ProductService
	CategoryService  *service.CategoryService
	CartService      *service.CartService
	CouponService    *service.CouponService
	CheckoutService  *service.CheckoutService
	OrderService     *service.OrderService
	CommentService   *service.CommentService
	MessageService   *service.MessageService
	AnalyticsService *service.AnalyticsService
	EmailService     *service.EmailService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.CommentRepo = repository.NewCommentRepository(db)
	c.MessageRepo = repository.NewMessageRepository(db)
	c.AnalyticsRepo = repository.NewAnalyticsRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.UserService = service.NewUserService(c.UserRepo, c.ProductRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo)
	c.CheckoutService = service.NewCheckoutService(c.Config, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.QueueClient)
	c.CommentService = service.NewCommentService(c.CommentRepo, c.ProductRepo)
	c.MessageService = service.NewMessageService(c.MessageRepo)
	c.AnalyticsService = service.NewAnalyticsService(c.AnalyticsRepo)
}
