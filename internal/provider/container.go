package provider

import (
	"github.com/circuitaura/storefront/internal/authz"
	"github.com/circuitaura/storefront/internal/cache"
	"github.com/circuitaura/storefront/internal/config"
	"github.com/circuitaura/storefront/internal/logger"
	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/queue"
	"github.com/circuitaura/storefront/internal/repository"
	"github.com/circuitaura/storefront/internal/service"
)

// Container wires repositories and services once at startup. Handlers
// embed it and reach everything through it.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo            repository.UserRepository
	EmailVerifyCodeRepo repository.EmailVerifyCodeRepository
	ProductRepo         repository.ProductRepository
	KitRepo             repository.KitRepository
	ResourceRepo        repository.ResourceRepository
	CartRepo            repository.CartRepository
	OrderRepo           repository.OrderRepository

	// Services
	AuthzService     *authz.Service
	AuthService      *service.AuthService
	UserAdminService *service.UserAdminService
	EmailService     *service.EmailService
	CaptchaService   *service.CaptchaService
	UploadService    *service.UploadService
	ProductService   *service.ProductService
	KitService       *service.KitService
	ResourceService  *service.ResourceService
	CartService      *service.CartService
	OrderService     *service.OrderService
	ContactService   *service.ContactService
}

// NewContainer initializes the container.
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
	c.EmailVerifyCodeRepo = repository.NewEmailVerifyCodeRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.KitRepo = repository.NewKitRepository(db)
	c.ResourceRepo = repository.NewResourceRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo, c.EmailVerifyCodeRepo, c.EmailService, c.QueueClient)
	c.UserAdminService = service.NewUserAdminService(c.UserRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.KitService = service.NewKitService(c.KitRepo)
	c.ResourceService = service.NewResourceService(c.ResourceRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.KitRepo, c.Config.Store.Currency)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.CartService, c.QueueClient, c.Config.Store.Currency)
	c.ContactService = service.NewContactService(c.Config.Store)
}
