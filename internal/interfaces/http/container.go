package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/hys-retail/storedesk/internal/application/session"
	"github.com/hys-retail/storedesk/internal/infrastructure/auth"
	"github.com/hys-retail/storedesk/internal/infrastructure/config"
	"github.com/hys-retail/storedesk/internal/infrastructure/email"
	"github.com/hys-retail/storedesk/internal/infrastructure/notification"
	"github.com/hys-retail/storedesk/internal/infrastructure/permission"
	"github.com/hys-retail/storedesk/internal/infrastructure/ratelimit"
	"github.com/hys-retail/storedesk/internal/infrastructure/telegram"
	"github.com/hys-retail/storedesk/internal/interfaces/http/middleware"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/utils"
)

const loginWindow = time.Minute

// Container holds the infrastructure components, repositories, use cases,
// handlers and the notification dispatcher, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Session
	codec  *auth.SessionTokenCodec
	guard  *session.Guard
	issuer *session.Issuer

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginLimiter         *middleware.RateLimiter

	enforcer *permission.Enforcer

	// Notifications
	dispatcher     *notification.Dispatcher
	ticketNotifier *notification.TicketNotifier
}

// NewContainer wires every component. The dispatcher workers are started;
// callers must call Shutdown.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Client IPs key the login rate limit, so forwarded headers are only
	// read from configured proxies.
	if err := c.engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid server.trusted_proxies: %w", err)
	}

	// Section 1: Infrastructure - Redis, repositories, casbin
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Session - token codec, guard, cookie issuer
	c.initSession()

	// Section 3: Notifications - channels and the worker queue
	c.initNotification()

	// Section 4: Use cases and handlers
	c.initUseCases()
	if err := c.initHandlers(); err != nil {
		c.dispatcher.Stop(context.Background())
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}

	// Section 5: Middlewares
	c.initMiddlewares()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	if c.cfg.Redis.Enabled {
		client, err := initRedis(c.cfg)
		if err != nil {
			return err
		}
		c.redis = client
		c.log.Infow("redis connection established", "addr", c.cfg.Redis.GetAddr())
	}

	c.repos = newRepositories(c.db)

	enforcer, err := permission.NewEnforcer(c.db, c.cfg.Auth.PolicyPath, c.log)
	if err != nil {
		return fmt.Errorf("failed to init permission enforcer: %w", err)
	}
	if err := enforcer.EnsureDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.enforcer = enforcer
	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func (c *Container) initSession() {
	authCfg := c.cfg.Auth

	if authCfg.Session.Secret == "" {
		c.log.Warnw("auth.session.secret is not set; store logins will fail")
	}
	if authCfg.Admin.Secret == "" {
		c.log.Warnw("auth.admin.secret is not set; admin routes will fail")
	}

	secure := c.cfg.Server.IsProduction()
	if authCfg.Cookie.Secure != nil {
		secure = *authCfg.Cookie.Secure
	}

	c.codec = auth.NewSessionTokenCodec(authCfg.Session.Secret, authCfg.Session.TTL())
	c.guard = session.NewGuard(c.codec, authCfg.Admin.Secret, c.log.Named("session"))
	c.issuer = session.NewIssuer(c.codec, session.CookieOptions{
		Name:     authCfg.Cookie.Name,
		Secure:   secure,
		SameSite: utils.ParseSameSite(authCfg.Cookie.SameSite),
		Path:     authCfg.Cookie.Path,
		Domain:   authCfg.Cookie.Domain,
	})
}

func (c *Container) initNotification() {
	log := c.log.Named("notification")

	channels := []notification.Channel{
		notification.NewTelegramChannel(telegram.NewBotClient(c.cfg.Telegram, log)),
		notification.NewEmailChannel(email.NewSender(c.cfg.Email)),
	}

	c.dispatcher = notification.NewDispatcher(notification.ConfigFrom(c.cfg.Notification), channels, log)
	c.dispatcher.Start()
	c.ticketNotifier = notification.NewTicketNotifier(c.dispatcher)
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.guard, c.issuer.CookieName(), c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)

	var limiter ratelimit.Limiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisLimiter(c.redis, "login", c.cfg.RateLimit.LoginPerMinute, loginWindow)
	} else {
		limiter = ratelimit.NewMemoryLimiter(c.cfg.RateLimit.LoginPerMinute, loginWindow)
	}
	c.loginLimiter = middleware.NewRateLimiter(limiter, c.log)
}

// Shutdown drains the notification queue until ctx expires and releases
// the Redis connection.
func (c *Container) Shutdown(ctx context.Context) error {
	err := c.dispatcher.Stop(ctx)
	if err != nil {
		c.log.Warnw("notification queue not drained before deadline", "error", err)
	}

	if c.redis != nil {
		if cerr := c.redis.Close(); cerr != nil {
			c.log.Errorw("failed to close redis client", "error", cerr)
		}
	}
	return err
}
