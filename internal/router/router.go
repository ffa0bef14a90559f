package router

import (
	"time"

	"comanda/internal/config"
	"comanda/internal/handler"
	"comanda/internal/middleware"
	"comanda/internal/repository"
	"comanda/internal/security"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Mongo/Redis
func New(cfg *config.Config, client *mongo.Client, db *mongo.Database, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	tokenCfg := security.TokenConfig{
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
		Secret:    cfg.JWTSecret,
		ExpiresIn: cfg.TokenTTL(),
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	employeeRepo := repository.NewEmployeeRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(employeeRepo, tokenCfg)
	itemSvc := service.NewItemService(itemRepo, employeeRepo, rdb)
	orderSvc := service.NewOrderService(orderRepo, employeeRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(client, rdb))

	// Public: sign-in, menu, order reads
	r.POST("/employee/signin", middleware.SignInRateLimiter(), authH.SignIn)
	r.GET("/item", itemsH.List)
	r.GET("/item/:id", itemsH.Get)
	r.GET("/order", ordersH.List)
	r.GET("/order/:id", ordersH.Get)
	r.GET("/order/:id/whoserved", ordersH.WhoServed)

	// Protected routes — role and ownership rules are decided by the policy
	// inside the services, not per-route here, because several of them depend
	// on the target resource's state.
	jwtMW := middleware.JWTAuth(tokenCfg)
	auth := r.Group("/", jwtMW)
	{
		auth.POST("/employee/signup", authH.SignUp)
		auth.POST("/employee/signout", authH.SignOut)
		auth.GET("/employee/authenticate", authH.Authenticate)
		auth.GET("/employee/secret", authH.Secret)
		auth.GET("/employee", authH.ListEmployees)
		auth.GET("/employee/:id", authH.GetEmployee)
		auth.DELETE("/employee/:userName", authH.DeleteAccount)

		auth.POST("/item/create", itemsH.Create)
		auth.PUT("/item/update/:id", itemsH.Update)
		auth.DELETE("/item/delete/:id", itemsH.Delete)

		auth.POST("/order/create", ordersH.Create)
		auth.PUT("/order/update/:id", ordersH.Update)
		auth.DELETE("/order/delete/:id", ordersH.Delete)
		auth.PUT("/order/complete/:id", ordersH.Complete)
	}

	return r
}
