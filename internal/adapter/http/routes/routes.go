package routes

import (
	"log"
	"strconv"

	_ "repairhub/docs" // swag-generated swagger spec
	"repairhub/internal/adapter/cache"
	"repairhub/internal/adapter/http/handlers"
	"repairhub/internal/adapter/http/middleware"
	"repairhub/internal/adapter/persistence/repository"
	"repairhub/internal/domain/entities"
	"repairhub/internal/infrastructure/config"
	"repairhub/internal/infrastructure/database"
	"repairhub/internal/infrastructure/events"
	"repairhub/internal/infrastructure/logger"
	"repairhub/internal/usecase"
	"repairhub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server.
func Run() {
	l := logger.New()
	defer func() { _ = l.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.Connect()

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	bookingRepo := repository.NewBookingDynamoRepository(ddb)
	voucherRepo := repository.NewVoucherDynamoRepository(ddb)
	customerRepo := repository.NewCustomerDynamoRepository(ddb)

	var publisher interfaces.IEventPublisher
	if cfg.KafkaBroker != "" {
		publisher = events.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
		log.Printf("Event publisher enabled: broker=%s topic=%s", cfg.KafkaBroker, cfg.KafkaTopic)
	} else {
		log.Printf("Event publisher not configured, state transitions will not be published")
	}

	orderCache := cache.NewTTLCache[entities.Order](cfg.CacheTTL)
	bookingCache := cache.NewTTLCache[entities.Booking](cfg.CacheTTL)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, customerUseCase, publisher, orderCache, cfg.AllowTerminalOverride)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, customerUseCase, publisher, bookingCache)
	voucherUseCase := usecase.NewVoucherUseCase(voucherRepo, publisher)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	voucherHandler := handlers.NewVoucherHandler(voucherUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)

	staff := middleware.StaffAuth(cfg.AdminToken)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, staff, orderHandler, bookingHandler, voucherHandler, customerHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
