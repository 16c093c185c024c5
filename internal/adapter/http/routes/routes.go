package routes

import (
	"log"
	"strconv"
	"strings"
	"time"

	_ "payhere_service/docs" // swagger spec
	"payhere_service/internal/adapter/http/handlers"
	"payhere_service/internal/adapter/persistence/repository"
	"payhere_service/internal/infrastructure/config"
	"payhere_service/internal/infrastructure/database"
	"payhere_service/internal/infrastructure/payments"
	"payhere_service/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Notification *handlers.PayhereNotificationHandler
	Session      *handlers.PaymentSessionHandler
	Cart         *handlers.CartHandler
}

// Run will start the server
func Run() {
	httpCfg := config.HTTPFromEnv()
	router := NewRouter(httpCfg, buildHandlers(config.PayhereFromEnv()))

	log.Printf("[http] listening port=%d", httpCfg.Port)
	if err := router.Run(":" + strconv.Itoa(httpCfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func buildHandlers(payhereCfg config.PayhereConfig) Handlers {
	ddb := database.ConnectDynamoDB()

	sessionRepo := repository.NewPaymentSessionDynamoRepository(ddb)
	notificationRepo := repository.NewPayhereNotificationDynamoRepository(ddb)

	signer := payments.NewPayhereSignature(payhereCfg)
	processor := usecase.NewPayhereProcessor(payhereCfg, sessionRepo, signer)

	notificationUseCase := usecase.NewPayhereNotificationUseCase(payhereCfg, sessionRepo, notificationRepo, signer, processor)
	sessionUseCase := usecase.NewPaymentSessionUseCase(payhereCfg, sessionRepo, processor)
	cartUseCase := usecase.NewCartCompletionUseCase()

	return Handlers{
		Notification: handlers.NewPayhereNotificationHandler(notificationUseCase),
		Session:      handlers.NewPaymentSessionHandler(sessionUseCase),
		Cart:         handlers.NewCartHandler(cartUseCase),
	}
}

func NewRouter(httpCfg config.HTTPConfig, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, httpCfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStoreRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, httpCfg config.HTTPConfig) {
	router.Use(requestID())
	router.Use(gin.LoggerWithFormatter(accessLogFormatter))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v request_id=%s", recovered, c.GetString(ContextKeyRequestID))
		c.AbortWithStatus(500)
	}))

	origins := corsOrigins(httpCfg.AllowedOrigins())
	if len(origins) == 0 {
		log.Printf("[http] no valid STORE_CORS/ADMIN_CORS origins; cors disabled")
		return
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", HeaderRequestID, "Idempotency-Key"},
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

// corsOrigins drops entries cors.New would reject.
func corsOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, o := range in {
		if strings.HasPrefix(o, "http://") || strings.HasPrefix(o, "https://") {
			out = append(out, strings.TrimSuffix(o, "/"))
			continue
		}
		log.Printf("[http] ignoring cors origin=%q", o)
	}
	return out
}

func accessLogFormatter(p gin.LogFormatterParams) string {
	rid, _ := p.Keys[ContextKeyRequestID].(string)
	return p.TimeStamp.Format(time.RFC3339) + " [http] " + p.Method + " " + p.Path +
		" status=" + strconv.Itoa(p.StatusCode) +
		" latency=" + p.Latency.String() +
		" ip=" + p.ClientIP +
		" request_id=" + rid + "\n"
}
