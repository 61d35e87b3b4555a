package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	catalogUseCase "github.com/EnzoManrique/TrailerApp/src/catalog/application/usecase"
	catalogController "github.com/EnzoManrique/TrailerApp/src/catalog/infrastructure/controller"
	catalogPersistence "github.com/EnzoManrique/TrailerApp/src/catalog/infrastructure/persistence"
	promotionUseCase "github.com/EnzoManrique/TrailerApp/src/promotion/application/usecase"
	promotionCache "github.com/EnzoManrique/TrailerApp/src/promotion/infrastructure/cache"
	promotionController "github.com/EnzoManrique/TrailerApp/src/promotion/infrastructure/controller"
	promotionPersistence "github.com/EnzoManrique/TrailerApp/src/promotion/infrastructure/persistence"
	salesUseCase "github.com/EnzoManrique/TrailerApp/src/sales/application/usecase"
	salesCache "github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/cache"
	salesController "github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/controller"
	salesPersistence "github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/persistence"
	sharedConfig "github.com/EnzoManrique/TrailerApp/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 TrailerApp POS - Sale Transaction Engine - Iniciando...")

	// Cargar .env si existe (desarrollo local)
	if err := godotenv.Load(); err == nil {
		log.Println("Variables cargadas desde .env")
	}

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if getEnv("PROMETHEUS_ENABLED", "true") == "true" {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Configurar GZIP y otros middlewares compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "trailerapp_db")

	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Conectando a %s:%s/%s", dbHost, dbPort, dbName)

	// El motor de ventas no puede operar sin su store: fallar temprano
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("❌ Error abriendo la conexión a la base de datos: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("❌ Error verificando la conexión a la base de datos: %v", err)
	}
	log.Println("✅ Conexión a la base de datos verificada")

	// Repositorios
	productRepo := catalogPersistence.NewProductPostgresRepository(db)
	categoryRepo := catalogPersistence.NewCategoryPostgresRepository(db)
	promotionRepo := promotionPersistence.NewPromotionPostgresRepository(db)
	saleRepo := salesPersistence.NewSalePostgresRepository(db, productRepo)

	// Caches en memoria
	promoCache := promotionCache.NewPromotionCache(promotionRepo)
	if err := promoCache.Reload(context.Background()); err != nil {
		log.Printf("⚠️  Continuando con el cache de promociones vacío: %v", err)
	}
	sessions := salesCache.NewCartSessionCache()

	// Casos de uso
	getProductUC := catalogUseCase.NewGetProductUseCase(productRepo)
	searchProductsUC := catalogUseCase.NewSearchProductsUseCase(productRepo)
	listCategoriesUC := catalogUseCase.NewListCategoriesUseCase(categoryRepo)
	listLowStockUC := catalogUseCase.NewListLowStockUseCase(productRepo)

	listActivePromotionsUC := promotionUseCase.NewListActivePromotionsUseCase(promotionRepo)

	createCartUC := salesUseCase.NewCreateCartUseCase(sessions)
	addCartItemUC := salesUseCase.NewAddCartItemUseCase(sessions, productRepo)
	updateCartItemUC := salesUseCase.NewUpdateCartItemUseCase(sessions)
	removeCartItemUC := salesUseCase.NewRemoveCartItemUseCase(sessions)
	setCustomerTypeUC := salesUseCase.NewSetCustomerTypeUseCase(sessions)
	getCartSummaryUC := salesUseCase.NewGetCartSummaryUseCase(sessions, promoCache)
	abandonCartUC := salesUseCase.NewAbandonCartUseCase(sessions)
	commitSaleUC := salesUseCase.NewCommitSaleUseCase(sessions, productRepo, listActivePromotionsUC, saleRepo)
	listSalesUC := salesUseCase.NewListSalesUseCase(saleRepo)

	// Controllers
	catalogCtrl := catalogController.NewCatalogController(
		getProductUC, searchProductsUC, listCategoriesUC, listLowStockUC,
	)
	promotionCtrl := promotionController.NewPromotionController(promoCache)
	saleCtrl := salesController.NewSaleController(
		createCartUC, addCartItemUC, updateCartItemUC, removeCartItemUC,
		setCustomerTypeUC, getCartSummaryUC, abandonCartUC, commitSaleUC, listSalesUC,
	)

	// Rutas
	api := router.Group("/api/v1")
	catalogCtrl.RegisterRoutes(api)
	promotionCtrl.RegisterRoutes(api)
	saleCtrl.RegisterRoutes(api)

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	port := getEnv("PORT", "8080")
	log.Printf("✅ TrailerApp POS escuchando en :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Error iniciando el servidor: %v", err)
	}
}
