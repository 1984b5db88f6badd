package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lotecerto/lotecerto-api/docs"
	v1 "github.com/lotecerto/lotecerto-api/internal/api/handler/v1"
	"github.com/lotecerto/lotecerto-api/internal/api/middleware"
	"github.com/lotecerto/lotecerto-api/internal/config"
	"github.com/lotecerto/lotecerto-api/internal/pkg/gemini"
	"github.com/lotecerto/lotecerto-api/internal/repository"
	"github.com/lotecerto/lotecerto-api/internal/repository/dao"
	"github.com/lotecerto/lotecerto-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	auctionRepo := repository.NewAuctionRepository(dao.NewAuctionDAO(db))
	lotRepo := repository.NewLotRepository(dao.NewLotDAO(db))

	authHandler := v1.NewAuthHandler(conf.API, service.NewAuthService(userRepo))
	userHandler := v1.NewUserHandler(service.NewUserService(userRepo))
	auctionHandler := v1.NewAuctionHandler(service.NewAuctionService(auctionRepo, lotRepo))
	lotHandler := v1.NewLotHandler(service.NewLotService(lotRepo, auctionRepo))
	calculatorHandler := v1.NewCalculatorHandler()
	portfolioHandler := v1.NewPortfolioHandler(service.NewPortfolioService(lotRepo, auctionRepo))
	visionHandler := s.initVisionHandler()

	s.MountHandlers(authHandler, userHandler, auctionHandler, lotHandler, calculatorHandler, portfolioHandler, visionHandler)

	return s
}

func (s *Server) initVisionHandler() *v1.VisionHandler {
	if s.Config.Gemini == nil || s.Config.Gemini.APIKey == "" {
		zap.L().Warn("gemini api key is not configured, vision runs in fallback mode")

		return v1.NewVisionHandler(nil)
	}

	client, err := gemini.NewClient(context.Background(), s.Config.Gemini.APIKey, s.Config.Gemini.Model)
	if err != nil {
		zap.L().Error("failed to create gemini client, vision runs in fallback mode", zap.Error(err))

		return v1.NewVisionHandler(nil)
	}

	return v1.NewVisionHandler(client)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	auctionHandler *v1.AuctionHandler,
	lotHandler *v1.LotHandler,
	calculatorHandler *v1.CalculatorHandler,
	portfolioHandler *v1.PortfolioHandler,
	visionHandler *v1.VisionHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/users/me", userHandler.HandleGetMe)
		authed.PUT("/users/me/settings", userHandler.HandleUpdateSettings)

		authed.GET("/auctions", auctionHandler.HandleListAuctions)
		authed.POST("/auctions", auctionHandler.HandleCreateAuction)
		authed.PUT("/auctions/:auctionID", auctionHandler.HandleUpdateAuction)
		authed.DELETE("/auctions/:auctionID", auctionHandler.HandleDeleteAuction)
		authed.POST("/auctions/:auctionID/archive", auctionHandler.HandleToggleArchive)
		authed.GET("/auctions/:auctionID/summary", auctionHandler.HandleAuctionSummary)

		authed.GET("/auctions/:auctionID/lots", lotHandler.HandleListLots)
		authed.POST("/auctions/:auctionID/lots", lotHandler.HandleCreateLot)
		authed.PUT("/lots/:lotID", lotHandler.HandleUpdateLot)
		authed.DELETE("/lots/:lotID", lotHandler.HandleDeleteLot)
		authed.PATCH("/lots/:lotID/status", lotHandler.HandleSetLotStatus)
		authed.PATCH("/lots/:lotID/sale", lotHandler.HandleSetSale)
		authed.POST("/lots/:lotID/items", lotHandler.HandleAddLotItem)
		authed.PATCH("/lots/:lotID/items/:itemID/check", lotHandler.HandleToggleItemCheck)
		authed.DELETE("/lots/:lotID/items/:itemID", lotHandler.HandleRemoveLotItem)
		authed.POST("/lots/:lotID/images", lotHandler.HandleAttachImages)
		authed.GET("/lots/:lotID/strategy", lotHandler.HandleLotStrategy)

		authed.POST("/calculator/breakdown", calculatorHandler.HandleBreakdown)
		authed.POST("/calculator/max-bid", calculatorHandler.HandleMaxBid)

		authed.GET("/portfolio", portfolioHandler.HandleGetPortfolio)

		authed.POST("/vision/describe", visionHandler.HandleDescribeImage)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "LoteCerto API"
	docs.SwaggerInfo.Description = "Bidding bookkeeper for vehicle auctions."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
