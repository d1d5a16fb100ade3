package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/fairwaylist/fairway-api/docs"
	v1 "github.com/fairwaylist/fairway-api/internal/api/handler/v1"
	"github.com/fairwaylist/fairway-api/internal/api/middleware"
	"github.com/fairwaylist/fairway-api/internal/config"
	"github.com/fairwaylist/fairway-api/internal/repository"
	"github.com/fairwaylist/fairway-api/internal/repository/dao"
	"github.com/fairwaylist/fairway-api/internal/service"
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

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	tournamentHandler := s.initTournamentHandler(db)
	registrationHandler := s.initRegistrationHandler(db)
	s.MountHandlers(authHandler, userHandler, tournamentHandler, registrationHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initTournamentHandler(db *gorm.DB) *v1.TournamentHandler {
	tournamentDAO := dao.NewTournamentDAO(db)
	usageDAO := dao.NewUsageDAO(db)
	repo := repository.NewTournamentRepository(tournamentDAO, usageDAO)
	svc := service.NewTournamentService(repo, s.Config.API.AdminEmail)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewTournamentHandler(svc, uSvc)

	return handler
}

func (s *Server) initRegistrationHandler(db *gorm.DB) *v1.RegistrationHandler {
	registrationDAO := dao.NewRegistrationDAO(db)
	repo := repository.NewRegistrationRepository(registrationDAO)
	svc := service.NewRegistrationService(repo)
	handler := v1.NewRegistrationHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, userHandler *v1.UserHandler, tournamentHandler *v1.TournamentHandler, registrationHandler *v1.RegistrationHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/tournaments", tournamentHandler.HandleListTournaments)
		public.GET("/tournaments/:tournamentID", tournamentHandler.HandleGetTournament)
		public.GET("/tournaments/:tournamentID/teams", tournamentHandler.HandleListTeams)

		// Registration is open to unauthenticated players.
		public.POST("/tournaments/:tournamentID/registrations", registrationHandler.HandleSubmitRegistration)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/users/:userID", userHandler.HandleGetUser)

		authed.POST("/tournaments", tournamentHandler.HandleCreateTournament)
		authed.PUT("/tournaments/:tournamentID", tournamentHandler.HandleUpdateTournament)
		authed.GET("/my/tournaments", tournamentHandler.HandleListMyTournaments)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Fairway List API"
	docs.SwaggerInfo.Description = "Golf tournament listing and registration API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
