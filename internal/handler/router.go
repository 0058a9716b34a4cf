package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/config"
	"github.com/tgo/atrium/apiserver/internal/middleware"
	"github.com/tgo/atrium/apiserver/internal/pkg/jwt"
	"github.com/tgo/atrium/apiserver/internal/repository"
	"github.com/tgo/atrium/apiserver/internal/service"
)

func SetupRouter(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *gin.Engine {
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())

	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.AccessTokenExpireMin)

	// Repositories
	adminUserRepo := repository.NewAdminUserRepository(db)
	adminRoleRepo := repository.NewAdminRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	enterpriseClientRepo := repository.NewEnterpriseClientRepository(db)
	enterpriseAdminRepo := repository.NewEnterpriseAdminRepository(db)
	enterpriseUserRepo := repository.NewEnterpriseUserRepository(db)
	enterpriseRoleRepo := repository.NewEnterpriseRoleRepository(db)
	enterprisePermRepo := repository.NewEnterprisePermissionRepository(db)
	endClientRepo := repository.NewEndClientRepository(db)

	// Services
	catalog := service.NewCatalog(adminRoleRepo, permissionRepo, enterpriseRoleRepo, enterprisePermRepo)
	resolver := service.NewResolver(catalog, logger)
	directory := service.NewDirectory(adminUserRepo, enterpriseAdminRepo, enterpriseUserRepo)
	authSvc := service.NewAuthService(directory, resolver, jwtManager, logger)
	adminUserSvc := service.NewAdminUserService(adminUserRepo, resolver, logger)
	adminRoleSvc := service.NewAdminRoleService(adminRoleRepo, logger)
	permissionSvc := service.NewPermissionService(permissionRepo, logger)
	enterpriseClientSvc := service.NewEnterpriseClientService(enterpriseClientRepo, logger)
	enterpriseAdminSvc := service.NewEnterpriseAdminService(enterpriseAdminRepo, enterpriseClientRepo, resolver, logger)
	enterpriseUserSvc := service.NewEnterpriseUserService(enterpriseUserRepo, enterpriseClientRepo, resolver, logger)
	enterpriseRoleSvc := service.NewEnterpriseRoleService(enterpriseRoleRepo, enterpriseClientRepo, logger)
	enterprisePermSvc := service.NewEnterprisePermissionService(enterprisePermRepo, enterpriseClientRepo, logger)
	endClientSvc := service.NewEndClientService(endClientRepo, enterpriseClientRepo, logger)

	// Handlers
	authHandler := NewAuthHandler(authSvc)
	adminUserHandler := NewAdminUserHandler(adminUserSvc)
	adminRoleHandler := NewAdminRoleHandler(adminRoleSvc)
	permissionHandler := NewPermissionHandler(permissionSvc)
	enterpriseClientHandler := NewEnterpriseClientHandler(enterpriseClientSvc)
	enterpriseAdminHandler := NewEnterpriseAdminHandler(enterpriseAdminSvc)
	enterpriseUserHandler := NewEnterpriseUserHandler(enterpriseUserSvc)
	enterpriseRoleHandler := NewEnterpriseRoleHandler(enterpriseRoleSvc)
	enterprisePermHandler := NewEnterprisePermissionHandler(enterprisePermSvc)
	endClientHandler := NewEndClientHandler(endClientSvc)
	systemHandler := NewSystemHandler("1.0.0")

	authMw := middleware.NewAuthMiddleware(authSvc, resolver, logger)

	r.GET("/health", systemHandler.GetHealth)
	r.GET("/system/info", systemHandler.GetInfo)

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)

		authed := auth.Group("")
		authed.Use(authMw.RequireAuth())
		{
			authed.GET("/me", authHandler.Me)
			authed.POST("/refresh", authHandler.Refresh)
			authed.POST("/logout", authHandler.Logout)
			authed.POST("/change-password", authHandler.ChangePassword)
		}
	}

	// Management routes: coarse gates on everything, fine gates on
	// mutations.
	mgmt := r.Group("")
	mgmt.Use(authMw.RequireAuth(), authMw.RequireAdmin())
	{
		adminUsers := mgmt.Group("/admin/users")
		{
			adminUsers.GET("", adminUserHandler.List)
			adminUsers.GET("/:id", adminUserHandler.Get)
			adminUsers.POST("", authMw.RequirePermission("admin-user", "create"), adminUserHandler.Create)
			adminUsers.PUT("/:id", authMw.RequirePermission("admin-user", "update"), adminUserHandler.Update)
			adminUsers.DELETE("/:id", authMw.RequirePermission("admin-user", "delete"), adminUserHandler.Delete)
			adminUsers.POST("/:id/activate", authMw.RequirePermission("admin-user", "update"), adminUserHandler.Activate)
			adminUsers.POST("/:id/deactivate", authMw.RequirePermission("admin-user", "update"), adminUserHandler.Deactivate)
		}

		adminRoles := mgmt.Group("/admin/roles")
		{
			adminRoles.GET("", adminRoleHandler.List)
			adminRoles.GET("/:id", adminRoleHandler.Get)
			adminRoles.POST("", authMw.RequirePermission("admin-role", "create"), adminRoleHandler.Create)
			adminRoles.PUT("/:id", authMw.RequirePermission("admin-role", "update"), adminRoleHandler.Update)
			adminRoles.DELETE("/:id", authMw.RequirePermission("admin-role", "delete"), adminRoleHandler.Delete)
		}

		permissions := mgmt.Group("/admin/permissions")
		{
			permissions.GET("", permissionHandler.List)
			permissions.GET("/:id", permissionHandler.Get)
			permissions.POST("", authMw.RequirePermission("permission", "create"), permissionHandler.Create)
			permissions.PUT("/:id", authMw.RequirePermission("permission", "update"), permissionHandler.Update)
			permissions.DELETE("/:id", authMw.RequirePermission("permission", "delete"), permissionHandler.Delete)
		}

		enterpriseClients := mgmt.Group("/enterprise/clients")
		{
			enterpriseClients.GET("", enterpriseClientHandler.List)
			enterpriseClients.GET("/:id", enterpriseClientHandler.Get)
			enterpriseClients.POST("", authMw.RequirePermission("enterprise-client", "create"), enterpriseClientHandler.Create)
			enterpriseClients.PUT("/:id", authMw.RequirePermission("enterprise-client", "update"), enterpriseClientHandler.Update)
			enterpriseClients.DELETE("/:id", authMw.RequirePermission("enterprise-client", "delete"), enterpriseClientHandler.Delete)
			enterpriseClients.POST("/:id/activate", authMw.RequirePermission("enterprise-client", "update"), enterpriseClientHandler.Activate)
			enterpriseClients.POST("/:id/deactivate", authMw.RequirePermission("enterprise-client", "update"), enterpriseClientHandler.Deactivate)
		}

		enterpriseAdmins := mgmt.Group("/enterprise/admins")
		{
			enterpriseAdmins.GET("", enterpriseAdminHandler.List)
			enterpriseAdmins.GET("/:id", enterpriseAdminHandler.Get)
			enterpriseAdmins.POST("", authMw.RequirePermission("enterprise-admin", "create"), enterpriseAdminHandler.Create)
			enterpriseAdmins.PUT("/:id", authMw.RequirePermission("enterprise-admin", "update"), enterpriseAdminHandler.Update)
			enterpriseAdmins.DELETE("/:id", authMw.RequirePermission("enterprise-admin", "delete"), enterpriseAdminHandler.Delete)
		}

		enterpriseUsers := mgmt.Group("/enterprise/users")
		{
			enterpriseUsers.GET("", enterpriseUserHandler.List)
			enterpriseUsers.GET("/:id", enterpriseUserHandler.Get)
			enterpriseUsers.POST("", authMw.RequirePermission("enterprise-user", "create"), enterpriseUserHandler.Create)
			enterpriseUsers.PUT("/:id", authMw.RequirePermission("enterprise-user", "update"), enterpriseUserHandler.Update)
			enterpriseUsers.DELETE("/:id", authMw.RequirePermission("enterprise-user", "delete"), enterpriseUserHandler.Delete)
			enterpriseUsers.POST("/:id/activate", authMw.RequirePermission("enterprise-user", "update"), enterpriseUserHandler.Activate)
			enterpriseUsers.POST("/:id/deactivate", authMw.RequirePermission("enterprise-user", "update"), enterpriseUserHandler.Deactivate)
		}

		enterpriseRoles := mgmt.Group("/enterprise/roles")
		{
			enterpriseRoles.GET("", enterpriseRoleHandler.List)
			enterpriseRoles.GET("/:id", enterpriseRoleHandler.Get)
			enterpriseRoles.POST("", authMw.RequirePermission("enterprise-role", "create"), enterpriseRoleHandler.Create)
			enterpriseRoles.PUT("/:id", authMw.RequirePermission("enterprise-role", "update"), enterpriseRoleHandler.Update)
			enterpriseRoles.DELETE("/:id", authMw.RequirePermission("enterprise-role", "delete"), enterpriseRoleHandler.Delete)
		}

		enterprisePerms := mgmt.Group("/enterprise/permissions")
		{
			enterprisePerms.GET("", enterprisePermHandler.List)
			enterprisePerms.GET("/:id", enterprisePermHandler.Get)
			enterprisePerms.POST("", authMw.RequirePermission("enterprise-permission", "create"), enterprisePermHandler.Create)
			enterprisePerms.PUT("/:id", authMw.RequirePermission("enterprise-permission", "update"), enterprisePermHandler.Update)
			enterprisePerms.DELETE("/:id", authMw.RequirePermission("enterprise-permission", "delete"), enterprisePermHandler.Delete)
		}

		endClients := mgmt.Group("/end-clients")
		{
			endClients.GET("", endClientHandler.List)
			endClients.GET("/:id", endClientHandler.Get)
			endClients.POST("", authMw.RequirePermission("end-client", "create"), endClientHandler.Create)
			endClients.PUT("/:id", authMw.RequirePermission("end-client", "update"), endClientHandler.Update)
			endClients.DELETE("/:id", authMw.RequirePermission("end-client", "delete"), endClientHandler.Delete)
		}
	}

	return r
}
