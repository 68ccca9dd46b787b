package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/config"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/migrations"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"

	adminHandler "portfolio-backend/internal/domains/admin/handler"
	adminRepo "portfolio-backend/internal/domains/admin/repository"
	adminService "portfolio-backend/internal/domains/admin/service"
	auditHandler "portfolio-backend/internal/domains/audit/handler"
	auditRepo "portfolio-backend/internal/domains/audit/repository"
	auditService "portfolio-backend/internal/domains/audit/service"
	contentHandler "portfolio-backend/internal/domains/content/handler"
	contentModel "portfolio-backend/internal/domains/content/model"
	contentRepo "portfolio-backend/internal/domains/content/repository"
	contentService "portfolio-backend/internal/domains/content/service"
	dashboardHandler "portfolio-backend/internal/domains/dashboard/handler"
	dashboardService "portfolio-backend/internal/domains/dashboard/service"
)

// ContentModule gom repository/service/handler của một entity kind
type ContentModule[T contentModel.Record] struct {
	Table    contentRepo.Table[T]
	Entities *contentService.EntityService[T]
	Importer *contentService.ImportService[T]
	Handler  *contentHandler.EntityHandler[T]
}

// Container chứa TẤT CẢ dependencies của application
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient // nil khi Redis không kết nối được
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// ========================================
	// SERVICES
	// ========================================
	AuditService     auditService.ServiceInterface
	AdminService     adminService.ServiceInterface
	DashboardService dashboardService.ServiceInterface

	// ========================================
	// CONTENT MODULES
	// ========================================
	Projects       *ContentModule[contentModel.Project]
	Experience     *ContentModule[contentModel.Experience]
	Skills         *ContentModule[contentModel.Skill]
	Certifications *ContentModule[contentModel.Certification]

	// ========================================
	// HANDLERS
	// ========================================
	AdminHandler     *adminHandler.AdminHandler
	AuditHandler     *auditHandler.AuditHandler
	DashboardHandler *dashboardHandler.DashboardHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph.
//
// Thứ tự: Config → Infrastructure (DB, migrations, Redis) → Services → Handlers
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Msg("[CONTAINER] Initializing DI container...")

	c := &Container{Config: cfg}

	if err := c.initInfrastructure(); err != nil {
		c.Cleanup()
		return nil, err
	}
	c.initServices()
	c.initHandlers()

	log.Info().Msg("[CONTAINER] DI container initialized")
	return c, nil
}

// initInfrastructure: Postgres là bắt buộc, Redis thì không
func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := RunMigrations(ctx, db); err != nil {
		return err
	}

	rc := infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("[CONTAINER] Redis unavailable, public list cache and shared rate limit disabled")
		_ = rc.Close()
	} else {
		c.Redis = rc
		c.Cache = infraCache.NewRedisCache(rc)

		// list cache có thể còn từ bản build trước với schema khác
		if err := c.Cache.DeletePattern(ctx, contentModel.ListCachePattern); err != nil {
			log.Warn().Err(err).Msg("[CONTAINER] Failed to flush content list cache")
		}
	}

	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret, c.Config.AccessTokenTTL())
	return nil
}

func (c *Container) initServices() {
	c.AuditService = auditService.NewService(auditRepo.NewPostgresRepository(c.DB.Pool))
	c.AdminService = adminService.NewService(adminRepo.NewPostgresRepository(c.DB.Pool), c.JWTManager)

	c.Projects = newContentModule(c, contentModel.ProjectSchema)
	c.Experience = newContentModule(c, contentModel.ExperienceSchema)
	c.Skills = newContentModule(c, contentModel.SkillSchema)
	c.Certifications = newContentModule(c, contentModel.CertificationSchema)

	c.DashboardService = dashboardService.NewService(dashboardService.Counters{
		Projects:       c.Projects.Entities,
		Experience:     c.Experience.Entities,
		Skills:         c.Skills.Entities,
		Certifications: c.Certifications.Entities,
	}, c.AuditService)
}

func (c *Container) initHandlers() {
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
	c.AuditHandler = auditHandler.NewAuditHandler(c.AuditService)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.DashboardService)
}

func newContentModule[T contentModel.Record](c *Container, schema *contentModel.Schema[T]) *ContentModule[T] {
	table := contentRepo.NewPostgresTable(c.DB.Pool, schema)
	ttl := c.Config.Redis.ListTTL

	m := &ContentModule[T]{
		Table:    table,
		Entities: contentService.NewEntityService(schema, table, c.AuditService, c.Cache, ttl),
		Importer: contentService.NewImportService(schema, table, c.AuditService, c.Cache, ttl),
	}
	m.Handler = contentHandler.NewEntityHandler(schema, m.Entities, m.Importer, c.Config.Import.MaxBodyBytes)
	return m
}

// RunMigrations chạy goose migrations qua *sql.DB dùng chung pool.
// Không Close sqlDB: connection thuộc về pool.
func RunMigrations(ctx context.Context, db *database.PostgresDB) error {
	sqlDB, err := db.SQLDB()
	if err != nil {
		return err
	}

	if err := migrations.Run(ctx, sqlDB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("[CONTAINER] Cleaning up resources...")

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("[CONTAINER] Failed to close Redis")
		}
	}
	if c.DB != nil {
		_ = c.DB.Close()
	}
}
