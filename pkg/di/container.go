package di

import (
	"fmt"

	"gorm.io/gorm"

	"rules-directory/application/serviceimpl"
	"rules-directory/domain/repositories"
	"rules-directory/domain/services"
	"rules-directory/infrastructure/postgres"
	"rules-directory/interfaces/api/handlers"
	"rules-directory/pkg/config"
	"rules-directory/pkg/logger"
)

// Container wires the dependency graph explicitly: config, database, then
// repositories, then services. No reflection, no lookup at request time.
type Container struct {
	config *config.Config
	db     *gorm.DB

	categoryRepo  repositories.CategoryRepository
	ruleRepo      repositories.RuleRepository
	mcpServerRepo repositories.McpServerRepository

	categoryService  services.CategoryService
	ruleService      services.RuleService
	mcpServerService services.McpServerService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.config = cfg

	if err := logger.Init(logger.Config(cfg.Log)); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	db, err := postgres.NewDatabase(postgres.DatabaseConfig(cfg.Database))
	if err != nil {
		return err
	}
	c.db = db

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	c.categoryRepo = postgres.NewCategoryRepository(db)
	c.ruleRepo = postgres.NewRuleRepository(db)
	c.mcpServerRepo = postgres.NewMcpServerRepository(db)

	c.categoryService = serviceimpl.NewCategoryService(c.categoryRepo, c.ruleRepo)
	c.ruleService = serviceimpl.NewRuleService(c.ruleRepo)
	c.mcpServerService = serviceimpl.NewMcpServerService(c.mcpServerRepo)

	return nil
}

func (c *Container) Cleanup() error {
	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		CategoryService:  c.categoryService,
		RuleService:      c.ruleService,
		McpServerService: c.mcpServerService,
	}
}
