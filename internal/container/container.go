// Package container provides dependency injection for the application. It
// centralizes the creation and wiring of all dependencies, making them
// explicit and testable.
package container

import (
	"github.com/shopspring/decimal"

	"fjacquet/wishplan/internal/config"
	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/planner"
	"fjacquet/wishplan/internal/report"
	"fjacquet/wishplan/internal/store"
	"fjacquet/wishplan/internal/suggest"
)

// Container holds all application dependencies. It is immutable after
// creation; dependencies are reached through getters only.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	wishlist  *store.WishlistStore
	catalog   *store.CatalogStore
	suggester *suggest.Suggester
	planner   *planner.Planner
	reporter  *report.Generator
}

// NewContainer creates and wires all application dependencies from the given
// configuration. A nil clock falls back to the system clock.
func NewContainer(cfg *config.Config, clock planner.Clock) (*Container, error) {
	if cfg == nil {
		loaded, err := config.InitializeConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	wishlist := store.NewWishlistStore(cfg.Data.WishlistFile, logger)
	catalog := store.NewCatalogStore(cfg.Data.CategoriesFile, cfg.Data.MappingsFile, logger)

	var aiClient suggest.AIClient
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		aiClient = suggest.NewGeminiClient(cfg.AI.APIKey, cfg.AI.Model, logger)
	}
	suggester := suggest.New(catalog, aiClient, cfg.AI.FallbackCategory, logger)

	return &Container{
		logger:    logger,
		config:    cfg,
		wishlist:  wishlist,
		catalog:   catalog,
		suggester: suggester,
		planner:   planner.New(clock, logger),
		reporter:  report.NewGenerator(logger),
	}, nil
}

// Logger returns the application logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the loaded configuration.
func (c *Container) Config() *config.Config { return c.config }

// Wishlist returns the wishlist store.
func (c *Container) Wishlist() *store.WishlistStore { return c.wishlist }

// Catalog returns the category catalog store.
func (c *Container) Catalog() *store.CatalogStore { return c.catalog }

// Suggester returns the category suggester.
func (c *Container) Suggester() *suggest.Suggester { return c.suggester }

// Planner returns the purchase planning engine.
func (c *Container) Planner() *planner.Planner { return c.planner }

// Reporter returns the report generator.
func (c *Container) Reporter() *report.Generator { return c.reporter }

// DefaultMonthlySavings returns the configured default monthly contribution
// in the configured currency.
func (c *Container) DefaultMonthlySavings() models.Money {
	amount, err := decimal.NewFromString(c.config.Planner.DefaultMonthlySavings)
	if err != nil {
		// Validated at load time; a parse failure here means the config was
		// mutated after validation.
		amount = decimal.Zero
	}
	return models.NewMoney(amount, c.config.Planner.Currency)
}
