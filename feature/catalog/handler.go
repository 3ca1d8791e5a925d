package catalog

import (
	"errors"
	"fmt"
	"io/fs"

	"gamedata-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the persisted catalog documents over HTTP.
type Handler struct {
	store        *Store
	logger       *zap.Logger
	cacheSeconds int
}

// NewHandler creates a catalog handler backed by a store. cacheSeconds sets
// the Cache-Control max-age on successful responses; zero disables the header.
func NewHandler(store *Store, log *zap.Logger, cacheSeconds int) *Handler {
	return &Handler{
		store:        store,
		logger:       log,
		cacheSeconds: cacheSeconds,
	}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalogs")
	group.Get("/:name", h.HandleGetCatalog)
}

// HandleGetCatalog serves one catalog document by file name.
func (h *Handler) HandleGetCatalog(c *fiber.Ctx) error {
	name := c.Params("name")
	if !knownCatalog(name) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown catalog",
		})
	}

	log := logger.WithRayID(h.logger, c)
	cat, err := h.store.Load(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("Catalog requested before generation", zap.String("catalog", name))
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "catalog not generated yet",
			})
		}
		log.Error("Failed to load catalog", zap.String("catalog", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load catalog",
		})
	}

	if h.cacheSeconds > 0 {
		c.Set(fiber.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", h.cacheSeconds))
	}
	return c.JSON(cat)
}

// knownCatalog guards the route against path probing; only the three
// generated documents are served.
func knownCatalog(name string) bool {
	switch name {
	case ComponentsFile, ReactorsFile, AuxGeneratorsFile:
		return true
	}
	return false
}
