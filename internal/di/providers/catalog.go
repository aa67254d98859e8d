package providers

import (
	"github.com/samber/do/v2"

	"github.com/heritageapp/heritage-server/internal/config"
	"github.com/heritageapp/heritage-server/internal/logger"
	"github.com/heritageapp/heritage-server/internal/service"
)

// ProvideCatalogService builds the immutable catalog once at startup.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	svc, err := service.NewCatalogService(cfg.Catalog, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Catalog ready", "entries", svc.Size())

	return svc, nil
}
