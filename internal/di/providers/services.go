package providers

import (
	"github.com/samber/do/v2"

	"github.com/heritageapp/heritage-server/internal/logger"
	"github.com/heritageapp/heritage-server/internal/service"
)

// ProvideProfileService provides the gene profile service.
func ProvideProfileService(i do.Injector) (*service.ProfileService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewProfileService(storeHandle.Store, log.Logger), nil
}

// ProvideArchetypeService provides the archetype assignment service.
func ProvideArchetypeService(i do.Injector) (*service.ArchetypeService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewArchetypeService(storeHandle.Store, log.Logger), nil
}
