package api

import "github.com/heritageapp/heritage-server/internal/service"

// Services bundles the service dependencies handlers draw on.
type Services struct {
	Catalog   *service.CatalogService
	Profile   *service.ProfileService
	Archetype *service.ArchetypeService
	Search    *service.SearchService // nil when search is disabled
}
