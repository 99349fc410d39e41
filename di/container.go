package di

import (
	"whey/cache"
	"whey/config"
	"whey/driver/storedb"
	"whey/gateway/favorite_product_gateway"
	"whey/gateway/product_search_gateway"
	"whey/queryparam"
	"whey/usecase/fetch_products_usecase"
	"whey/usecase/toggle_favorite_usecase"
)

type ApplicationComponents struct {
	Config *config.Config
	Codec  *queryparam.Codec
	Store  *cache.Store

	ControllerRegistry        *fetch_products_usecase.ControllerRegistry
	FetchProductsListUsecase  *fetch_products_usecase.FetchProductsListUsecase
	FetchProductDetailUsecase *fetch_products_usecase.FetchProductDetailUsecase
	ToggleFavoriteUsecase     *toggle_favorite_usecase.ToggleFavoriteUsecase
}

func NewApplicationComponents(pool storedb.DB, cfg *config.Config) *ApplicationComponents {
	domains := cfg.Filters.Domains()
	codec := queryparam.NewCodec(domains)
	store := cache.NewStore()

	searchGatewayImpl := product_search_gateway.NewProductSearchGateway(pool, domains)
	favoriteGatewayImpl := favorite_product_gateway.NewFavoriteProductGateway(pool, domains)

	registry := fetch_products_usecase.NewControllerRegistry(searchGatewayImpl, store, codec, cfg.Pagination.ScrollPageSize)
	listUsecase := fetch_products_usecase.NewFetchProductsListUsecase(searchGatewayImpl, store, codec, cfg.Pagination.FullListPageSize)
	detailUsecase := fetch_products_usecase.NewFetchProductDetailUsecase(searchGatewayImpl, store)
	toggleUsecase := toggle_favorite_usecase.NewToggleFavoriteUsecase(favoriteGatewayImpl, store)

	return &ApplicationComponents{
		Config:                    cfg,
		Codec:                     codec,
		Store:                     store,
		ControllerRegistry:        registry,
		FetchProductsListUsecase:  listUsecase,
		FetchProductDetailUsecase: detailUsecase,
		ToggleFavoriteUsecase:     toggleUsecase,
	}
}
