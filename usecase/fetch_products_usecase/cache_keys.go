package fetch_products_usecase

import (
	"whey/cache"
	"whey/domain"
	"whey/queryparam"
)

// Cache keys derive from the canonical parameter encoding, so two requests
// for the same resolved state share one entry regardless of how their raw
// URLs were spelled. url.Values.Encode sorts keys, making the key stable.

func ScrollCacheKey(codec *queryparam.Codec, filters domain.FilterState, sortBy domain.SortBy, sortOrder domain.SortOrder) string {
	return cache.ListNamespace + "scroll:" + codec.Encode(filters, sortBy, sortOrder).Encode()
}

func FullListCacheKey(codec *queryparam.Codec, filters domain.FilterState, sortBy domain.SortBy, sortOrder domain.SortOrder) string {
	return cache.ListNamespace + "full:" + codec.Encode(filters, sortBy, sortOrder).Encode()
}

func DetailCacheKey(slug string) string {
	return cache.DetailNamespace + slug
}
