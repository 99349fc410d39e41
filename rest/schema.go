package rest

import "whey/domain"

type ProductListResponse struct {
	Products []domain.ProductItem `json:"products"`
	Count    int                  `json:"count"`
}

type DiscoverResponse struct {
	Pages      [][]domain.ProductItem `json:"pages"`
	HasMore    bool                   `json:"has_more"`
	FetchError string                 `json:"fetch_error,omitempty"`
}

type FavoriteTogglePayload struct {
	Favorited bool `json:"favorited"`
}

type FavoriteToggleResponse struct {
	Status string `json:"status"`
}

type AuthRequiredResponse struct {
	Error    string `json:"error"`
	LoginURL string `json:"login_url"`
	ReturnTo string `json:"return_to"`
}
