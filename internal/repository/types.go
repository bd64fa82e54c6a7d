package repository

import "time"

// CatalogListFilter filters product and kit listings.
type CatalogListFilter struct {
	Page       int
	PageSize   int
	Search     string
	OnlyActive bool
}

// ResourceListFilter filters resource listings.
type ResourceListFilter struct {
	Page     int
	PageSize int
	Type     string
}

// OrderListFilter filters order listings.
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserListFilter filters account listings on the admin surface.
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Role     string
	Status   string
}
