// internal/models/common.go
package models

// Collection names follow the original store layout: one collection per
// entity, lowercased.
const (
	CollectionProduct = "product"
	CollectionOrder   = "order"
	CollectionUser    = "user"
)
