package session_models

import "github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"

// CartItem 购物车条目，同一商品只出现一次
type CartItem struct {
	catalog_models.Product
	Quantity int `json:"quantity"`
}
