package controller_catalog

import (
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"github.com/Super-Badmen-Viper/VibeJewel/usecase/usecase_catalog"
)

// ProductView 商品响应，附带格式化后的价格
type ProductView struct {
	catalog_models.Product
	PriceDisplay         string `json:"price_display"`
	OriginalPriceDisplay string `json:"original_price_display"`
}

func NewProductView(p catalog_models.Product) ProductView {
	return ProductView{
		Product:              p,
		PriceDisplay:         usecase_catalog.FormatPrice(p.Price),
		OriginalPriceDisplay: usecase_catalog.FormatPrice(p.OriginalPrice),
	}
}

func NewProductViews(products []catalog_models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views
}
