package domain

type SortOrder struct {
	Sort  string `bson:"sort" json:"sort"`   // 排序字段
	Order string `bson:"order" json:"order"` // 排序方式（asc 或 desc）
}

// ProductSortKey 商品列表排序键，与前端下拉选项一致
type ProductSortKey string

const (
	SortPriceLowHigh ProductSortKey = "price-low-high"
	SortPriceHighLow ProductSortKey = "price-high-low"
	SortNameAZ       ProductSortKey = "name-a-z"
	SortNameZA       ProductSortKey = "name-z-a"
)

// SortOrder 将排序键拆解为字段与方向，未知键返回 ok=false
func (k ProductSortKey) SortOrder() (SortOrder, bool) {
	switch k {
	case SortPriceLowHigh:
		return SortOrder{Sort: "price", Order: "asc"}, true
	case SortPriceHighLow:
		return SortOrder{Sort: "price", Order: "desc"}, true
	case SortNameAZ:
		return SortOrder{Sort: "name", Order: "asc"}, true
	case SortNameZA:
		return SortOrder{Sort: "name", Order: "desc"}, true
	}
	return SortOrder{}, false
}
