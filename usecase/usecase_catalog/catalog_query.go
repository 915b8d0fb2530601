package usecase_catalog

import (
	"cmp"
	"slices"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// 价格展示使用印度地区格式
var (
	priceLanguage = language.MustParse("en-IN")
	rupeeSymbol   = "₹"
)

// FilterProductsByCategory category 为空时原样返回，否则按类别精确匹配（区分大小写）
func FilterProductsByCategory(products []catalog_models.Product, category string) []catalog_models.Product {
	if category == "" {
		return products
	}
	out := make([]catalog_models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FilterProductsByCelebrity celebrityID 为0时原样返回
func FilterProductsByCelebrity(products []catalog_models.Product, celebrityID int) []catalog_models.Product {
	if celebrityID == 0 {
		return products
	}
	out := make([]catalog_models.Product, 0, len(products))
	for _, p := range products {
		if p.CelebrityID == celebrityID {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts 返回排序后的新切片，未知排序键保持原顺序
// 使用稳定排序，相同键值的商品保持相对顺序
func SortProducts(products []catalog_models.Product, key domain.ProductSortKey) []catalog_models.Product {
	out := slices.Clone(products)

	order, ok := key.SortOrder()
	if !ok {
		return out
	}
	desc := order.Order == "desc"

	switch order.Sort {
	case "price":
		slices.SortStableFunc(out, func(a, b catalog_models.Product) int {
			if desc {
				return cmp.Compare(b.Price, a.Price)
			}
			return cmp.Compare(a.Price, b.Price)
		})
	case "name":
		// Collator 非并发安全，每次排序单独创建
		c := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b catalog_models.Product) int {
			if desc {
				return c.CompareString(b.Name, a.Name)
			}
			return c.CompareString(a.Name, b.Name)
		})
	}

	return out
}

// FormatPrice 以印度卢比格式化整数金额，如 68963 -> ₹68,963，负数符号在货币符号之前
func FormatPrice(price int) string {
	sign := ""
	amount := int64(price)
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	p := message.NewPrinter(priceLanguage)
	return sign + rupeeSymbol + p.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
