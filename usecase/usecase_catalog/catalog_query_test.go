package usecase_catalog

import (
	"testing"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"github.com/Super-Badmen-Viper/VibeJewel/repository/repository_catalog"
	"github.com/stretchr/testify/assert"
)

func prices(ps []catalog_models.Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Price)
	}
	return out
}

func names(ps []catalog_models.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterProductsByCategory(t *testing.T) {
	products := []catalog_models.Product{
		{ID: 1, Category: catalog_models.CategoryRings},
		{ID: 2, Category: catalog_models.CategoryNecklaces},
		{ID: 3, Category: "rings"},
		{ID: 4, Category: catalog_models.CategoryRings},
	}

	rings := FilterProductsByCategory(products, catalog_models.CategoryRings)
	assert.Len(t, rings, 2)
	for _, p := range rings {
		assert.Equal(t, "RINGS", p.Category)
	}

	assert.Equal(t, products, FilterProductsByCategory(products, ""))
	assert.Empty(t, FilterProductsByCategory(products, catalog_models.CategoryPendants))
	assert.Empty(t, FilterProductsByCategory(nil, catalog_models.CategoryRings))
}

func TestFilterProductsByCelebrity(t *testing.T) {
	products := repository_catalog.BuiltinCatalog().Products

	filtered := FilterProductsByCelebrity(products, 1)
	assert.Equal(t, []string{"Star-Crossed Lovers Diamond Necklace", "Serene Solitaire Necklace"}, names(filtered))

	assert.Equal(t, products, FilterProductsByCelebrity(products, 0))
	assert.Empty(t, FilterProductsByCelebrity(products, 42))
}

func TestSortProducts_Price(t *testing.T) {
	products := []catalog_models.Product{
		{ID: 1, Price: 814282},
		{ID: 2, Price: 12500},
		{ID: 3, Price: 45000},
		{ID: 4, Price: 68963},
	}

	assert.Equal(t, []int{12500, 45000, 68963, 814282}, prices(SortProducts(products, domain.SortPriceLowHigh)))
	assert.Equal(t, []int{814282, 68963, 45000, 12500}, prices(SortProducts(products, domain.SortPriceHighLow)))

	// 输入不被修改
	assert.Equal(t, []int{814282, 12500, 45000, 68963}, prices(products))
}

func TestSortProducts_StableOnTies(t *testing.T) {
	products := []catalog_models.Product{
		{ID: 1, Price: 100},
		{ID: 2, Price: 50},
		{ID: 3, Price: 100},
		{ID: 4, Price: 50},
	}

	sorted := SortProducts(products, domain.SortPriceLowHigh)
	ids := []int{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID}
	assert.Equal(t, []int{2, 4, 1, 3}, ids)

	sorted = SortProducts(products, domain.SortPriceHighLow)
	ids = []int{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID}
	assert.Equal(t, []int{1, 3, 2, 4}, ids)
}

func TestSortProducts_NameCollation(t *testing.T) {
	products := []catalog_models.Product{
		{ID: 1, Name: "cherry"},
		{ID: 2, Name: "Banana"},
		{ID: 3, Name: "apple"},
	}

	assert.Equal(t, []string{"apple", "Banana", "cherry"}, names(SortProducts(products, domain.SortNameAZ)))
	assert.Equal(t, []string{"cherry", "Banana", "apple"}, names(SortProducts(products, domain.SortNameZA)))
}

func TestSortProducts_UnknownKeyIsIdentity(t *testing.T) {
	products := []catalog_models.Product{{ID: 2}, {ID: 1}}

	for _, key := range []domain.ProductSortKey{"", "popularity"} {
		sorted := SortProducts(products, key)
		assert.Equal(t, products, sorted)

		sorted[0].ID = 99
		assert.Equal(t, 2, products[0].ID)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price    int
		expected string
	}{
		{68963, "₹68,963"},
		{45000, "₹45,000"},
		{999, "₹999"},
		{0, "₹0"},
		{-5000, "-₹5,000"},
		{-999, "-₹999"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatPrice(tt.price))
	}
}

func TestApplyProductQuery(t *testing.T) {
	products := repository_catalog.BuiltinCatalog().Products

	all := ApplyProductQuery(products, catalog_models.ProductQuery{Category: catalog_models.CategoryAll})
	assert.Len(t, all, len(products))

	necklaces := ApplyProductQuery(products, catalog_models.ProductQuery{
		Category: catalog_models.CategoryNecklaces,
		Sort:     string(domain.SortPriceLowHigh),
	})
	assert.Equal(t, []int{12500, 68963, 814282}, prices(necklaces))

	combined := ApplyProductQuery(products, catalog_models.ProductQuery{
		Category:    catalog_models.CategoryNecklaces,
		CelebrityID: 1,
		Sort:        string(domain.SortNameAZ),
	})
	assert.Equal(t, []string{"Serene Solitaire Necklace", "Star-Crossed Lovers Diamond Necklace"}, names(combined))
}
