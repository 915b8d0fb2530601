package repository_catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
)

// ValidateCatalog 校验外部来源的目录：ID 唯一且为正数，商品类别属于固定集合
// 商品关联的明星ID只是弱引用，不要求存在
func ValidateCatalog(catalog *catalog_models.Catalog) error {
	if catalog == nil {
		return errors.New("catalog is nil")
	}

	var errs []error
	errs = append(errs, checkIDs("celebrity", catalog.Celebrities)...)
	errs = append(errs, checkIDs("category", catalog.Categories)...)
	errs = append(errs, checkIDs("product", catalog.Products)...)
	errs = append(errs, checkIDs("survey question", catalog.SurveyQuestions)...)

	categories := catalog_models.Categories()
	for _, p := range catalog.Products {
		if !slices.Contains(categories, p.Category) {
			errs = append(errs, fmt.Errorf("product %d: unknown category %q", p.ID, p.Category))
		}
	}
	for _, q := range catalog.SurveyQuestions {
		if q.Type != catalog_models.QuestionTypeSingle && q.Type != catalog_models.QuestionTypeMultiple {
			errs = append(errs, fmt.Errorf("survey question %d: unknown type %q", q.ID, q.Type))
		}
	}

	return errors.Join(errs...)
}

func checkIDs[T domain.Entity](kind string, items []T) []error {
	var errs []error
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		id := item.EntityID()
		if id <= 0 {
			errs = append(errs, fmt.Errorf("%s: invalid id %d", kind, id))
			continue
		}
		if _, ok := seen[id]; ok {
			errs = append(errs, fmt.Errorf("%s: duplicate id %d", kind, id))
		}
		seen[id] = struct{}{}
	}
	return errs
}
