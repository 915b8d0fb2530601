package usecase_recommend

import (
	"slices"
	"strings"

	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
)

// 问卷风格选项为 "<标签> & Timeless" 这类复合标签，明星标签只有前半部分
var celebrityTagSuffixes = []string{" & Timeless", " & Statement"}

// preferences 从问卷答案中提取的推荐条件，缺失项表示不约束
type preferences struct {
	styles map[string]struct{}
	metal  string
	budget string
}

func extractPreferences(answers catalog_models.SurveyAnswers) preferences {
	p := preferences{styles: map[string]struct{}{}}
	if a, ok := answers.Answer(catalog_models.QuestionIndexStyle); ok {
		p.styles = a.Set()
	}
	if a, ok := answers.Answer(catalog_models.QuestionIndexMetal); ok {
		p.metal, _ = a.Single()
	}
	if a, ok := answers.Answer(catalog_models.QuestionIndexBudget); ok {
		p.budget, _ = a.Single()
	}
	return p
}

func (p preferences) hasStyle(tag string) bool {
	_, ok := p.styles[tag]
	return ok
}

// GenerateRecommendations 根据问卷答案过滤明星与商品，保持目录原有顺序
// 任一侧过滤结果为空时返回该侧完整目录
func GenerateRecommendations(
	catalog *catalog_models.Catalog,
	answers catalog_models.SurveyAnswers,
) catalog_models.RecommendationResult {
	if catalog == nil {
		catalog = &catalog_models.Catalog{}
	}
	prefs := extractPreferences(answers)

	celebrities := make([]catalog_models.Celebrity, 0, len(catalog.Celebrities))
	for _, c := range catalog.Celebrities {
		if matchCelebrity(c, prefs) {
			celebrities = append(celebrities, c)
		}
	}

	products := make([]catalog_models.Product, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		if productMatchCount(p, prefs) > 0 {
			products = append(products, p)
		}
	}

	result := catalog_models.RecommendationResult{
		Celebrities: celebrities,
		Products:    products,
	}
	if len(celebrities) == 0 {
		result.Celebrities = append(celebrities, catalog.Celebrities...)
		result.CelebrityFallback = true
	}
	if len(products) == 0 {
		result.Products = append(products, catalog.Products...)
		result.ProductFallback = true
	}
	return result
}

// matchCelebrity 任一标签本身或加上复合后缀后出现在风格偏好中即命中
func matchCelebrity(c catalog_models.Celebrity, prefs preferences) bool {
	for _, tag := range c.VibeTags {
		if prefs.hasStyle(tag) {
			return true
		}
		for _, suffix := range celebrityTagSuffixes {
			if prefs.hasStyle(tag + suffix) {
				return true
			}
		}
	}
	return false
}

// productMatchCount 风格、金属、预算各计1分，不加权
func productMatchCount(p catalog_models.Product, prefs preferences) int {
	matches := 0

	if slices.ContainsFunc(p.VibeTags, prefs.hasStyle) {
		matches++
	}

	if prefs.metal != "" &&
		strings.Contains(strings.ToLower(p.Color), strings.ToLower(prefs.metal)) {
		matches++
	}

	if prefs.budget != "" && InBudget(p.Price, prefs.budget) {
		matches++
	}

	return matches
}

// InBudget 判断价格是否落在预算区间内，边界两端包含（最高档无上限）
// 500000 同时属于 150,000 - 500,000 与 500,000+ 两档；未知标签返回 false
func InBudget(price int, budget string) bool {
	switch budget {
	case catalog_models.BudgetUnder50K:
		return price < 50000
	case catalog_models.Budget50KTo150K:
		return price >= 50000 && price <= 150000
	case catalog_models.Budget150KTo500K:
		return price >= 150000 && price <= 500000
	case catalog_models.Budget500KAndAbove:
		return price >= 500000
	}
	return false
}
