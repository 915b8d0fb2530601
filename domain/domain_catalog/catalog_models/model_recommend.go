package catalog_models

// RecommendationResult 每次调用新建，不缓存
// 某一侧未命中任何条目时返回完整目录，并置对应 Fallback 标记
type RecommendationResult struct {
	Celebrities       []Celebrity `json:"celebrities"`
	Products          []Product   `json:"products"`
	CelebrityFallback bool        `json:"celebrity_fallback"`
	ProductFallback   bool        `json:"product_fallback"`
}
