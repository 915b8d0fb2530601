package catalog_models

import "slices"

// Catalog 进程内常驻的只读目录快照
type Catalog struct {
	Celebrities     []Celebrity      `json:"celebrities" yaml:"celebrities"`
	Categories      []Category       `json:"categories" yaml:"categories"`
	Products        []Product        `json:"products" yaml:"products"`
	SurveyQuestions []SurveyQuestion `json:"survey_questions" yaml:"survey_questions"`
}

// Clone 复制各序列，调用方对返回值的修改不会影响原目录
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return &Catalog{}
	}
	return &Catalog{
		Celebrities:     slices.Clone(c.Celebrities),
		Categories:      slices.Clone(c.Categories),
		Products:        slices.Clone(c.Products),
		SurveyQuestions: slices.Clone(c.SurveyQuestions),
	}
}

// ProductQuery 商品网格的筛选与排序条件
type ProductQuery struct {
	Category    string `form:"category" json:"category"`         // 空或 All 表示不过滤
	CelebrityID int    `form:"celebrity_id" json:"celebrity_id"` // 0 表示不过滤
	Sort        string `form:"sort" json:"sort"`                 // 未知排序键不排序
}
