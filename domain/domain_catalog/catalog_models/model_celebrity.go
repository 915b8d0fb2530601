package catalog_models

// Celebrity 明星风格人设，来自静态目录，只读
type Celebrity struct {
	ID          int      `bson:"_id" json:"id" yaml:"id"`
	Name        string   `bson:"name" json:"name" yaml:"name"`
	Image       string   `bson:"image" json:"image" yaml:"image"`
	VibeTags    []string `bson:"vibe_tags" json:"vibe_tags" yaml:"vibe_tags"` // 风格标签，保持原有顺序
	Description string   `bson:"description" json:"description" yaml:"description"`

	// 匹配度(0-100)，仅用于展示，推荐逻辑不参与计算
	MatchPercentage int `bson:"match_percentage" json:"match_percentage" yaml:"match_percentage"`
}

func (c Celebrity) EntityID() int { return c.ID }
