package catalog_models

// 商品类别，取值固定
const (
	CategoryNecklaces = "NECKLACES"
	CategoryEarrings  = "EARRINGS"
	CategoryRings     = "RINGS"
	CategoryBracelets = "BRACELETS"
	CategoryPendants  = "PENDANTS"
)

// CategoryAll 商品列表筛选中表示不过滤类别
const CategoryAll = "All"

// Categories 返回全部类别标签，顺序与类别网格一致
func Categories() []string {
	return []string{CategoryNecklaces, CategoryEarrings, CategoryRings, CategoryBracelets, CategoryPendants}
}

type Product struct {
	ID            int    `bson:"_id" json:"id" yaml:"id"`
	Name          string `bson:"name" json:"name" yaml:"name"`
	Price         int    `bson:"price" json:"price" yaml:"price"`                            // 单位：卢比，无小数
	OriginalPrice int    `bson:"original_price" json:"original_price" yaml:"original_price"` // 原价
	Image         string `bson:"image" json:"image" yaml:"image"`
	Category      string `bson:"category" json:"category" yaml:"category"`

	// 关联明星ID，弱引用，仅表示关联关系
	CelebrityID int `bson:"celebrity_id" json:"celebrity_id" yaml:"celebrity_id"`

	VibeTags     []string `bson:"vibe_tags" json:"vibe_tags" yaml:"vibe_tags"`
	Purity       string   `bson:"purity" json:"purity" yaml:"purity"` // 金属纯度，如 18kt
	Color        string   `bson:"color" json:"color" yaml:"color"`    // 金属颜色，如 Yellow Gold
	Description  string   `bson:"description" json:"description" yaml:"description"`
	DeliveryTime string   `bson:"delivery_time" json:"delivery_time" yaml:"delivery_time"`
}

func (p Product) EntityID() int { return p.ID }
