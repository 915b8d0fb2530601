package catalog_models

type Category struct {
	ID          int    `bson:"_id" json:"id" yaml:"id"`
	Name        string `bson:"name" json:"name" yaml:"name"`
	Image       string `bson:"image" json:"image" yaml:"image"`
	Description string `bson:"description" json:"description" yaml:"description"`
}

func (c Category) EntityID() int { return c.ID }
