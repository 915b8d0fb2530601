package repository_catalog

import (
	"context"

	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
)

type builtinCatalogLoader struct{}

// NewBuiltinCatalogLoader 随程序发布的静态目录
func NewBuiltinCatalogLoader() catalog_interface.CatalogLoader {
	return builtinCatalogLoader{}
}

func (builtinCatalogLoader) LoadCatalog(ctx context.Context) (*catalog_models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return BuiltinCatalog(), nil
}

// BuiltinCatalog 每次调用返回新的目录实例
func BuiltinCatalog() *catalog_models.Catalog {
	return &catalog_models.Catalog{
		Celebrities: []catalog_models.Celebrity{
			{
				ID:              1,
				Name:            "RIHANNA",
				Image:           "/images/celebrities/rihanna.jpg",
				VibeTags:        []string{"Bold", "Statement", "Edgy"},
				Description:     "Rihanna's jewelry style is fearless and bold. She loves statement pieces that command attention and aren't afraid to make a statement.",
				MatchPercentage: 88,
			},
			{
				ID:              2,
				Name:            "BLAKE LIVELY",
				Image:           "/images/celebrities/blake.jpg",
				VibeTags:        []string{"Romantic", "Vintage", "Sophisticated"},
				Description:     "Blake Lively embodies romantic sophistication with vintage-inspired pieces that tell a story and add elegance to any look.",
				MatchPercentage: 92,
			},
			{
				ID:              3,
				Name:            "ZENDAYA",
				Image:           "/images/celebrities/zendaya.jpg",
				VibeTags:        []string{"Classic", "Elegant", "Timeless"},
				Description:     "Zendaya's style is all about classic elegance with a modern twist. Think delicate necklaces, timeless earrings, and rings that add a touch of sparkle.",
				MatchPercentage: 95,
			},
		},
		Categories: []catalog_models.Category{
			{ID: 1, Name: catalog_models.CategoryNecklaces, Image: "/images/categories/necklaces.jpg", Description: "Elegant necklaces for every occasion"},
			{ID: 2, Name: catalog_models.CategoryEarrings, Image: "/images/categories/earrings.jpg", Description: "Stunning earrings to frame your face"},
			{ID: 3, Name: catalog_models.CategoryRings, Image: "/images/categories/rings.jpg", Description: "Beautiful rings for every finger"},
			{ID: 4, Name: catalog_models.CategoryBracelets, Image: "/images/categories/bracelets.jpg", Description: "Delicate bracelets for your wrist"},
			{ID: 5, Name: catalog_models.CategoryPendants, Image: "/images/categories/pendants.jpg", Description: "Meaningful pendants close to your heart"},
		},
		Products: []catalog_models.Product{
			{
				ID:            1,
				Name:          "Star-Crossed Lovers Diamond Necklace",
				Price:         68963,
				OriginalPrice: 68963,
				Image:         "/images/products/necklace2.jpg",
				Category:      catalog_models.CategoryNecklaces,
				CelebrityID:   1,
				VibeTags:      []string{"Bold", "Statement"},
				Purity:        "18kt",
				Color:         "Yellow Gold",
				Description:   "An exquisite cross-shaped diamond necklace that makes a bold statement while maintaining elegant sophistication.",
				DeliveryTime:  "15-17 DAYS",
			},
			{
				ID:            2,
				Name:          "Wanderlust Mix Diamond Necklace",
				Price:         814282,
				OriginalPrice: 814282,
				Image:         "/images/products/necklace3.jpg",
				Category:      catalog_models.CategoryNecklaces,
				CelebrityID:   2,
				VibeTags:      []string{"Bohemian", "Eclectic"},
				Purity:        "18kt",
				Color:         "Yellow Gold",
				Description:   "A unique mixed-design necklace perfect for the free-spirited woman who loves to make a statement.",
				DeliveryTime:  "15-17 DAYS",
			},
			{
				ID:            3,
				Name:          "Serene Solitaire Necklace",
				Price:         12500,
				OriginalPrice: 12500,
				Image:         "/images/products/necklace1.jpg",
				Category:      catalog_models.CategoryNecklaces,
				CelebrityID:   1,
				VibeTags:      []string{"Classic", "Elegant"},
				Purity:        "14kt",
				Color:         "Yellow Gold",
				Description:   "A timeless solitaire necklace featuring a brilliant cut diamond in a classic yellow gold setting. Perfect for everyday elegance or special occasions.",
				DeliveryTime:  "15-17 DAYS",
			},
			{
				ID:            4,
				Name:          "Elegant Drop Earrings",
				Price:         45000,
				OriginalPrice: 45000,
				Image:         "/images/products/earrings1.jpg",
				Category:      catalog_models.CategoryEarrings,
				CelebrityID:   3,
				VibeTags:      []string{"Romantic", "Elegant"},
				Purity:        "14kt",
				Color:         "Rose Gold",
				Description:   "Delicate drop earrings that add a touch of romance to any outfit.",
				DeliveryTime:  "15-17 DAYS",
			},
		},
		SurveyQuestions: []catalog_models.SurveyQuestion{
			{
				ID:       1,
				Question: "What's the occasion? Let's find the perfect piece to celebrate.",
				Type:     catalog_models.QuestionTypeSingle,
				Options: []string{
					"Everyday elegance",
					"Special celebration",
					"A gift for a special birthday",
					"Professional occasions",
					"Date night",
				},
			},
			{
				ID:       2,
				Question: "How would you describe your personal style?",
				Type:     catalog_models.QuestionTypeMultiple,
				Options: []string{
					"Classic & Timeless",
					"Modern & Minimalist",
					"Bohemian & Eclectic",
					"Bold & Statement",
				},
			},
			{
				ID:       3,
				Question: "Which precious metal calls to you?",
				Type:     catalog_models.QuestionTypeSingle,
				Options:  []string{"Gold", "Silver", "Platinum", "Rose Gold"},
			},
			{
				ID:       4,
				Question: "Are you drawn to any particular gemstones?",
				Type:     catalog_models.QuestionTypeSingle,
				Options: []string{
					"Diamonds and Sapphires, please.",
					"Emeralds and Rubies",
					"Pearls and Opals",
					"I prefer simple metals",
				},
			},
			{
				ID:       5,
				Question: "What is your desired budget for this special piece?",
				Type:     catalog_models.QuestionTypeSingle,
				Options: []string{
					catalog_models.BudgetUnder50K,
					catalog_models.Budget50KTo150K,
					catalog_models.Budget150KTo500K,
					catalog_models.Budget500KAndAbove,
				},
			},
		},
	}
}
