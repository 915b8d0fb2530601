package repository_catalog

import (
	"testing"

	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"github.com/stretchr/testify/assert"
)

func TestValidateCatalog(t *testing.T) {
	assert.NoError(t, ValidateCatalog(BuiltinCatalog()))
	assert.NoError(t, ValidateCatalog(&catalog_models.Catalog{}))
	assert.Error(t, ValidateCatalog(nil))

	// 商品关联不存在的明星是允许的
	dangling := BuiltinCatalog()
	dangling.Products[0].CelebrityID = 404
	assert.NoError(t, ValidateCatalog(dangling))

	bad := BuiltinCatalog()
	bad.Celebrities[1].ID = 0
	bad.SurveyQuestions[0].Type = "slider"
	err := ValidateCatalog(bad)
	assert.ErrorContains(t, err, "celebrity: invalid id 0")
	assert.ErrorContains(t, err, `unknown type "slider"`)
}
