package repository_catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleCatalogYAML = `
celebrities:
  - id: 1
    name: RIHANNA
    vibe_tags: [Bold, Statement]
    match_percentage: 88
categories:
  - id: 1
    name: RINGS
products:
  - id: 10
    name: Halo Ring
    price: 99000
    original_price: 120000
    category: RINGS
    celebrity_id: 1
    vibe_tags: [Bold]
    purity: 18kt
    color: White Gold
    delivery_time: 10-12 DAYS
survey_questions:
  - id: 1
    question: Which precious metal calls to you?
    type: single
    options: [Gold, Silver]
`

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileCatalogLoader_Load(t *testing.T) {
	loader := NewFileCatalogLoader(writeCatalogFile(t, sampleCatalogYAML))

	catalog, err := loader.LoadCatalog(context.Background())
	require.NoError(t, err)

	require.Len(t, catalog.Products, 1)
	p := catalog.Products[0]
	assert.Equal(t, 10, p.ID)
	assert.Equal(t, 99000, p.Price)
	assert.Equal(t, 120000, p.OriginalPrice)
	assert.Equal(t, "White Gold", p.Color)
	assert.Equal(t, []string{"Bold"}, p.VibeTags)
	assert.Equal(t, "10-12 DAYS", p.DeliveryTime)

	require.Len(t, catalog.Celebrities, 1)
	assert.Equal(t, 88, catalog.Celebrities[0].MatchPercentage)
	assert.Equal(t, []string{"Gold", "Silver"}, catalog.SurveyQuestions[0].Options)
}

func TestFileCatalogLoader_BuiltinRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(BuiltinCatalog())
	require.NoError(t, err)

	catalog, err := NewFileCatalogLoader(writeCatalogFile(t, string(data))).LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BuiltinCatalog(), catalog)
}

func TestFileCatalogLoader_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewFileCatalogLoader(filepath.Join(t.TempDir(), "missing.yaml")).LoadCatalog(ctx)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewFileCatalogLoader(writeCatalogFile(t, "products: [")).LoadCatalog(ctx)
	assert.ErrorContains(t, err, "parse catalog file")

	invalid := `
products:
  - id: 1
    category: ANKLETS
  - id: 1
    category: RINGS
`
	_, err = NewFileCatalogLoader(writeCatalogFile(t, invalid)).LoadCatalog(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id 1")
	assert.Contains(t, err.Error(), `unknown category "ANKLETS"`)
}
