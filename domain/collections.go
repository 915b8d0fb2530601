package domain

const (
	CollectionCatalogCelebrity = "catalog_celebrity"
)
const (
	CollectionCatalogCategory = "catalog_category"
)
const (
	CollectionCatalogProduct = "catalog_product"
)
const (
	CollectionCatalogSurveyQuestion = "catalog_survey_question"
)
