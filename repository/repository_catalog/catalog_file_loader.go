package repository_catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"gopkg.in/yaml.v3"
)

type fileCatalogLoader struct {
	path string
}

// NewFileCatalogLoader 从 YAML 文件加载目录，结构与 Catalog 的 yaml 标签一致
func NewFileCatalogLoader(path string) catalog_interface.CatalogLoader {
	return &fileCatalogLoader{path: path}
}

func (l *fileCatalogLoader) LoadCatalog(ctx context.Context) (*catalog_models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", l.path, err)
	}

	var catalog catalog_models.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", l.path, err)
	}

	if err := ValidateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", l.path, err)
	}
	return &catalog, nil
}
