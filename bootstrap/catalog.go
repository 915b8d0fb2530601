package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/mongo"
	"github.com/Super-Badmen-Viper/VibeJewel/repository/repository_catalog"
	"github.com/Super-Badmen-Viper/VibeJewel/util/logger"
)

// NewCatalogRepository 按 CATALOG_SOURCE 加载目录快照，db 仅在 mongo 来源时使用
func NewCatalogRepository(env *Env, db mongo.Database) (catalog_interface.CatalogRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var loader catalog_interface.CatalogLoader
	switch env.CatalogSource {
	case CatalogSourceFile:
		loader = repository_catalog.NewFileCatalogLoader(env.CatalogFile)
	case CatalogSourceMongo:
		if db == nil {
			return nil, errors.New("CATALOG_SOURCE=mongo 需要数据库连接")
		}
		mongo.CreateIndexes(db)
		repo := repository_catalog.NewCatalogMongoRepository(db)
		if err := seedIfNeeded(ctx, env, repo); err != nil {
			return nil, err
		}
		loader = repo
	default:
		loader = repository_catalog.NewBuiltinCatalogLoader()
	}

	catalog, err := loader.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("加载商品目录失败(%s): %w", env.CatalogSource, err)
	}

	logger.Info().
		Str("source", env.CatalogSource).
		Int("celebrities", len(catalog.Celebrities)).
		Int("products", len(catalog.Products)).
		Msg("商品目录已加载")
	return repository_catalog.NewCatalogStaticRepository(catalog), nil
}

// seedIfNeeded DB_SEED 强制用内置目录覆盖，否则仅在集合为空时写入
func seedIfNeeded(ctx context.Context, env *Env, repo *repository_catalog.CatalogMongoRepository) error {
	var (
		n   int
		err error
	)
	if env.DBSeed {
		n, err = repo.Reseed(ctx, repository_catalog.BuiltinCatalog())
	} else {
		empty, checkErr := repo.IsEmpty(ctx)
		if checkErr != nil {
			return fmt.Errorf("检查目录集合失败: %w", checkErr)
		}
		if !empty {
			return nil
		}
		n, err = repo.Seed(ctx, repository_catalog.BuiltinCatalog())
	}
	if err != nil {
		return err
	}
	logger.Info().Int("documents", n).Bool("forced", env.DBSeed).Msg("已写入内置商品目录")
	return nil
}
