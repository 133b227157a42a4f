package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"referral-pricing/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

const migrateTimeout = 2 * time.Minute

// Applies pending migrations with the atlas CLI, which must be on PATH.
func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("DB設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", *atlasBin)
	if err != nil {
		logger.Error("atlasクライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: *dir,
	})
	if err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}

	logger.Info("マイグレーション実行完了",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
}
