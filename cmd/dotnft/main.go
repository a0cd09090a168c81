package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"DotNFT/internal/cli"
	"DotNFT/pkg/appcfg"
	"DotNFT/pkg/config"
	"DotNFT/pkg/logx"
)

func main() {
	os.Exit(run())
}

func run() int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "getwd: %v\n", err)
		return 1
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
	}

	appConf, err := appcfg.Load(filepath.Join(cwd, "configs", "app.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load app config: %v (using defaults)\n", err)
		appConf = appcfg.Default()
	}
	appConf.ApplyEnv(os.LookupEnv)

	if err := logx.Init(logx.Config{
		Level:                appConf.LogLevel,
		ConsoleOnly:          true,
		HideSecretsInConsole: appConf.HideSecretsInConsole,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "log init: %v\n", err)
		return 1
	}
	defer logx.Close()

	logx.S().Infow("dotnft started",
		"cwd", cwd,
		"lang", appConf.Language,
		"log_level", appConf.LogLevel,
		"hide_secrets_in_console", appConf.HideSecretsInConsole,
	)

	ctx, cancel := cli.WithInterrupt(context.Background())
	defer cancel()

	r := cli.NewRunner(appConf, config.DefaultPath())
	if err := r.Run(ctx); err != nil {
		if errors.Is(err, cli.ErrCancelled) {
			fmt.Println(r.Messages().Cancelled)
			return 0
		}
		logx.S().Errorw("fatal", "err", err)
		return 1
	}
	return 0
}
