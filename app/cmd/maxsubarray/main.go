package main

import (
	"context"
	"log/slog"
	"os"

	"maxsubarray/app/pkg/assert"
	assetsHandler "maxsubarray/app/pkg/assets-handler"
	"maxsubarray/app/pkg/datasets"
	"maxsubarray/app/pkg/runner"
	"maxsubarray/app/pkg/shutdown"
	"maxsubarray/app/pkg/utils/pathx"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stopSignals := shutdown.HandleSIGTERM(cancel)
	defer stopSignals()
	assert.LoadCtxCancel(cancel)

	config := assetsHandler.GetConfigFromFile(pathx.FromCwd(os.Getenv("CONFIG_FILE")))

	slogHandler := slog.NewTextHandler(
		os.Stdout,
		&slog.HandlerOptions{Level: config.SlogLevel()},
	)
	slog.SetDefault(slog.New(slogHandler))

	sets, err := datasets.BuildAll(config.Datasets)
	assert.NoError(err, "datasets must be buildable to start the run")
	slog.Debug("datasets loaded", "count", len(sets), "workers", config.Workers)

	results := runner.NewRunner(config.Workers, slog.Default()).Run(ctx, sets)

	if reportPath := pathx.FromCwd(os.Getenv("REPORT_FILE")); reportPath != "" {
		reportFile, err := os.OpenFile(reportPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
		assert.NoError(err, "report file must be created", assert.AssertData{"path": reportPath})
		assert.NoError(runner.WriteReport(reportFile, results), "error writing report",
			assert.AssertData{"path": reportPath})
		assert.NoError(reportFile.Close(), "error closing report file", assert.AssertData{"path": reportPath})
		slog.Info("report written", "path", reportPath)
	}

	if failed := runner.Failed(results); failed > 0 {
		slog.Error("some datasets failed", "failed", failed, "total", len(results))
		cancel()
		shutdown.Shutdown(1)
	}
}
