package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ShafqaatMalik/financial-data-project/internal/logger"
	"github.com/ShafqaatMalik/financial-data-project/internal/metrics"
	"github.com/ShafqaatMalik/financial-data-project/internal/types"
	"github.com/ShafqaatMalik/financial-data-project/pkg/marketdata"
	"github.com/ShafqaatMalik/financial-data-project/pkg/marketdata/provider"
)

// fetchAction fetches one or more tickers and prints their summary metrics.
// Useful for checking a ticker or an API key without starting the server.
func fetchAction(ctx context.Context, cmd *cli.Command) error {
	tickers := strings.Split(strings.ToUpper(cmd.String("tickers")), ",")
	for i := range tickers {
		tickers[i] = strings.TrimSpace(tickers[i])
	}

	start := cmd.Timestamp("start")
	end := cmd.Timestamp("end")
	window := int(cmd.Int("window"))

	appLogger, err := logger.NewLogger("warn")
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Sync() }()

	client, err := marketdata.NewClient(marketdata.ClientConfig{
		ProviderType:  provider.ProviderPolygon,
		PolygonApiKey: os.Getenv("POLYGON_API_KEY"),
	}, appLogger)
	if err != nil {
		return err
	}

	results := client.FetchAll(ctx, tickers, start, end)
	metricsByTicker := metrics.Compare(results, window)

	sorted := make([]string, 0, len(metricsByTicker))
	for ticker := range metricsByTicker {
		sorted = append(sorted, ticker)
	}

	sort.Strings(sorted)

	for _, ticker := range sorted {
		printResult(ticker, metricsByTicker[ticker], results[ticker].Series)
	}

	return nil
}

func printResult(ticker string, result types.MetricResult, series types.Series) {
	if result.Err != nil {
		fmt.Printf("%-8s error: %v\n", ticker, result.Err)
		return
	}

	summary, err := result.Summary.Take()
	if err != nil {
		fmt.Printf("%-8s no data in range\n", ticker)
		return
	}

	fmt.Printf("%-8s latest %.2f  change %+.2f%%  volatility %.2f%%  avg volume %.0f  bars %d\n",
		ticker, summary.LatestClose, summary.PercentChange, summary.Volatility, summary.AvgVolume, series.Len())
}

func main() {
	cmd := &cli.Command{
		Name:  "fetch",
		Usage: "Fetch historical prices and print summary metrics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "tickers",
				Aliases:  []string{"t"},
				Usage:    "Comma-separated ticker symbols",
				Required: true,
			},
			&cli.TimestampFlag{
				Name:     "start",
				Aliases:  []string{"s"},
				Usage:    "Start date in `YYYY-MM-DD` format",
				Required: true,
				Config: cli.TimestampConfig{
					Layouts: []string{"2006-01-02"},
				},
			},
			&cli.TimestampFlag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   "End date in `YYYY-MM-DD` format. Defaults to today.",
				Value:   time.Now(),
				Config: cli.TimestampConfig{
					Layouts: []string{"2006-01-02"},
				},
			},
			&cli.IntFlag{
				Name:    "window",
				Aliases: []string{"w"},
				Usage:   "Rolling average window in trading days",
				Value:   30,
			},
		},
		Action: fetchAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
