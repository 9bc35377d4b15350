package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/pbnjay/grate/xls"

	"bondlab/internal/collect"
)

func getAwsConfig(ctx context.Context, profile string) (aws.Config, error) {
	if profile == "default" {
		return config.LoadDefaultConfig(ctx)
	}
	return config.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profile))
}

func store[T any](ctx context.Context, rows []T, source, profile, dst string) (string, error) {
	date := time.Now()

	s3Path, _ := collect.ParseS3(dst)
	if s3Path == nil {
		return collect.StoreToPath(ctx, rows, source, date, dst)
	}

	cfg, err := getAwsConfig(ctx, profile)
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %v", err)
	}

	s3Client := s3.NewFromConfig(cfg)

	outPath, err := collect.StoreToS3(ctx, rows, source, date, s3Client, s3Path)
	if err != nil {
		return "", fmt.Errorf("failed to store data to S3: %v", err)
	}

	return outPath, nil
}

func main() {
	ctx := context.Background()

	source := flag.String("source", "treasury", "data source: treasury, etf, dmo or dividenddata")
	symbol := flag.String("symbol", "TLT", "ETF symbol (etf source only)")
	apiKey := flag.String("apikey", os.Getenv("ALPHAVANTAGE_API_KEY"), "Alpha Vantage API key (treasury and etf sources)")
	profile := flag.String("profile", "default", "the AWS profile to use")
	helpFlag := flag.Bool("help", false, "print this help message")
	flag.Parse()
	args := flag.Args()

	if len(args) != 1 || *helpFlag {
		fmt.Printf("Usage: %s <flags> <destination>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(1)
	}

	dst := args[0]
	now := time.Now()

	var (
		outPath string
		err     error
	)

	switch *source {
	case "treasury":
		client := &collect.AlphaVantageClient{APIKey: *apiKey}
		var rows []collect.TreasuryYield
		rows, err = client.TreasuryCurve(ctx, now)
		if err == nil {
			outPath, err = store(ctx, rows, "Treasury", *profile, dst)
		}
	case "etf":
		client := &collect.AlphaVantageClient{APIKey: *apiKey}
		var rows []collect.ETFQuote
		rows, err = client.DailyCloses(ctx, *symbol)
		if err == nil {
			outPath, err = store(ctx, rows, *symbol, *profile, dst)
		}
	case "dmo":
		collector := collect.NewDMOCollector()
		var rows []collect.GiltQuote
		rows, err = collector.Collect(ctx, now)
		if err == nil {
			outPath, err = store(ctx, rows, collector.Source(), *profile, dst)
		}
	case "dividenddata":
		collector := collect.NewDividendDataCollector()
		var rows []collect.GiltQuote
		rows, err = collector.Collect(ctx, now)
		if err == nil {
			outPath, err = store(ctx, rows, collector.Source(), *profile, dst)
		}
	default:
		fmt.Printf("Unknown source %q\n", *source)
		os.Exit(1)
	}

	if err != nil {
		switch err {
		case collect.ErrDataUnavailable:
			fmt.Printf("Data unavailable\n")
		default:
			fmt.Printf("Failed to collect data: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Stored to %s\n", outPath)
}
