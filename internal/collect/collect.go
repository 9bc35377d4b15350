// Package collect retrieves the market data the calculators consume:
// treasury yields and ETF closing prices from Alpha Vantage, and UK gilt
// prices from the DMO and dividenddata.co.uk. Collected rows are persisted
// as parquet, either to a local path or to S3.
package collect

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/parquet-go/parquet-go"
)

var (
	ErrInvalidRow      = fmt.Errorf("invalid row")
	ErrDataUnavailable = fmt.Errorf("data unavailable")
	ErrMissingAPIKey   = fmt.Errorf("missing API key")
	ErrNoRows          = fmt.Errorf("no rows collected")
)

// TreasuryYield is one constant-maturity treasury observation.
type TreasuryYield struct {
	Date time.Time
	// Tenor in years.
	Tenor float64
	// Yield as an annual decimal.
	Yield float64
}

// ETFQuote is one daily closing price.
type ETFQuote struct {
	Date   time.Time
	Symbol string
	Close  float64
}

// GiltQuote is one UK gilt market observation.
type GiltQuote struct {
	Date         time.Time
	Source       string
	ISIN         string
	Ticker       string
	Desc         string
	CouponPct    float64
	MaturityDate time.Time
	CleanPrice   float64
	DirtyPrice   float64
	YieldPct     float64
	IndexLinked  bool
}

func writeRows[T any](rows []T, output io.Writer) error {
	writer := parquet.NewGenericWriter[T](output)
	defer writer.Close()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	return nil
}

// StoreToPath writes rows under basepath/YYYY/MM/DD/source.parquet and
// returns the file path.
func StoreToPath[T any](ctx context.Context, rows []T, source string, date time.Time, basepath string) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}

	path := fmt.Sprintf(
		"%s%c%04d%c%02d%c%02d",
		basepath,
		filepath.Separator,
		date.UTC().Year(),
		filepath.Separator,
		date.UTC().Month(),
		filepath.Separator,
		date.UTC().Day(),
	)

	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return "", err
	}

	outPath := fmt.Sprintf("%s%c%s.parquet", path, filepath.Separator, source)

	file, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := writeRows(rows, file); err != nil {
		return "", err
	}

	return outPath, nil
}

type S3Path struct {
	Bucket string
	Prefix string
}

func ParseS3(path string) (*S3Path, error) {
	if !strings.HasPrefix(path, "s3://") {
		return nil, fmt.Errorf("path must start with s3://")
	}

	path = strings.TrimPrefix(path, "s3://")
	parts := strings.SplitN(path, "/", 2)

	bucket := parts[0]

	var prefix string

	if len(parts) > 1 {
		prefix = parts[1]
		prefix = strings.TrimSuffix(prefix, "/")
	}

	return &S3Path{
		Bucket: bucket,
		Prefix: prefix,
	}, nil
}

// StoreToS3 writes rows to s3://bucket/[prefix/]YYYY/MM/DD/source.parquet
// and returns the object path.
func StoreToS3[T any](ctx context.Context, rows []T, source string, date time.Time, s3Client *s3.Client, dst *S3Path) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}

	tmp, err := os.CreateTemp("", "bondlab-*.parquet")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %v", err)
	}
	defer tmp.Close()
	defer os.Remove(tmp.Name())

	if err := writeRows(rows, tmp); err != nil {
		return "", err
	}

	if _, err := tmp.Seek(0, 0); err != nil {
		return "", fmt.Errorf("failed to seek to start of file: %w", err)
	}

	key := fmt.Sprintf(
		"%04d/%02d/%02d/%s.parquet",
		date.UTC().Year(),
		date.UTC().Month(),
		date.UTC().Day(),
		source,
	)

	if dst.Prefix != "" {
		key = fmt.Sprintf("%s/%s", dst.Prefix, key)
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(dst.Bucket),
		Key:    aws.String(key),
		Body:   tmp,
	}

	if _, err := s3Client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload file to s3://%s/%s: %w", dst.Bucket, key, err)
	}

	outPath := fmt.Sprintf("s3://%s/%s", dst.Bucket, key)

	return outPath, nil
}
