package collect

import (
	"context"
	"math"
	"os"
	"testing"
	"time"
)

func TestParseCouponPercentage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		desc    string
		want    float64
		wantErr bool
	}{
		{"2% Treasury Gilt 2025", 2, false},
		{"0 5/8% Treasury Gilt 2025", 0.625, false},
		{"3½% Treasury Gilt 2025", 3.5, false},
		{"1¼% Treasury Gilt 2027", 1.25, false},
		{"0¾% Treasury Gilt 2033", 0.75, false},
		{"0.125% Index-linked Treasury Gilt 2073", 0, true},
		{"Treasury Gilt 2025", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := parseCouponPercentage(tc.desc)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseCouponPercentage(%q) = %v, want error", tc.desc, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCouponPercentage(%q): %v", tc.desc, err)
			}
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("parseCouponPercentage(%q) = %v, want %v", tc.desc, got, tc.want)
			}
		})
	}
}

func TestParseDMORow(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)

	row := []string{"GB00B16NNR78", "4¼% Treasury Gilt 2036", "98.45", "99.12", "", "", "", "07-Mar-2036"}
	q, err := parseDMORow(date, row)
	if err != nil {
		t.Fatalf("parseDMORow: %v", err)
	}
	if q.ISIN != "GB00B16NNR78" || q.CouponPct != 4.25 || q.CleanPrice != 98.45 || q.DirtyPrice != 99.12 {
		t.Fatalf("unexpected quote: %+v", q)
	}
	if q.IndexLinked {
		t.Fatalf("nominal gilt marked index-linked")
	}
	if q.MaturityDate.Year() != 2036 {
		t.Fatalf("maturity year = %d, want 2036", q.MaturityDate.Year())
	}

	linkerRow := []string{"GB00BLH38158", "0 1/8% Index-linked Treasury Gilt 2073", "60.20", "61.05", "", "", "", "22-Mar-2073"}
	lq, err := parseDMORow(date, linkerRow)
	if err != nil {
		t.Fatalf("parseDMORow linker: %v", err)
	}
	if !lq.IndexLinked {
		t.Fatalf("linker not marked index-linked")
	}
	if math.Abs(lq.CouponPct-0.125) > 1e-12 {
		t.Fatalf("linker coupon = %v, want 0.125", lq.CouponPct)
	}

	if _, err := parseDMORow(date, []string{"US1234", "not a gilt"}); err == nil {
		t.Fatalf("expected error for non-GB row")
	}
}

func TestParseS3(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path    string
		bucket  string
		prefix  string
		wantErr bool
	}{
		{"s3://bucket", "bucket", "", false},
		{"s3://bucket/prefix/", "bucket", "prefix", false},
		{"s3://bucket/a/b", "bucket", "a/b", false},
		{"/local/path", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := ParseS3(tc.path)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseS3(%q) = %+v, want error", tc.path, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseS3(%q): %v", tc.path, err)
			}
			if got.Bucket != tc.bucket || got.Prefix != tc.prefix {
				t.Fatalf("ParseS3(%q) = %+v, want bucket %q prefix %q", tc.path, got, tc.bucket, tc.prefix)
			}
		})
	}
}

func TestStoreToPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	date := time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)

	rows := []TreasuryYield{
		{Date: date, Tenor: 2, Yield: 0.0455},
		{Date: date, Tenor: 10, Yield: 0.0465},
	}

	outPath, err := StoreToPath(context.Background(), rows, "Treasury", date, dir)
	if err != nil {
		t.Fatalf("StoreToPath: %v", err)
	}

	stat, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("stat %s: %v", outPath, err)
	}
	if stat.Size() == 0 {
		t.Fatalf("parquet file is empty")
	}

	if _, err := StoreToPath(context.Background(), []TreasuryYield{}, "Treasury", date, dir); err != ErrNoRows {
		t.Fatalf("empty rows: err = %v, want %v", err, ErrNoRows)
	}
}
