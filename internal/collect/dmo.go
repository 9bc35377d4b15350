package collect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pbnjay/grate"
)

var SourceDMO = "DMO"

// DMOCollector reads the UK Debt Management Office gilts-in-issue close
// price report. Unlike the price feeds, the DMO report also carries
// index-linked gilts, which the breakeven calculator needs.
type DMOCollector struct {
}

func NewDMOCollector() *DMOCollector {
	return &DMOCollector{}
}

func (c *DMOCollector) Collect(ctx context.Context, date time.Time) ([]GiltQuote, error) {
	// The DMO website has a number of reports that can be used to collect
	// gilt data.
	// https://www.dmo.gov.uk/data/pdfdatareport?reportCode=D1A
	// https://www.dmo.gov.uk/data/pdfdatareport?reportCode=D9D
	// https://www.dmo.gov.uk/data/pdfdatareport?reportCode=D10B

	params := fmt.Sprintf("&Trade Date=%02d-%02d-%04d", date.Day(), date.Month(), date.Year())
	url := "https://www.dmo.gov.uk/umbraco/surface/DataExport/GetDataExport?reportCode=D10B&exportFormatValue=xls&parameters=" + url.QueryEscape(params)

	fmt.Printf("Fetching %s\n", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get data: http %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "gilt-*.xls")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, resp.Body)
	tmp.Close()
	if err != nil {
		return nil, err
	}

	fmt.Printf("Downloaded %d bytes to %s\n", size, tmp.Name())

	wb, err := grate.Open(tmp.Name())
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	var quotes []GiltQuote

	sheets, err := wb.List()
	if err != nil {
		return nil, err
	}
	for _, sheetName := range sheets {
		sheet, err := wb.Get(sheetName)
		if err != nil {
			return nil, err
		}

		for sheet.Next() {
			row := sheet.Strings()
			q, err := parseDMORow(date, row)
			if err == nil {
				quotes = append(quotes, q)
			}
		}
	}

	if len(quotes) == 0 {
		return nil, ErrDataUnavailable
	}

	return quotes, nil
}

func (c *DMOCollector) Source() string {
	return SourceDMO
}

func parseDMORow(date time.Time, row []string) (GiltQuote, error) {
	if len(row) < 8 {
		return GiltQuote{}, ErrInvalidRow
	}

	isin := strings.TrimSpace(row[0])

	if !strings.HasPrefix(isin, "GB") {
		return GiltQuote{}, ErrInvalidRow
	}

	q := GiltQuote{
		Date:   date,
		Source: SourceDMO,
		ISIN:   isin,
		Desc:   strings.TrimSpace(row[1]),
	}

	q.IndexLinked = strings.Contains(strings.ToLower(q.Desc), "index-linked")

	coupon, err := parseCouponPercentage(q.Desc)
	if err != nil {
		return GiltQuote{}, err
	}
	q.CouponPct = coupon

	cleanPrice, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return GiltQuote{}, ErrInvalidRow
	}
	q.CleanPrice = cleanPrice

	dirtyPrice, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		return GiltQuote{}, ErrInvalidRow
	}
	q.DirtyPrice = dirtyPrice

	ts, err := time.Parse("02-Jan-2006", strings.TrimSpace(row[7]))
	if err != nil {
		return GiltQuote{}, ErrInvalidRow
	}
	q.MaturityDate = ts

	return q, nil
}

// parseCouponPercentage parses a coupon percentage string in the following
// formats:
// 0 5/8% Treasury Gilt 2025,
// 2% Treasury Gilt 2025,
// 3½% Treasury Gilt 2025
//
//	desc: bond description
//
// Returns:
//
//	Coupon percentage
func parseCouponPercentage(desc string) (float64, error) {
	re := regexp.MustCompile(`^(\d+(?:\s+\d+\/\d+)?|\d+\/\d+|\d+|\d[¼½¾])(%)`)
	match := re.FindStringSubmatch(desc)

	if len(match) < 3 {
		return 0, ErrInvalidRow
	}

	m := match[1]

	// convert ½, ¼, ¾ suffixes
	trimLast := func(s string) string {
		r := []rune(s)
		return string(r[0 : len(r)-1])
	}
	if strings.HasSuffix(m, "½") {
		m = trimLast(m) + " 1/2"
	} else if strings.HasSuffix(m, "¼") {
		m = trimLast(m) + " 1/4"
	} else if strings.HasSuffix(m, "¾") {
		m = trimLast(m) + " 3/4"
	}

	if !strings.Contains(m, "/") {
		val, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0, ErrInvalidRow
		}
		return val, nil
	}

	parseFraction := func(s string) (float64, error) {
		parts := strings.Split(s, "/")
		if len(parts) != 2 {
			return 0, ErrInvalidRow
		}
		num, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, ErrInvalidRow
		}
		den, err := strconv.Atoi(parts[1])
		if err != nil || den == 0 {
			return 0, ErrInvalidRow
		}
		return float64(num) / float64(den), nil
	}

	parts := strings.Split(m, " ")
	switch len(parts) {
	case 1:
		return parseFraction(parts[0])
	case 2:
		whole, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, ErrInvalidRow
		}
		frac, err := parseFraction(parts[1])
		if err != nil {
			return 0, err
		}
		return float64(whole) + frac, nil
	}

	return 0, ErrInvalidRow
}
