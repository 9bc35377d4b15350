package collect

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"bondlab/internal/bond"
)

const alphaVantageBaseURL = "https://www.alphavantage.co/query"

// treasuryTenors maps the Alpha Vantage maturity parameter to a tenor in
// years, in ascending order.
var treasuryTenors = []struct {
	Param string
	Years float64
}{
	{"3month", 0.25},
	{"2year", 2},
	{"5year", 5},
	{"7year", 7},
	{"10year", 10},
	{"30year", 30},
}

// AlphaVantageClient fetches treasury yields and daily ETF closes.
type AlphaVantageClient struct {
	APIKey string
	// BaseURL overrides the Alpha Vantage endpoint; empty means production.
	BaseURL string
	// Client is the HTTP client to use; nil means http.DefaultClient.
	Client *http.Client
}

func (c *AlphaVantageClient) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return alphaVantageBaseURL
}

func (c *AlphaVantageClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

func (c *AlphaVantageClient) get(ctx context.Context, params url.Values, out any) error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	params.Set("apikey", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to get data: http %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

type treasuryYieldResponse struct {
	Data []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"data"`
}

// TreasuryCurve fetches the most recent yield at or before date for each
// standard tenor and returns the observations in ascending tenor order.
func (c *AlphaVantageClient) TreasuryCurve(ctx context.Context, date time.Time) ([]TreasuryYield, error) {
	var rows []TreasuryYield

	for _, tenor := range treasuryTenors {
		params := url.Values{}
		params.Set("function", "TREASURY_YIELD")
		params.Set("interval", "daily")
		params.Set("maturity", tenor.Param)

		fmt.Printf("Fetching %s treasury yields\n", tenor.Param)

		var resp treasuryYieldResponse
		if err := c.get(ctx, params, &resp); err != nil {
			return nil, fmt.Errorf("treasury %s: %w", tenor.Param, err)
		}

		row, err := latestYield(resp, tenor.Years, date)
		if err != nil {
			return nil, fmt.Errorf("treasury %s: %w", tenor.Param, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// latestYield picks the most recent observation at or before the requested
// date. Alpha Vantage marks missing values with "." which are skipped.
func latestYield(resp treasuryYieldResponse, tenorYears float64, date time.Time) (TreasuryYield, error) {
	for _, d := range resp.Data {
		ts, err := time.Parse("2006-01-02", d.Date)
		if err != nil || ts.After(date) {
			continue
		}
		v, err := strconv.ParseFloat(d.Value, 64)
		if err != nil {
			continue
		}
		return TreasuryYield{
			Date:  ts,
			Tenor: tenorYears,
			Yield: bond.PercentToDecimal(v),
		}, nil
	}
	return TreasuryYield{}, ErrDataUnavailable
}

// Curve converts collected treasury observations to an engine curve.
func Curve(rows []TreasuryYield) bond.Curve {
	curve := make(bond.Curve, len(rows))
	for i, r := range rows {
		curve[i] = bond.CurvePoint{Tenor: r.Tenor, Yield: r.Yield}
	}
	sort.Slice(curve, func(i, j int) bool { return curve[i].Tenor < curve[j].Tenor })
	return curve
}

type dailySeriesResponse struct {
	Series map[string]struct {
		Close string `json:"4. close"`
	} `json:"Time Series (Daily)"`
}

// DailyCloses fetches the daily close history for an ETF symbol, in
// ascending date order.
func (c *AlphaVantageClient) DailyCloses(ctx context.Context, symbol string) ([]ETFQuote, error) {
	params := url.Values{}
	params.Set("function", "TIME_SERIES_DAILY")
	params.Set("symbol", symbol)
	params.Set("outputsize", "full")

	fmt.Printf("Fetching %s daily closes\n", symbol)

	var resp dailySeriesResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("daily closes %s: %w", symbol, err)
	}

	var rows []ETFQuote
	for day, bar := range resp.Series {
		ts, err := time.Parse("2006-01-02", day)
		if err != nil {
			continue
		}
		px, err := strconv.ParseFloat(bar.Close, 64)
		if err != nil {
			continue
		}
		rows = append(rows, ETFQuote{Date: ts, Symbol: symbol, Close: px})
	}

	if len(rows) == 0 {
		return nil, ErrDataUnavailable
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	return rows, nil
}
