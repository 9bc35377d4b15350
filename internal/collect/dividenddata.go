package collect

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

var SourceDividendData = "DividendData"

// DividendDataCollector scrapes nominal gilt prices and yields from
// dividenddata.co.uk. Index-linked gilts are not listed there.
type DividendDataCollector struct {
}

func NewDividendDataCollector() *DividendDataCollector {
	return &DividendDataCollector{}
}

func (c *DividendDataCollector) Collect(ctx context.Context, date time.Time) ([]GiltQuote, error) {
	x := colly.NewCollector()

	// check page date matches requested date
	// the page is updated daily, but the data may not be available yet
	DATE_PREFIX := "Last updated: "
	var dataTs time.Time

	x.OnHTML("label", func(e *colly.HTMLElement) {
		if strings.HasPrefix(e.Text, DATE_PREFIX) {
			s := strings.TrimPrefix(e.Text, DATE_PREFIX)
			dataTs, _ = time.Parse("02 Jan 2006", s)
		}
	})

	var quotes []GiltQuote

	x.OnHTML("#mainbody tr", func(e *colly.HTMLElement) {
		q, err := c.readQuote(date, e)
		if err == nil {
			quotes = append(quotes, q)
		}
	})

	x.Visit("https://www.dividenddata.co.uk/uk-gilts-prices-yields.py")

	if dataTs.IsZero() || !dataTs.Equal(date.Truncate(24*time.Hour)) {
		return nil, ErrDataUnavailable
	}

	if len(quotes) == 0 {
		return nil, ErrDataUnavailable
	}

	return quotes, nil
}

func (d *DividendDataCollector) Source() string {
	return SourceDividendData
}

var (
	DD_COL_TICKER            = 0
	DD_COL_DESC              = 1
	DD_COL_COUPON            = 2
	DD_COL_MATURITY_DATE     = 3
	DD_COL_MATURITY_DURATION = 4
	DD_COL_PRICE             = 5
	DD_COL_MATURITY_YIELD    = 6
)

func (c *DividendDataCollector) readQuote(date time.Time, e *colly.HTMLElement) (GiltQuote, error) {
	q := GiltQuote{
		Date:   date,
		Source: SourceDividendData,
	}

	var rowErr error

	e.ForEach("td", func(col int, el *colly.HTMLElement) {
		switch col {
		case DD_COL_TICKER:
			q.Ticker = strings.TrimSpace(el.Text)
			if q.Ticker == "" {
				rowErr = ErrInvalidRow
			}
		case DD_COL_DESC:
			q.Desc = strings.TrimSpace(el.Text)
			if q.Desc == "" {
				rowErr = ErrInvalidRow
			}
		case DD_COL_COUPON:
			s := strings.TrimSuffix(el.Text, "%")
			if coupon, err := strconv.ParseFloat(s, 64); err == nil {
				q.CouponPct = coupon
			} else {
				rowErr = ErrInvalidRow
			}
		case DD_COL_MATURITY_DATE:
			if ts, err := time.Parse("02-Jan-2006", el.Text); err == nil {
				q.MaturityDate = ts
			} else {
				rowErr = ErrInvalidRow
			}
		case DD_COL_MATURITY_DURATION:
			// ignore, calculated from maturity date
		case DD_COL_PRICE:
			s := strings.TrimPrefix(el.Text, "£")
			if price, err := strconv.ParseFloat(s, 64); err == nil {
				q.CleanPrice = price
			} else {
				rowErr = ErrInvalidRow
			}
		case DD_COL_MATURITY_YIELD:
			s := strings.TrimSuffix(el.Text, "%")
			if yield, err := strconv.ParseFloat(s, 64); err == nil {
				q.YieldPct = yield
			} else {
				rowErr = ErrInvalidRow
			}
		}
	})

	if rowErr != nil {
		return GiltQuote{}, rowErr
	}

	return q, nil
}
