package greenbuild

import (
	"context"
	"encoding/json"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is one row of the immutable supported-currency table. Rate is
// local units per canonical USD.
type Currency struct {
	Code           string
	Symbol         string
	Name           string
	Rate           float64
	PaymentMethods []string
}

var supportedCurrencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar", Rate: 1, PaymentMethods: []string{"card", "paypal"}},
	{Code: "KES", Symbol: "KSh ", Name: "Kenyan Shilling", Rate: 128.5, PaymentMethods: []string{"mpesa", "card"}},
	{Code: "EUR", Symbol: "€", Name: "Euro", Rate: 0.92, PaymentMethods: []string{"card", "paypal"}},
	{Code: "GBP", Symbol: "£", Name: "British Pound", Rate: 0.79, PaymentMethods: []string{"card", "paypal"}},
}

// CurrencyService picks and persists a display currency and converts the
// canonical USD prices into it.
type CurrencyService struct {
	storage Storage
	http    *http.Client
	geoURL  string

	current Currency
	printer *message.Printer
}

func NewCurrencyService(storage Storage, httpClient *http.Client, geoURL string) *CurrencyService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &CurrencyService{
		storage: storage,
		http:    httpClient,
		geoURL:  geoURL,
		current: supportedCurrencies[0],
		printer: message.NewPrinter(language.English),
	}
}

func Supported() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

func lookupCurrency(code string) (Currency, bool) {
	for _, cur := range supportedCurrencies {
		if cur.Code == code {
			return cur, true
		}
	}
	return Currency{}, false
}

// Initialize adopts a previously persisted currency if one exists, and only
// otherwise falls back to geolocation. Detection failure degrades to USD
// silently; the UI is never blocked on it.
func (s *CurrencyService) Initialize(ctx context.Context) {
	if code, found := s.storage.Get(storageKeyCurrency); found {
		if cur, known := lookupCurrency(code); known {
			s.current = cur
			s.refreshRates(ctx)
			return
		}
	}

	code := "USD"
	if country, err := s.detectCountry(ctx); err == nil && country == "KE" {
		code = "KES"
	}

	cur, _ := lookupCurrency(code)
	s.current = cur
	s.storage.Set(storageKeyCurrency, cur.Code)
	s.refreshRates(ctx)
}

func (s *CurrencyService) detectCountry(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.geoURL, nil)
	if err != nil {
		return "", err
	}

	res, err := s.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var body struct {
		CountryCode string `json:"country_code"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.CountryCode, nil
}

// refreshRates is a static table today; a live-rate fetch can replace the
// body without changing the interface.
func (s *CurrencyService) refreshRates(ctx context.Context) {
	if cur, known := lookupCurrency(s.current.Code); known {
		s.current = cur
	}
}

// ChangeCurrency is a no-op for codes outside the supported table.
func (s *CurrencyService) ChangeCurrency(code string) {
	cur, known := lookupCurrency(code)
	if !known {
		return
	}
	s.current = cur
	s.storage.Set(storageKeyCurrency, cur.Code)
}

func (s *CurrencyService) Current() Currency {
	return s.current
}

func (s *CurrencyService) ConvertPrice(usd float64) float64 {
	return usd * s.current.Rate
}

func (s *CurrencyService) ConvertToUSD(local float64) float64 {
	return local / s.current.Rate
}

// FormatPrice renders a canonical USD amount in the current currency with
// locale grouping. A missing or zero amount renders as symbol plus "0".
func (s *CurrencyService) FormatPrice(usd float64) string {
	if usd == 0 {
		return s.current.Symbol + "0"
	}
	converted := s.ConvertPrice(usd)
	return s.current.Symbol + s.printer.Sprintf("%v", number.Decimal(converted, number.MaxFractionDigits(2)))
}
