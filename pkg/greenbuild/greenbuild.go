// Package greenbuild is the client-side state layer of the GreenBuild
// marketplace: cart, pricing, display currency and session, all backed by
// the REST API and a persisted key-value storage.
package greenbuild

import "net/http"

type Options struct {
	BaseURL    string
	GeoURL     string
	HTTPClient *http.Client
	Storage    Storage
	Notifier   Notifier
}

type App struct {
	Client   *Client
	Currency *CurrencyService
	Cart     *CartStore
	Session  *SessionStore
}

// New wires the stores together. Construct one App per application (or per
// test); there is no package-level state.
func New(opts Options) *App {
	if opts.Storage == nil {
		opts.Storage = NewMemoryStorage()
	}
	if opts.Notifier == nil {
		opts.Notifier = NopNotifier{}
	}

	client := NewClient(opts.BaseURL, opts.HTTPClient)

	return &App{
		Client:   client,
		Currency: NewCurrencyService(opts.Storage, opts.HTTPClient, opts.GeoURL),
		Cart:     NewCartStore(client, opts.Notifier),
		Session:  NewSessionStore(client, opts.Storage, opts.Notifier),
	}
}
