package infra

import (
	"net/http"

	"github.com/brandlens/brandlens/pkg/domain/interfaces"
)

// Clients bundles every external dependency of the usecase layer.
type Clients struct {
	scanRepository interfaces.ScanRepository
	snapshotSource interfaces.SnapshotSource
	moduleWriter   interfaces.ModuleWriter
	textGenerator  interfaces.TextGenerator
	bqClient       interfaces.BigQuery
	httpClient     HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) ScanRepository() interfaces.ScanRepository {
	return x.scanRepository
}
func (x *Clients) SnapshotSource() interfaces.SnapshotSource {
	return x.snapshotSource
}
func (x *Clients) ModuleWriter() interfaces.ModuleWriter {
	return x.moduleWriter
}
func (x *Clients) TextGenerator() interfaces.TextGenerator {
	return x.textGenerator
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}

func WithScanRepository(repo interfaces.ScanRepository) Option {
	return func(x *Clients) {
		x.scanRepository = repo
	}
}

func WithSnapshotSource(src interfaces.SnapshotSource) Option {
	return func(x *Clients) {
		x.snapshotSource = src
	}
}

func WithModuleWriter(writer interfaces.ModuleWriter) Option {
	return func(x *Clients) {
		x.moduleWriter = writer
	}
}

func WithTextGenerator(gen interfaces.TextGenerator) Option {
	return func(x *Clients) {
		x.textGenerator = gen
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}
