package catalog

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"techstore/internal/backend"
	"techstore/internal/domain"
)

// Status is the connectivity state of the remote catalog.
type Status string

const (
	StatusChecking Status = "checking"
	StatusOnline   Status = "online"
	StatusOffline  Status = "offline"
)

// Fallback returns the fixed catalog shown when the backend is
// unreachable.
func Fallback() []domain.Product {
	price := decimal.RequireFromString
	return []domain.Product{
		{ID: "1", Name: "Estudante Essencial", Category: domain.CategoryEstudante, Price: price("2200.00"),
			CPU: "AMD Ryzen 3 3200G", RAM: "8GB DDR4", Storage: "SSD NVMe 256GB",
			Description: "Eficiência energética e baixo custo."},
		{ID: "2", Name: "Terminal de Vendas", Category: domain.CategoryComercio, Price: price("2800.00"),
			CPU: "Intel Core i3-12100", RAM: "16GB DDR4", Storage: "SSD NVMe 512GB",
			Description: "Confiabilidade para sistemas de gestão."},
		{ID: "3", Name: "Profissional Gerência", Category: domain.CategoryGerencia, Price: price("4500.00"),
			CPU: "Ryzen 5 5600X", RAM: "32GB DDR4", Storage: "SSD NVMe 1TB",
			Description: "Para análise de dados e multitarefas."},
		{ID: "4", Name: "Científico Essencial", Category: domain.CategoryCientifico, Price: price("5800.00"),
			CPU: "Ryzen 5 5600X", RAM: "32GB DDR4", Storage: "SSD NVMe 1TB",
			Description: "Com GPU dedicada para aceleração."},
		{ID: "5", Name: "Gamer Especial", Category: domain.CategoryGamer, Price: price("7500.00"),
			CPU: "Ryzen 5 5700X", RAM: "16GB DDR4", Storage: "SSD NVMe 1TB",
			Description: "Focado em 1440p com alto desempenho."},
		{ID: "6", Name: "Gamer Pro", Category: domain.CategoryGamer, Price: price("15000.00"),
			CPU: "Ryzen 7 7700X", RAM: "32GB DDR5", Storage: "SSD NVMe 2TB",
			Description: "Para 4K, Streaming e performance máxima."},
	}
}

// Source loads the product list once and serves it for the rest of the
// run. Any fetch failure installs the fallback catalog synchronously;
// Load may be called again to retry.
type Source struct {
	fetcher backend.ProductFetcher

	mu       sync.RWMutex
	status   Status
	products []domain.Product
}

func NewSource(fetcher backend.ProductFetcher) *Source {
	return &Source{fetcher: fetcher, status: StatusChecking}
}

// Load performs one fetch. On success the payload is used as-is; on any
// failure the fallback catalog takes its place and status goes offline.
func (s *Source) Load(ctx context.Context) {
	products, err := s.fetcher.FetchProducts(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusOffline
		s.products = Fallback()
		return
	}
	s.status = StatusOnline
	s.products = products
}

func (s *Source) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Products returns the loaded catalog in backend order.
func (s *Source) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Find looks a product up by id.
func (s *Source) Find(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
