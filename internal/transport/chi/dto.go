package chi

import (
	"github.com/cadeso/searchapi/internal/domain"
	"github.com/cadeso/searchapi/internal/domain/filter"
	"github.com/cadeso/searchapi/internal/usecase/health"
	"github.com/cadeso/searchapi/internal/usecase/pipeline"
)

// searchRequest is the POST /search body.
type searchRequest struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

type filterDTO struct {
	Type        *string  `json:"type"`
	Keywords    []string `json:"keywords"`
	UseKeywords bool     `json:"use_keywords"`
	PriceMin    *float64 `json:"price_min"`
	PriceMax    *float64 `json:"price_max"`
	Artist      *string  `json:"artist"`
}

type queryDTO struct {
	Original   string    `json:"original"`
	Parsed     filterDTO `json:"parsed"`
	Confidence float64   `json:"confidence"`
}

type productDTO struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	FullTitle       string   `json:"full_title,omitempty"`
	Description     string   `json:"description,omitempty"`
	Brand           string   `json:"brand,omitempty"`
	Artist          *string  `json:"artist"`
	Type            string   `json:"type"`
	Price           float64  `json:"price"`
	OldPrice        *float64 `json:"old_price"`
	OnSale          bool     `json:"on_sale"`
	DiscountPercent int      `json:"discount_percent,omitempty"`
	Stock           int      `json:"stock"`
	Image           string   `json:"image,omitempty"`
	URL             string   `json:"url"`
}

type resultsDTO struct {
	Total       int          `json:"total"`
	Showing     int          `json:"showing"`
	Limit       int          `json:"limit"`
	Offset      int          `json:"offset"`
	Items       []productDTO `json:"items"`
	Advice      string       `json:"advice"`
	Highlighted []int        `json:"highlighted"`
}

type metaDTO struct {
	TookMS   int64 `json:"took_ms"`
	ParseMS  int64 `json:"parse_ms"`
	SearchMS int64 `json:"search_ms"`
	AdviseMS int64 `json:"advise_ms"`
}

type successResponse struct {
	Success    bool       `json:"success"`
	Query      queryDTO   `json:"query"`
	Results    resultsDTO `json:"results"`
	Suggestion string     `json:"suggestion,omitempty"`
	Meta       metaDTO    `json:"meta"`
}

type errorResponse struct {
	Success    bool    `json:"success"`
	Error      string  `json:"error"`
	Message    string  `json:"message,omitempty"`
	Suggestion string  `json:"suggestion,omitempty"`
	Meta       metaDTO `json:"meta"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func successFromResponse(resp pipeline.Response) successResponse {
	items := make([]productDTO, len(resp.Result.Items()))
	for i, p := range resp.Result.Items() {
		items[i] = productFromDomain(p)
	}

	highlighted := resp.Result.Highlighted()
	if highlighted == nil {
		highlighted = []int{}
	}

	return successResponse{
		Success: true,
		Query: queryDTO{
			Original:   resp.Query,
			Parsed:     filterFromDomain(resp.Filter),
			Confidence: resp.Filter.Confidence(),
		},
		Results: resultsDTO{
			Total:       resp.Result.Total(),
			Showing:     resp.Result.Showing(),
			Limit:       resp.Page.Limit(),
			Offset:      resp.Page.Offset(),
			Items:       items,
			Advice:      resp.Result.Advice(),
			Highlighted: highlighted,
		},
		Suggestion: resp.Suggestion,
		Meta:       metaFromTimings(resp.Timings),
	}
}

func filterFromDomain(f filter.Filter) filterDTO {
	var typ *string
	if t := f.Type(); t != nil {
		s := t.String()
		typ = &s
	}
	return filterDTO{
		Type:        typ,
		Keywords:    f.Keywords(),
		UseKeywords: f.UseKeywords(),
		PriceMin:    f.PriceMin(),
		PriceMax:    f.PriceMax(),
		Artist:      f.Artist(),
	}
}

func productFromDomain(p domain.Product) productDTO {
	return productDTO{
		ID:              p.ID,
		Title:           p.Title,
		FullTitle:       p.FullTitle,
		Description:     p.Description,
		Brand:           p.Brand,
		Artist:          p.Artist,
		Type:            p.TypeLabel(),
		Price:           p.Price,
		OldPrice:        p.OldPrice,
		OnSale:          p.OnSale(),
		DiscountPercent: p.DiscountPercent(),
		Stock:           p.Stock,
		Image:           p.Image,
		URL:             p.URL,
	}
}

func metaFromTimings(t pipeline.Timings) metaDTO {
	return metaDTO{
		TookMS:   t.TotalMS,
		ParseMS:  t.ParseMS,
		SearchMS: t.SearchMS,
		AdviseMS: t.AdviseMS,
	}
}

func healthFromReport(r health.Report) healthResponse {
	checks := make(map[string]string, len(r.Checks))
	for name, result := range r.Checks {
		checks[name] = string(result)
	}
	return healthResponse{Status: string(r.Status), Checks: checks}
}
