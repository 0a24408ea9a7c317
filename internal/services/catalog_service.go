package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yukikurage/game-journal-api/internal/constants"
	"go.uber.org/zap"
)

var (
	ErrCatalogGameNotFound = errors.New("game not found in catalog")
	ErrCatalogUnavailable  = errors.New("catalog unavailable")
)

// CatalogGame is the normalized search result.
type CatalogGame struct {
	AppID int64  `json:"appid"`
	Name  string `json:"name"`
}

// CatalogGameDetails is the subset of the store detail record the API exposes.
type CatalogGameDetails struct {
	AppID            int64    `json:"steam_appid"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	ShortDescription string   `json:"short_description"`
	HeaderImage      string   `json:"header_image"`
	Website          string   `json:"website"`
	Developers       []string `json:"developers"`
	Publishers       []string `json:"publishers"`
	IsFree           bool     `json:"is_free"`
	ReleaseDate      struct {
		ComingSoon bool   `json:"coming_soon"`
		Date       string `json:"date"`
	} `json:"release_date"`
}

type storeSearchResponse struct {
	Items []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"items"`
}

type appDetailsEnvelope struct {
	Success bool                `json:"success"`
	Data    *CatalogGameDetails `json:"data"`
}

// CatalogService talks to the Steam store search API. Search failures are
// logged and treated as empty results.
type CatalogService struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewCatalogService creates a CatalogService whose upstream calls give up after timeout.
func NewCatalogService(baseURL string, timeout time.Duration, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// SearchByTerm returns up to limit matches in upstream order.
func (s *CatalogService) SearchByTerm(ctx context.Context, term string, limit int) []CatalogGame {
	games, err := s.search(ctx, term)
	if err != nil {
		s.logger.Warn("catalog search failed", zap.String("term", term), zap.Error(err))
		return []CatalogGame{}
	}
	if len(games) > limit {
		games = games[:limit]
	}
	return games
}

// TopRecommendations merges the results of a fixed set of broad queries,
// keeping the first occurrence of each app and skipping excluded ids.
func (s *CatalogService) TopRecommendations(ctx context.Context, limit int, exclude []int64) []CatalogGame {
	skip := make(map[int64]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}

	result := make([]CatalogGame, 0, limit)
	seen := make(map[int64]struct{})
	for _, term := range constants.TopGameQueries {
		if len(result) >= limit {
			break
		}

		games, err := s.search(ctx, term)
		if err != nil {
			s.logger.Warn("catalog query failed", zap.String("term", term), zap.Error(err))
			continue
		}

		for _, g := range games {
			if _, dup := seen[g.AppID]; dup {
				continue
			}
			seen[g.AppID] = struct{}{}
			if _, owned := skip[g.AppID]; owned {
				continue
			}
			result = append(result, g)
			if len(result) >= limit {
				break
			}
		}
	}
	return result
}

// AppDetails fetches the store record of a single app.
func (s *CatalogService) AppDetails(ctx context.Context, appID int64) (*CatalogGameDetails, error) {
	key := strconv.FormatInt(appID, 10)
	q := url.Values{}
	q.Set("appids", key)

	var body map[string]appDetailsEnvelope
	if err := s.getJSON(ctx, "/api/appdetails", q, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	entry, ok := body[key]
	if !ok || !entry.Success || entry.Data == nil {
		return nil, ErrCatalogGameNotFound
	}
	return entry.Data, nil
}

func (s *CatalogService) search(ctx context.Context, term string) ([]CatalogGame, error) {
	q := url.Values{}
	q.Set("term", term)
	q.Set("cc", "us")
	q.Set("l", "en")
	q.Set("page", "1")

	var body storeSearchResponse
	if err := s.getJSON(ctx, "/api/storesearch/", q, &body); err != nil {
		return nil, err
	}

	games := make([]CatalogGame, 0, len(body.Items))
	for _, item := range body.Items {
		games = append(games, CatalogGame{AppID: item.ID, Name: item.Name})
	}
	return games, nil
}

func (s *CatalogService) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		snip, _ := io.ReadAll(io.LimitReader(resp.Body, 240))
		return fmt.Errorf("status=%d body=%q", resp.StatusCode, snip)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
