package providers

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

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

// SnapshotProvider is the market snapshot boundary: the slate of games and
// the per-game prop quotes, grouped by player name.
type SnapshotProvider interface {
	Games(ctx context.Context) ([]models.Game, error)
	PropQuotes(ctx context.Context, eventID string) (map[string][]models.MarketQuote, error)
}

// ErrRateLimited is returned when the odds feed rejects a request for quota
// reasons even after the retry.
var ErrRateLimited = errors.New("odds feed rate limit exceeded")

const (
	defaultBaseURL = "https://api.the-odds-api.com/v4"
	nflSportKey    = "americanfootball_nfl"
)

// DefaultBookmakers are the books polled for player props.
var DefaultBookmakers = []string{
	"draftkings",
	"fanduel",
	"betmgm",
	"caesars",
	"pointsbetus",
	"bovada",
	"mybookieag",
}

// OddsAPIClient fetches NFL events and player-prop odds from The Odds API.
// Requests pass through a token-bucket limiter and a circuit breaker so a
// misbehaving upstream degrades to fast failures instead of pile-ups.
type OddsAPIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	bookmakers []string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *logrus.Logger
}

// OddsAPIConfig carries client construction parameters.
type OddsAPIConfig struct {
	APIKey            string
	BaseURL           string
	Bookmakers        []string
	RequestsPerSecond float64
	Timeout           time.Duration
	BreakerThreshold  uint32
}

// NewOddsAPIClient builds a client with sane fallbacks for any zero-valued
// config field.
func NewOddsAPIClient(cfg OddsAPIConfig, logger *logrus.Logger) *OddsAPIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if len(cfg.Bookmakers) == 0 {
		cfg.Bookmakers = DefaultBookmakers
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.BreakerThreshold == 0 {
		cfg.BreakerThreshold = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "odds-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &OddsAPIClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		bookmakers: cfg.Bookmakers,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		breaker:    breaker,
		logger:     logger,
	}
}

type eventResponse struct {
	ID           string    `json:"id"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	CommenceTime time.Time `json:"commence_time"`
}

type oddsResponse struct {
	ID         string `json:"id"`
	Bookmakers []struct {
		Key     string `json:"key"`
		Markets []struct {
			Key        string    `json:"key"`
			LastUpdate time.Time `json:"last_update"`
			Outcomes   []struct {
				Name        string  `json:"name"`
				Description string  `json:"description"`
				Price       int     `json:"price"`
				Point       float64 `json:"point"`
			} `json:"outcomes"`
		} `json:"markets"`
	} `json:"bookmakers"`
}

// Games returns the upcoming NFL slate.
func (c *OddsAPIClient) Games(ctx context.Context) ([]models.Game, error) {
	path := fmt.Sprintf("/sports/%s/events", nflSportKey)
	body, err := c.get(ctx, path, url.Values{})
	if err != nil {
		return nil, err
	}

	var events []eventResponse
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}

	games := make([]models.Game, 0, len(events))
	for _, e := range events {
		games = append(games, models.Game{
			ID:           e.ID,
			HomeTeam:     e.HomeTeam,
			AwayTeam:     e.AwayTeam,
			CommenceTime: e.CommenceTime,
		})
	}
	return games, nil
}

// PropQuotes fetches player-prop odds for one event and regroups the
// bookmaker-oriented response by player name. Over and under outcomes for
// the same (player, market, bookmaker) merge into a single two-sided quote.
func (c *OddsAPIClient) PropQuotes(ctx context.Context, eventID string) (map[string][]models.MarketQuote, error) {
	query := url.Values{}
	query.Set("regions", "us")
	query.Set("oddsFormat", "american")
	query.Set("markets", strings.Join(models.PropMarkets, ","))
	query.Set("bookmakers", strings.Join(c.bookmakers, ","))

	path := fmt.Sprintf("/sports/%s/events/%s/odds", nflSportKey, eventID)
	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var odds oddsResponse
	if err := json.Unmarshal(body, &odds); err != nil {
		return nil, fmt.Errorf("failed to decode odds for event %s: %w", eventID, err)
	}

	type quoteKey struct {
		player    string
		market    string
		bookmaker string
	}
	merged := make(map[quoteKey]*models.MarketQuote)
	order := make([]quoteKey, 0)

	for _, book := range odds.Bookmakers {
		for _, market := range book.Markets {
			for _, outcome := range market.Outcomes {
				key := quoteKey{outcome.Description, market.Key, book.Key}
				quote, ok := merged[key]
				if !ok {
					quote = &models.MarketQuote{
						Market:     market.Key,
						Line:       outcome.Point,
						Bookmaker:  book.Key,
						LastUpdate: market.LastUpdate,
					}
					merged[key] = quote
					order = append(order, key)
				}
				price := outcome.Price
				switch outcome.Name {
				case "Over":
					quote.OverPrice = &price
					quote.Line = outcome.Point
				case "Under":
					quote.UnderPrice = &price
				}
			}
		}
	}

	byPlayer := make(map[string][]models.MarketQuote)
	for _, key := range order {
		byPlayer[key.player] = append(byPlayer[key.player], *merged[key])
	}
	return byPlayer, nil
}

// get runs one rate-limited, breaker-guarded request. A 429 is retried once
// after the Retry-After interval before giving up.
func (c *OddsAPIClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		body, retryAfter, err := c.doRequest(ctx, path, query)
		if errors.Is(err, ErrRateLimited) {
			c.logger.WithField("retry_after", retryAfter).Warn("Odds feed rate limited, retrying once")
			select {
			case <-time.After(retryAfter):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			body, _, err = c.doRequest(ctx, path, query)
		}
		return body, err
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (c *OddsAPIClient) doRequest(ctx context.Context, path string, query url.Values) ([]byte, time.Duration, error) {
	query.Set("apiKey", c.apiKey)
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("odds feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := time.Second
		if header := resp.Header.Get("Retry-After"); header != "" {
			if seconds, err := strconv.Atoi(header); err == nil {
				retryAfter = time.Duration(seconds) * time.Second
			}
		}
		return nil, retryAfter, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("odds feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read odds feed response: %w", err)
	}
	return body, 0, nil
}
