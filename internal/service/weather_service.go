package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/robinboard/api/internal/dto"
	"github.com/robinboard/api/internal/models"
	"github.com/robinboard/api/pkg/config"
)

type weatherCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// WeatherService asks the external weather provider for the current
// conditions of the configured city. Missing API keys and upstream
// failures degrade into placeholder responses, never into errors.
type WeatherService struct {
	settings settingsRepository
	cache    weatherCache
	client   *http.Client
	cfg      config.WeatherConfig
	logger   *zap.Logger
}

// NewWeatherService constructs a WeatherService.
func NewWeatherService(settings settingsRepository, cache weatherCache, cfg config.WeatherConfig, logger *zap.Logger) *WeatherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherService{
		settings: settings,
		cache:    cache,
		client:   &http.Client{Timeout: cfg.Timeout},
		cfg:      cfg,
		logger:   logger,
	}
}

type openWeatherResponse struct {
	Cod  json.RawMessage `json:"cod"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Current returns the weather widget payload.
func (s *WeatherService) Current(ctx context.Context) (dto.WeatherResponse, error) {
	doc, err := s.settings.Get(ctx)
	if err != nil {
		// A never-seeded settings row just means no API key yet.
		if !errors.Is(err, sql.ErrNoRows) {
			return dto.WeatherResponse{}, storeUnavailable(err)
		}
		doc = models.Document{}
	}

	city, _ := doc[models.SettingsKeyWeatherCity].(string)
	if city == "" {
		city = "İstanbul"
	}
	apiKey, _ := doc[models.SettingsKeyWeatherAPIKey].(string)
	if apiKey == "" {
		return placeholder("API Key eksik"), nil
	}

	cacheKey := "weather:" + city
	if s.cache != nil {
		var cached dto.WeatherResponse
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	result, ok := s.fetch(ctx, city, apiKey)
	if ok && s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("failed to cache weather response", zap.Error(err))
		}
	}
	return result, nil
}

// fetch performs the upstream call; the second return reports whether
// the response is worth caching.
func (s *WeatherService) fetch(ctx context.Context, city, apiKey string) (dto.WeatherResponse, bool) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", apiKey)
	query.Set("units", "metric")
	query.Set("lang", "tr")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return placeholder("Hata"), false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("weather lookup failed", zap.String("city", city), zap.Error(err))
		return placeholder("Hata"), false
	}
	defer resp.Body.Close() //nolint:errcheck

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.logger.Warn("weather response decode failed", zap.Error(err))
		return placeholder("Hata"), false
	}
	if strings.Trim(string(payload.Cod), `"`) != "200" || len(payload.Weather) == 0 {
		return placeholder("Şehir hatalı"), false
	}

	return dto.WeatherResponse{
		Temp:   int(math.Round(payload.Main.Temp)),
		Status: titleCase(payload.Weather[0].Description),
		Icon:   fmt.Sprintf("https://openweathermap.org/img/wn/%s@4x.png", payload.Weather[0].Icon),
	}, true
}

func placeholder(status string) dto.WeatherResponse {
	return dto.WeatherResponse{Temp: "--", Status: status, Icon: ""}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
