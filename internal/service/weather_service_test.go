package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinboard/api/internal/dto"
	"github.com/robinboard/api/internal/models"
	"github.com/robinboard/api/pkg/config"
	appErrors "github.com/robinboard/api/pkg/errors"
)

type weatherCacheStub struct {
	values map[string]dto.WeatherResponse
	sets   int
}

func (c *weatherCacheStub) Get(ctx context.Context, key string, dest interface{}) error {
	cached, ok := c.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	out, ok := dest.(*dto.WeatherResponse)
	if !ok {
		return errors.New("unexpected destination type")
	}
	*out = cached
	return nil
}

func (c *weatherCacheStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.values == nil {
		c.values = map[string]dto.WeatherResponse{}
	}
	c.values[key] = value.(dto.WeatherResponse)
	c.sets++
	return nil
}

func weatherTestConfig(baseURL string) config.WeatherConfig {
	return config.WeatherConfig{BaseURL: baseURL, Timeout: time.Second, CacheTTL: 10 * time.Minute}
}

func weatherSettings(city, apiKey string) *settingsRepoStub {
	return &settingsRepoStub{doc: models.Document{
		models.SettingsKeyWeatherCity:   city,
		models.SettingsKeyWeatherAPIKey: apiKey,
	}}
}

func TestWeatherServiceCurrentSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Ankara", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"cod":     200,
			"main":    map[string]interface{}{"temp": 21.6},
			"weather": []map[string]interface{}{{"description": "parçalı az bulutlu", "icon": "02d"}},
		})
	}))
	defer upstream.Close()

	cache := &weatherCacheStub{}
	service := NewWeatherService(weatherSettings("Ankara", "key"), cache, weatherTestConfig(upstream.URL), nil)

	result, err := service.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 22, result.Temp)
	assert.Equal(t, "Parçalı Az Bulutlu", result.Status)
	assert.Equal(t, "https://openweathermap.org/img/wn/02d@4x.png", result.Icon)
	assert.Equal(t, 1, cache.sets)
}

func TestWeatherServiceCurrentUsesCache(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"cod":     200,
			"main":    map[string]interface{}{"temp": 10.0},
			"weather": []map[string]interface{}{{"description": "açık", "icon": "01d"}},
		})
	}))
	defer upstream.Close()

	cache := &weatherCacheStub{}
	service := NewWeatherService(weatherSettings("Ankara", "key"), cache, weatherTestConfig(upstream.URL), nil)

	_, err := service.Current(context.Background())
	require.NoError(t, err)
	_, err = service.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWeatherServiceMissingAPIKey(t *testing.T) {
	service := NewWeatherService(weatherSettings("Ankara", ""), nil, weatherTestConfig("http://unused"), nil)

	result, err := service.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "--", result.Temp)
	assert.Equal(t, "API Key eksik", result.Status)
}

func TestWeatherServiceUnknownCity(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"cod": "404", "message": "city not found"})
	}))
	defer upstream.Close()

	cache := &weatherCacheStub{}
	service := NewWeatherService(weatherSettings("Yokşehir", "key"), cache, weatherTestConfig(upstream.URL), nil)

	result, err := service.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Şehir hatalı", result.Status)
	assert.Equal(t, 0, cache.sets, "error placeholders must not be cached")
}

func TestWeatherServiceUpstreamUnreachable(t *testing.T) {
	service := NewWeatherService(weatherSettings("Ankara", "key"), nil, weatherTestConfig("http://127.0.0.1:1"), nil)

	result, err := service.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hata", result.Status)
	assert.Equal(t, "--", result.Temp)
}

func TestWeatherServiceUnseededSettingsServesPlaceholder(t *testing.T) {
	service := NewWeatherService(&settingsRepoStub{}, nil, weatherTestConfig("http://unused"), nil)

	result, err := service.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "--", result.Temp)
	assert.Equal(t, "API Key eksik", result.Status)
}

func TestWeatherServiceStoreErrorMapsToUnavailable(t *testing.T) {
	repo := &settingsRepoStub{err: errors.New("connection refused")}
	service := NewWeatherService(repo, nil, weatherTestConfig("http://unused"), nil)

	_, err := service.Current(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrServiceUnavailable.Status, appErrors.FromError(err).Status)
}
