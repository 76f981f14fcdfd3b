package navermap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/leeeeeeeed/real-estate-list-app/internal/config"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain/repository"
	"go.uber.org/zap"
)

const scriptPath = "/openapi/v3/maps.js"

var ErrClientIDMissing = errors.New("NAVER_MAP_CLIENT_ID is not set")

// Loader однократно загружает скрипт Naver Maps. Повторных попыток нет:
// при ошибке карта так и остаётся в состоянии загрузки.
type Loader struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	logger     *zap.Logger
	now        func() time.Time

	once    sync.Once
	loadErr error

	mu     sync.RWMutex
	status domain.LoaderStatus
}

var _ repository.MapLoader = (*Loader)(nil)

// NewLoader создает загрузчик скрипта провайдера
func NewLoader(cfg *config.NaverMapConfig, logger *zap.Logger) *Loader {
	return &Loader{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:  cfg.BaseURL,
		clientID: cfg.ClientID,
		logger:   logger,
		now:      time.Now,
		status:   domain.LoaderStatus{State: domain.MapStatusLoading},
	}
}

// ScriptURL - адрес скрипта с идентификатором клиента
func (l *Loader) ScriptURL() string {
	return fmt.Sprintf("%s%s?ncpClientId=%s", l.baseURL, scriptPath, url.QueryEscape(l.clientID))
}

// Load выполняет загрузку ровно один раз; последующие вызовы возвращают
// результат первой попытки
func (l *Loader) Load(ctx context.Context) error {
	l.once.Do(func() {
		l.loadErr = l.load(ctx)
	})
	return l.loadErr
}

func (l *Loader) Status() domain.LoaderStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

func (l *Loader) load(ctx context.Context) error {
	if l.clientID == "" {
		l.logger.Error("NAVER_MAP_CLIENT_ID is not set")
		l.setStatus(domain.LoaderStatus{
			State:  domain.MapStatusLoading,
			Reason: ErrClientIDMissing.Error(),
		})
		return ErrClientIDMissing
	}

	scriptURL := l.ScriptURL()
	l.logger.Debug("Loading map provider script", zap.String("base_url", l.baseURL))

	if err := l.fetch(ctx, scriptURL); err != nil {
		l.logger.Error("Failed to load map provider script", zap.Error(err))
		l.setStatus(domain.LoaderStatus{
			State:     domain.MapStatusFailed,
			Reason:    err.Error(),
			ScriptURL: scriptURL,
		})
		return err
	}

	loadedAt := l.now()
	l.setStatus(domain.LoaderStatus{
		State:     domain.MapStatusReady,
		ScriptURL: scriptURL,
		LoadedAt:  &loadedAt,
	})
	l.logger.Info("Map provider script loaded")
	return nil
}

func (l *Loader) fetch(ctx context.Context, scriptURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, scriptURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("map provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if len(body) == 0 {
		return fmt.Errorf("map provider returned empty script")
	}
	return nil
}

func (l *Loader) setStatus(status domain.LoaderStatus) {
	l.mu.Lock()
	l.status = status
	l.mu.Unlock()
}
