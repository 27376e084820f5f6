package pagesservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с PagesService. Единственное, что нужно
// сервису от навигации - адрес корневой страницы приложения, куда
// отправить пользователя, если запрошенный тип бронирования или слот
// больше не существует.
type Client struct {
	baseURL     string
	fallbackURL string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента PagesService.
// fallbackURL используется, когда PagesService недоступен.
func NewClient(baseURL, fallbackURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		fallbackURL: fallbackURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRootPage получает корневую страницу приложения по его slug
func (c *Client) GetRootPage(ctx context.Context, appSlug string) (*RootPage, error) {
	url := fmt.Sprintf("%s/internal/apps/%s/root-page", c.baseURL, appSlug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrRootPageNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var page RootPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &page, nil
}

// GetFallbackURL возвращает адрес для редиректа, когда запрошенный
// объект не существует. При недоступности PagesService возвращается
// статический fallback из конфигурации - навигация не должна ломать
// пользовательский сценарий.
func (c *Client) GetFallbackURL(ctx context.Context, appSlug string) string {
	page, err := c.GetRootPage(ctx, appSlug)
	if err != nil {
		c.log.Warn("PagesService unavailable, using static fallback %q: %v", c.fallbackURL, err)
		return c.fallbackURL
	}
	return page.URL
}
