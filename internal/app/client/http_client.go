package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"oficina/internal/app/client/config"
	"oficina/internal/domain/purchase"
	"oficina/internal/domain/service"
)

const (
	purchasesPath = "/compras"
	servicesPath  = "/servicos"
)

// RecordsAPI - удаленный API записей мастерской
type RecordsAPI interface {
	ListPurchases(ctx context.Context) ([]purchase.Record, error)
	CreatePurchase(ctx context.Context, req purchase.CreateRequest) error
	ListServices(ctx context.Context) ([]service.Record, error)
	CreateService(ctx context.Context, req service.CreateRequest) error
	ToggleService(ctx context.Context, id string) (*service.Record, error)
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	if _, err := url.Parse(cfg.APIURL); err != nil {
		return nil, fmt.Errorf("некорректный адрес API: %w", err)
	}

	client := &http.Client{
		Timeout: cfg.Timeout(),
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log.With(slog.String("component", "records_api")),
		baseURL:   strings.TrimRight(cfg.APIURL, "/"),
		userAgent: "Oficina-Client/1.0",
	}, nil
}

// ListPurchases возвращает полный список покупок
func (h *httpClient) ListPurchases(ctx context.Context) ([]purchase.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, purchasesPath, nil)
	if err != nil {
		return nil, err
	}

	var records []purchase.Record
	if err := h.parseResponse(resp, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// CreatePurchase создает покупку. Идентификатор и дату назначает сервер.
func (h *httpClient) CreatePurchase(ctx context.Context, req purchase.CreateRequest) error {
	resp, err := h.doRequest(ctx, http.MethodPost, purchasesPath, req)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

// ListServices возвращает полный список работ
func (h *httpClient) ListServices(ctx context.Context) ([]service.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, servicesPath, nil)
	if err != nil {
		return nil, err
	}

	var records []service.Record
	if err := h.parseResponse(resp, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// CreateService создает работу, сервер выставляет pago=false
func (h *httpClient) CreateService(ctx context.Context, req service.CreateRequest) error {
	resp, err := h.doRequest(ctx, http.MethodPost, servicesPath, req)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

// ToggleService переключает признак оплаты на сервере.
// Если сервер вернул обновленную запись, она возвращается, иначе nil.
func (h *httpClient) ToggleService(ctx context.Context, id string) (*service.Record, error) {
	path := servicesPath + "/" + url.PathEscape(id) + "/toggle"

	resp, err := h.doRequest(ctx, http.MethodPatch, path, nil)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := h.parseResponse(resp, &raw); err != nil {
		return nil, err
	}

	var updated service.Record
	if len(raw) == 0 || json.Unmarshal(raw, &updated) != nil || updated.ID == "" {
		// Подтверждение без записи
		return nil, nil
	}

	return &updated, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	requestID := uuid.NewString()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
		"request_id", requestID,
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка выполнения запроса: %w", ErrTransport, err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: ошибка чтения ответа: %w", ErrTransport, err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	if result != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

// errorMessage достает текст ошибки из типичных форм тела ответа
func errorMessage(body []byte) string {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}

	switch {
	case errResp.Error != "":
		return errResp.Error
	case errResp.Detail != "":
		return errResp.Detail
	default:
		return errResp.Message
	}
}
