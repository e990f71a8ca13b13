package versionclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sir_venger/questionnaire/pkg/versionproto"
)

// StatusError: ответ сервера с кодом вне 2xx.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

type Client interface {
	// Latest Достать последнюю версию анкеты
	Latest(ctx context.Context) (versionproto.LatestResponse, error)
	// SaveDraft Перезаписать черновик
	SaveDraft(ctx context.Context, payload []byte) (versionproto.SaveResponse, error)
	// Submit Финализировать черновик
	Submit(ctx context.Context, payload []byte) (versionproto.SubmitResponse, error)
	// Reset Удалить черновик
	Reset(ctx context.Context) (versionproto.ResetResponse, error)
	// Health Состояние сервиса
	Health(ctx context.Context) (versionproto.HealthResponse, error)
}

type httpClient struct {
	base string
	c    *http.Client
}

// New создаёт HTTP-клиент для сервиса по базовому URL.
func New(baseURL string) Client {
	return &httpClient{
		base: strings.TrimRight(baseURL, "/"),
		c:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (h *httpClient) Latest(ctx context.Context) (out versionproto.LatestResponse, err error) {
	err = h.do(ctx, http.MethodGet, versionproto.PathLatestVersion, nil, &out)
	return out, err
}

func (h *httpClient) SaveDraft(ctx context.Context, payload []byte) (out versionproto.SaveResponse, err error) {
	err = h.do(ctx, http.MethodPost, versionproto.PathSaveVersion, payload, &out)
	return out, err
}

func (h *httpClient) Submit(ctx context.Context, payload []byte) (out versionproto.SubmitResponse, err error) {
	err = h.do(ctx, http.MethodPost, versionproto.PathSubmit, payload, &out)
	return out, err
}

func (h *httpClient) Reset(ctx context.Context) (out versionproto.ResetResponse, err error) {
	err = h.do(ctx, http.MethodPost, versionproto.PathReset, nil, &out)
	return out, err
}

func (h *httpClient) Health(ctx context.Context) (out versionproto.HealthResponse, err error) {
	err = h.do(ctx, http.MethodGet, versionproto.PathHealth, nil, &out)
	return out, err
}

// do выполняет запрос и декодирует JSON-ответ; не-2xx превращается в *StatusError.
func (h *httpClient) do(ctx context.Context, method, path string, body []byte, out any) error {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.base+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var e versionproto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &StatusError{Code: resp.StatusCode, Detail: e.Detail}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
