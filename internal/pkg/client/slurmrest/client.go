package slurmrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"jdgl-bk/internal/pkg/client/slurmrest/model"
	apierr "jdgl-bk/pkg/errors"
)

// Doer 抽象 http.Client 的 Do 方法，便于在测试中用 mock 实现替换。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client 访问定制 slurmrestd 的原始节点表接口. 定制接口返回未加工的
// node_info 记录(数值状态字/哨兵值), 响应壳携带管理器 C API 的返回码:
//
//	{"errno": 0, "results": {...}, "detail": ""}
//
// errno 非零时 detail 为服务端 slurm_strerror 解析出的文本.
type Client struct {
	client  Doer
	timeout time.Duration
	logger  *slog.Logger
}

func New(client Doer, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// GetRawNodes 拉取全量节点表.
func (sc *Client) GetRawNodes(ctx context.Context, addr string) (model.RawNodeBatch, error) {
	ctx, cancel := context.WithTimeout(ctx, sc.timeout)
	defer cancel()

	urlStr := fmt.Sprintf("http://%s/api/v1/slurm/raw/nodes", addr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		sc.logger.Error("unable to create request for slurmrestd", "err", err.Error(), "url", urlStr)
		return model.RawNodeBatch{}, fmt.Errorf("unable to create request for slurmrestd: %w", err)
	}

	resp, err := sc.client.Do(req)
	if err != nil {
		sc.logger.Error("unable to do request for slurmrestd", "err", err.Error(), "url", urlStr)
		return model.RawNodeBatch{}, fmt.Errorf("unable to do request for slurmrestd: %w", err)
	}
	defer resp.Body.Close()

	data := struct {
		Errno   int32              `json:"errno"`
		Results model.RawNodeBatch `json:"results"`
		Detail  string             `json:"detail"`
	}{}

	if resp.StatusCode/100 != 2 {
		sc.logger.Error("unexpected status code", "code", resp.StatusCode, "url", urlStr)
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || data.Detail == "" {
			return model.RawNodeBatch{}, apierr.NewLoad(-1, fmt.Sprintf("slurmrestd status %d", resp.StatusCode))
		}
		return model.RawNodeBatch{}, apierr.NewLoad(data.Errno, data.Detail)
	}

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		sc.logger.Error("unable to decode slurmrestd response", "err", err.Error(), "url", urlStr)
		return model.RawNodeBatch{}, fmt.Errorf("unable to decode slurmrestd response: %w", err)
	}

	if data.Errno != 0 {
		sc.logger.Error("slurmrestd reported failure", "errno", data.Errno, "detail", data.Detail, "url", urlStr)
		return model.RawNodeBatch{}, apierr.NewLoad(data.Errno, data.Detail)
	}

	return data.Results, nil
}

// GetRawNode 拉取单个节点记录. 管理器查不到该节点时返回"不存在"形态的
// LoadError, 透传 errno.
func (sc *Client) GetRawNode(ctx context.Context, addr, name string) (*model.RawNode, error) {
	ctx, cancel := context.WithTimeout(ctx, sc.timeout)
	defer cancel()

	base := fmt.Sprintf("http://%s/api/v1/slurm/raw/nodes", addr)
	u, _ := url.Parse(base)
	q := u.Query()
	q.Set("node", name)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		sc.logger.Error("unable to create request for slurmrestd", "err", err.Error(), "url", u.String())
		return nil, fmt.Errorf("unable to create request for slurmrestd: %w", err)
	}

	resp, err := sc.client.Do(req)
	if err != nil {
		sc.logger.Error("unable to do request for slurmrestd", "err", err.Error(), "url", u.String())
		return nil, fmt.Errorf("unable to do request for slurmrestd: %w", err)
	}
	defer resp.Body.Close()

	data := struct {
		Errno   int32              `json:"errno"`
		Results model.RawNodeBatch `json:"results"`
		Detail  string             `json:"detail"`
	}{}

	if resp.StatusCode == http.StatusNotFound {
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || data.Detail == "" {
			return nil, apierr.NewNotFound(-1, fmt.Sprintf("node %s not found", name))
		}
		return nil, apierr.NewNotFound(data.Errno, data.Detail)
	}

	if resp.StatusCode/100 != 2 {
		sc.logger.Error("unexpected status code", "code", resp.StatusCode, "url", u.String())
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || data.Detail == "" {
			return nil, apierr.NewLoad(-1, fmt.Sprintf("slurmrestd status %d", resp.StatusCode))
		}
		return nil, apierr.NewLoad(data.Errno, data.Detail)
	}

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		sc.logger.Error("unable to decode slurmrestd response", "err", err.Error(), "url", u.String())
		return nil, fmt.Errorf("unable to decode slurmrestd response: %w", err)
	}

	if data.Errno != 0 {
		sc.logger.Error("slurmrestd reported failure", "errno", data.Errno, "detail", data.Detail, "url", u.String())
		return nil, apierr.NewLoad(data.Errno, data.Detail)
	}

	if len(data.Results.Nodes) == 0 {
		return nil, apierr.NewNotFound(data.Errno, fmt.Sprintf("node %s not found", name))
	}

	return data.Results.Nodes[0], nil
}

// UpdateNode 提交节点更新消息. 未设置的字段不上送, 管理器端保持原值.
// 管理器拒绝时返回携带其返回码的 UpdateError.
func (sc *Client) UpdateNode(ctx context.Context, addr string, msg model.UpdateNodeMsg) error {
	ctx, cancel := context.WithTimeout(ctx, sc.timeout)
	defer cancel()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("unable to encode update message: %w", err)
	}

	urlStr := fmt.Sprintf("http://%s/api/v1/slurm/raw/node", addr)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, bytes.NewReader(body))
	if err != nil {
		sc.logger.Error("unable to create request for slurmrestd", "err", err.Error(), "url", urlStr)
		return fmt.Errorf("unable to create request for slurmrestd: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := sc.client.Do(req)
	if err != nil {
		sc.logger.Error("unable to do request for slurmrestd", "err", err.Error(), "url", urlStr)
		return fmt.Errorf("unable to do request for slurmrestd: %w", err)
	}
	defer resp.Body.Close()

	data := struct {
		Errno  int32  `json:"errno"`
		Detail string `json:"detail"`
	}{}

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		if resp.StatusCode/100 != 2 {
			return apierr.NewUpdate(-1, fmt.Sprintf("slurmrestd status %d", resp.StatusCode))
		}
		sc.logger.Error("unable to decode slurmrestd response", "err", err.Error(), "url", urlStr)
		return fmt.Errorf("unable to decode slurmrestd response: %w", err)
	}

	if data.Errno != 0 {
		sc.logger.Error("node update rejected", "errno", data.Errno, "detail", data.Detail, "nodes", msg.NodeNames)
		return apierr.NewUpdate(data.Errno, data.Detail)
	}

	if resp.StatusCode/100 != 2 {
		sc.logger.Error("unexpected status code", "code", resp.StatusCode, "url", urlStr)
		return apierr.NewUpdate(-1, fmt.Sprintf("slurmrestd status %d", resp.StatusCode))
	}

	return nil
}
