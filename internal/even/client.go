package even

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/zx06/piu/internal/errors"
)

// requestPath 是 even 服务的访问申请端点。
const requestPath = "/access-requests"

// AccessRequest 是发给 even 的访问申请。Hostname 永远是 SSH 客户端
// 直连的第一跳；RemoteHost 非空时是经由第一跳到达的最终目标。
type AccessRequest struct {
	Username        string `json:"username"`
	Hostname        string `json:"hostname"`
	Reason          string `json:"reason"`
	RemoteHost      string `json:"remote_host,omitempty"`
	LifetimeMinutes int    `json:"lifetime_minutes,omitempty"`
}

// Verdict 是 even 响应的分类结果，取代裸 HTTP 状态码做控制流。
type Verdict int

const (
	// Granted: HTTP 200，访问已批准。
	Granted Verdict = iota
	// AuthFailed: HTTP 403，凭据错误，调用方应清空已存密码。
	AuthFailed
	// ServiceFailure: 其他状态码，原样报告，不重试。
	ServiceFailure
)

// Result 携带分类结果与服务端原始响应。
type Result struct {
	Verdict Verdict
	Status  int
	Body    string
}

// Client 向 even 服务提交访问申请。零值不可用，用 NewClient 构造。
type Client struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

// NewClient 构造 even 客户端。serviceURL 会被规范化到 /access-requests
// 端点；insecure 为 true 时跳过 TLS 证书校验（显式 opt-out）。
func NewClient(serviceURL string, insecure bool, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		url:    Endpoint(serviceURL),
		http:   httpClient(insecure),
		logger: logger,
	}
}

// Endpoint 规范化服务 URL：若尚未以 /access-requests 结尾，
// 去掉末尾斜杠后追加该路径。
func Endpoint(serviceURL string) string {
	if strings.HasSuffix(serviceURL, requestPath) {
		return serviceURL
	}
	return strings.TrimRight(serviceURL, "/") + requestPath
}

func httpClient(insecure bool) *http.Client {
	if !insecure {
		return &http.Client{}
	}
	return &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
}

// Request 提交一次访问申请。单次阻塞调用，不重试；传输层错误
// 映射为 PIU_EVEN_UNREACHABLE。
func (c *Client) Request(ctx context.Context, accessToken string, req AccessRequest) (Result, *errors.PiuError) {
	body, err := json.Marshal(req)
	if err != nil {
		return Result{}, errors.Wrap(errors.CodeInternal, "failed to encode access request", nil, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Result{}, errors.Wrap(errors.CodeInternal, "failed to build request", map[string]any{"url": c.url}, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)

	c.logger.Debug("submitting access request", "url", c.url, "hostname", req.Hostname, "remote_host", req.RemoteHost)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Result{}, errors.Wrap(errors.CodeEvenUnreachable, "could not reach access granting service", map[string]any{"url": c.url}, err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, errors.Wrap(errors.CodeEvenUnreachable, "failed to read response", map[string]any{"url": c.url}, err)
	}

	c.logger.Debug("access request answered", "status", resp.StatusCode)

	res := Result{Status: resp.StatusCode, Body: string(text)}
	switch resp.StatusCode {
	case http.StatusOK:
		res.Verdict = Granted
	case http.StatusForbidden:
		res.Verdict = AuthFailed
	default:
		res.Verdict = ServiceFailure
	}
	return res, nil
}

// Probe 对服务 URL 做一次 GET，用于交互式配置时的可达性检查。
// 只关心能不能连上，不看状态码。
func Probe(ctx context.Context, serviceURL string, insecure bool) *errors.PiuError {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serviceURL, nil)
	if err != nil {
		return errors.Wrap(errors.CodeCfgInvalid, "invalid service URL", map[string]any{"url": serviceURL}, err)
	}
	resp, err := httpClient(insecure).Do(req)
	if err != nil {
		return errors.Wrap(errors.CodeEvenUnreachable, fmt.Sprintf("could not reach %s", serviceURL), map[string]any{"url": serviceURL}, err)
	}
	resp.Body.Close()
	return nil
}

// SSHCommand 渲染申请批准后可用的 SSH 命令。
func SSHCommand(user, firstHop, remoteHost string) string {
	if remoteHost != "" {
		return fmt.Sprintf("ssh -tA %s@%s ssh -o StrictHostKeyChecking=no %s@%s", user, firstHop, user, remoteHost)
	}
	return fmt.Sprintf("ssh -tA %s@%s", user, firstHop)
}
