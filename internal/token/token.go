package token

import (
	"context"
	"os"

	"golang.org/x/oauth2"

	"github.com/zx06/piu/internal/errors"
)

// ClientID 是向 token 服务注册的客户端名（历史固定值）。
const ClientID = "piu"

// EnvAccessTokenURL 指定 OAuth2 token 端点（zign 约定）。
const EnvAccessTokenURL = "OAUTH2_ACCESS_TOKEN_URL"

// Scopes 是申请 token 时请求的 scope。
var Scopes = []string{"uid"}

// Provider 用用户凭据换取短时效 bearer token。
type Provider interface {
	NamedToken(ctx context.Context, user, password string) (string, *errors.PiuError)
}

// OAuth2Provider 通过 resource-owner password grant 取 token。
type OAuth2Provider struct {
	TokenURL string
	ClientID string
	Scopes   []string
}

// NewProvider 按环境变量构造默认 Provider。
func NewProvider() *OAuth2Provider {
	return &OAuth2Provider{
		TokenURL: os.Getenv(EnvAccessTokenURL),
		ClientID: ClientID,
		Scopes:   Scopes,
	}
}

func (p *OAuth2Provider) NamedToken(ctx context.Context, user, password string) (string, *errors.PiuError) {
	if p.TokenURL == "" {
		return "", errors.New(errors.CodeCfgInvalid, "token endpoint not configured", map[string]any{"env": EnvAccessTokenURL})
	}
	cfg := oauth2.Config{
		ClientID: p.ClientID,
		Scopes:   p.Scopes,
		Endpoint: oauth2.Endpoint{TokenURL: p.TokenURL},
	}
	tok, err := cfg.PasswordCredentialsToken(ctx, user, password)
	if err != nil {
		return "", errors.Wrap(errors.CodeTokenFailed, "failed to obtain access token", map[string]any{"user": user}, err)
	}
	if tok.AccessToken == "" {
		return "", errors.New(errors.CodeTokenFailed, "token endpoint returned empty access token", nil)
	}
	return tok.AccessToken, nil
}
