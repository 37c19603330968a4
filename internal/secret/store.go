package secret

import (
	"github.com/zx06/piu/internal/errors"
)

// Store 是按用户名存取 even 密码的类型化外观。
// 生命周期：请求前读取；200 时写入；403 时清空（置空串而非删除，
// 这样下次运行会重新提示输入）。
type Store struct {
	kr KeyringAPI
}

// NewStore 返回基于给定 keyring 的 Store；kr 为 nil 时使用 OS keyring。
func NewStore(kr KeyringAPI) Store {
	if kr == nil {
		kr = defaultKeyring()
	}
	return Store{kr: kr}
}

// Password 返回用户存储的密码；无条目或读取失败时返回空串。
func (s Store) Password(user string) string {
	val, err := s.kr.Get(ServiceName, user)
	if err != nil {
		return ""
	}
	return val
}

func (s Store) SetPassword(user, password string) *errors.PiuError {
	if err := s.kr.Set(ServiceName, user, password); err != nil {
		return errors.Wrap(errors.CodeKeyringFailed, "failed to store password in keyring", map[string]any{"user": user}, err)
	}
	return nil
}

// Clear 把用户条目置为空串。
func (s Store) Clear(user string) *errors.PiuError {
	return s.SetPassword(user, "")
}
