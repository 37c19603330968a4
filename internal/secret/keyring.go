package secret

// ServiceName 是 OS keyring 里的 service 标识（历史固定值，不可改）。
const ServiceName = "piu"

// KeyringAPI 是对 OS keyring 的最小抽象，便于测试与跨平台。
// service 对应 keyring 的 service name，account 对应用户名。
type KeyringAPI interface {
	Get(service, account string) (string, error)
	Set(service, account, value string) error
	Delete(service, account string) error
}

// 默认实现使用 zalando/go-keyring；见 keyring_default.go / keyring_windows.go。
func defaultKeyring() KeyringAPI {
	return &osKeyring{}
}

type osKeyring struct{}
