package errors

// ExitCode 是进程退出码（稳定契约）。
// 原始行为把 HTTP 状态码当返回值用、没定义退出码；这里固定映射。
type ExitCode int

const (
	ExitOK ExitCode = 0

	// 1: 认证失败（even 返回 403）
	ExitAuth ExitCode = 1

	// 2: 参数/配置错误
	ExitConfig ExitCode = 2

	// 3: 网络不可达 / token 获取失败
	ExitConnect ExitCode = 3

	// 5: even 返回其他非 200 状态
	ExitService ExitCode = 5

	// 10: 内部错误
	ExitInternal ExitCode = 10
)

func ExitCodeFor(code Code) ExitCode {
	switch code {
	case CodeCfgInvalid:
		return ExitConfig
	case CodeAuthFailed:
		return ExitAuth
	case CodeTokenFailed, CodeEvenUnreachable, CodeAWSFailed:
		return ExitConnect
	case CodeServiceError:
		return ExitService
	case CodeKeyringFailed, CodeInternal:
		fallthrough
	default:
		return ExitInternal
	}
}
