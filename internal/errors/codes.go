package errors

// Code 是稳定错误码（字符串），供脚本与程序判断。
// 只增不改、不复用旧含义。
type Code string

const (
	// Config / args
	CodeCfgInvalid Code = "PIU_CFG_INVALID"

	// Token / auth
	CodeTokenFailed Code = "PIU_TOKEN_FAILED"
	CodeAuthFailed  Code = "PIU_AUTH_FAILED"

	// Even service
	CodeEvenUnreachable Code = "PIU_EVEN_UNREACHABLE"
	CodeServiceError    Code = "PIU_SERVICE_ERROR"

	// Keyring
	CodeKeyringFailed Code = "PIU_KEYRING_FAILED"

	// AWS (interactive instance listing)
	CodeAWSFailed Code = "PIU_AWS_FAILED"

	// Internal
	CodeInternal Code = "PIU_INTERNAL"
)

func AllCodes() []Code {
	return []Code{
		CodeCfgInvalid,
		CodeTokenFailed,
		CodeAuthFailed,
		CodeEvenUnreachable,
		CodeServiceError,
		CodeKeyringFailed,
		CodeAWSFailed,
		CodeInternal,
	}
}
