package errors

import (
	"fmt"
	"testing"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		code Code
		want ExitCode
	}{
		{CodeCfgInvalid, ExitConfig},
		{CodeAuthFailed, ExitAuth},
		{CodeTokenFailed, ExitConnect},
		{CodeEvenUnreachable, ExitConnect},
		{CodeAWSFailed, ExitConnect},
		{CodeServiceError, ExitService},
		{CodeKeyringFailed, ExitInternal},
		{CodeInternal, ExitInternal},
		{Code("PIU_UNKNOWN_FUTURE_CODE"), ExitInternal},
	}
	for _, tt := range tests {
		if got := ExitCodeFor(tt.code); got != tt.want {
			t.Errorf("ExitCodeFor(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestAllCodesHaveMapping(t *testing.T) {
	for _, code := range AllCodes() {
		exit := ExitCodeFor(code)
		if exit == ExitOK {
			t.Errorf("code %s maps to exit 0", code)
		}
	}
}

func TestPiuError_Format(t *testing.T) {
	pe := New(CodeCfgInvalid, "reason must not be empty", nil)
	if pe.Error() != "PIU_CFG_INVALID: reason must not be empty" {
		t.Errorf("Error() = %q", pe.Error())
	}

	wrapped := Wrap(CodeEvenUnreachable, "could not reach service", nil, fmt.Errorf("dial tcp: refused"))
	if wrapped.Unwrap() == nil {
		t.Error("Unwrap() = nil, want cause")
	}
}

func TestAs(t *testing.T) {
	pe := New(CodeAuthFailed, "forbidden", nil)
	wrapped := fmt.Errorf("outer: %w", pe)
	got, ok := As(wrapped)
	if !ok || got.Code != CodeAuthFailed {
		t.Errorf("As() = (%v, %v)", got, ok)
	}

	if _, ok := As(fmt.Errorf("plain")); ok {
		t.Error("As(plain error) should be false")
	}

	if got := AsOrWrap(fmt.Errorf("plain")); got.Code != CodeInternal {
		t.Errorf("AsOrWrap Code = %s, want %s", got.Code, CodeInternal)
	}
}
