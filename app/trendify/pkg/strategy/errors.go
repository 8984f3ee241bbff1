package strategy

import (
	"github.com/go-kratos/kratos/v2/errors"
)

const (
	ReasonParse              = "STRATEGY_PARSE_ERROR"
	ReasonCredentialMissing  = "CREDENTIAL_MISSING"
	ReasonCalendarIncomplete = "CALENDAR_INCOMPLETE"
)

var (
	// ErrParse 响应中没有可恢复的 JSON 对象
	ErrParse = errors.New(422, ReasonParse, "no recoverable JSON object in response")
	// ErrCredentialMissing 未配置外部生成服务凭证
	ErrCredentialMissing = errors.ServiceUnavailable(ReasonCredentialMissing, "no external-service credential configured")
	// ErrCalendarIncomplete 日历缺失或不足 30 天，由 FillCalendar 补全
	ErrCalendarIncomplete = errors.New(422, ReasonCalendarIncomplete, "calendar missing or shorter than 30 days")
)

func parseError(message string, cause error) error {
	e := errors.New(422, ReasonParse, message)
	if cause != nil {
		return e.WithCause(cause)
	}
	return e
}
