package dto

import (
	"time"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 日期与时间的统一展示格式
// 日期字段(出生日期/应还日期)只含日期部分,时间戳字段精确到秒
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// ParseDate 解析YYYY-MM-DD格式的日期
// 格式非法时返回ErrInvalidDate(40904)
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return t, nil
}

// FormatDate 格式化可选日期(nil → 空字符串)
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatDateTime 格式化时间戳
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatDateTimePtr 格式化可选时间戳(nil → 空字符串)
func FormatDateTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateTimeLayout)
}
