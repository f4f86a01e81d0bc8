package borrowing

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// GenerateBorrowNo 生成借阅单号
// 设计说明:单号需要全局唯一、时间有序(便于归档检索)、不可预测
// 使用ULID:26字符,毫秒时间戳前缀+80位随机数,满足以上三点
// 示例:01JDGS4PMEY4R8F0QXKZ5T3V9B
func GenerateBorrowNo() string {
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String()
}
