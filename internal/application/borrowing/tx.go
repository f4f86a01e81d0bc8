package borrowing

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrowing"
	"github.com/xiebiao/library/internal/domain/member"
)

// TxRunner 事务执行器接口(由mysql.TxManager实现)
// 设计说明:fn内通过context拿到事务DB,fn返回error时整个事务回滚——
// 借阅记录与库存变更要么一起提交,要么都不落库
type TxRunner interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Detail 借阅详情(嵌套图书与会员)
// 关联数据通过显式的ID查询组装,不使用ORM级联加载
type Detail struct {
	Borrowing *borrowing.Borrowing
	Book      *book.Book
	Member    *member.Member
}
