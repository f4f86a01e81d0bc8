//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 设计说明：
// 1. Wire是编译期依赖注入工具，运行 `wire gen ./cmd/api` 生成wire_gen.go
// 2. 与运行时反射注入不同，依赖链在编译期检查，循环依赖直接报错
// 3. main.go目前手动组装依赖，本文件与其保持一致，二者选其一使用

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appborrowing "github.com/xiebiao/library/internal/application/borrowing"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrowing"
	"github.com/xiebiao/library/internal/domain/category"
	"github.com/xiebiao/library/internal/domain/member"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/internal/interface/http/handler"
)

// infrastructureSet 基础设施层依赖：配置、MySQL、Redis
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
// 作者/分类仓储通过自定义Provider套上Redis缓存装饰器
var repositorySet = wire.NewSet(
	provideAuthorRepository,
	provideCategoryRepository,
	mysql.NewBookRepository,
	mysql.NewMemberRepository,
	mysql.NewBorrowingRepository,
	mysql.NewTxManager,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	author.NewService,
	category.NewService,
	book.NewService,
	member.NewService,
)

// applicationSet 应用层依赖(借阅事务脚本)
var applicationSet = wire.NewSet(
	appborrowing.NewCreateBorrowingUseCase,
	appborrowing.NewUpdateStatusUseCase,
	appborrowing.NewDeleteBorrowingUseCase,
	appborrowing.NewQueryBorrowingsUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthorHandler,
	handler.NewCategoryHandler,
	handler.NewBookHandler,
	handler.NewMemberHandler,
	handler.NewBorrowingHandler,
)

// bindingSet 接口绑定
// 图书/借阅仓储同时充当各领域服务的计数接口;事务管理器充当应用层的TxRunner
var bindingSet = wire.NewSet(
	provideAuthorBookCounter,
	provideCategoryBookCounter,
	provideBookBorrowingCounter,
	provideMemberBorrowingCounter,
	provideTxRunner,
)

// provideAuthorRepository 创建带缓存的作者仓储
// config.Config包含多个字段,缓存TTL需要手动提取,Wire无法自动推导
func provideAuthorRepository(db *gorm.DB, client *goredis.Client, cfg *config.Config) author.Repository {
	return redis.NewCachedAuthorRepository(mysql.NewAuthorRepository(db), client, cfg.Redis.CacheTTL)
}

// provideCategoryRepository 创建带缓存的分类仓储
func provideCategoryRepository(db *gorm.DB, client *goredis.Client, cfg *config.Config) category.Repository {
	return redis.NewCachedCategoryRepository(mysql.NewCategoryRepository(db), client, cfg.Redis.CacheTTL)
}

func provideAuthorBookCounter(repo book.Repository) author.BookCounter {
	return repo
}

func provideCategoryBookCounter(repo book.Repository) category.BookCounter {
	return repo
}

func provideBookBorrowingCounter(repo borrowing.Repository) book.BorrowingCounter {
	return repo
}

func provideMemberBorrowingCounter(repo borrowing.Repository) member.BorrowingCounter {
	return repo
}

func provideTxRunner(tm *mysql.TxManager) appborrowing.TxRunner {
	return tm
}

// provideGinEngine 创建并配置Gin引擎(路由注册在main.go的buildRouter中)
func provideGinEngine(
	cfg *config.Config,
	authorHandler *handler.AuthorHandler,
	categoryHandler *handler.CategoryHandler,
	bookHandler *handler.BookHandler,
	memberHandler *handler.MemberHandler,
	borrowingHandler *handler.BorrowingHandler,
) *gin.Engine {
	return buildRouter(cfg, authorHandler, categoryHandler, bookHandler, memberHandler, borrowingHandler)
}

// InitializeApp 初始化整个应用
// Wire会按依赖链自动调用所有构造函数,生成wire_gen.go
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		bindingSet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
