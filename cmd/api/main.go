package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appborrowing "github.com/xiebiao/library/internal/application/borrowing"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/category"
	"github.com/xiebiao/library/internal/domain/member"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/pkg/response"
)

// @title        图书馆管理系统 API
// @version      1.0
// @description  图书/作者/分类/会员的维护与借阅台账管理
// @BasePath     /api/v1

// main 主程序入口
// 说明：手动依赖注入（cmd/api/wire.go提供Wire配置，可用wire gen生成）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 依赖注入（手动组装）
	// 依赖链：Repository ← Service/UseCase ← Handler

	// 基础设施层
	// 作者/分类仓储套上Redis旁路缓存装饰器;
	// 图书库存在借阅事务中高频变化,图书仓储不做缓存
	authorRepo := redis.NewCachedAuthorRepository(mysql.NewAuthorRepository(db), redisClient, cfg.Redis.CacheTTL)
	categoryRepo := redis.NewCachedCategoryRepository(mysql.NewCategoryRepository(db), redisClient, cfg.Redis.CacheTTL)
	bookRepo := mysql.NewBookRepository(db)
	memberRepo := mysql.NewMemberRepository(db)
	borrowingRepo := mysql.NewBorrowingRepository(db)
	txManager := mysql.NewTxManager(db)

	// 领域层
	authorService := author.NewService(authorRepo, bookRepo)
	categoryService := category.NewService(categoryRepo, bookRepo)
	bookService := book.NewService(bookRepo, authorRepo, categoryRepo, borrowingRepo)
	memberService := member.NewService(memberRepo, borrowingRepo)

	// 应用层(借阅事务脚本)
	createBorrowingUseCase := appborrowing.NewCreateBorrowingUseCase(borrowingRepo, bookRepo, memberRepo, txManager)
	updateStatusUseCase := appborrowing.NewUpdateStatusUseCase(borrowingRepo, bookRepo, memberRepo, txManager)
	deleteBorrowingUseCase := appborrowing.NewDeleteBorrowingUseCase(borrowingRepo, bookRepo, txManager)
	queryBorrowingsUseCase := appborrowing.NewQueryBorrowingsUseCase(borrowingRepo, bookRepo, memberRepo)

	// 接口层
	authorHandler := handler.NewAuthorHandler(authorService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	bookHandler := handler.NewBookHandler(bookService)
	memberHandler := handler.NewMemberHandler(memberService)
	borrowingHandler := handler.NewBorrowingHandler(
		createBorrowingUseCase,
		updateStatusUseCase,
		deleteBorrowingUseCase,
		queryBorrowingsUseCase,
	)

	// 5. 构建路由并启动服务
	r := buildRouter(cfg, authorHandler, categoryHandler, bookHandler, memberHandler, borrowingHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// buildRouter 创建Gin引擎并注册全部路由
func buildRouter(
	cfg *config.Config,
	authorHandler *handler.AuthorHandler,
	categoryHandler *handler.CategoryHandler,
	bookHandler *handler.BookHandler,
	memberHandler *handler.MemberHandler,
	borrowingHandler *handler.BorrowingHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS(前端单页应用跨域访问)
	if cfg.CORS.Enabled {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Swagger文档(生产环境建议禁用或加访问控制)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		authors := v1.Group("/authors")
		{
			authors.POST("", authorHandler.CreateAuthor)
			authors.GET("", authorHandler.ListAuthors)
			authors.GET("/:id", authorHandler.GetAuthor)
			authors.PUT("/:id", authorHandler.UpdateAuthor)
			authors.DELETE("/:id", authorHandler.DeleteAuthor)
		}

		categories := v1.Group("/categories")
		{
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		books := v1.Group("/books")
		{
			books.POST("", bookHandler.CreateBook)
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.PUT("/:id", bookHandler.UpdateBook)
			books.DELETE("/:id", bookHandler.DeleteBook)
		}

		members := v1.Group("/members")
		{
			members.POST("", memberHandler.CreateMember)
			members.GET("", memberHandler.ListMembers)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		borrowings := v1.Group("/borrowings")
		{
			borrowings.POST("", borrowingHandler.CreateBorrowing)
			borrowings.GET("", borrowingHandler.ListBorrowings)
			borrowings.GET("/:id", borrowingHandler.GetBorrowing)
			borrowings.PUT("/:id", borrowingHandler.UpdateBorrowingStatus)
			borrowings.DELETE("/:id", borrowingHandler.DeleteBorrowing)
		}
	}

	return r
}
