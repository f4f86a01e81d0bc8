package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	// 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意:这里使用GORM的模型定义(带tag),不是domain层的实体
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&CategoryModel{},
		&BookModel{},
		&MemberModel{},
		&BorrowingModel{},
	)
}

// AuthorModel GORM作者模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,domain/author/entity.go是领域实体,
//    Repository负责两者之间的转换
// 2. Name有唯一索引,配合服务层的前置校验双重防护
// 3. 删除是物理删除(DELETE),不做软删除——删除前服务层已校验无关联图书
type AuthorModel struct {
	ID        uint       `gorm:"primaryKey"`
	Name      string     `gorm:"uniqueIndex;size:100;not null;comment:姓名"`
	BirthDate *time.Time `gorm:"type:date;comment:出生日期"`
	CreatedAt time.Time  `gorm:"comment:创建时间"`
	UpdatedAt time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null;comment:分类名称"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel GORM图书模型
// 设计说明:
// 1. Title有唯一索引;ISBN可空,使用指针类型——MySQL唯一索引允许多个NULL,
//    不填ISBN的图书互不冲突
// 2. Stock是台账数量,所有增减都走UpdateStock的原子UPDATE
// 3. AuthorID/CategoryID带普通索引,支撑删除保护的计数查询
type BookModel struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"uniqueIndex;size:200;not null;comment:书名"`
	Year       *int      `gorm:"comment:出版年份"`
	ISBN       *string   `gorm:"uniqueIndex;size:20;comment:ISBN号"`
	Stock      int       `gorm:"not null;default:0;comment:当前可借库存"`
	AuthorID   uint      `gorm:"index;not null;comment:作者ID"`
	CategoryID uint      `gorm:"index;not null;comment:分类ID"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
	UpdatedAt  time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// MemberModel GORM会员模型
// Phone有唯一索引;Email可空,指针类型,填写时唯一
type MemberModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null;comment:姓名"`
	Phone     string    `gorm:"uniqueIndex;size:20;not null;comment:手机号"`
	Email     *string   `gorm:"uniqueIndex;size:100;comment:邮箱"`
	Address   *string   `gorm:"size:255;comment:地址"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (MemberModel) TableName() string {
	return "members"
}

// BorrowingModel GORM借阅记录模型
// 设计说明:
// 1. BorrowNo有唯一索引(业务主键,ULID)
// 2. DueDate使用DATE类型,应还日期不含时间部分
// 3. BookID/MemberID带普通索引,支撑删除保护的计数查询
type BorrowingModel struct {
	ID         uint       `gorm:"primaryKey"`
	BorrowNo   string     `gorm:"uniqueIndex;size:32;not null;comment:借阅单号"`
	BookID     uint       `gorm:"index;not null;comment:图书ID"`
	MemberID   uint       `gorm:"index;not null;comment:会员ID"`
	BorrowedAt time.Time  `gorm:"not null;comment:借出时间"`
	DueDate    time.Time  `gorm:"type:date;not null;comment:应还日期"`
	ReturnedAt *time.Time `gorm:"comment:实际归还时间"`
	Status     string     `gorm:"index;size:16;not null;default:borrowed;comment:借阅状态(borrowed/returned/overdue)"`
	CreatedAt  time.Time  `gorm:"comment:创建时间"`
	UpdatedAt  time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BorrowingModel) TableName() string {
	return "borrowings"
}
