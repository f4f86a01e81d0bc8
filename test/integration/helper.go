package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 这些测试以黑盒方式访问运行中的服务(默认localhost:8080),
// 服务未启动时整组测试跳过

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// PingURL 健康检查URL
	PingURL = "http://localhost:8080/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AuthorData 作者响应数据
type AuthorData struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

// CategoryData 分类响应数据
type CategoryData struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BookData 图书响应数据
type BookData struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	ISBN       string `json:"isbn"`
	Stock      int    `json:"stock"`
	AuthorID   uint   `json:"author_id"`
	CategoryID uint   `json:"category_id"`
}

// MemberData 会员响应数据
type MemberData struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// BorrowingData 借阅响应数据
type BorrowingData struct {
	ID         uint       `json:"id"`
	BorrowNo   string     `json:"borrow_no"`
	BookID     uint       `json:"book_id"`
	MemberID   uint       `json:"member_id"`
	DueDate    string     `json:"due_date"`
	ReturnedAt string     `json:"returned_at"`
	Status     string     `json:"status"`
	Book       BookData   `json:"book"`
	Member     MemberData `json:"member"`
}

// RequireServer 检查服务是否在运行,未运行时跳过测试
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		t.Skipf("服务未启动(%v),跳过集成测试", err)
	}
	resp.Body.Close()
}

// doJSON 发送HTTP请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}) *Response {
	return doJSON(t, http.MethodPost, url, data)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}) *Response {
	return doJSON(t, http.MethodPut, url, data)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string) *Response {
	return doJSON(t, http.MethodGet, url, nil)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string) *Response {
	return doJSON(t, http.MethodDelete, url, nil)
}

// uniqueSuffix 基于纳秒时间戳的唯一后缀
// 测试重复运行时避免名称/手机号冲突
func uniqueSuffix() int64 {
	return time.Now().UnixNano() % 1_000_000_000
}

// CreateTestAuthor 创建测试作者并返回ID
func CreateTestAuthor(t *testing.T, prefix string) uint {
	t.Helper()
	resp := PostJSON(t, BaseURL+"/authors", map[string]interface{}{
		"name": fmt.Sprintf("%s_%d", prefix, uniqueSuffix()),
	})
	require.Equal(t, 0, resp.Code, "创建作者失败: %s", resp.Message)

	var data AuthorData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.ID
}

// CreateTestCategory 创建测试分类并返回ID
func CreateTestCategory(t *testing.T, prefix string) uint {
	t.Helper()
	resp := PostJSON(t, BaseURL+"/categories", map[string]interface{}{
		"name": fmt.Sprintf("%s_%d", prefix, uniqueSuffix()),
	})
	require.Equal(t, 0, resp.Code, "创建分类失败: %s", resp.Message)

	var data CategoryData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.ID
}

// CreateTestBook 创建测试图书并返回ID
func CreateTestBook(t *testing.T, title string, stock int) uint {
	t.Helper()
	authorID := CreateTestAuthor(t, "author")
	categoryID := CreateTestCategory(t, "category")

	resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"title":       fmt.Sprintf("%s_%d", title, uniqueSuffix()),
		"stock":       stock,
		"author_id":   authorID,
		"category_id": categoryID,
	})
	require.Equal(t, 0, resp.Code, "创建图书失败: %s", resp.Message)

	var data BookData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.ID
}

// CreateTestMember 创建测试会员并返回ID
func CreateTestMember(t *testing.T, name string) uint {
	t.Helper()
	resp := PostJSON(t, BaseURL+"/members", map[string]interface{}{
		"name":  name,
		"phone": fmt.Sprintf("138%08d", uniqueSuffix()%100000000),
	})
	require.Equal(t, 0, resp.Code, "创建会员失败: %s", resp.Message)

	var data MemberData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.ID
}

// GetBookStock 查询图书当前库存
func GetBookStock(t *testing.T, bookID uint) int {
	t.Helper()
	resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID))
	require.Equal(t, 0, resp.Code, "查询图书失败: %s", resp.Message)

	var data BookData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.Stock
}
