package models

// SearchRequest 意图搜索请求体
type SearchRequest struct {
	Query      string `json:"query" example:"i want to go hiking this weekend"`
	MaxResults int    `json:"max_results" example:"10"`
}

// SearchResponse 意图搜索响应
type SearchResponse struct {
	Items        []Item `json:"items"`
	Theme        string `json:"theme,omitempty" example:"hiking"`
	TotalResults int    `json:"total_results" example:"8"`
	Cached       bool   `json:"cached" example:"false"`
}

// SparePartRequest 结构化备件推荐请求体
type SparePartRequest struct {
	Brand            string `json:"brand" example:"samsung"`
	DeviceModel      string `json:"device_model" example:"AR12TY"`
	IssueDescription string `json:"issue_description" example:"ac making loud rattling noise"`
	MaxResults       int    `json:"max_results" example:"10"`
}

// ProblemRequest 自由文本问题分析请求体
type ProblemRequest struct {
	UserProblem string       `json:"user_problem" example:"my phone battery is draining fast"`
	Profile     *UserProfile `json:"user_preferences,omitempty"`
	MaxResults  int          `json:"max_results" example:"10"`
}

// ProblemResponse 智能备件推荐响应
type ProblemResponse struct {
	DetectedIssue       ClassificationResult `json:"detected_issue"`
	PersonalizedMessage string               `json:"personalized_message" example:"检测到电池类问题，已按紧急程度优先展示现货备件"`
	Recommendations     []ScoredPart         `json:"recommendations"`
	TotalFound          int                  `json:"total_found" example:"5"`
}

// InvoiceRequest 发票号推荐请求体
type InvoiceRequest struct {
	InvoiceNumber string `json:"invoice_number" example:"INV-2024-0042"`
	FaultKeyword  string `json:"fault_keyword" example:"compressor"`
	MaxResults    int    `json:"max_results" example:"5"`
}

// ParseRequest 自由文本解析请求体
type ParseRequest struct {
	Message string `json:"message" example:"my samsung microwave from March 2023 has a broken magnetron"`
}

// ParsedQuery 自由文本解析结果
type ParsedQuery struct {
	Fault       string `json:"fault,omitempty" example:"magnetron"`
	Category    string `json:"category,omitempty" example:"microwave"`
	Brand       string `json:"brand,omitempty" example:"samsung"`
	DeviceModel string `json:"device_model,omitempty" example:"MS23K3513"`
	Year        int    `json:"year,omitempty" example:"2023"`
	Month       int    `json:"month,omitempty" example:"3"`
}

// DependencyResponse 意图依赖解析响应
type DependencyResponse struct {
	Intent       string   `json:"intent" example:"make_tea"`
	OrderedItems []string `json:"ordered_items"`
	Acyclic      bool     `json:"acyclic" example:"true"`
	Items        []Item   `json:"items,omitempty"` // 按依赖顺序从目录匹配的商品
}

// APIResponse 通用API响应
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// CacheStats 缓存统计信息
type CacheStats struct {
	Entries    int `json:"entries" example:"42"`
	Capacity   int `json:"capacity" example:"200"`
	Hits       int `json:"hits" example:"120"`
	Misses     int `json:"misses" example:"60"`
	Evictions  int `json:"evictions" example:"50"`
	LastEvictN int `json:"last_evict_n" example:"50"`
}
