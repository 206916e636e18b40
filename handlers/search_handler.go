package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"intent_search/config"
	_ "intent_search/docs" // 导入 swagger 文档
	"intent_search/models"
	"intent_search/services"
	"intent_search/utils"
)

// Services 路由层依赖的服务集合，启动时组装一次
type Services struct {
	Search   *services.SearchService
	Spares   *services.SparePartService
	Resolver *services.DependencyResolver
}

// SearchHandler godoc
// @Summary 意图搜索
// @Description 对查询文本做意图分类后检索商品，命中主题时按主题相关性排序
// @Tags 搜索
// @Accept json
// @Produce json
// @Param request body models.SearchRequest true "搜索请求"
// @Success 200 {object} models.APIResponse{data=models.SearchResponse} "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /api/search [post]
func SearchHandler(w http.ResponseWriter, r *http.Request, svc *Services) {
	var req models.SearchRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.ValidateRequired(w, "query", req.Query) {
		return
	}

	resp := svc.Search.Search(req.Query, req.MaxResults)
	if resp.TotalResults == 0 {
		utils.WriteErrorResponse(w, models.CodeNoSearchResults, resp)
		return
	}
	utils.WriteSuccessResponse(w, resp)
}

// DependenciesHandler godoc
// @Summary 解析意图的物品依赖顺序
// @Description 对意图的依赖图做拓扑排序，并按顺序从目录匹配商品
// @Tags 搜索
// @Produce json
// @Param intent path string true "意图名，如 make_tea"
// @Success 200 {object} models.APIResponse{data=models.DependencyResponse} "成功"
// @Failure 400 {object} models.APIResponse "未知的意图"
// @Router /api/search/dependencies/{intent} [get]
func DependenciesHandler(w http.ResponseWriter, r *http.Request, svc *Services) {
	intent := chi.URLParam(r, "intent")
	if !utils.ValidateRequired(w, "intent", intent) {
		return
	}
	if !svc.Resolver.Has(intent) {
		utils.WriteErrorResponse(w, models.CodeUnknownIntent, map[string]interface{}{
			"intent":    intent,
			"available": svc.Resolver.Intents(),
		})
		return
	}

	ordered, acyclic := svc.Resolver.Resolve(intent)
	utils.WriteSuccessResponse(w, models.DependencyResponse{
		Intent:       intent,
		OrderedItems: ordered,
		Acyclic:      acyclic,
		Items:        svc.Search.SearchByNames(ordered),
	})
}

// RecommendHandler godoc
// @Summary 结构化备件推荐
// @Description 按品牌、设备型号和故障描述推荐兼容备件
// @Tags 备件
// @Accept json
// @Produce json
// @Param request body models.SparePartRequest true "推荐请求"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /api/spare-parts/recommend [post]
func RecommendHandler(w http.ResponseWriter, r *http.Request, svc *Services) {
	var req models.SparePartRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.ValidateRequired(w, "issue_description", req.IssueDescription) {
		return
	}

	results := svc.Spares.RecommendStructured(&req, nil)
	if len(results) == 0 {
		utils.WriteErrorResponse(w, models.CodeNoPartMatches, map[string]interface{}{
			"brand":        req.Brand,
			"device_model": req.DeviceModel,
		})
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"recommendations": results,
		"total_found":     len(results),
	})
}

// AnalyzeHandler godoc
// @Summary 问题描述智能推荐
// @Description 分类自由文本问题描述，结合用户偏好给出个性化备件推荐
// @Tags 备件
// @Accept json
// @Produce json
// @Param request body models.ProblemRequest true "问题分析请求"
// @Success 200 {object} models.APIResponse{data=models.ProblemResponse} "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /api/spare-parts/analyze [post]
func AnalyzeHandler(w http.ResponseWriter, r *http.Request, svc *Services) {
	var req models.ProblemRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.ValidateRequired(w, "user_problem", req.UserProblem) {
		return
	}

	utils.WriteSuccessResponse(w, svc.Spares.RecommendForProblem(req.UserProblem, req.Profile, req.MaxResults))
}

// ParseHandler godoc
// @Summary 自由文本解析
// @Description 从报修文本提取故障词、品类、品牌、型号和购买年月，并返回可能对应的历史订单
// @Tags 备件
// @Accept json
// @Produce json
// @Param request body models.ParseRequest true "解析请求"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /api/spare-parts/parse [post]
func ParseHandler(w http.ResponseWriter, r *http.Request, svc *Services) {
	var req models.ParseRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.ValidateRequired(w, "message", req.Message) {
		return
	}

	parsed := svc.Spares.ParseFreeText(req.Message)
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"parsed":           parsed,
		"candidate_orders": svc.Spares.CandidateOrders(parsed, "", 10),
	})
}

// InvoiceHandler godoc
// @Summary 发票号备件推荐
// @Description 按发票号锁定历史订单的品牌型号后推荐兼容备件
// @Tags 备件
// @Accept json
// @Produce json
// @Param request body models.InvoiceRequest true "发票推荐请求"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "订单不存在"
// @Router /api/spare-parts/invoice [post]
func InvoiceHandler(w http.ResponseWriter, r *http.Request, svc *Services) {
	var req models.InvoiceRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.ValidateRequired(w, "invoice_number", req.InvoiceNumber) {
		return
	}

	results, found := svc.Spares.RecommendByInvoice(req.InvoiceNumber, req.FaultKeyword, req.MaxResults)
	if !found {
		utils.WriteErrorResponse(w, models.CodeOrderNotFound, map[string]interface{}{
			"invoice_number": req.InvoiceNumber,
		})
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"invoice_number":  req.InvoiceNumber,
		"recommendations": results,
		"total_found":     len(results),
	})
}

// BrandsHandler godoc
// @Summary 备件品牌列表
// @Tags 备件
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /api/spare-parts/brands [get]
func BrandsHandler(w http.ResponseWriter, r *http.Request, svc *Services) {
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"brands": svc.Spares.Brands(),
	})
}

// ModelsHandler godoc
// @Summary 品牌下的设备型号列表
// @Description 从历史订单统计品牌下出现过的设备型号
// @Tags 备件
// @Produce json
// @Param brand path string true "品牌名"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "不支持的品牌"
// @Router /api/spare-parts/models/{brand} [get]
func ModelsHandler(w http.ResponseWriter, r *http.Request, svc *Services) {
	brand := chi.URLParam(r, "brand")
	if !utils.ValidateRequired(w, "brand", brand) {
		return
	}

	deviceModels := svc.Spares.ModelsForBrand(brand)
	if len(deviceModels) == 0 {
		utils.WriteErrorResponse(w, models.CodeUnknownBrand, map[string]interface{}{
			"brand": brand,
		})
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"brand":  brand,
		"models": deviceModels,
	})
}

// CacheStatsHandler godoc
// @Summary 缓存统计
// @Tags 缓存
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /api/cache/stats [get]
func CacheStatsHandler(w http.ResponseWriter, r *http.Request, svc *Services) {
	results, themes := svc.Search.CacheStats()
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"results": results,
		"themes":  themes,
	})
}

// CacheClearHandler godoc
// @Summary 清空缓存
// @Tags 缓存
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /api/cache/clear [post]
func CacheClearHandler(w http.ResponseWriter, r *http.Request, svc *Services) {
	cleared := svc.Search.ClearCaches()
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"cleared_entries": cleared,
	})
}

// HealthHandler godoc
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request, svc *Services) {
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"status": "ok",
		"items":  svc.Search.ItemCount(),
	})
}

// RegisterRoutes 注册全部路由
func RegisterRoutes(r *chi.Mux, cfg *config.Config, svc *Services) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		HealthHandler(w, r, svc)
	})

	r.Post("/api/search", func(w http.ResponseWriter, r *http.Request) {
		SearchHandler(w, r, svc)
	})

	r.Get("/api/search/dependencies/{intent}", func(w http.ResponseWriter, r *http.Request) {
		DependenciesHandler(w, r, svc)
	})

	r.Post("/api/spare-parts/recommend", func(w http.ResponseWriter, r *http.Request) {
		RecommendHandler(w, r, svc)
	})

	r.Post("/api/spare-parts/analyze", func(w http.ResponseWriter, r *http.Request) {
		AnalyzeHandler(w, r, svc)
	})

	r.Post("/api/spare-parts/parse", func(w http.ResponseWriter, r *http.Request) {
		ParseHandler(w, r, svc)
	})

	r.Post("/api/spare-parts/invoice", func(w http.ResponseWriter, r *http.Request) {
		InvoiceHandler(w, r, svc)
	})

	r.Get("/api/spare-parts/brands", func(w http.ResponseWriter, r *http.Request) {
		BrandsHandler(w, r, svc)
	})

	r.Get("/api/spare-parts/models/{brand}", func(w http.ResponseWriter, r *http.Request) {
		ModelsHandler(w, r, svc)
	})

	r.Get("/api/cache/stats", func(w http.ResponseWriter, r *http.Request) {
		CacheStatsHandler(w, r, svc)
	})

	r.Post("/api/cache/clear", func(w http.ResponseWriter, r *http.Request) {
		CacheClearHandler(w, r, svc)
	})
}
