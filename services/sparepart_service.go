package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"intent_search/logger"
	"intent_search/models"
	"intent_search/repository"
)

// 自由文本解析用的固定模式
var (
	faultPattern = regexp.MustCompile(`(?i)\b(magnetron|compressor|display|screen|panel|motor|battery|filter|fan|sensor|thermostat)\b`)
	yearPattern  = regexp.MustCompile(`\b(20\d{2})\b`)
	modelPattern = regexp.MustCompile(`\b([A-Z0-9]{4,})\b`)

	parseCategories = []string{"microwave", "refrigerator", "fridge", "ac", "air conditioner",
		"washing machine", "tv", "television", "laptop", "smartphone"}

	monthNames = []string{"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december"}
)

// 发票推荐路径的匹配权重，品牌和型号并重，故障词次之
const (
	invoiceBrandWeight = 0.4
	invoiceModelWeight = 0.4
	invoiceFaultWeight = 0.2
)

// SparePartService 备件推荐服务，覆盖问题描述、结构化请求和发票号三条推荐路径
type SparePartService struct {
	snapshot   *repository.Snapshot
	classifier *Classifier
	pipeline   *RankingPipeline
}

// NewSparePartService 创建备件推荐服务
func NewSparePartService(snapshot *repository.Snapshot, classifier *Classifier, pipeline *RankingPipeline) *SparePartService {
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	return &SparePartService{snapshot: snapshot, classifier: classifier, pipeline: pipeline}
}

// RecommendForProblem 自由文本问题推荐：分类问题描述后走候选池打分排序
func (s *SparePartService) RecommendForProblem(problem string, profile *models.UserProfile, limit int) *models.ProblemResponse {
	classification := s.classifier.Classify(problem)
	ctx := &models.QueryContext{
		RawQuery:       problem,
		MaxResults:     limit,
		Classification: classification,
	}
	if profile != nil {
		ctx.DeviceModel = profile.DeviceModel
	}

	recommendations := s.pipeline.Recommend(s.snapshot.Spares, ctx, profile, limit)
	logger.Debug("问题推荐完成", "issues", classification.DetectedIssues,
		"urgency", classification.Urgency, "results", len(recommendations))

	return &models.ProblemResponse{
		DetectedIssue:       classification,
		PersonalizedMessage: s.personalizedMessage(classification, len(recommendations)),
		Recommendations:     recommendations,
		TotalFound:          len(recommendations),
	}
}

// RecommendStructured 结构化推荐：品牌、型号和故障描述由调用方显式给出
func (s *SparePartService) RecommendStructured(req *models.SparePartRequest, profile *models.UserProfile) []models.ScoredPart {
	classification := s.classifier.Classify(req.IssueDescription)
	ctx := &models.QueryContext{
		RawQuery:       req.IssueDescription,
		Brand:          strings.ToLower(strings.TrimSpace(req.Brand)),
		DeviceModel:    req.DeviceModel,
		MaxResults:     req.MaxResults,
		Classification: classification,
	}
	return s.pipeline.Recommend(s.snapshot.Spares, ctx, profile, req.MaxResults)
}

// RecommendByInvoice 发票号推荐：按历史订单锁定品牌型号后给候选备件打分
// 候选先按订单的类目和品牌过滤，得分为品牌、型号、故障词三项固定权重之和
func (s *SparePartService) RecommendByInvoice(invoiceNumber, faultKeyword string, topN int) ([]models.ScoredPart, bool) {
	order, ok := s.snapshot.OrderByInvoice(invoiceNumber)
	if !ok {
		return nil, false
	}
	if topN <= 0 {
		topN = 3
	}

	results := s.scoreAgainstOrder(order.Brand, order.Category, order.ProductModel, faultKeyword)
	if len(results) > topN {
		results = results[:topN]
	}
	return results, true
}

// RecommendWithoutInvoice 无发票推荐：只按品牌过滤后用同一套权重打分
func (s *SparePartService) RecommendWithoutInvoice(brand, deviceModel, faultKeyword string, topN int) []models.ScoredPart {
	if topN <= 0 {
		topN = 3
	}
	results := s.scoreAgainstOrder(brand, "", deviceModel, faultKeyword)
	if len(results) > topN {
		results = results[:topN]
	}
	return results
}

// ParseFreeText 从自由文本提取故障词、品类、品牌、型号和购买年月
func (s *SparePartService) ParseFreeText(message string) models.ParsedQuery {
	text := strings.TrimSpace(message)
	parsed := models.ParsedQuery{}
	if text == "" {
		return parsed
	}

	if m := faultPattern.FindStringSubmatch(text); m != nil {
		parsed.Fault = strings.ToLower(m[1])
	}

	lowered := strings.ToLower(text)
	for _, c := range parseCategories {
		if !containsWord(lowered, c) {
			continue
		}
		// 同义词归一
		switch c {
		case "ac", "air conditioner":
			parsed.Category = "air conditioner"
		case "fridge", "refrigerator":
			parsed.Category = "refrigerator"
		default:
			parsed.Category = c
		}
		break
	}

	if m := yearPattern.FindStringSubmatch(text); m != nil {
		parsed.Year, _ = strconv.Atoi(m[1])
	}
	for i, name := range monthNames {
		if containsWord(lowered, name) {
			parsed.Month = i + 1
			break
		}
	}

	for _, brand := range s.classifier.Taxonomy().Brands {
		if containsWord(lowered, brand) {
			parsed.Brand = brand
			break
		}
	}

	// 纯数字的候选跳过，避免把年份当成型号
	for _, m := range modelPattern.FindAllStringSubmatch(text, -1) {
		if strings.IndexFunc(m[1], func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0 {
			parsed.DeviceModel = m[1]
			break
		}
	}

	return parsed
}

// CandidateOrders 按解析结果筛选历史订单，购买日期降序
func (s *SparePartService) CandidateOrders(parsed models.ParsedQuery, userName string, limit int) []models.Order {
	matched := make([]models.Order, 0)
	for _, order := range s.snapshot.Orders {
		if parsed.Brand != "" && !strings.EqualFold(order.Brand, parsed.Brand) {
			continue
		}
		if parsed.Category != "" && !strings.EqualFold(order.Category, parsed.Category) {
			continue
		}
		if parsed.Year != 0 || parsed.Month != 0 {
			t, err := parsePurchaseDate(order.PurchaseDate)
			if err != nil {
				continue
			}
			if parsed.Year != 0 && t.Year() != parsed.Year {
				continue
			}
			if parsed.Month != 0 && int(t.Month()) != parsed.Month {
				continue
			}
		}
		if userName != "" && !strings.Contains(strings.ToLower(order.UserName), strings.ToLower(userName)) {
			continue
		}
		matched = append(matched, order)
	}

	// 日期写法不统一，按解析后的时间排序；解析失败的排在最后
	type datedOrder struct {
		order models.Order
		at    time.Time
	}
	dated := make([]datedOrder, len(matched))
	for i := range matched {
		at, _ := parsePurchaseDate(matched[i].PurchaseDate)
		dated[i] = datedOrder{order: matched[i], at: at}
	}
	sort.SliceStable(dated, func(a, b int) bool {
		return dated[a].at.After(dated[b].at)
	})
	for i := range dated {
		matched[i] = dated[i].order
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// Brands 返回备件目录里的全部品牌
func (s *SparePartService) Brands() []string {
	return s.snapshot.Brands()
}

// ModelsForBrand 返回品牌下历史订单出现过的设备型号
func (s *SparePartService) ModelsForBrand(brand string) []string {
	return s.snapshot.ModelsForBrand(brand)
}

// scoreAgainstOrder 发票路径的打分：类目品牌过滤后按固定权重求和，得分降序
func (s *SparePartService) scoreAgainstOrder(brand, category, deviceModel, faultKeyword string) []models.ScoredPart {
	brandNorm := strings.ToLower(strings.TrimSpace(brand))
	modelNorm := strings.ToLower(strings.TrimSpace(deviceModel))
	faultNorm := strings.ToLower(strings.TrimSpace(faultKeyword))

	scored := make([]models.ScoredPart, 0)
	for i := range s.snapshot.Spares {
		part := s.snapshot.Spares[i]
		if category != "" && !strings.EqualFold(part.Category, category) {
			continue
		}
		if brandNorm != "" && !strings.EqualFold(part.Brand, brandNorm) {
			continue
		}

		score := 0.0
		reasons := make([]string, 0, 3)
		if brandNorm != "" && strings.EqualFold(part.Brand, brandNorm) {
			score += invoiceBrandWeight
			reasons = append(reasons, "品牌一致")
		}
		if modelNorm != "" && part.SupportsModel(modelNorm) {
			score += invoiceModelWeight
			reasons = append(reasons, "兼容型号 "+deviceModel)
		}
		if faultNorm != "" && strings.Contains(strings.ToLower(part.PartName), faultNorm) {
			score += invoiceFaultWeight
			reasons = append(reasons, "命中故障词 "+faultNorm)
		}

		scored = append(scored, models.ScoredPart{Part: part, Score: score, Reason: strings.Join(reasons, "；")})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	return scored
}

// personalizedMessage 根据分类结果生成提示语
func (s *SparePartService) personalizedMessage(c models.ClassificationResult, found int) string {
	if len(c.DetectedIssues) == 0 {
		if found == 0 {
			return "未能识别具体问题类别，请补充设备品牌或故障现象"
		}
		return fmt.Sprintf("已按描述匹配到%d个备件", found)
	}

	issues := strings.Join(c.DetectedIssues, "、")
	switch c.Urgency {
	case models.UrgencyHigh:
		return fmt.Sprintf("检测到%s类问题，紧急程度较高，已优先展示现货备件（共%d个）", issues, found)
	case models.UrgencyLow:
		return fmt.Sprintf("检测到%s类问题，属于常规维护，共找到%d个备件", issues, found)
	default:
		return fmt.Sprintf("检测到%s类问题，共找到%d个匹配备件", issues, found)
	}
}

// containsWord 整词匹配，词边界为非字母数字字符
func containsWord(text, word string) bool {
	idx := 0
	for {
		pos := strings.Index(text[idx:], word)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(word)
		beforeOK := start == 0 || !isAlnum(text[start-1])
		afterOK := end == len(text) || !isAlnum(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// parsePurchaseDate 兼容订单里出现过的几种日期写法
func parsePurchaseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"2006-01-02", "2006/01/02", "02-01-2006", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析的日期: %s", raw)
}
