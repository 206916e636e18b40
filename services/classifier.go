package services

import (
	"strings"

	"intent_search/models"
	"intent_search/utils"
)

// Classifier 基于关键词词表的文本分类器
// 同一份词表同时服务主题识别和设备问题识别，词表在构造时注入
type Classifier struct {
	taxonomy *models.Taxonomy
}

// NewClassifier 创建分类器，未提供词表时使用内置词表
func NewClassifier(taxonomy *models.Taxonomy) *Classifier {
	if taxonomy == nil {
		taxonomy = models.DefaultTaxonomy()
	}
	return &Classifier{taxonomy: taxonomy}
}

// Classify 对查询文本做主题、问题类别、品牌和紧急程度的识别
// 主题取命中关键词最多的一个，问题类别返回全部命中项
func (c *Classifier) Classify(text string) models.ClassificationResult {
	result := models.ClassificationResult{
		DetectedIssues: []string{},
		KeywordsFound:  []string{},
		Urgency:        models.UrgencyMedium,
	}

	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return result
	}

	// 主题打分：每个命中关键词计1分，同分时保留词表声明顺序靠前的主题
	bestHits := 0
	for _, theme := range c.taxonomy.Themes {
		hits := 0
		for _, kw := range theme.Keywords {
			if strings.Contains(lowered, kw) {
				hits++
				result.KeywordsFound = append(result.KeywordsFound, kw)
			}
		}
		if hits > bestHits {
			bestHits = hits
			result.Theme = theme.Name
		}
	}

	// 问题类别：命中任一关键词即记入，严重程度取全部命中类别中的最高档
	hasCritical, hasHigh := false, false
	for _, issue := range c.taxonomy.Issues {
		matched := false
		for _, kw := range issue.Keywords {
			if strings.Contains(lowered, kw) {
				matched = true
				result.KeywordsFound = append(result.KeywordsFound, kw)
			}
		}
		if !matched {
			continue
		}
		result.DetectedIssues = append(result.DetectedIssues, issue.Name)
		switch issue.Severity {
		case models.SeverityCritical:
			hasCritical = true
		case models.SeverityHigh:
			hasHigh = true
		}
	}

	// 紧急程度：未命中问题保持medium默认值
	if len(result.DetectedIssues) > 0 {
		switch {
		case hasCritical:
			result.Urgency = models.UrgencyHigh
		case hasHigh:
			result.Urgency = models.UrgencyMedium
		default:
			result.Urgency = models.UrgencyLow
		}
	}

	// 品牌：取文本中出现的第一个词表品牌，整词匹配避免短品牌名误命中
	for _, brand := range c.taxonomy.Brands {
		if containsWord(lowered, brand) {
			result.BrandMentioned = brand
			break
		}
	}

	result.KeywordsFound = utils.DeduplicateSlice(result.KeywordsFound)
	return result
}

// Taxonomy 返回分类器持有的词表
func (c *Classifier) Taxonomy() *models.Taxonomy {
	return c.taxonomy
}

// IssueByName 按名称查找问题类别
func (c *Classifier) IssueByName(name string) (*models.IssueCategory, bool) {
	for i := range c.taxonomy.Issues {
		if c.taxonomy.Issues[i].Name == name {
			return &c.taxonomy.Issues[i], true
		}
	}
	return nil, false
}
