package models

// 问题类别的严重程度
const (
	SeverityLow      = "low"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Theme 活动主题，轻量搜索路径的分类单元
type Theme struct {
	Name         string   `yaml:"name" json:"name"`
	Keywords     []string `yaml:"keywords" json:"keywords"`           // 触发关键词
	RelatedItems []string `yaml:"related_items" json:"related_items"` // 主题相关的商品关键词
}

// IssueCategory 设备问题类别，备件推荐路径的分类单元
type IssueCategory struct {
	Name         string   `yaml:"name" json:"name"`
	Keywords     []string `yaml:"keywords" json:"keywords"`
	Severity     string   `yaml:"severity" json:"severity"`           // low / high / critical
	RelatedParts []string `yaml:"related_parts" json:"related_parts"` // 问题对应的备件关键词
}

// Taxonomy 分类器使用的全部静态词表，构造时注入而非散落的字面量
type Taxonomy struct {
	Themes  []Theme         `yaml:"themes" json:"themes"`
	Issues  []IssueCategory `yaml:"issues" json:"issues"`
	Brands  []string        `yaml:"brands" json:"brands"`
	Intents map[string][]string
}

// DefaultThemes 内置活动主题词表
func DefaultThemes() []Theme {
	return []Theme{
		{
			Name:     "hiking",
			Keywords: []string{"hiking", "hike", "trek", "mountain", "trail", "outdoor", "adventure", "walking"},
			RelatedItems: []string{"boots", "shoes", "backpack", "bag", "water", "bottle", "compass", "map",
				"energy", "snack", "flashlight", "torch", "jacket", "gear", "equipment"},
		},
		{
			Name:     "camping",
			Keywords: []string{"camping", "camp", "tent", "campfire", "outdoor", "nature"},
			RelatedItems: []string{"tent", "sleeping", "bag", "stove", "cooking", "lantern", "flashlight",
				"chair", "table", "cooler", "fire", "rope", "tarp"},
		},
		{
			Name:     "cooking",
			Keywords: []string{"cooking", "cook", "kitchen", "food", "recipe", "meal", "tea", "coffee"},
			RelatedItems: []string{"pan", "pot", "knife", "spoon", "plate", "cup", "mug", "stove",
				"mixer", "blender", "oil", "spice", "ingredient"},
		},
		{
			Name:     "fitness",
			Keywords: []string{"fitness", "gym", "exercise", "workout", "sport", "training", "yoga"},
			RelatedItems: []string{"dumbbell", "weight", "mat", "shoes", "clothes", "bottle", "towel",
				"tracker", "band", "equipment"},
		},
		{
			Name:     "tech",
			Keywords: []string{"technology", "tech", "electronics", "gadget", "computer", "phone", "mobile"},
			RelatedItems: []string{"charger", "cable", "case", "screen", "headphone", "speaker", "mouse",
				"keyboard", "adapter", "battery", "memory", "storage"},
		},
		{
			Name:     "fashion",
			Keywords: []string{"fashion", "clothing", "wear", "dress", "style", "outfit"},
			RelatedItems: []string{"shirt", "pant", "dress", "shoe", "bag", "belt", "watch", "jewelry",
				"sunglass", "hat", "scarf"},
		},
	}
}

// DefaultIssueCategories 内置设备问题词表
func DefaultIssueCategories() []IssueCategory {
	return []IssueCategory{
		{
			Name:         "battery",
			Keywords:     []string{"battery", "charging", "charge", "drain", "draining", "power off", "dies"},
			Severity:     SeverityCritical,
			RelatedParts: []string{"battery", "charger", "power", "adapter"},
		},
		{
			Name:         "cooling",
			Keywords:     []string{"cooling", "not cold", "warm air", "temperature", "heat"},
			Severity:     SeverityCritical,
			RelatedParts: []string{"compressor", "refrigerant", "condenser", "evaporator"},
		},
		{
			Name:         "noise",
			Keywords:     []string{"noise", "noisy", "rattle", "rattling", "loud", "vibration"},
			Severity:     SeverityHigh,
			RelatedParts: []string{"fan", "motor", "bearing", "compressor"},
		},
		{
			Name:         "leak",
			Keywords:     []string{"leak", "leaking", "water", "drip", "dripping"},
			Severity:     SeverityHigh,
			RelatedParts: []string{"seal", "gasket", "drain", "valve"},
		},
		{
			Name:         "display",
			Keywords:     []string{"display", "screen", "panel", "flicker", "blank", "cracked"},
			Severity:     SeverityHigh,
			RelatedParts: []string{"display", "panel", "led", "screen"},
		},
		{
			Name:         "remote",
			Keywords:     []string{"remote", "control", "button", "not responding"},
			Severity:     SeverityLow,
			RelatedParts: []string{"remote", "control", "receiver", "sensor"},
		},
		{
			Name:         "filter",
			Keywords:     []string{"filter", "dust", "smell", "odor", "airflow"},
			Severity:     SeverityLow,
			RelatedParts: []string{"filter", "mesh", "purifier"},
		},
	}
}

// DefaultBrandVocabulary 内置品牌词表
func DefaultBrandVocabulary() []string {
	return []string{"samsung", "lg", "whirlpool", "daikin", "sony", "bosch", "ifb", "haier", "xyz"}
}

// DefaultIntentKeywords 意图名到触发关键词的映射，用于从查询文本识别意图
func DefaultIntentKeywords() map[string][]string {
	return map[string][]string{
		"go_hiking":         {"hiking", "hike", "trek", "mountain", "trail", "outdoor"},
		"prepare_food":      {"cook", "cooking", "food", "kitchen", "recipe", "meal"},
		"make_tea":          {"tea", "chai", "brew"},
		"go_camping":        {"camp", "camping", "tent", "campfire"},
		"setup_electronics": {"electronics", "device", "tech", "gadget", "computer"},
		"get_dressed":       {"clothing", "clothes", "wear", "dress", "outfit"},
		"workout":           {"fitness", "exercise", "gym", "workout", "sport"},
		"setup_office":      {"office", "work", "desk", "computer", "business"},
		"automotive_needs":  {"car", "vehicle", "automotive", "driving"},
		"sports_activity":   {"sport", "game", "play", "activity", "recreation"},
	}
}

// DefaultTaxonomy 组装内置词表
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		Themes:  DefaultThemes(),
		Issues:  DefaultIssueCategories(),
		Brands:  DefaultBrandVocabulary(),
		Intents: DefaultIntentKeywords(),
	}
}
