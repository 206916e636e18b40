package services

import (
	"testing"

	"intent_search/models"
)

func TestClassifyTheme(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		query     string
		wantTheme string
	}{
		{"i want to go hiking this weekend", "hiking"},
		{"need a tent for camping", "camping"},
		{"looking for a new phone", "tech"},
		{"something with no matching words", ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := c.Classify(tt.query)
			if got.Theme != tt.wantTheme {
				t.Errorf("Classify(%q).Theme = %q, want %q", tt.query, got.Theme, tt.wantTheme)
			}
		})
	}
}

func TestClassifyIssuesAndUrgency(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name        string
		query       string
		wantIssue   string
		wantUrgency string
	}{
		{
			name:        "电池问题属于critical，紧急度high",
			query:       "my phone battery is draining fast",
			wantIssue:   "battery",
			wantUrgency: models.UrgencyHigh,
		},
		{
			name:        "噪音问题属于high，紧急度medium",
			query:       "ac making loud rattling noise",
			wantIssue:   "noise",
			wantUrgency: models.UrgencyMedium,
		},
		{
			name:        "滤网问题属于low，紧急度low",
			query:       "bad smell from the filter",
			wantIssue:   "filter",
			wantUrgency: models.UrgencyLow,
		},
		{
			name:        "未命中任何问题时保持medium默认值",
			query:       "just browsing around",
			wantIssue:   "",
			wantUrgency: models.UrgencyMedium,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.query)
			if tt.wantIssue == "" {
				if len(got.DetectedIssues) != 0 {
					t.Errorf("DetectedIssues = %v, want empty", got.DetectedIssues)
				}
			} else if !containsString(got.DetectedIssues, tt.wantIssue) {
				t.Errorf("DetectedIssues = %v, want to contain %q", got.DetectedIssues, tt.wantIssue)
			}
			if got.Urgency != tt.wantUrgency {
				t.Errorf("Urgency = %q, want %q", got.Urgency, tt.wantUrgency)
			}
		})
	}
}

func TestClassifyCriticalDominatesUrgency(t *testing.T) {
	c := NewClassifier(nil)

	// 同时命中critical和high类别时取最高档
	got := c.Classify("battery dies and the fan makes loud noise")
	if !containsString(got.DetectedIssues, "battery") || !containsString(got.DetectedIssues, "noise") {
		t.Fatalf("DetectedIssues = %v", got.DetectedIssues)
	}
	if got.Urgency != models.UrgencyHigh {
		t.Errorf("Urgency = %q, want high", got.Urgency)
	}
}

func TestClassifyBrand(t *testing.T) {
	c := NewClassifier(nil)

	if got := c.Classify("my samsung fridge stopped cooling"); got.BrandMentioned != "samsung" {
		t.Errorf("BrandMentioned = %q, want samsung", got.BrandMentioned)
	}
	if got := c.Classify("generic appliance problem"); got.BrandMentioned != "" {
		t.Errorf("BrandMentioned = %q, want empty", got.BrandMentioned)
	}
}

func TestClassifyBrandWholeWordOnly(t *testing.T) {
	c := NewClassifier(nil)

	// 短品牌名不能在别的单词内部误命中
	if got := c.Classify("recommend a sorting algorithm book"); got.BrandMentioned != "" {
		t.Errorf("BrandMentioned = %q, want empty for embedded lg", got.BrandMentioned)
	}
	if got := c.Classify("my lg tv screen flickers"); got.BrandMentioned != "lg" {
		t.Errorf("BrandMentioned = %q, want lg", got.BrandMentioned)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	c := NewClassifier(nil)

	got := c.Classify("   ")
	if got.Theme != "" || len(got.DetectedIssues) != 0 || got.Urgency != models.UrgencyMedium {
		t.Errorf("空输入的分类结果异常: %+v", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier(nil)

	query := "samsung ac rattling noise and water leaking"
	first := c.Classify(query)
	for i := 0; i < 5; i++ {
		got := c.Classify(query)
		if got.Theme != first.Theme || got.Urgency != first.Urgency ||
			len(got.DetectedIssues) != len(first.DetectedIssues) {
			t.Fatalf("同一输入的分类结果不稳定: %+v vs %+v", got, first)
		}
	}
}

func containsString(slice []string, target string) bool {
	for _, s := range slice {
		if s == target {
			return true
		}
	}
	return false
}
