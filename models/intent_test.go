package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestIntentDependenciesPreservesOrder(t *testing.T) {
	// 键名刻意用非字母序，验证声明顺序不被打乱
	raw := `{"zeta": [], "alpha": ["zeta"], "mid": []}`

	var deps IntentDependencies
	if err := json.Unmarshal([]byte(raw), &deps); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := []string{"zeta", "alpha", "mid"}
	if got := deps.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}
	if got := deps.Requires("alpha"); !reflect.DeepEqual(got, []string{"zeta"}) {
		t.Errorf("Requires(alpha) = %v", got)
	}
	if deps.Requires("ghost") != nil {
		t.Error("未声明物品的前置应为nil")
	}
	if !deps.Has("mid") || deps.Has("ghost") {
		t.Error("Has判断错误")
	}
}

func TestIntentDependenciesRoundTrip(t *testing.T) {
	raw := `{"tea_powder":[],"milk":["tea_powder"]}`

	var deps IntentDependencies
	if err := json.Unmarshal([]byte(raw), &deps); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	out, err := json.Marshal(deps)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != raw {
		t.Errorf("round trip = %s, want %s", out, raw)
	}
}

func TestIntentDependenciesRejectsNonObject(t *testing.T) {
	var deps IntentDependencies
	if err := json.Unmarshal([]byte(`["not", "an", "object"]`), &deps); err == nil {
		t.Error("非对象输入应报错")
	}
}

func TestDependencySetPreservesOrder(t *testing.T) {
	raw := `{
		"make_tea": {"tea_powder": [], "milk": ["tea_powder"]},
		"go_hiking": {"hiking_boots": []},
		"camping": {"tent": []}
	}`

	var set DependencySet
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := []string{"make_tea", "go_hiking", "camping"}
	if got := set.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	deps, ok := set.Get("make_tea")
	if !ok {
		t.Fatal("Get(make_tea) 未找到")
	}
	if got := deps.Items(); !reflect.DeepEqual(got, []string{"tea_powder", "milk"}) {
		t.Errorf("make_tea Items() = %v", got)
	}
	if _, ok := set.Get("unknown"); ok {
		t.Error("未知意图不应命中")
	}
}
