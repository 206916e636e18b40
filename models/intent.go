package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DependencyEntry 意图内单个物品及其前置物品
type DependencyEntry struct {
	Item     string   `json:"item"`
	Requires []string `json:"requires"`
}

// IntentDependencies 单个意图的物品依赖表
// 条目保持数据文件中的声明顺序，拓扑排序的稳定平局规则依赖这个顺序，
// 普通map会丢失它
type IntentDependencies struct {
	Entries []DependencyEntry
}

// Items 按声明顺序返回全部物品键
func (d *IntentDependencies) Items() []string {
	keys := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		keys = append(keys, e.Item)
	}
	return keys
}

// Requires 返回指定物品的直接前置列表，物品不存在时返回nil
func (d *IntentDependencies) Requires(item string) []string {
	for _, e := range d.Entries {
		if e.Item == item {
			return e.Requires
		}
	}
	return nil
}

// Has 判断物品是否在意图的物品集内
func (d *IntentDependencies) Has(item string) bool {
	for _, e := range d.Entries {
		if e.Item == item {
			return true
		}
	}
	return false
}

// UnmarshalJSON 按token流解析 {"item": ["dep", ...], ...}，保留键的声明顺序
func (d *IntentDependencies) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("依赖表必须是JSON对象")
	}

	d.Entries = d.Entries[:0]
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("依赖表的键必须是字符串")
		}

		var requires []string
		if err := dec.Decode(&requires); err != nil {
			return fmt.Errorf("解析物品 %q 的前置列表失败: %v", key, err)
		}
		d.Entries = append(d.Entries, DependencyEntry{Item: key, Requires: requires})
	}

	// 消费收尾的 '}'
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON 按声明顺序输出JSON对象
func (d IntentDependencies) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, e := range d.Entries {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := json.Marshal(e.Item)
		if err != nil {
			return nil, err
		}
		reqs := e.Requires
		if reqs == nil {
			reqs = []string{}
		}
		v, err := json.Marshal(reqs)
		if err != nil {
			return nil, err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}

// DependencySet 全部意图的依赖表集合
// 外层同样保留声明顺序，便于稳定地列出可用意图
type DependencySet struct {
	Intents []NamedDependencies
}

// NamedDependencies 带意图名的依赖表
type NamedDependencies struct {
	Intent string
	Deps   IntentDependencies
}

// Get 按意图名查找依赖表
func (s *DependencySet) Get(intent string) (*IntentDependencies, bool) {
	for i := range s.Intents {
		if s.Intents[i].Intent == intent {
			return &s.Intents[i].Deps, true
		}
	}
	return nil, false
}

// Names 按声明顺序返回全部意图名
func (s *DependencySet) Names() []string {
	names := make([]string, 0, len(s.Intents))
	for _, n := range s.Intents {
		names = append(names, n.Intent)
	}
	return names
}

// UnmarshalJSON 解析 {"intent": {"item": [...], ...}, ...}
func (s *DependencySet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("依赖文件必须是JSON对象")
	}

	s.Intents = s.Intents[:0]
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("意图名必须是字符串")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var deps IntentDependencies
		if err := deps.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("解析意图 %q 失败: %v", key, err)
		}
		s.Intents = append(s.Intents, NamedDependencies{Intent: key, Deps: deps})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
