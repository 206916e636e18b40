package utils

import (
	"strings"
)

// DeduplicateSlice 去重字符串切片
func DeduplicateSlice(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" && !seen[val] {
			result = append(result, val)
			seen[val] = true
		}
	}

	return result
}

// Min 返回两个整数中的较小值
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IndexOf 返回元素在切片中的索引，如果不存在则返回-1
func IndexOf(slice []string, element string) int {
	for i, e := range slice {
		if e == element {
			return i
		}
	}
	return -1
}

// NormalizeQuery 查询文本归一化：小写、去首尾空白、压缩连续空白
func NormalizeQuery(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(text))), " ")
}

// Tokenize 把文本切分成小写的字母数字token
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
}

// TokenSet 把文本切分成token集合
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range Tokenize(text) {
		set[t] = true
	}
	return set
}

// ContainsToken 判断token是否出现在切片中
func ContainsToken(tokens []string, target string) bool {
	return IndexOf(tokens, target) >= 0
}

// FilterSpecialSymbols 过滤文本中的特殊符号，只保留常见标点符号和正常内容
func FilterSpecialSymbols(text string) string {
	// 定义要保留的常见标点符号
	commonPunctuation := map[rune]bool{
		'，': true, '。': true, '！': true, '？': true, '：': true, '；': true,
		'、': true, '（': true, '）': true,
		'【': true, '】': true, '《': true, '》': true, '—': true,
		',': true, '.': true, '!': true, '?': true, ':': true, ';': true,
		'"': true, '\'': true, '(': true, ')': true, '[': true, ']': true,
		'{': true, '}': true, '<': true, '>': true, '-': true, '_': true,
		'+': true, '=': true, '/': true, '\\': true, '|': true, ' ': true,
		'\n': true, '\r': true, '\t': true,
	}

	var result strings.Builder
	for _, r := range []rune(text) {
		// 保留中文字符、英文字母、数字和常见标点符号
		if (r >= '一' && r <= '龥') || // 中文字符
			(r >= 'A' && r <= 'Z') || // 大写英文字母
			(r >= 'a' && r <= 'z') || // 小写英文字母
			(r >= '0' && r <= '9') || // 数字
			commonPunctuation[r] { // 常见标点符号
			result.WriteRune(r)
		}
	}

	return result.String()
}
