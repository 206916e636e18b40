package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// CalculateMD5 计算字符串的MD5哈希值，返回32位小写十六进制字符串
func CalculateMD5(input string) string {
	hasher := md5.New()
	hasher.Write([]byte(input))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CacheKey 由归一化查询和结果上限派生稳定的缓存键
func CacheKey(normalizedQuery string, maxResults int) string {
	return CalculateMD5(fmt.Sprintf("%s:%d", normalizedQuery, maxResults))
}
