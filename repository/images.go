package repository

import (
	"fmt"
	"strconv"
	"strings"

	"intent_search/utils"
)

// imageTags 按商品名关键词推断图片主题，声明顺序即优先级
var imageTags = []struct {
	words []string
	tag   string
}{
	{[]string{"iphone", "samsung", "phone", "mobile", "smartphone"}, "smartphone"},
	{[]string{"laptop", "macbook", "computer", "pc"}, "laptop"},
	{[]string{"nike", "adidas", "shoes", "sneakers", "boots", "footwear"}, "sneakers"},
	{[]string{"shirt", "dress", "clothing", "fashion", "apparel"}, "fashion"},
	{[]string{"watch", "time", "clock"}, "watch"},
	{[]string{"headphone", "earphone", "audio", "speaker"}, "headphones"},
	{[]string{"book", "novel", "guide", "magazine"}, "books"},
	{[]string{"bag", "backpack", "purse", "handbag"}, "bag"},
	{[]string{"camera", "photo", "lens"}, "camera"},
	{[]string{"kitchen", "cooking", "pan", "pot", "utensil"}, "kitchen"},
	{[]string{"furniture", "chair", "table", "sofa"}, "furniture"},
	{[]string{"beauty", "cosmetic", "makeup", "skincare"}, "cosmetics"},
	{[]string{"toy", "game", "play"}, "toys"},
	{[]string{"car", "automotive", "vehicle"}, "car"},
	{[]string{"jewelry", "ring", "necklace", "earring"}, "jewelry"},
	{[]string{"sport", "fitness", "gym", "exercise"}, "fitness"},
}

// ProductImageURL 为没有图片地址的商品生成按品类归类的图片地址
// 同名同品类的商品总是得到同一个地址
func ProductImageURL(name, category string) string {
	seed := imageSeed(name + category)
	lowered := strings.ToLower(name)
	for _, entry := range imageTags {
		for _, w := range entry.words {
			if strings.Contains(lowered, w) {
				return fmt.Sprintf("https://source.unsplash.com/400x400/?%s&sig=%d", entry.tag, seed)
			}
		}
	}
	return fmt.Sprintf("https://source.unsplash.com/400x400/?product&sig=%d", seed)
}

// imageSeed 取MD5前两位十六进制做稳定种子，范围[0,100)
func imageSeed(input string) int {
	n, err := strconv.ParseUint(utils.CalculateMD5(input)[:2], 16, 16)
	if err != nil {
		return 0
	}
	return int(n) % 100
}
