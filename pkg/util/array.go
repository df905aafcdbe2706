package util

// GetIndexSlice gets the index of a slice element
// GetIndexSlice 获取切片元素的索引
// arr: slice to search // 待查找的切片
// val: value to search for // 要查找的值
// return: index of the element, or -1 if not found // 返回值: 元素的索引，如果不存在返回-1
func GetIndexSlice(arr []string, val string) int {
	for i, v := range arr {
		if v == val {
			return i
		}
	}
	return -1
}

// InSlice determines whether an element is in a slice (generic version)
// InSlice 判断元素是否在切片中（泛型版本）
func InSlice[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// Inarray 判断元素是否在切片中
func Inarray(arr []string, val string) bool {
	return GetIndexSlice(arr, val) >= 0
}
