// Package sharename computes default names for new public share links
// Package sharename 计算新公开分享链接的默认名称
package sharename

import (
	"regexp"
	"sort"
	"strconv"

	"go.uber.org/zap"
)

// Allocator proposes a default name for a new public link by scanning
// the names of the links that already exist for the same file
// Allocator 通过扫描同一文件已有链接的名称，为新公开链接提议默认名称
type Allocator struct {
	logger *zap.Logger
}

// NewAllocator creates an Allocator instance
// NewAllocator 创建 Allocator 实例
func NewAllocator(logger *zap.Logger) *Allocator {
	return &Allocator{logger: logger}
}

// Allocate returns the name to offer for a new public link.
// If base itself is unused, base is returned unchanged. Otherwise a
// numbered variant "base (N)" is chosen, starting at 2 and filling the
// first gap in the numbers already taken. Entries in existing that are
// empty or unrelated to base are ignored.
// A numbered suffix that cannot be parsed as an int makes the whole call
// return "" so the caller can fall back to offering no default name.
// Allocate 返回新公开链接的默认名称。
// 如果 base 本身未被占用则原样返回，否则选取编号变体 "base (N)"：
// 从 2 开始，填补已占用编号中的第一个空缺。
// existing 中为空或与 base 无关的条目会被忽略。
// 已匹配的编号后缀无法解析为 int 时整个调用返回 ""，
// 调用方应回退为不预填默认名称。
func (a *Allocator) Allocate(base string, existing []string) string {
	// 编号变体必须整串精确匹配，base 部分按字面处理
	suffixed := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + ` \((\d+)\)$`)

	var usedNumbers []int
	isDefaultNameSet := false

	for _, name := range existing {
		if name == base {
			isDefaultNameSet = true
			continue
		}
		matches := suffixed.FindStringSubmatch(name)
		if matches == nil {
			continue
		}
		number, err := strconv.Atoi(matches[1])
		if err != nil {
			// 后缀超出 int 可表示范围，放弃本次计算
			if a.logger != nil {
				a.logger.Error("share name suffix out of range",
					zap.String("name", name),
					zap.Error(err))
			}
			return ""
		}
		usedNumbers = append(usedNumbers, number)
	}

	if !isDefaultNameSet {
		return base
	}

	return base + " (" + strconv.Itoa(nextNumber(usedNumbers)) + ")"
}

// nextNumber picks the lowest candidate suffix number.
// 2 is always preferred unless it is the smallest number already in use;
// in that case the first gap wins, and a contiguous run yields max+1.
// Note that 1 is never chosen even when free.
// nextNumber 选取最小的候选编号后缀。
// 除非 2 已是占用编号中的最小值，否则总是优先返回 2；
// 此时第一个空缺胜出，连续占用段则返回最大值加一。
// 注意即使 1 空闲也永远不会被选中。
func nextNumber(used []int) int {
	sort.Ints(used)

	if len(used) == 0 || used[0] != 2 {
		return 2
	}

	for i := 0; i < len(used)-1; i++ {
		if used[i+1]-used[i] > 1 {
			return used[i] + 1
		}
	}

	return used[len(used)-1] + 1
}
