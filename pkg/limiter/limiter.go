// Package limiter provides token-bucket rate limiting keyed by request path
// Package limiter 提供按请求路径划分的令牌桶限流
package limiter

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// LimiterIface 限流器接口
type LimiterIface interface {
	Key(c *gin.Context) string
	GetBucket(key string) (*ratelimit.Bucket, bool)
	AddBuckets(rules ...BucketRule) LimiterIface
}

// BucketRule 令牌桶规则
type BucketRule struct {
	// Key 匹配的路径前缀
	Key string
	// FillInterval 放入令牌的间隔
	FillInterval time.Duration
	// Capacity 桶容量
	Capacity int64
	// Quantum 每次放入的令牌数
	Quantum int64
}

// Limiter 限流器基础结构
type Limiter struct {
	limiterBuckets map[string]*ratelimit.Bucket
}

// MethodLimiter 按请求路径限流
type MethodLimiter struct {
	*Limiter
}

// NewMethodLimiter 创建 MethodLimiter 实例
func NewMethodLimiter() LimiterIface {
	return MethodLimiter{
		Limiter: &Limiter{limiterBuckets: make(map[string]*ratelimit.Bucket)},
	}
}

// Key returns the bucket key for a request, stripping the query string
// Key 返回请求对应的桶键，去掉查询串
func (l MethodLimiter) Key(c *gin.Context) string {
	uri := c.Request.RequestURI
	index := strings.Index(uri, "?")
	if index == -1 {
		return uri
	}
	return uri[:index]
}

// GetBucket looks up the first bucket whose key is a prefix of the given key
// GetBucket 查找键为给定键前缀的第一个桶
func (l MethodLimiter) GetBucket(key string) (*ratelimit.Bucket, bool) {
	for ruleKey, bucket := range l.limiterBuckets {
		if strings.Contains(key, ruleKey) {
			return bucket, true
		}
	}
	return nil, false
}

// AddBuckets 添加令牌桶规则
func (l MethodLimiter) AddBuckets(rules ...BucketRule) LimiterIface {
	for _, rule := range rules {
		if _, ok := l.limiterBuckets[rule.Key]; !ok {
			l.limiterBuckets[rule.Key] = ratelimit.NewBucketWithQuantum(rule.FillInterval, rule.Capacity, rule.Quantum)
		}
	}
	return l
}
