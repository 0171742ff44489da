package utils

import (
	"testing"
	"time"
)

func TestTTLCacheSetGet(t *testing.T) {
	c := NewTTLCache[int, string](10, time.Minute)

	c.Set(1, "ivan")
	if v, ok := c.Get(1); !ok || v != "ivan" {
		t.Fatalf("期望命中 ivan，实际 %q %v", v, ok)
	}
	if _, ok := c.Get(2); ok {
		t.Fatal("不存在的键不应命中")
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	c := NewTTLCache[int, string](10, 10*time.Millisecond)

	c.Set(1, "ivan")
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get(1); ok {
		t.Fatal("过期条目不应命中")
	}
	if c.Len() != 0 {
		t.Fatalf("过期条目应被移除，实际长度 %d", c.Len())
	}
}

func TestTTLCacheEviction(t *testing.T) {
	c := NewTTLCache[int, int](2, time.Minute)

	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(3, 3)
	if c.Len() != 2 {
		t.Fatalf("超出容量应淘汰最旧条目，实际长度 %d", c.Len())
	}
	if _, ok := c.Get(1); ok {
		t.Fatal("最旧条目应被淘汰")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("refresh-token")
	b := HashToken("refresh-token")
	if a != b {
		t.Fatal("同一输入应得到同一哈希")
	}
	if a == HashToken("other-token") {
		t.Fatal("不同输入不应碰撞")
	}
	if len(a) != 64 {
		t.Fatalf("SHA-256 十六进制长度应为 64，实际 %d", len(a))
	}
}
