package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/eshop-next/internal/constants"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// 仅当持有者令牌匹配时才删除锁
var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// CheckoutLock 单个用户的下单互斥锁
type CheckoutLock struct {
	key   string
	token string
}

func checkoutLockKey(userID uint) string {
	return fmt.Sprintf(constants.CacheKeyCheckoutLock, userID)
}

// AcquireCheckoutLock 尝试获取用户下单锁。
// Redis 未启用时返回空锁与 true；锁已被占用时返回 nil 与 false。
func AcquireCheckoutLock(ctx context.Context, userID uint, ttl time.Duration) (*CheckoutLock, bool, error) {
	if !Enabled() {
		return &CheckoutLock{}, true, nil
	}
	lock := &CheckoutLock{
		key:   buildKey(checkoutLockKey(userID)),
		token: uuid.NewString(),
	}
	ok, err := redisClient.SetNX(ctx, lock.key, lock.token, ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return lock, true, nil
}

// Release 释放锁，锁已过期或被他人持有时不做任何事
func (l *CheckoutLock) Release(ctx context.Context) error {
	if l == nil || l.key == "" || !Enabled() {
		return nil
	}
	return releaseLockScript.Run(ctx, redisClient, []string{l.key}, l.token).Err()
}
