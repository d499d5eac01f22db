package services

import "errors"

var (
	// ErrNotFound 删除或引用的记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrAlreadyPromoted 同一条心情记录不允许重复收藏
	ErrAlreadyPromoted = errors.New("该记录已收藏")
	// ErrQuotaExceeded 当日AI调用额度已用尽
	ErrQuotaExceeded = errors.New("今日额度已用尽")
)
