// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Error'lar sabit değerler olarak tanımlanır, karşılaştırma string yerine
// errors.Is ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// Service katmanı bu error'ları döner (gerekirse fmt.Errorf("%w: detay", ...)
// ile sararak), handler katmanı HTTP status code'larına map'ler.
package pkg

import "errors"

// Domain-level error'lar.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)

// Reaction state machine'e özgü error'lar.
// Aynı reaction'ın tekrar istenmesi sessizce yutulmaz — caller'a bildirilir.
var (
	ErrAlreadyLiked    = errors.New("user has already liked this post")
	ErrAlreadyDisliked = errors.New("user has already disliked this post")
)

// ErrInvalidDateRange, analytics sorgularında date_from > date_to durumu.
// Aggregation çalışmadan ÖNCE döner — store'a hiç gidilmez.
var ErrInvalidDateRange = errors.New("date_from must be before date_to")
