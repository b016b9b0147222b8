// Package ws, WebSocket bağlantı yönetimi ve canlı feed event dağıtımını sağlar.
//
// Mimari:
// - Hub: Tüm bağlantıları yöneten merkezi yapı (Observer pattern)
// - Client: Her WebSocket bağlantısını temsil eder
// - Event: Client-server arası iletilen mesaj formatı
//
// Event akışı:
// 1. Kullanıcı bir post'u like'lar → HTTP POST → Service → DB kayıt
// 2. Service, Hub'ın BroadcastToAll metodunu çağırır
// 3. Hub, event'i tüm bağlı client'lara iletir
// 4. Her client'ın WritePump'ı event'i WebSocket'e yazar
// 5. Frontend event'i alır ve feed'deki sayaçları günceller
package ws

// Event, WebSocket üzerinden iletilen bir mesajı temsil eder.
//
// Op (operation): Event türü — "post_reaction", "heartbeat" vb.
// Data: Event'e özgü payload — post objesi, reaction bilgisi vb.
// Seq (sequence number): Her outbound event'e verilen artan sayı.
//   Frontend eksik event tespit etmek için seq'i takip eder.
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
	Seq  int64  `json:"seq,omitempty"`
}

// Client → Server operasyonları
const (
	OpHeartbeat = "heartbeat" // Client her 30sn'de gönderir — "hâlâ bağlıyım" sinyali
)

// Server → Client operasyonları
const (
	OpReady         = "ready"          // Bağlantı kurulduğunda ilk gönderilen
	OpHeartbeatAck  = "heartbeat_ack"  // Heartbeat'e yanıt — "seni duydum"
	OpPostCreate    = "post_create"    // Yeni post paylaşıldı
	OpPostReaction  = "post_reaction"  // Bir post'un like/dislike sayaçları değişti
	OpCommentCreate = "comment_create" // Bir post'a yorum yapıldı
)

// ReadyData, bağlantı kurulduğunda client'a gönderilen ilk event'in payload'ı.
type ReadyData struct {
	OnlineUserIDs []string `json:"online_user_ids"`
}

// PostReactionData, post_reaction event'inin payload'ı.
// Tüm client'lara broadcast edilir — feed'deki sayaçlar anında güncellenir.
type PostReactionData struct {
	PostID   string `json:"post_id"`
	UserID   string `json:"user_id"`
	Reaction string `json:"reaction"`
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
}
