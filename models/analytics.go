package models

// DayBucket, analytics çıktısındaki tek bir gün satırı:
// o takvim günündeki like ve dislike sayıları.
//
// Date formatı "2006-01-02" (ISO takvim günü). Reaction'ı olmayan günler
// çıktıda HİÇ yer almaz — sıfır dolgulu boşluk üretilmez. Satırlar artan
// tarihe göre sıralıdır.
type DayBucket struct {
	Date     string `json:"date"`
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
}
