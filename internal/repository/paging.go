package repository

// PageSpec はリスト系クエリのページング指定。
// Size 0 は「無制限」の番兵値で、offset/limitを一切適用しない。
type PageSpec struct {
	Size int
	Num  int
}

// Unbounded はページングを適用しないかどうか。
func (p PageSpec) Unbounded() bool {
	return p.Size == 0
}

// Offset は読み飛ばす行数。
func (p PageSpec) Offset() int {
	return (p.Num - 1) * p.Size
}
