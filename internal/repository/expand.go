package repository

// ExpandDepth は取得時に何階層まで関連をeager-loadするか。
// クエリ発行前に決まっていないといけない（後読みのjoinではない）。
type ExpandDepth int

const (
	ExpandNone ExpandDepth = iota
	ExpandChildren
	ExpandGrandchildren
)

// ResolveExpand は2つのフラグから展開の深さを決める。
// 孫だけ要求されても親コレクションなしでは返せないので0に潰す。
func ResolveExpand(withChildren bool, withGrandchildren bool) ExpandDepth {
	if !withChildren {
		return ExpandNone
	}
	if withGrandchildren {
		return ExpandGrandchildren
	}
	return ExpandChildren
}
