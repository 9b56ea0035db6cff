package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// 読み取り後に行が書き換わっていた（versionが一致しない）
	ErrConflict = errors.New("concurrent modification")

	// 参照先の行が存在しない
	ErrForeignKey = errors.New("referenced row does not exist")

	// 1行以上更新されるはずの保存が0行だった
	ErrNoRowsAffected = errors.New("no rows affected")
)
