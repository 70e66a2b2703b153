package usecase

import "errors"

// ErrSessionNotFound はセッションIDに対応する状態が存在しない場合に返されます。
var ErrSessionNotFound = errors.New("session not found")
