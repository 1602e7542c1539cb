package ownerdata

import "errors"

var (
	// ErrOwnerNotFound возвращается, когда источник не знает владельца
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrSourceFailed возвращается, когда источник данных недоступен или вернул ошибку
	ErrSourceFailed = errors.New("ownerdata: source failed")
)
