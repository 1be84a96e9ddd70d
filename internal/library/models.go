package library

// CategoriesResponse — ответ со списком категорий
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// TracksResponse — ответ со списком треков
type TracksResponse struct {
	Tracks []Track `json:"tracks"`
}

// ErrorResponse — стандартная обёртка ошибок API
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
