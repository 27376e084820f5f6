package pagesservice

// RootPage модель корневой страницы приложения из PagesService
type RootPage struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ErrorResponse модель ошибки от PagesService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
