package api

// MaxPageLimit наибольший limit, который принимает GET /posts.
// Страница короче запрошенного limit означает конец коллекции,
// поэтому больший limit сервер отклоняет, а не урезает.
const MaxPageLimit = 100

// Post представляет запись в формате удаленного API
type Post struct {
	Title string `json:"title"` // заголовок записи
	Body  string `json:"body"`  // текст записи
	ID    int64  `json:"id"`    // ID записи, назначенный сервером или клиентом
}

// PostsPage представляет ответ GET /posts?limit=L&skip=S
type PostsPage struct {
	Posts []Post `json:"posts"` // записи страницы в порядке сервера
	Total int    `json:"total"` // общее количество записей на сервере
	Skip  int    `json:"skip"`  // смещение страницы
	Limit int    `json:"limit"` // запрошенный размер страницы
}

// DeletedPost представляет ответ DELETE /posts/{id}
type DeletedPost struct {
	ID        int64 `json:"id"`
	IsDeleted bool  `json:"isDeleted"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
