package get_available_days

import "time"

// Request модель запроса доступных дней в периоде [From, To] включительно
type Request struct {
	From time.Time
	To   time.Time
}

// Response модель ответа со списком дней, на которые еще можно записаться
type Response struct {
	Days []time.Time
}
