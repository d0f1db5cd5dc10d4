package get_day_schedule

import (
	"time"

	"psyscheduler/internal/domain"
)

// Request модель запроса следующего свободного слота
type Request struct {
	Date time.Time // Целевой день (время внутри дня игнорируется)
}

// Response модель ответа с вычисленным началом следующего слота
type Response struct {
	StartTime time.Time              // Момент, с которого началась бы следующая запись
	Rule      *domain.WorkingDayRule // Действующее правило рабочего дня
}
