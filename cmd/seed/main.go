// Команда seed наполняет базу стартовыми данными: недельный шаблон рабочих
// часов, базовый каталог услуг и демо-клиенты. Повторный запуск безопасен.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type dayRule struct {
	dayOfWeek int // 0 = понедельник .. 6 = воскресенье
	startHour int
	endHour   int
	isWorking bool
}

type serviceFixture struct {
	name            string
	description     string
	durationMinutes int
	price           float64
}

type clientFixture struct {
	name       string
	telegramID int64
	tgNickname string
}

var weekTemplate = []dayRule{
	{0, 9, 18, true},
	{1, 9, 18, true},
	{2, 9, 18, true},
	{3, 9, 18, true},
	{4, 9, 18, true},
	{5, 9, 16, true},
	{6, 9, 14, false},
}

var serviceFixtures = []serviceFixture{
	{"Индивидуальная консультация", "Очная или онлайн сессия один на один", 60, 3500},
	{"Парная консультация", "Сессия для пары", 90, 5000},
	{"Первичная встреча", "Знакомство и определение запроса", 45, 2000},
}

var clientFixtures = []clientFixture{
	{"Анна Демо", 100001, "anna_demo"},
	{"Пётр Демо", 100002, "petr_demo"},
}

func main() {
	// .env опционален: переменные окружения имеют приоритет
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			envOr("DB_HOST", "localhost"),
			envOr("DB_PORT", "5432"),
			envOr("DB_USER", "psyscheduler"),
			envOr("DB_PASSWORD", "psyscheduler"),
			envOr("DB_NAME", "psyscheduler"),
		)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Printf("Failed to ping database: %v\n", err)
		os.Exit(1)
	}

	if err := seedWorkingSchedule(db); err != nil {
		fmt.Printf("Failed to seed working schedule: %v\n", err)
		os.Exit(1)
	}
	if err := seedServices(db); err != nil {
		fmt.Printf("Failed to seed services: %v\n", err)
		os.Exit(1)
	}
	if err := seedClients(db); err != nil {
		fmt.Printf("Failed to seed clients: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Seed completed")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// seedWorkingSchedule создает или обновляет правило для каждого дня недели
func seedWorkingSchedule(db *sql.DB) error {
	for _, rule := range weekTemplate {
		_, err := db.Exec(`
			INSERT INTO working_schedule (day_of_week, start_hour, end_hour, is_working)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (day_of_week)
			DO UPDATE SET start_hour = EXCLUDED.start_hour,
			              end_hour   = EXCLUDED.end_hour,
			              is_working = EXCLUDED.is_working`,
			rule.dayOfWeek, rule.startHour, rule.endHour, rule.isWorking)
		if err != nil {
			return fmt.Errorf("day %d: %w", rule.dayOfWeek, err)
		}
	}
	fmt.Printf("Working schedule: %d rules\n", len(weekTemplate))
	return nil
}

// seedServices вставляет каталог услуг, если он пуст
func seedServices(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM services").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Services: already seeded, skipping")
		return nil
	}

	for _, svc := range serviceFixtures {
		_, err := db.Exec(`
			INSERT INTO services (name, description, duration_minutes, price)
			VALUES ($1, $2, $3, $4)`,
			svc.name, svc.description, svc.durationMinutes, svc.price)
		if err != nil {
			return fmt.Errorf("service %q: %w", svc.name, err)
		}
	}
	fmt.Printf("Services: %d created\n", len(serviceFixtures))
	return nil
}

// seedClients вставляет демо-клиентов, если таблица пуста
func seedClients(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM clients").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Clients: already seeded, skipping")
		return nil
	}

	for _, c := range clientFixtures {
		_, err := db.Exec(`
			INSERT INTO clients (name, telegram_id, tg_nickname)
			VALUES ($1, $2, $3)`,
			c.name, c.telegramID, c.tgNickname)
		if err != nil {
			return fmt.Errorf("client %q: %w", c.name, err)
		}
	}
	fmt.Printf("Clients: %d created\n", len(clientFixtures))
	return nil
}
