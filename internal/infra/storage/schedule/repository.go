package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"psyscheduler/internal/domain"
	"psyscheduler/pkg/dbmetrics"
	"psyscheduler/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий календарной конфигурации: недельный шаблон рабочих
// часов и разовые нерабочие дни
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListRules возвращает весь недельный шаблон рабочих часов
func (r *Repository) ListRules(ctx context.Context) ([]*domain.WorkingDayRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectRules().
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.WorkingDayRule, 0)
	for rows.Next() {
		var rule domain.WorkingDayRule
		if err := rows.Scan(&rule.ID, &rule.DayOfWeek, &rule.StartHour, &rule.EndHour, &rule.IsWorking); err != nil {
			return nil, fmt.Errorf("%w: ListRules - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetRuleByWeekday возвращает правило для дня недели (0 = понедельник .. 6 = воскресенье)
func (r *Repository) GetRuleByWeekday(ctx context.Context, dayOfWeek int) (*domain.WorkingDayRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectRules().
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRuleByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var rule domain.WorkingDayRule
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&rule.ID, &rule.DayOfWeek, &rule.StartHour, &rule.EndHour, &rule.IsWorking)

	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRuleByWeekday - scan rule: %v", ErrScanRow, err)
	}

	return &rule, nil
}

// UpdateRule обновляет правило рабочего дня
func (r *Repository) UpdateRule(ctx context.Context, id int64, rule *domain.WorkingDayRule) (*domain.WorkingDayRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("working_schedule").
		Set("day_of_week", rule.DayOfWeek).
		Set("start_hour", rule.StartHour).
		Set("end_hour", rule.EndHour).
		Set("is_working", rule.IsWorking).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, day_of_week, start_hour, end_hour, is_working").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRule - build update query: %v", ErrBuildQuery, err)
	}

	var updated domain.WorkingDayRule
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&updated.ID, &updated.DayOfWeek, &updated.StartHour, &updated.EndHour, &updated.IsWorking)

	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRule - scan rule: %v", ErrScanRow, err)
	}

	return &updated, nil
}

// CreateNonWorkingDay создает нерабочий день
// Дата уникальна: повторная попытка на ту же дату вернет ErrNonWorkingDayExists
func (r *Repository) CreateNonWorkingDay(ctx context.Context, day *domain.NonWorkingDay) (*domain.NonWorkingDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("non_working_days").
		Columns("date", "reason").
		Values(day.Date, day.Reason).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateNonWorkingDay - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&day.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrNonWorkingDayExists
		}
		return nil, fmt.Errorf("%w: CreateNonWorkingDay - execute insert: %v", ErrExecQuery, err)
	}

	return day, nil
}

// ListNonWorkingDays возвращает нерабочие дни, опционально ограниченные периодом [from, to]
func (r *Repository) ListNonWorkingDays(ctx context.Context, from, to *time.Time) ([]*domain.NonWorkingDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "date", "reason").
		From("non_working_days").
		OrderBy("date ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListNonWorkingDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListNonWorkingDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.NonWorkingDay, 0)
	for rows.Next() {
		var day domain.NonWorkingDay
		if err := rows.Scan(&day.ID, &day.Date, &day.Reason); err != nil {
			return nil, fmt.Errorf("%w: ListNonWorkingDays - scan row: %v", ErrScanRow, err)
		}
		days = append(days, &day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListNonWorkingDays - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// GetNonWorkingDayByDate ищет нерабочий день по календарной дате
func (r *Repository) GetNonWorkingDayByDate(ctx context.Context, date time.Time) (*domain.NonWorkingDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "reason").
		From("non_working_days").
		Where(squirrel.Eq{"date": domain.StartOfDay(date)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetNonWorkingDayByDate - build select query: %v", ErrBuildQuery, err)
	}

	var day domain.NonWorkingDay
	err = executor.QueryRowContext(ctx, query, args...).Scan(&day.ID, &day.Date, &day.Reason)

	if err == sql.ErrNoRows {
		return nil, ErrNonWorkingDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetNonWorkingDayByDate - scan row: %v", ErrScanRow, err)
	}

	return &day, nil
}

// DeleteNonWorkingDay удаляет нерабочий день
func (r *Repository) DeleteNonWorkingDay(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("non_working_days").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteNonWorkingDay - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteNonWorkingDay - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteNonWorkingDay - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNonWorkingDayNotFound
	}

	return nil
}

func selectRules() squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "day_of_week", "start_hour", "end_hour", "is_working").
		From("working_schedule")
}
