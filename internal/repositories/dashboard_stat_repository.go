package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/practicehub/backend/internal/models"
	"go.uber.org/zap"
)

type dashboardStatRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewDashboardStatRepository creates a new dashboard stat repository
func NewDashboardStatRepository(db *sql.DB, logger *zap.Logger) *dashboardStatRepository {
	return &dashboardStatRepository{
		db:     db,
		logger: logger,
	}
}

// queryer is satisfied by *sql.DB and *sql.Tx
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// GetByUserID retrieves all stats of a user ordered by topic, with their solved sets.
// Solved entries without a counter row are ignored.
func (r *dashboardStatRepository) GetByUserID(ctx context.Context, userID int) ([]models.DashboardStat, error) {
	query := `SELECT topic, attempted, correct FROM dashboard_stats WHERE user_id = ? ORDER BY topic`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.DashboardStat, 0)
	index := make(map[string]int)
	for rows.Next() {
		stat := models.DashboardStat{UserID: userID, Solved: []int{}}
		if err := rows.Scan(&stat.Topic, &stat.Attempted, &stat.Correct); err != nil {
			return nil, fmt.Errorf("failed to scan dashboard stat: %w", err)
		}
		index[stat.Topic] = len(stats)
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	solvedQuery := `SELECT topic, question_id FROM dashboard_stat_solved WHERE user_id = ? ORDER BY topic, question_id`

	solvedRows, err := r.db.QueryContext(ctx, solvedQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query solved questions: %w", err)
	}
	defer solvedRows.Close()

	for solvedRows.Next() {
		var topic string
		var questionID int
		if err := solvedRows.Scan(&topic, &questionID); err != nil {
			return nil, fmt.Errorf("failed to scan solved question: %w", err)
		}
		i, ok := index[topic]
		if !ok {
			continue
		}
		stats[i].Solved = append(stats[i].Solved, questionID)
	}
	if err := solvedRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return stats, nil
}

// readStat loads one stat with its solved set.
func readStat(ctx context.Context, q queryer, userID int, topic string) (*models.DashboardStat, error) {
	stat := &models.DashboardStat{UserID: userID, Topic: topic, Solved: []int{}}

	query := `SELECT attempted, correct FROM dashboard_stats WHERE user_id = ? AND topic = ?`
	if err := q.QueryRowContext(ctx, query, userID, topic).Scan(&stat.Attempted, &stat.Correct); err != nil {
		return nil, fmt.Errorf("failed to read dashboard stat: %w", err)
	}

	solvedQuery := `SELECT question_id FROM dashboard_stat_solved WHERE user_id = ? AND topic = ? ORDER BY question_id`
	rows, err := q.QueryContext(ctx, solvedQuery, userID, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to query solved questions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var questionID int
		if err := rows.Scan(&questionID); err != nil {
			return nil, fmt.Errorf("failed to scan solved question: %w", err)
		}
		stat.Solved = append(stat.Solved, questionID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return stat, nil
}

// maxDeadlockRetries bounds how often a deadlocked answer transaction is replayed
const maxDeadlockRetries = 3

// RecordAnswer atomically increments attempted (and correct when isCorrect) for (userID, topic),
// creating the stat if absent. A correct answer with questionID > 0 adds it to the solved set.
// Returns the stat as stored after the update.
func (r *dashboardStatRepository) RecordAnswer(ctx context.Context, userID int, topic string, questionID int, isCorrect bool) (*models.DashboardStat, error) {
	var (
		stat *models.DashboardStat
		err  error
	)
	for attempt := 1; attempt <= maxDeadlockRetries; attempt++ {
		stat, err = r.recordAnswer(ctx, userID, topic, questionID, isCorrect)
		if err == nil || !isMySQLError(err, mysqlErrDeadlock) {
			break
		}
		r.logger.Warn("answer transaction deadlocked, retrying",
			zap.Int("user_id", userID),
			zap.String("topic", topic),
			zap.Int("attempt", attempt),
		)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Debug("answer recorded",
		zap.Int("user_id", userID),
		zap.String("topic", topic),
		zap.Bool("correct", isCorrect),
	)
	return stat, nil
}

func (r *dashboardStatRepository) recordAnswer(ctx context.Context, userID int, topic string, questionID int, isCorrect bool) (*models.DashboardStat, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	correct := 0
	if isCorrect {
		correct = 1
	}

	upsert := `INSERT INTO dashboard_stats (user_id, topic, attempted, correct) VALUES (?, ?, 1, ?)
		ON DUPLICATE KEY UPDATE attempted = attempted + 1, correct = correct + VALUES(correct)`
	if _, err := tx.ExecContext(ctx, upsert, userID, topic, correct); err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	if isCorrect && questionID > 0 {
		solved := `INSERT IGNORE INTO dashboard_stat_solved (user_id, topic, question_id) VALUES (?, ?, ?)`
		if _, err := tx.ExecContext(ctx, solved, userID, topic, questionID); err != nil {
			return nil, fmt.Errorf("failed to mark question solved: %w", err)
		}
	}

	stat, err := readStat(ctx, tx, userID, topic)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return stat, nil
}

// ResetTopic zeroes attempted and correct for (userID, topic), creating the stat if absent.
// The solved set is left untouched.
func (r *dashboardStatRepository) ResetTopic(ctx context.Context, userID int, topic string) (*models.DashboardStat, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsert := `INSERT INTO dashboard_stats (user_id, topic, attempted, correct) VALUES (?, ?, 0, 0)
		ON DUPLICATE KEY UPDATE attempted = 0, correct = 0`
	if _, err := tx.ExecContext(ctx, upsert, userID, topic); err != nil {
		return nil, fmt.Errorf("failed to reset dashboard stat: %w", err)
	}

	stat, err := readStat(ctx, tx, userID, topic)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return stat, nil
}

// ResetAll zeroes attempted and correct for every topic of the user.
// Returns the number of stats whose counters changed.
func (r *dashboardStatRepository) ResetAll(ctx context.Context, userID int) (int, error) {
	query := `UPDATE dashboard_stats SET attempted = 0, correct = 0 WHERE user_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to reset dashboard stats: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return int(affected), nil
}
