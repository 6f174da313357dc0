package practice

import (
	"fmt"

	"github.com/practicehub/backend/internal/models"
)

// Summarize merges an optional stat onto a topic group. A nil stat is the zero state.
func Summarize(group models.TopicGroup, stat *models.DashboardStat) models.ProgressSummary {
	var summary models.ProgressSummary
	var solved map[int]struct{}

	if stat != nil {
		summary.Attempted = stat.Attempted
		summary.Correct = stat.Correct
		solved = solvedSet(stat.Solved)
	}
	summary.Accuracy = Accuracy(summary.Correct, summary.Attempted)

	for _, q := range group.Questions {
		if _, ok := solved[q.ID]; !ok {
			id := q.ID
			summary.FirstUnsolvedQuestionID = &id
			break
		}
	}

	return summary
}

// Accuracy returns correct/attempted, or 0 when nothing was attempted
func Accuracy(correct, attempted int) float64 {
	if attempted <= 0 {
		return 0
	}
	return float64(correct) / float64(attempted)
}

// SolvedCount counts the group's questions present in the stat's solved set
func SolvedCount(group models.TopicGroup, stat *models.DashboardStat) int {
	if stat == nil {
		return 0
	}
	solved := solvedSet(stat.Solved)
	count := 0
	for _, q := range group.Questions {
		if _, ok := solved[q.ID]; ok {
			count++
		}
	}
	return count
}

// ChartData splits attempts into correct and incorrect slices
func ChartData(summary models.ProgressSummary) []models.ChartPoint {
	return []models.ChartPoint{
		{Name: "Correct", Value: summary.Correct},
		{Name: "Incorrect", Value: summary.Attempted - summary.Correct},
	}
}

// CheckStat validates stored counters: both non-negative and correct <= attempted
func CheckStat(stat models.DashboardStat) error {
	if stat.Attempted < 0 {
		return models.NewValidationError("attempted", fmt.Sprintf("must not be negative, got %d", stat.Attempted))
	}
	if stat.Correct < 0 {
		return models.NewValidationError("correct", fmt.Sprintf("must not be negative, got %d", stat.Correct))
	}
	if stat.Correct > stat.Attempted {
		return models.NewValidationError("correct", fmt.Sprintf("%d exceeds attempted %d", stat.Correct, stat.Attempted))
	}
	return nil
}

// BuildProgress produces the dashboard view for every group, in group order.
//
// Stats whose topic matches no group are ignored.
func BuildProgress(groups []models.TopicGroup, stats []models.DashboardStat) ([]models.TopicProgress, error) {
	bySlug := make(map[string]*models.DashboardStat, len(stats))
	for i := range stats {
		if err := CheckStat(stats[i]); err != nil {
			return nil, fmt.Errorf("stat for topic %q: %w", stats[i].Topic, err)
		}
		bySlug[stats[i].Topic] = &stats[i]
	}

	progress := make([]models.TopicProgress, 0, len(groups))
	for _, g := range groups {
		stat := bySlug[g.Slug]
		summary := Summarize(g, stat)
		progress = append(progress, models.TopicProgress{
			Slug:            g.Slug,
			Name:            g.Name,
			TotalQuestions:  len(g.Questions),
			SolvedCount:     SolvedCount(g, stat),
			Chart:           ChartData(summary),
			ProgressSummary: summary,
		})
	}
	return progress, nil
}

// StatsBySlug renders stats in the map shape returned by the stats endpoint
func StatsBySlug(stats []models.DashboardStat) map[string]models.TopicStats {
	out := make(map[string]models.TopicStats, len(stats))
	for _, s := range stats {
		solved := s.Solved
		if solved == nil {
			solved = []int{}
		}
		out[s.Topic] = models.TopicStats{
			Attempted: s.Attempted,
			Correct:   s.Correct,
			Solved:    solved,
		}
	}
	return out
}

func solvedSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
