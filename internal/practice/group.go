package practice

import "github.com/practicehub/backend/internal/models"

// Group partitions questions into topic groups keyed by canonical slug.
//
// Questions whose topic resolves to an empty slug are skipped. When knownTopics contains a topic
// with the same slug, its name is used for the group. Groups are ordered by first occurrence and
// questions keep their input order inside each group.
func Group(questions []models.Question, knownTopics []models.Topic) []models.TopicGroup {
	known := indexTopics(knownTopics)

	groups := make([]models.TopicGroup, 0)
	positions := make(map[string]int)

	for _, q := range questions {
		res := Resolve(q.Topic)
		if res.Slug == "" {
			continue
		}
		if t, ok := known[res.Slug]; ok {
			res.Name = t.Name
		}

		i, ok := positions[res.Slug]
		if !ok {
			i = len(groups)
			positions[res.Slug] = i
			groups = append(groups, models.TopicGroup{
				Slug:      res.Slug,
				Name:      res.Name,
				Questions: make([]models.Question, 0, 1),
			})
		}
		groups[i].Questions = append(groups[i].Questions, q)
	}

	return groups
}

// indexTopics builds a slug lookup; the first topic wins when several courses share a slug.
func indexTopics(topics []models.Topic) map[string]models.Topic {
	known := make(map[string]models.Topic, len(topics))
	for _, t := range topics {
		slug := t.Slug
		if slug == "" {
			slug = Canonicalize(t.Name)
		}
		if slug == "" {
			continue
		}
		if _, exists := known[slug]; !exists {
			known[slug] = t
		}
	}
	return known
}

// FilterGroups keeps only groups whose slug belongs to one of the given topics
func FilterGroups(groups []models.TopicGroup, topics []models.Topic) []models.TopicGroup {
	known := indexTopics(topics)
	filtered := make([]models.TopicGroup, 0, len(groups))
	for _, g := range groups {
		if _, ok := known[g.Slug]; ok {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
