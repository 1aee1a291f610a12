package dashboard

import (
	"math"

	"github.com/studyloop/studyloop/internal/core"
)

// TopicGroup is one topic's tasks with their completion progress
type TopicGroup struct {
	Topic     string
	Tasks     []core.Task
	Completed int
	Percent   float64
}

// Analytics summarizes the whole list
type Analytics struct {
	Topics    int
	Total     int
	Completed int
}

// Filter partitions tasks by the three-way view filter. An unknown filter
// behaves as "all".
func Filter(tasks []core.Task, filter string) []core.Task {
	out := make([]core.Task, 0, len(tasks))
	for _, t := range tasks {
		switch filter {
		case core.FilterCompleted:
			if !t.Completed {
				continue
			}
		case core.FilterIncomplete:
			if t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// GroupByTopic clusters tasks under their topic in first-seen order and
// computes per-topic completion percent.
func GroupByTopic(tasks []core.Task) []TopicGroup {
	index := make(map[string]int)
	var groups []TopicGroup

	for _, t := range tasks {
		i, ok := index[t.Topic]
		if !ok {
			i = len(groups)
			index[t.Topic] = i
			groups = append(groups, TopicGroup{Topic: t.Topic})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
		if t.Completed {
			groups[i].Completed++
		}
	}

	for i := range groups {
		n := len(groups[i].Tasks)
		if n > 0 {
			groups[i].Percent = math.Round(float64(groups[i].Completed) / float64(n) * 100)
		}
	}

	return groups
}

// Summarize computes topic/total/completed counts over tasks
func Summarize(tasks []core.Task) Analytics {
	topics := make(map[string]bool)
	a := Analytics{Total: len(tasks)}
	for _, t := range tasks {
		topics[t.Topic] = true
		if t.Completed {
			a.Completed++
		}
	}
	a.Topics = len(topics)
	return a
}
