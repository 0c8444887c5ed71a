package tiering

import (
	"time"

	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/pkg/utils"
)

// ClassifyDue compara a data de entrega com hoje, ambos à meia-noite no fuso de today.
// Dias positivos indicam atraso e negativos os dias restantes.
func ClassifyDue(dateEnd *time.Time, today time.Time) (domain.DueStatus, int) {
	if dateEnd == nil {
		return domain.DueStatusNoDate, 0
	}

	diff := utils.DaysBetween(*dateEnd, today, today.Location())

	switch {
	case diff > 0:
		return domain.DueStatusOverdue, diff
	case diff == 0:
		return domain.DueStatusToday, 0
	default:
		return domain.DueStatusOnTime, diff
	}
}

// AnnotateDue devolve cópias das tarefas com statusPrazo e diasAtraso preenchidos
func AnnotateDue(tasks []domain.Task, today time.Time) []domain.Task {
	annotated := make([]domain.Task, len(tasks))
	for i, task := range tasks {
		task.DueStatus, task.DaysOverdue = ClassifyDue(task.DateEnd, today)
		annotated[i] = task
	}
	return annotated
}
