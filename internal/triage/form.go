package triage

import (
	"github.com/swiftdispatch/emergency_dispatch_system/internal/apperr"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
)

// State - фаза жизненного цикла формы триажа.
type State string

const (
	// StateForm - форма редактируется
	StateForm State = "form"
	// StateSubmitting - заявка отправлена, ответ еще не получен
	StateSubmitting State = "submitting"
	// StateMap - получен результат, отображается карта с кандидатами
	StateMap State = "map"
)

// Form - конечный автомат формы триажа. Держит текущую запись и фазу,
// не потокобезопасен: один экземпляр обслуживает одну сессию.
type Form struct {
	state  State
	record models.TriageRecord
}

// NewForm возвращает форму в начальном состоянии с дефолтной записью.
func NewForm() *Form {
	return &Form{
		state:  StateForm,
		record: models.DefaultTriageRecord(),
	}
}

func (f *Form) State() State {
	return f.state
}

// Record возвращает копию текущей записи. Слайс критических признаков
// копируется, чтобы вызывающий не мог мутировать внутреннее состояние.
func (f *Form) Record() models.TriageRecord {
	rec := f.record
	rec.CriticalSigns = append([]string{}, f.record.CriticalSigns...)
	return rec
}

// SetField мутирует одно поле записи. Разрешено только в фазе form.
func (f *Form) SetField(mutate func(*models.TriageRecord)) error {
	if f.state != StateForm {
		return &apperr.ValidationError{Field: "state", Reason: "form is not editable in state " + string(f.state)}
	}
	mutate(&f.record)
	return nil
}

// ToggleCriticalSign добавляет признак, если его нет, и убирает, если есть.
func (f *Form) ToggleCriticalSign(sign string) error {
	return f.SetField(func(r *models.TriageRecord) {
		for i, s := range r.CriticalSigns {
			if s == sign {
				r.CriticalSigns = append(r.CriticalSigns[:i], r.CriticalSigns[i+1:]...)
				return
			}
		}
		r.CriticalSigns = append(r.CriticalSigns, sign)
	})
}

// Submit переводит форму в фазу submitting. Отправка разрешена только
// когда заполнены и уровень срочности, и тип инцидента.
func (f *Form) Submit() error {
	if f.state != StateForm {
		return &apperr.ValidationError{Field: "state", Reason: "cannot submit in state " + string(f.state)}
	}
	if f.record.UrgencyLevel == "" {
		return &apperr.ValidationError{Field: "urgencyLevel", Reason: "urgency level is required"}
	}
	if f.record.IncidentType == "" {
		return &apperr.ValidationError{Field: "incidentType", Reason: "incident type is required"}
	}
	f.state = StateSubmitting
	return nil
}

// CompleteSubmission фиксирует успешный ответ: submitting -> map.
func (f *Form) CompleteSubmission() error {
	if f.state != StateSubmitting {
		return &apperr.ValidationError{Field: "state", Reason: "no submission in flight"}
	}
	f.state = StateMap
	return nil
}

// FailSubmission возвращает форму в редактирование после ошибки отправки.
// Запись сохраняется, пользователь не теряет введенные данные.
func (f *Form) FailSubmission() error {
	if f.state != StateSubmitting {
		return &apperr.ValidationError{Field: "state", Reason: "no submission in flight"}
	}
	f.state = StateForm
	return nil
}

// Back возвращает с карты к форме. Запись остается заполненной, повторная
// отправка возможна без повторного ввода.
func (f *Form) Back() error {
	if f.state != StateMap {
		return &apperr.ValidationError{Field: "state", Reason: "not on map"}
	}
	f.state = StateForm
	return nil
}

// Reset сбрасывает форму в начальное состояние из любой фазы.
func (f *Form) Reset() {
	f.state = StateForm
	f.record = models.DefaultTriageRecord()
}
