package apperr

import (
	"errors"
	"fmt"
)

// Таксономия ошибок сервиса. Валидационные ошибки исправляются вызывающим,
// ошибки внешних сервисов - повторной отправкой формы, ParseError означает
// нарушение контракта моделью ранжирования, а не сетевой сбой.

// ValidationError - некорректные или отсутствующие поля запроса (HTTP 400).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field %q: %s", e.Field, e.Reason)
}

// UpstreamError - внешний вызов (LLM, object storage, маршрутизация) завершился
// сбоем транспорта или неуспешным статусом (HTTP 500).
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError - внешний вызов завершился успешно, но полезная нагрузка
// не декодируется. Для пользователя неотличим от UpstreamError, но
// логируется отдельно как нарушение контракта.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable payload from %s: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RouteLookupError - нефатальная ошибка поиска маршрута одного кандидата.
// Никогда не поднимается выше сентинельной метки.
type RouteLookupError struct {
	CandidateID int
	Err         error
}

func (e *RouteLookupError) Error() string {
	return fmt.Sprintf("route lookup for candidate %d failed: %v", e.CandidateID, e.Err)
}

func (e *RouteLookupError) Unwrap() error { return e.Err }

// IsValidation сообщает, является ли ошибка валидационной.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsUpstream сообщает, является ли ошибка сбоем внешнего сервиса.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsParse сообщает, является ли ошибка нарушением контракта полезной нагрузки.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
