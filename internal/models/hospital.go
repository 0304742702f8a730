package models

// Сентинельные значения для полей distance/eta кандидата.
// "Calculating..." - начальное значение до завершения раунда расчета маршрутов,
// "Unavailable" - поиск выполнен, маршрут не найден,
// "Error" - сам поиск маршрута завершился ошибкой.
const (
	RoutePending     = "Calculating..."
	RouteUnavailable = "Unavailable"
	RouteError       = "Error"
)

// Coordinates - числовая пара широта/долгота. Строковая форма "lat,lon"
// нормализуется в Coordinates на границе клиента ранжирования и дальше
// по системе не передается.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// HospitalCandidate - больница, возвращенная шагом ранжирования.
// ID присваивается позиционно (1..N) в порядке ответа модели и не
// стабилен между повторными ранжированиями.
type HospitalCandidate struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	Specialities string      `json:"specialities,omitempty"`
	Coordinates  Coordinates `json:"coordinates"`
	Distance     string      `json:"distance"`
	ETA          string      `json:"eta"`
}

// RouteInfo - результат поиска маршрута для одного кандидата.
type RouteInfo struct {
	Distance string `json:"distance"`
	ETA      string `json:"eta"`
}

// ApplyRouteInfo перезаписывает отображаемые поля кандидата результатом
// раунда расчета маршрутов.
func (h *HospitalCandidate) ApplyRouteInfo(info RouteInfo) {
	h.Distance = info.Distance
	h.ETA = info.ETA
}
