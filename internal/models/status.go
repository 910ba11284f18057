package models

import (
	"fmt"
	"strings"
)

// EventStatus - состояние жизненного цикла события
type EventStatus string

const (
	StatusPending  EventStatus = "pending"
	StatusAccepted EventStatus = "Accepted"
	StatusAssigned EventStatus = "Assigned"
	StatusResolved EventStatus = "Resolved"
)

// eventTransitions - допустимые переходы. Resolved - терминальное состояние.
var eventTransitions = map[EventStatus][]EventStatus{
	StatusPending:  {StatusAccepted},
	StatusAccepted: {StatusAssigned},
	StatusAssigned: {StatusResolved},
}

// ParseEventStatus приводит строку к известному статусу без учета регистра
func ParseEventStatus(raw string) (EventStatus, error) {
	for _, status := range []EventStatus{StatusPending, StatusAccepted, StatusAssigned, StatusResolved} {
		if strings.EqualFold(strings.TrimSpace(raw), string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown event status %q", raw)
}

// CanTransitionTo проверяет переход по таблице
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	for _, allowed := range eventTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s EventStatus) IsTerminal() bool {
	return len(eventTransitions[s]) == 0
}

func (s EventStatus) String() string {
	return string(s)
}
