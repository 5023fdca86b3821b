package event

import (
	"gorm.io/gorm"
)

type EventService struct {
	DB *gorm.DB
}

func (es *EventService) AddEvent(e Event) (Event, error) {
	result := es.DB.Create(&e)
	if result.Error != nil {
		return Event{}, result.Error
	}
	return e, nil
}

func (es *EventService) ListEvents() ([]Event, error) {
	var events []Event
	result := es.DB.Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}
