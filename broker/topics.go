package broker

const (
	TaskEventsSubject = "task_events"
)
