package scheduler

import "fmt"

func makeSession(weekDay, start, end string) Session {
	slot, err := EncodeSlot(weekDay, start)
	if err != nil {
		panic(fmt.Sprintf("cannot build test session: %v", err))
	}
	return Session{WeekDay: weekDay, StartTime: start, EndTime: end, Slot: slot}
}

func makePreference(uid, name, weekDay, start, end string) Preference {
	slot, err := EncodeSlot(weekDay, start)
	if err != nil {
		panic(fmt.Sprintf("cannot build test preference: %v", err))
	}
	return Preference{UID: uid, Name: name, WeekDay: weekDay, StartTime: start, EndTime: end, Slot: slot}
}
