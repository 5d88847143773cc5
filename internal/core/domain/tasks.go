package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownTask = errors.New("unknown task (must be workout1, workout2, diet, water, reading or photo)")
)

// TaskID identifies one of the six daily checklist slots. The set is closed.
type TaskID uint8

const (
	TaskWorkout1 TaskID = iota
	TaskWorkout2
	TaskDiet
	TaskWater
	TaskReading
	TaskPhoto

	TaskCount = 6
)

var taskNames = [TaskCount]string{
	TaskWorkout1: "workout1",
	TaskWorkout2: "workout2",
	TaskDiet:     "diet",
	TaskWater:    "water",
	TaskReading:  "reading",
	TaskPhoto:    "photo",
}

// AllTasks lists every task in checklist order.
func AllTasks() []TaskID {
	return []TaskID{TaskWorkout1, TaskWorkout2, TaskDiet, TaskWater, TaskReading, TaskPhoto}
}

func (t TaskID) Valid() bool {
	return t < TaskCount
}

func (t TaskID) String() string {
	if !t.Valid() {
		return fmt.Sprintf("task(%d)", uint8(t))
	}
	return taskNames[t]
}

// ParseTaskID maps a wire name such as "diet" to its TaskID.
func ParseTaskID(name string) (TaskID, error) {
	for i, n := range taskNames {
		if n == name {
			return TaskID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTask, name)
}

func (t TaskID) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, ErrUnknownTask
	}
	return []byte(taskNames[t]), nil
}

func (t *TaskID) UnmarshalText(text []byte) error {
	id, err := ParseTaskID(string(text))
	if err != nil {
		return err
	}
	*t = id
	return nil
}

// Tasks holds the done flag of every checklist slot, indexed by TaskID.
type Tasks [TaskCount]bool

func (ts Tasks) Done(t TaskID) bool {
	return ts[t]
}

// CountDone returns how many slots are checked.
func (ts Tasks) CountDone() int {
	n := 0
	for _, done := range ts {
		if done {
			n++
		}
	}
	return n
}

func (ts Tasks) MarshalJSON() ([]byte, error) {
	out := make(map[string]bool, TaskCount)
	for i, done := range ts {
		out[taskNames[i]] = done
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts an object keyed by task name. Missing keys stay false.
func (ts *Tasks) UnmarshalJSON(data []byte) error {
	var in map[string]bool
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var parsed Tasks
	for name, done := range in {
		id, err := ParseTaskID(name)
		if err != nil {
			return err
		}
		parsed[id] = done
	}

	*ts = parsed
	return nil
}
