package services

import "errors"

var (
	// ErrAlreadyRecorded means the student already checked in today.
	// Confirming twice in one day is an error, never a double charge.
	ErrAlreadyRecorded = errors.New("attendance already recorded for this date")
	// ErrNoGroup means the student is not assigned to any group, so no
	// session price can be derived.
	ErrNoGroup = errors.New("student has no group")
	// ErrScoreOutOfRange means a score fell outside [0, maxScore].
	ErrScoreOutOfRange = errors.New("score out of range")
	// ErrNoScores means an exam has no recorded scores to aggregate.
	ErrNoScores = errors.New("exam has no recorded scores")
	// ErrInvalidAmount means a manual payment override was negative.
	ErrInvalidAmount = errors.New("payment amount must not be negative")
	// ErrUnknownPeriod means the summary period was not day, week or month.
	ErrUnknownPeriod = errors.New("unknown summary period")
)
