// Package processor orchestrates the episode pipeline: transcription,
// quote extraction and card rendering. It owns the per-episode output
// directory layout and the episode catalog bookkeeping.
package processor
