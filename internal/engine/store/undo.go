package store

import "go.trai.ch/pace/internal/core/domain"

// UndoState is the state of the delete/undo machine.
type UndoState string

const (
	// UndoIdle means nothing is pending restoration.
	UndoIdle UndoState = "Idle"
	// UndoPending means the undo window is open for the most recent delete.
	UndoPending UndoState = "PendingUndo"
)

// holdingCell is the single-slot storage for a deleted-but-not-yet-committed
// task. Capacity is exactly one: a second delete overwrites the slot and the
// prior deletion becomes unrecoverable. The machine state follows the slot
// directly, so a delete that matched nothing leaves the machine Idle.
type holdingCell struct {
	held *domain.Task
}

// capture stores the removed task (possibly nil for a delete that matched
// nothing), silently discarding whatever the cell held before.
func (c *holdingCell) capture(t *domain.Task) {
	c.held = t
}

// take empties the cell for a restore. It fails without touching anything
// when no task is held, guarding against spurious undo calls.
func (c *holdingCell) take() (*domain.Task, bool) {
	if c.held == nil {
		return nil, false
	}
	held := c.held
	c.held = nil
	return held, true
}

// clear discards the held task permanently.
func (c *holdingCell) clear() {
	c.held = nil
}

func (c *holdingCell) state() UndoState {
	if c.held != nil {
		return UndoPending
	}
	return UndoIdle
}
