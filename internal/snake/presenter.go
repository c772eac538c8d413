package snake

import "time"

// Presenter receives visual feedback from a Game. Calls are made while the
// game holds its lock, so implementations must not call back into the Game.
type Presenter interface {
	// Render draws the body (head first) and the food cell.
	Render(body []Position, food Position)
	SetScore(score int)
	SetSpeed(interval time.Duration)
	SetBoundary(mode BoundaryMode)
	ShowGameOver(outcome Outcome)
	HideGameOver()
	ShowPauseMenu()
	HidePauseMenu()
}

// NopPresenter discards all feedback. Useful for headless games and tests.
type NopPresenter struct{}

func (NopPresenter) Render([]Position, Position) {}
func (NopPresenter) SetScore(int)                {}
func (NopPresenter) SetSpeed(time.Duration)      {}
func (NopPresenter) SetBoundary(BoundaryMode)    {}
func (NopPresenter) ShowGameOver(Outcome)        {}
func (NopPresenter) HideGameOver()               {}
func (NopPresenter) ShowPauseMenu()              {}
func (NopPresenter) HidePauseMenu()              {}

// Scheduler is the clock handle a Game drives. Reschedule starts firing at
// the interval, replacing any previous schedule; Stop silences it.
type Scheduler interface {
	Reschedule(interval time.Duration)
	Stop()
}

type nopScheduler struct{}

func (nopScheduler) Reschedule(time.Duration) {}
func (nopScheduler) Stop()                    {}
