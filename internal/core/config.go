package core

// DefaultTickRate is used when a RuntimeConfig leaves TickRate unset.
const DefaultTickRate = 60

// RuntimeConfig is what a frontend hands a game when creating it.
type RuntimeConfig struct {
	ScreenW  int   // columns available to the game
	ScreenH  int   // rows available to the game, HUD included
	TickRate int   // Step calls per second
	Seed     int64 // 0 asks the frontend to pick one from the clock
}

// GameState is the status a game reports after every step.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult wraps the state produced by one Step.
type StepResult struct {
	State GameState
}

// Outcome summarizes a finished round for the score history.
type Outcome struct {
	Won   bool // the last wave was cleared
	Lives int  // lives left at the end
	Ticks int  // simulation ticks spent in play
}
