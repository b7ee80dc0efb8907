package domain

type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

type RunState string

const (
	RunStopped RunState = "stopped"
	RunRunning RunState = "running"
	RunPaused  RunState = "paused"
)
