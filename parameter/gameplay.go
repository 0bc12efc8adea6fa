package parameter

// Canvas
const (
	CanvasWidth  = 500.0
	CanvasHeight = 500.0
)

// Ball spawn kinematics, restored on every restart
const (
	BallStartX  = 250.0
	BallStartY  = 250.0
	BallStartDX = 2.0
	BallStartDY = 2.0
	BallRadius  = 25.0
)

// Paddle geometry, Y is fixed for the lifetime of the process
const (
	PaddleStartX = 200.0
	PaddleY      = 480.0
	PaddleWidth  = 100.0
	PaddleHeight = 10.0
	PaddleSpeed  = 8.0
)

// ScorePerHit is added for every paddle bounce
const ScorePerHit = 1
