package dyntype

// Environment reports the text size level currently chosen by the user.
// It is read on every evaluation of a scaled value, so implementations
// must be safe for concurrent use.
type Environment interface {
	Level() Level
}

// StaticEnvironment is an environment fixed to a single level.
type StaticEnvironment Level

var _ Environment = StaticEnvironment(DefaultLevel)

// Level implements Environment.
func (e StaticEnvironment) Level() Level { return Level(e) }

// EnvironmentFunc adapts a function to the Environment interface.
type EnvironmentFunc func() Level

// Level implements Environment.
func (f EnvironmentFunc) Level() Level { return f() }
