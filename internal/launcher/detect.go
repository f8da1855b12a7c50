package launcher

// launcherFactories holds registered launcher constructors.
var launcherFactories []func() Launcher

// RegisterFactory registers a launcher constructor.
func RegisterFactory(factory func() Launcher) {
	launcherFactories = append(launcherFactories, factory)
}

// All returns one instance of every registered launcher, in
// registration order.
func All() []Launcher {
	out := make([]Launcher, 0, len(launcherFactories))
	for _, factory := range launcherFactories {
		out = append(out, factory())
	}
	return out
}

// Detected pairs a launcher with the executable found for it.
type Detected struct {
	Launcher Launcher
	Exe      string
}

// Detect probes every registered launcher and returns the ones whose
// executable is present on this machine, in registration order.
func Detect() []Detected {
	var out []Detected
	for _, l := range All() {
		exe, err := l.DetectExecutable()
		if err != nil {
			continue
		}
		out = append(out, Detected{Launcher: l, Exe: exe})
	}
	return out
}
